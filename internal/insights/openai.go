package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"

	completionMaxTokens   = 1500
	completionTemperature = 0.7
)

// OpenAIGenerator implements Generator against the chat completions API.
type OpenAIGenerator struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// OpenAIOption customizes the generator.
type OpenAIOption func(*OpenAIGenerator)

// WithBaseURL overrides the API endpoint, for tests.
func WithBaseURL(url string) OpenAIOption {
	return func(g *OpenAIGenerator) { g.baseURL = url }
}

// NewOpenAIGenerator creates a chat completions client. An empty model
// falls back to the default.
func NewOpenAIGenerator(apiKey, model string, opts ...OpenAIOption) *OpenAIGenerator {
	g := &OpenAIGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultOpenAIBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	if g.model == "" {
		g.model = defaultOpenAIModel
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	body := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("openai returned %d: %s", resp.StatusCode, snippet)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
