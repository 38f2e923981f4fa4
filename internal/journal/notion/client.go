// Package notion fetches journal task rows from a Notion database.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/ivkhv/daybook/internal/journal/domain"
	"github.com/ivkhv/daybook/pkg/observability"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"
	pageSize       = 100

	retryAttempts  = 3
	retryBaseDelay = time.Second
)

// Config configures the Notion client.
type Config struct {
	Token      string
	DatabaseID string

	// BaseURL overrides the Notion API endpoint, for tests.
	BaseURL string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
}

// Client queries the journal database with pagination, retry, and a
// circuit breaker around the whole fetch.
type Client struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]domain.TaskRow]
	logger  *slog.Logger
}

// NewClient creates a Notion client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:    "notion",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]domain.TaskRow](settings),
		logger:  logger,
	}
}

// FetchRows returns every task row whose date falls within [start, end].
// Pages without a date are logged and skipped.
func (c *Client) FetchRows(ctx context.Context, start, end time.Time) ([]domain.TaskRow, error) {
	defer observability.LogDuration(c.logger, "notion.fetch_rows", time.Now())
	return c.breaker.Execute(func() ([]domain.TaskRow, error) {
		return c.fetchWithRetry(ctx, start, end)
	})
}

func (c *Client) fetchWithRetry(ctx context.Context, start, end time.Time) ([]domain.TaskRow, error) {
	var lastErr error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			c.logger.Warn("notion query failed, retrying",
				"attempt", attempt,
				"delay", delay.String(),
				"error", lastErr,
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		rows, err := c.queryAll(ctx, start, end)
		if err == nil {
			return rows, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("query notion database: %w", lastErr)
}

// queryAll walks the paginated database query until has_more is false.
func (c *Client) queryAll(ctx context.Context, start, end time.Time) ([]domain.TaskRow, error) {
	var rows []domain.TaskRow
	cursor := ""

	for {
		resp, err := c.queryPage(ctx, start, end, cursor)
		if err != nil {
			return nil, err
		}

		for _, p := range resp.Results {
			row, ok := mapPage(p)
			if !ok {
				c.logger.Warn("skipping page without date", "page_id", p.ID)
				continue
			}
			rows = append(rows, row)
		}

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	c.logger.Info("fetched pages from notion", "rows", len(rows))
	return rows, nil
}

type queryRequest struct {
	Filter      any    `json:"filter"`
	Sorts       []any  `json:"sorts"`
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

func (c *Client) queryPage(ctx context.Context, start, end time.Time, cursor string) (*queryResponse, error) {
	dateFilter := func(key string, t time.Time) map[string]any {
		return map[string]any{
			"property": "Date",
			"date":     map[string]string{key: t.Format("2006-01-02")},
		}
	}
	body := queryRequest{
		Filter: map[string]any{
			"and": []any{
				dateFilter("on_or_after", start),
				dateFilter("on_or_before", end),
			},
		},
		Sorts:       []any{map[string]string{"property": "Date", "direction": "descending"}},
		PageSize:    pageSize,
		StartCursor: cursor,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	url := fmt.Sprintf("%s/databases/%s/query", c.cfg.BaseURL, c.cfg.DatabaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query notion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("notion returned %d: %s", resp.StatusCode, snippet)
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
