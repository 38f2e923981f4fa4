package insights

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ivkhv/daybook/internal/analytics"
	"github.com/ivkhv/daybook/internal/journal/domain"
)

// unavailableText is returned when the generator fails; commentary is
// best-effort and never blocks the numeric results.
const unavailableText = "AI commentary unavailable."

// Service renders record windows into prompts and collects generator
// commentary for the analytics commands.
type Service struct {
	generator Generator
	logger    *slog.Logger
}

// NewService creates an insights service. The generator may be nil, in
// which case every method returns the unavailable placeholder.
func NewService(generator Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{generator: generator, logger: logger}
}

func (s *Service) ask(ctx context.Context, prompt string) string {
	if s.generator == nil {
		return unavailableText
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("insight generation failed", "error", err)
		return unavailableText
	}
	return text
}

// MonthInsights comments on one month of records.
func (s *Service) MonthInsights(ctx context.Context, records []domain.DailyRecord, monthLabel string) string {
	prompt := fmt.Sprintf(
		"Analyze productivity for %s. Read every journal snippet for context and mood.\n%s\n\nGive: 1) main trends 2) what went well 3) what to improve 4) concrete advice",
		monthLabel, RenderWindow(records))
	return s.ask(ctx, prompt)
}

// BurnoutAdvice comments on an assessed burnout risk over the recent
// window.
func (s *Service) BurnoutAdvice(ctx context.Context, risk analytics.BurnoutRisk, records []domain.DailyRecord) string {
	prompt := fmt.Sprintf(
		"Burnout risk: %s (%.0f%%). Factors: %s\nLast days (read the journal snippets for context):\n%s\n\nGive 3 concrete steps for the next 5 days to prevent burnout.",
		risk.Level, risk.Score, strings.Join(risk.Factors, ", "), RenderWindow(records))
	return s.ask(ctx, prompt)
}

// WeeklyDigest compares the current week against the previous one.
// Requires at least seven daily records.
func (s *Service) WeeklyDigest(ctx context.Context, records []domain.DailyRecord) string {
	days := sortedDaily(records)
	if len(days) < 7 {
		return "At least one week of records is required for a digest."
	}

	thisWeek := days[len(days)-7:]
	prevSummary := "No data for the previous week."
	if len(days) >= 14 {
		prevSummary = RenderWindow(days[len(days)-14 : len(days)-7])
	}

	prompt := fmt.Sprintf(
		"Current week:\n%s\n\nPrevious week:\n%s\n\nWrite a weekly digest: the week's highlights, comparison with the previous week, trends, and one piece of advice. Read the journal snippets.",
		RenderWindow(thisWeek), prevSummary)
	return s.ask(ctx, prompt)
}

// CorrelationCommentary comments on a computed correlation matrix.
func (s *Service) CorrelationCommentary(ctx context.Context, matrix analytics.CorrelationMatrix, records []domain.DailyRecord) string {
	var lines []string
	for i, c := range matrix.Correlations {
		if i >= 10 {
			break
		}
		lines = append(lines, fmt.Sprintf("%s: %.2f (vs baseline %+.2f), n=%d", c.Activity, c.AvgRating, c.VsBaseline, c.SampleSize))
	}

	prompt := fmt.Sprintf(
		"Baseline average rating: %.2f. Activity correlations with rating:\n%s\n\nCombos: %s\n\nData:\n%s\n\nGive 3 insights: which activities track the best days, and which combinations work.",
		matrix.BaselineRating, strings.Join(lines, "\n"), strings.Join(matrix.ComboInsights, "; "), RenderWindow(records))
	return s.ask(ctx, prompt)
}
