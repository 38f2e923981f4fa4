// Package insights renders record windows into plain text and asks an
// opaque text generator for commentary. The generated text is passed
// through verbatim, never parsed.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ivkhv/daybook/internal/analytics"
	"github.com/ivkhv/daybook/internal/journal/domain"
)

const (
	// journalTruncate caps the free-text snippet included per day.
	journalTruncate = 200

	// maxActivitiesPerLine caps the activity list included per day.
	maxActivitiesPerLine = 8
)

// RenderWindow converts records into one human-readable line per day,
// oldest first. Period summaries are skipped. The free text is included
// as a truncated journal snippet so the generator sees the full picture
// of the day, not just the numbers.
func RenderWindow(records []domain.DailyRecord) string {
	days := sortedDaily(records)
	if len(days) == 0 {
		return "No data."
	}

	var lines []string
	for _, r := range days {
		rating := "N/A"
		if r.Rating != nil {
			rating = r.Rating.String()
		}
		abstinence := "N/A"
		if r.Abstinence != nil {
			abstinence = string(*r.Abstinence)
		}
		sleep := "N/A"
		if r.Sleep.Hours != nil {
			sleep = fmt.Sprintf("%.1fh", *r.Sleep.Hours)
		}
		activities := "none"
		if len(r.Activities) > 0 {
			acts := r.Activities
			if len(acts) > maxActivitiesPerLine {
				acts = acts[:maxActivitiesPerLine]
			}
			activities = strings.Join(acts, ", ")
		}

		line := fmt.Sprintf("%s: rating=%s, hours=%.1f, sleep=%s, abstinence=%s, tasks=%d, activities=[%s], score=%.1f",
			r.Date.Format("2006-01-02"), rating, r.TotalHours, sleep, abstinence, r.TaskCount, activities, analytics.Score(r))

		if snippet := journalSnippet(r.FreeText); snippet != "" {
			line += "\n  journal: " + snippet
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// journalSnippet trims and truncates free text to the snippet limit,
// marking truncation with an ellipsis.
func journalSnippet(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= journalTruncate {
		return text
	}
	return string(runes[:journalTruncate]) + "…"
}

func sortedDaily(records []domain.DailyRecord) []domain.DailyRecord {
	out := make([]domain.DailyRecord, 0, len(records))
	for _, r := range records {
		if !r.IsPeriodSummary {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
