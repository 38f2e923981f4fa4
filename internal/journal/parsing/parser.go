// Package parsing extracts structured facts from free-form journal text.
// All extraction functions are total: a pattern that is absent yields a nil
// field, never an error.
package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

var (
	wokeUpRe   = regexp.MustCompile(`(?i)woke\s+up\s+at\s+(\d{1,2}[:.]\d{2})`)
	sleepRe    = regexp.MustCompile(`(?i)sleep\s+time\s+(\d{1,2})[:.](\d{2})`)
	recoveryRe = regexp.MustCompile(`(?i)recovery\s+(\d{1,3})`)
	ratingRe   = regexp.MustCompile(`(?i)MARK\s*:\s*(very\s+good|very\s+bad|perfect|good|normal|bad)`)
	spacesRe   = regexp.MustCompile(`\s+`)
)

// abstinencePatterns is an ordered list of (substring, status) pairs,
// evaluated top to bottom with early return. The ordering is a semantic
// contract: the partner patterns contain the bare minus patterns as
// substrings, so the more specific entries must come first.
var abstinencePatterns = []struct {
	marker string
	status domain.AbstinenceStatus
}{
	{"MINUS TESTIK KATE", domain.AbstinenceMinusWithPartner},
	{"MINUS TEST KATE", domain.AbstinenceMinusWithPartner},
	{"MINUS TESTIK", domain.AbstinenceMinus},
	{"MINUS TEST", domain.AbstinenceMinus},
	{"PLUS TESTIK", domain.AbstinencePlus},
	{"PLUS TEST", domain.AbstinencePlus},
}

// ParseSleep scans text for wake time, sleep duration, and recovery score.
// Any subset of the three may be present; unmatched patterns leave the
// corresponding fields nil.
func ParseSleep(text string) domain.SleepInfo {
	var info domain.SleepInfo

	if m := wokeUpRe.FindStringSubmatch(text); m != nil {
		woke := strings.ReplaceAll(m[1], ".", ":")
		info.WokeUpAt = &woke
	}

	if m := sleepRe.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		label := strconv.Itoa(h) + ":" + m[2]
		hours := math.Round((float64(h)+float64(mins)/60)*100) / 100
		info.DurationLabel = &label
		info.Hours = &hours
	}

	if m := recoveryRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		info.RecoveryScore = &n
	}

	return info
}

// ParseAbstinence extracts the abstinence status from text, or nil when no
// marker is present. Matching is case-insensitive and honors the priority
// order of abstinencePatterns.
func ParseAbstinence(text string) *domain.AbstinenceStatus {
	upper := strings.ToUpper(text)
	for _, p := range abstinencePatterns {
		if strings.Contains(upper, p.marker) {
			status := p.status
			return &status
		}
	}
	return nil
}

// ParseRating extracts the day rating from a "MARK: <label>" marker, or nil
// when absent. Multi-word labels are matched before their single-word
// suffixes so "very good" never half-matches as "good".
func ParseRating(text string) *domain.DayRating {
	m := ratingRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	label := spacesRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(m[1])), " ")
	rating := domain.DayRating(label)
	if !rating.IsValid() {
		return nil
	}
	return &rating
}
