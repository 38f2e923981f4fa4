// Package aggregation folds flat task rows into one DailyRecord per
// calendar date.
package aggregation

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ivkhv/daybook/internal/journal/domain"
	"github.com/ivkhv/daybook/internal/journal/parsing"
)

// Summary row markers. A row titled SummaryMarker carries the day's free
// text; PeriodSummaryMarker flags a weekly aggregate row that daily
// analytics must skip. If the journal vocabulary changes upstream, rows
// stop matching and the record degrades silently to "no rating/sleep/
// abstinence" rather than failing the whole aggregation.
const (
	SummaryMarker       = "MARK"
	PeriodSummaryMarker = "WEEK MARK"
)

// Keyword sets for the four activity flags. A flag is set when any row
// title or tag for the day matches its set.
var (
	exerciseKeywords    = []string{"GYM", "WORKOUT", "SPORT", "RUN"}
	studyKeywords       = []string{"UNIVERSITY", "STUDY", "LEARN", "COURSE"}
	focusedWorkKeywords = []string{"CODING", "WORK", "PROJECT", "DEV"}
	socialKeywords      = []string{"KATE", "FRIENDS", "FAMILY", "DATE"}
)

// BuildRecords groups rows by date and builds one DailyRecord per distinct
// date, sorted ascending. Aggregation is recomputed from scratch on every
// call; rows are never mutated.
func BuildRecords(rows []domain.TaskRow) []domain.DailyRecord {
	groups := make(map[int64][]domain.TaskRow)
	for _, row := range rows {
		day := row.Day().Unix()
		groups[day] = append(groups[day], row)
	}

	records := make([]domain.DailyRecord, 0, len(groups))
	for _, group := range groups {
		records = append(records, buildDay(group))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records
}

func buildDay(rows []domain.TaskRow) domain.DailyRecord {
	record := domain.DailyRecord{Date: rows[0].Day()}

	var summary *domain.TaskRow
	var hours float64

	seen := make(map[string]struct{})
	for i := range rows {
		row := rows[i]

		title := normalizeTitle(row.Title)
		switch title {
		case PeriodSummaryMarker:
			summary = &rows[i]
			record.IsPeriodSummary = true
		case SummaryMarker:
			// Last matching row wins, deterministic by input order.
			summary = &rows[i]
		}

		for _, tag := range row.Tags {
			key := strings.ToUpper(tag)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			record.Activities = append(record.Activities, tag)
			classify(&record, key)
		}
		classify(&record, strings.ToUpper(row.Title))

		hours += row.Hours
		record.TaskCount++
		if row.Done {
			record.TasksDone++
		}
	}

	record.TotalHours = math.Round(hours*10) / 10

	if summary != nil && summary.BodyText != "" {
		record.FreeText = summary.BodyText
		record.Sleep = parsing.ParseSleep(summary.BodyText)
		record.Abstinence = parsing.ParseAbstinence(summary.BodyText)
		record.Rating = parsing.ParseRating(summary.BodyText)
	}

	return record
}

// classify ORs the activity flags for a single upper-cased title or tag.
// Flags are monotonic across the day: once set, never reset. Matching is
// on whole words, so a WORKOUT row flags exercise without also flagging
// focused work via the WORK keyword.
func classify(record *domain.DailyRecord, upper string) {
	words := strings.FieldsFunc(upper, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if containsWord(exerciseKeywords, w) {
			record.HadExercise = true
		}
		if containsWord(studyKeywords, w) {
			record.HadStudy = true
		}
		if containsWord(focusedWorkKeywords, w) {
			record.HadFocusedWork = true
		}
		if containsWord(socialKeywords, w) {
			record.HadSocial = true
		}
	}
}

func containsWord(keywords []string, word string) bool {
	for _, kw := range keywords {
		if kw == word {
			return true
		}
	}
	return false
}

func normalizeTitle(title string) string {
	return strings.ToUpper(strings.TrimSpace(title))
}
