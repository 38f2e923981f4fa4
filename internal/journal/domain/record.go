package domain

import (
	"strings"
	"time"
)

// DailyRecord is the canonical unit of analysis: one record per calendar
// date, reconstructed from the day's task rows. Rating, abstinence and
// sleep come from the summary row's body text; nil means the fact was not
// mentioned, never "worst value".
type DailyRecord struct {
	Date            time.Time
	Rating          *DayRating
	Abstinence      *AbstinenceStatus
	Sleep           SleepInfo
	Activities      []string
	TotalHours      float64
	TaskCount       int
	TasksDone       int
	HadExercise     bool
	HadStudy        bool
	HadFocusedWork  bool
	HadSocial       bool
	FreeText        string
	IsPeriodSummary bool
}

// RatingScore returns the rating's ordinal score, or 0 when unrated.
func (r DailyRecord) RatingScore() int {
	if r.Rating == nil {
		return 0
	}
	return r.Rating.Score()
}

// HasActivity reports whether the given tag appears in the day's activity
// list. Comparison is case-insensitive to match aggregation semantics.
func (r DailyRecord) HasActivity(name string) bool {
	for _, a := range r.Activities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}
