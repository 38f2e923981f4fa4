package analytics

import (
	"time"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// Predicate reports whether a day counts toward a streak.
type Predicate func(domain.DailyRecord) bool

// NamedPredicate pairs a streak name with its predicate. Streaks are
// computed in slice order so output ordering is stable.
type NamedPredicate struct {
	Name string
	Pred Predicate
}

// StreakInfo describes one streak: the run ending at the most recent day
// and the longest run anywhere in the history. Gaps in the calendar are not
// special-cased; missing journal days are simply absent rows.
type StreakInfo struct {
	Name     string
	Current  int
	Record   int
	LastDate *time.Time
}

// ComputeStreaks evaluates each predicate over the record history.
func ComputeStreaks(records []domain.DailyRecord, predicates []NamedPredicate) []StreakInfo {
	days := daily(records)

	out := make([]StreakInfo, 0, len(predicates))
	for _, np := range predicates {
		out = append(out, computeOne(days, np))
	}
	return out
}

func computeOne(days []domain.DailyRecord, np NamedPredicate) StreakInfo {
	info := StreakInfo{Name: np.Name}

	run := 0
	for _, d := range days {
		if np.Pred(d) {
			run++
			if run > info.Record {
				info.Record = run
			}
			t := d.Date
			info.LastDate = &t
		} else {
			run = 0
		}
	}

	for i := len(days) - 1; i >= 0; i-- {
		if !np.Pred(days[i]) {
			break
		}
		info.Current++
	}

	return info
}

// StandardPredicates is the default streak set tracked by the CLI:
// positive abstinence, exercise, focused work, a good-or-better rating,
// and seven-plus hours of sleep.
func StandardPredicates() []NamedPredicate {
	return []NamedPredicate{
		{Name: "abstinence plus", Pred: func(r domain.DailyRecord) bool {
			return r.Abstinence != nil && *r.Abstinence == domain.AbstinencePlus
		}},
		{Name: "exercise", Pred: func(r domain.DailyRecord) bool {
			return r.HadExercise
		}},
		{Name: "focused work", Pred: func(r domain.DailyRecord) bool {
			return r.HadFocusedWork
		}},
		{Name: "rating >= good", Pred: func(r domain.DailyRecord) bool {
			return r.Rating != nil && r.Rating.IsGood()
		}},
		{Name: "sleep >= 7h", Pred: func(r domain.DailyRecord) bool {
			return r.Sleep.Hours != nil && *r.Sleep.Hours >= 7
		}},
	}
}
