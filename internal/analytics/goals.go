package analytics

import (
	"math"

	goals "github.com/ivkhv/daybook/internal/goals/domain"
	"github.com/ivkhv/daybook/internal/journal/domain"
)

// GoalProgress is a derived, never-persisted view of one goal against the
// record history.
type GoalProgress struct {
	Goal       goals.Goal
	Current    int
	Target     int
	Percentage float64
	IsComplete bool
}

// ComputeGoalProgress evaluates each goal over a rolling window anchored
// at the most recent record's date (not the wall clock, so the function is
// testable on historical data).
func ComputeGoalProgress(goalList []goals.Goal, records []domain.DailyRecord) []GoalProgress {
	days := daily(records)

	out := make([]GoalProgress, 0, len(goalList))
	if len(days) == 0 {
		for _, g := range goalList {
			out = append(out, GoalProgress{Goal: g, Target: g.TargetCount})
		}
		return out
	}

	today := days[len(days)-1].Date
	for _, g := range goalList {
		windowDays := goalWeekWindowDays
		if g.Period == goals.PeriodMonth {
			windowDays = goalMonthWindowDays
		}
		start := today.AddDate(0, 0, -(windowDays - 1))

		current := 0
		for _, r := range days {
			if r.Date.Before(start) {
				continue
			}
			if goalMatches(r, g.TargetActivity) {
				current++
			}
		}

		progress := GoalProgress{
			Goal:       g,
			Current:    current,
			Target:     g.TargetCount,
			IsComplete: current >= g.TargetCount,
		}
		if g.TargetCount > 0 {
			pct := float64(current) / float64(g.TargetCount) * 100
			progress.Percentage = round1(math.Min(pct, 100))
		}
		out = append(out, progress)
	}
	return out
}

// goalMatches maps well-known activity names to record flags, falling back
// to a literal tag-membership check.
func goalMatches(r domain.DailyRecord, activity string) bool {
	switch activity {
	case "GYM", "WORKOUT", "EXERCISE":
		return r.HadExercise
	case "CODING", "WORK":
		return r.HadFocusedWork
	case "UNIVERSITY", "STUDY":
		return r.HadStudy
	case "KATE", "SOCIAL":
		return r.HadSocial
	case "PLUS", "ABSTINENCE":
		return r.Abstinence != nil && *r.Abstinence == domain.AbstinencePlus
	default:
		return r.HasActivity(activity)
	}
}
