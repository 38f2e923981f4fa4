package analytics

import (
	"fmt"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// CheckAlerts scans the record history for conditions worth flagging
// immediately: a long gap without exercise, two short nights in a row, a
// solo negative abstinence streak, or a bad most-recent rating. Returns
// human-readable alert lines, empty when nothing triggered.
func CheckAlerts(records []domain.DailyRecord) []string {
	days := daily(records)
	if len(days) == 0 {
		return nil
	}

	var alerts []string

	noExercise := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].HadExercise {
			break
		}
		noExercise++
	}
	if noExercise >= alertNoExerciseDays {
		alerts = append(alerts, fmt.Sprintf("%d days without exercise", noExercise))
	}

	for i := len(days) - 1; i > 0; i-- {
		a, b := days[i], days[i-1]
		if a.Sleep.Hours != nil && b.Sleep.Hours != nil &&
			*a.Sleep.Hours < alertShortSleepBelow && *b.Sleep.Hours < alertShortSleepBelow {
			alerts = append(alerts, "sleep under 6h two days in a row")
			break
		}
	}

	// Solo minus only; the partner variant does not count here.
	minusStreak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Abstinence != nil && *days[i].Abstinence == domain.AbstinenceMinus {
			minusStreak++
		} else {
			break
		}
	}
	if minusStreak >= alertNegativeStreak {
		alerts = append(alerts, fmt.Sprintf("negative abstinence %d days in a row", minusStreak))
	}

	last := days[len(days)-1]
	if last.Rating != nil && (*last.Rating == domain.RatingBad || *last.Rating == domain.RatingVeryBad) {
		alerts = append(alerts, fmt.Sprintf("most recent day rated %s", *last.Rating))
	}

	return alerts
}
