// Package analytics derives behavioral metrics from daily journal records.
// Every function here is pure and synchronous: no shared state, no I/O,
// safe to call concurrently on independent snapshots. Functions operating
// on record lists filter out period summaries first, and any function with
// a minimum-sample requirement returns an explicit degenerate result below
// that threshold rather than an error.
package analytics

import (
	"math"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// Score computes the composite 0-100 productivity figure for one day.
// Missing facts contribute their neutral constants so an incomplete entry
// is not punished as a bad one; severe sleep deprivation is the exception
// and zeroes the sleep component.
func Score(r domain.DailyRecord) float64 {
	rating := ratingNeutral
	if r.Rating != nil {
		rating = float64(r.Rating.Score()) / ratingScaleMax * ratingWeight
	}

	hours := math.Min(r.TotalHours/hoursTarget*hoursWeight, hoursWeight)

	sleep := sleepNeutral
	if r.Sleep.Hours != nil {
		if *r.Sleep.Hours >= sleepDeprivedBelow {
			sleep = math.Min(*r.Sleep.Hours/sleepTarget*sleepWeight, sleepWeight)
		} else {
			sleep = 0
		}
	}

	activity := math.Min(float64(r.TaskCount)/activityTarget*activityWeight, activityWeight)

	var bonus float64
	if r.HadExercise {
		bonus += flagBonus
	}
	if r.HadStudy {
		bonus += flagBonus
	}
	if r.HadFocusedWork {
		bonus += flagBonus
	}

	return round1(rating + hours + sleep + activity + bonus)
}
