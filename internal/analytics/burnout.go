package analytics

import (
	"fmt"
	"math"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// RiskLevel buckets a burnout risk score.
type RiskLevel string

const (
	RiskUnknown  RiskLevel = "unknown"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// BurnoutRisk is the result of the burnout assessment: a capped 0-100
// score accumulated from independent additive factors, plus the
// human-readable reasons that triggered.
type BurnoutRisk struct {
	Level   RiskLevel
	Score   float64
	Factors []string
}

// AssessBurnout scores burnout risk over the most recent seven records.
// With fewer than three records it returns an unknown-level sentinel whose
// single factor explains the shortfall.
func AssessBurnout(records []domain.DailyRecord) BurnoutRisk {
	days := daily(records)
	if len(days) < burnoutMinRecords {
		return BurnoutRisk{
			Level:   RiskUnknown,
			Score:   0,
			Factors: []string{fmt.Sprintf("insufficient data: %d records, need at least %d", len(days), burnoutMinRecords)},
		}
	}

	window := lastN(days, burnoutWindow)
	var risk float64
	var factors []string

	// Factor 1: consecutive negative-abstinence days, most recent backward.
	negStreak := 0
	for i := len(window) - 1; i >= 0; i-- {
		if window[i].Abstinence != nil && window[i].Abstinence.IsNegative() {
			negStreak++
		} else {
			break
		}
	}
	switch {
	case negStreak >= negativeStreakLong:
		risk += negativeStreakLongPts
		factors = append(factors, fmt.Sprintf("%d negative abstinence days in a row", negStreak))
	case negStreak >= negativeStreakShort:
		risk += negativeStreakShortPts
		factors = append(factors, fmt.Sprintf("%d negative abstinence days in a row", negStreak))
	}

	// Factor 2: short average sleep.
	if sleep := sleepHours(window); len(sleep) > 0 {
		avg := mean(sleep)
		switch {
		case avg < shortSleepBelow:
			risk += shortSleepPts
			factors = append(factors, fmt.Sprintf("average sleep %.1fh (<%.0fh)", avg, shortSleepBelow))
		case avg < mildSleepBelow:
			risk += mildSleepPts
			factors = append(factors, fmt.Sprintf("average sleep %.1fh (<%.0fh)", avg, mildSleepBelow))
		}
	}

	// Factor 3: low average rating, only when enough ratings exist.
	if ratings := ratingScores(window); len(ratings) >= lowRatingMinSamples {
		if avg := mean(ratings); avg < lowRatingBelow {
			risk += lowRatingPts
			factors = append(factors, fmt.Sprintf("average rating %.1f/6 (below normal)", avg))
		}
	}

	// Factor 4: sustained overwork.
	hours := make([]float64, len(window))
	for i, r := range window {
		hours[i] = r.TotalHours
	}
	if avg := mean(hours); avg > overworkAbove {
		risk += overworkPts
		factors = append(factors, fmt.Sprintf("overwork: %.1fh/day", avg))
	}

	// Factor 5: most of the week without exercise.
	noExercise := 0
	for _, r := range window {
		if !r.HadExercise {
			noExercise++
		}
	}
	if noExercise >= noExerciseDays {
		risk += noExercisePts
		factors = append(factors, fmt.Sprintf("%d/%d days without exercise", noExercise, len(window)))
	}

	// Factor 6: low activity volume.
	counts := make([]float64, len(window))
	for i, r := range window {
		counts[i] = float64(r.TaskCount)
	}
	if avg := mean(counts); avg < lowActivityBelow {
		risk += lowActivityPts
		factors = append(factors, fmt.Sprintf("low activity: %.1f entries/day", avg))
	}

	risk = math.Min(risk, 100)
	if len(factors) == 0 {
		factors = []string{"no critical factors"}
	}

	return BurnoutRisk{Level: levelFor(risk), Score: risk, Factors: factors}
}

func levelFor(risk float64) RiskLevel {
	switch {
	case risk >= riskCriticalFrom:
		return RiskCritical
	case risk >= riskHighFrom:
		return RiskHigh
	case risk >= riskMediumFrom:
		return RiskMedium
	default:
		return RiskLow
	}
}
