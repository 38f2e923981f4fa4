package analytics

import "github.com/ivkhv/daybook/internal/journal/domain"

// MetricDelta is one headline metric measured over two record sets. Delta
// and direction are derived, not stored.
type MetricDelta struct {
	Name   string
	ValueA float64
	ValueB float64
}

// Delta returns ValueB - ValueA.
func (m MetricDelta) Delta() float64 {
	return round2(m.ValueB - m.ValueA)
}

// Direction returns "up", "down" or "flat" for the delta.
func (m MetricDelta) Direction() Trend {
	switch {
	case m.ValueB > m.ValueA:
		return TrendUp
	case m.ValueB < m.ValueA:
		return TrendDown
	default:
		return TrendFlat
	}
}

// MonthComparison packages the headline metrics of two periods.
type MonthComparison struct {
	PeriodA string
	PeriodB string
	Deltas  []MetricDelta
}

// CompareMonths computes the six headline metrics for two disjoint record
// sets.
func CompareMonths(recordsA, recordsB []domain.DailyRecord, labelA, labelB string) MonthComparison {
	daysA := daily(recordsA)
	daysB := daily(recordsB)

	metric := func(name string, f func([]domain.DailyRecord) float64) MetricDelta {
		return MetricDelta{Name: name, ValueA: f(daysA), ValueB: f(daysB)}
	}

	avgRating := func(ds []domain.DailyRecord) float64 {
		if ratings := ratingScores(ds); len(ratings) > 0 {
			return round2(mean(ratings))
		}
		return 0
	}
	avgHours := func(ds []domain.DailyRecord) float64 {
		if len(ds) == 0 {
			return 0
		}
		hours := make([]float64, len(ds))
		for i, r := range ds {
			hours[i] = r.TotalHours
		}
		return round1(mean(hours))
	}
	avgSleep := func(ds []domain.DailyRecord) float64 {
		if sleep := sleepHours(ds); len(sleep) > 0 {
			return round1(mean(sleep))
		}
		return 0
	}
	exerciseRate := func(ds []domain.DailyRecord) float64 {
		return round2(rate(ds, func(r domain.DailyRecord) bool { return r.HadExercise }))
	}
	productiveRate := func(ds []domain.DailyRecord) float64 {
		return round2(rate(ds, func(r domain.DailyRecord) bool { return Score(r) >= productiveDayScore }))
	}
	plusRate := func(ds []domain.DailyRecord) float64 {
		return round2(rate(ds, func(r domain.DailyRecord) bool {
			return r.Abstinence != nil && *r.Abstinence == domain.AbstinencePlus
		}))
	}

	return MonthComparison{
		PeriodA: labelA,
		PeriodB: labelB,
		Deltas: []MetricDelta{
			metric("avg rating", avgRating),
			metric("avg hours", avgHours),
			metric("avg sleep", avgSleep),
			metric("exercise rate", exerciseRate),
			metric("productive day rate", productiveRate),
			metric("abstinence plus rate", plusRate),
		},
	}
}
