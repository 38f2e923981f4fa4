package analytics

import (
	"math"
	"sort"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// daily returns records with period summaries removed, sorted ascending by
// date. Input is never mutated.
func daily(records []domain.DailyRecord) []domain.DailyRecord {
	out := make([]domain.DailyRecord, 0, len(records))
	for _, r := range records {
		if !r.IsPeriodSummary {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// lastN returns up to n records from the end of an ascending-sorted slice,
// still in ascending order.
func lastN(records []domain.DailyRecord, n int) []domain.DailyRecord {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stddev is the sample standard deviation.
func stddev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ratingScores(records []domain.DailyRecord) []float64 {
	var out []float64
	for _, r := range records {
		if r.Rating != nil {
			out = append(out, float64(r.Rating.Score()))
		}
	}
	return out
}

func sleepHours(records []domain.DailyRecord) []float64 {
	var out []float64
	for _, r := range records {
		if r.Sleep.Hours != nil {
			out = append(out, *r.Sleep.Hours)
		}
	}
	return out
}

func rate(records []domain.DailyRecord, pred func(domain.DailyRecord) bool) float64 {
	if len(records) == 0 {
		return 0
	}
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return float64(n) / float64(len(records))
}
