package analytics

import (
	"sort"
	"time"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// DaySummary is a ranked view of a single day.
type DaySummary struct {
	Date       time.Time
	Score      float64
	Rating     *domain.DayRating
	TotalHours float64
	Activities []string
}

// ActivityCount is one entry of the month's activity frequency breakdown.
type ActivityCount struct {
	Activity string
	Days     int
}

// MonthAnalysis summarizes one calendar month of records.
type MonthAnalysis struct {
	Label             string
	TotalDays         int
	AvgRatingScore    float64
	AvgHours          float64
	AvgSleepHours     *float64 // nil when no record carries sleep data
	TotalTasks        int
	ExerciseRate      float64
	StudyRate         float64
	FocusedWorkRate   float64
	SocialRate        float64
	BestDay           *DaySummary
	WorstDay          *DaySummary
	ActivityBreakdown []ActivityCount
}

// AnalyzeMonth computes the monthly summary. Empty input yields zero
// values rather than an error.
func AnalyzeMonth(records []domain.DailyRecord, label string) MonthAnalysis {
	days := daily(records)
	analysis := MonthAnalysis{Label: label, TotalDays: len(days)}
	if len(days) == 0 {
		return analysis
	}

	if ratings := ratingScores(days); len(ratings) > 0 {
		analysis.AvgRatingScore = round2(mean(ratings))
	}

	hours := make([]float64, len(days))
	for i, r := range days {
		hours[i] = r.TotalHours
		analysis.TotalTasks += r.TaskCount
	}
	analysis.AvgHours = round1(mean(hours))

	if sleep := sleepHours(days); len(sleep) > 0 {
		avg := round1(mean(sleep))
		analysis.AvgSleepHours = &avg
	}

	analysis.ExerciseRate = round2(rate(days, func(r domain.DailyRecord) bool { return r.HadExercise }))
	analysis.StudyRate = round2(rate(days, func(r domain.DailyRecord) bool { return r.HadStudy }))
	analysis.FocusedWorkRate = round2(rate(days, func(r domain.DailyRecord) bool { return r.HadFocusedWork }))
	analysis.SocialRate = round2(rate(days, func(r domain.DailyRecord) bool { return r.HadSocial }))

	best, worst := days[0], days[0]
	bestScore, worstScore := Score(days[0]), Score(days[0])
	for _, r := range days[1:] {
		s := Score(r)
		// Strict comparisons keep the earliest date on ties.
		if s > bestScore {
			best, bestScore = r, s
		}
		if s < worstScore {
			worst, worstScore = r, s
		}
	}
	analysis.BestDay = summarize(best, bestScore)
	analysis.WorstDay = summarize(worst, worstScore)

	analysis.ActivityBreakdown = activityBreakdown(days, activityBreakdownTopN)

	return analysis
}

// BestDays returns the top n days ranked by productivity score.
func BestDays(records []domain.DailyRecord, n int) []DaySummary {
	days := daily(records)

	summaries := make([]DaySummary, 0, len(days))
	for _, r := range days {
		summaries = append(summaries, *summarize(r, Score(r)))
	}
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Score > summaries[j].Score })

	if len(summaries) > n {
		summaries = summaries[:n]
	}
	return summaries
}

func summarize(r domain.DailyRecord, score float64) *DaySummary {
	return &DaySummary{
		Date:       r.Date,
		Score:      score,
		Rating:     r.Rating,
		TotalHours: r.TotalHours,
		Activities: r.Activities,
	}
}

// activityBreakdown counts, for each activity tag, the number of days it
// appears in, descending with alphabetical tie-break.
func activityBreakdown(days []domain.DailyRecord, topN int) []ActivityCount {
	counts := make(map[string]int)
	for _, r := range days {
		for _, a := range r.Activities {
			counts[a]++
		}
	}

	out := make([]ActivityCount, 0, len(counts))
	for a, n := range counts {
		out = append(out, ActivityCount{Activity: a, Days: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Days != out[j].Days {
			return out[i].Days > out[j].Days
		}
		return out[i].Activity < out[j].Activity
	})

	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
