package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

func TestAnalyzeMonth(t *testing.T) {
	good := rec(1, withRating(domain.RatingVeryGood), withSleep(8))
	good.TotalHours = 8
	good.TaskCount = 5
	good.TasksDone = 4
	good.HadExercise = true
	good.HadFocusedWork = true
	good.Activities = []string{"CODING", "GYM"}

	bad := rec(2, withRating(domain.RatingBad), withSleep(5))
	bad.TotalHours = 2
	bad.TaskCount = 1
	bad.Activities = []string{"CODING"}

	plain := rec(3)
	plain.TotalHours = 4
	plain.TaskCount = 2

	analysis := AnalyzeMonth([]domain.DailyRecord{good, bad, plain}, "2025-04")

	assert.Equal(t, "2025-04", analysis.Label)
	assert.Equal(t, 3, analysis.TotalDays)
	assert.InDelta(t, 3.5, analysis.AvgRatingScore, 0.001) // (5+2)/2
	assert.InDelta(t, 4.7, analysis.AvgHours, 0.001)       // (8+2+4)/3 rounded
	require.NotNil(t, analysis.AvgSleepHours)
	assert.InDelta(t, 6.5, *analysis.AvgSleepHours, 0.001) // only days with sleep data
	assert.Equal(t, 8, analysis.TotalTasks)
	assert.InDelta(t, 1.0/3, analysis.ExerciseRate, 0.01)
	assert.InDelta(t, 2.0/3, analysis.FocusedWorkRate, 0.01)

	require.NotNil(t, analysis.BestDay)
	assert.Equal(t, day(1), analysis.BestDay.Date)
	require.NotNil(t, analysis.WorstDay)
	assert.Equal(t, day(2), analysis.WorstDay.Date)

	require.NotEmpty(t, analysis.ActivityBreakdown)
	assert.Equal(t, "CODING", analysis.ActivityBreakdown[0].Activity)
	assert.Equal(t, 2, analysis.ActivityBreakdown[0].Days)
}

func TestAnalyzeMonth_Empty(t *testing.T) {
	analysis := AnalyzeMonth(nil, "2025-01")

	assert.Equal(t, 0, analysis.TotalDays)
	assert.Zero(t, analysis.AvgRatingScore)
	assert.Nil(t, analysis.AvgSleepHours)
	assert.Nil(t, analysis.BestDay)
	assert.Nil(t, analysis.WorstDay)
	assert.Empty(t, analysis.ActivityBreakdown)
}

func TestAnalyzeMonth_TiesBreakToEarliestDate(t *testing.T) {
	a := rec(1, withRating(domain.RatingGood))
	b := rec(2, withRating(domain.RatingGood))

	analysis := AnalyzeMonth([]domain.DailyRecord{b, a}, "2025-04")

	assert.Equal(t, day(1), analysis.BestDay.Date)
	assert.Equal(t, day(1), analysis.WorstDay.Date)
}

func TestBestDays(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 5; d++ {
		r := rec(d)
		r.TotalHours = float64(d) * 2
		r.TaskCount = d
		records = append(records, r)
	}

	best := BestDays(records, 3)

	require.Len(t, best, 3)
	assert.Equal(t, day(5), best[0].Date)
	assert.Equal(t, day(4), best[1].Date)
	assert.Equal(t, day(3), best[2].Date)
	assert.GreaterOrEqual(t, best[0].Score, best[1].Score)
}

func TestBestDays_FewerRecordsThanRequested(t *testing.T) {
	best := BestDays([]domain.DailyRecord{rec(1)}, 3)
	assert.Len(t, best, 1)
}
