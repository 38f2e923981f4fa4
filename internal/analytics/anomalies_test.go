package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

func TestDetectAnomalies(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 9; d++ {
		records = append(records, rec(d)) // identical neutral days
	}
	spike := rec(10, withRating(domain.RatingPerfect), withSleep(8))
	spike.TotalHours = 10
	spike.TaskCount = 6
	spike.HadExercise = true
	spike.HadStudy = true
	spike.HadFocusedWork = true
	spike.Activities = []string{"GYM", "CODING"}
	records = append(records, spike)

	anomalies := DetectAnomalies(records)

	require.Len(t, anomalies, 1)
	a := anomalies[0]
	assert.Equal(t, day(10), a.Date)
	assert.Equal(t, DirectionHigh, a.Direction)
	assert.Greater(t, a.Score, a.BaselineAvg)
	assert.Equal(t, []string{"GYM", "CODING"}, a.Activities)
}

func TestDetectAnomalies_LowDirection(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 9; d++ {
		r := rec(d, withRating(domain.RatingGood), withSleep(8))
		r.TotalHours = 8
		r.TaskCount = 4
		records = append(records, r)
	}
	crash := rec(10, withRating(domain.RatingVeryBad), withSleep(3))
	records = append(records, crash)

	anomalies := DetectAnomalies(records)

	require.Len(t, anomalies, 1)
	assert.Equal(t, DirectionLow, anomalies[0].Direction)
	assert.Less(t, anomalies[0].Score, anomalies[0].BaselineAvg)
}

func TestDetectAnomalies_TooFewRecords(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 6; d++ {
		records = append(records, rec(d))
	}
	assert.Nil(t, DetectAnomalies(records))
}

func TestDetectAnomalies_NoVariance(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 10; d++ {
		records = append(records, rec(d))
	}
	assert.Nil(t, DetectAnomalies(records))
}

func TestDetectAnomalies_SortedByDeviation(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 10; d++ {
		r := rec(d, withRating(domain.RatingNormal), withSleep(7))
		r.TotalHours = 5
		r.TaskCount = 3
		records = append(records, r)
	}
	// Mild and extreme outliers on the low side.
	records[8] = rec(9, withRating(domain.RatingBad), withSleep(4))
	records[9] = rec(10, withRating(domain.RatingVeryBad), withSleep(3))

	anomalies := DetectAnomalies(records)

	if len(anomalies) > 1 {
		for i := 1; i < len(anomalies); i++ {
			prev := anomalies[i-1]
			cur := anomalies[i]
			assert.GreaterOrEqual(t,
				math.Abs(prev.Score-prev.BaselineAvg), math.Abs(cur.Score-cur.BaselineAvg))
		}
	}
}
