package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

func TestComputeLifeScore_Dimensions(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 14; d++ {
		r := rec(d, withRating(domain.RatingVeryGood), withSleep(7.5), withAbstinence(domain.AbstinencePlus))
		r.TotalHours = 8
		r.TaskCount = 5
		r.HadExercise = true
		r.HadSocial = true
		records = append(records, r)
	}

	score := ComputeLifeScore(records)

	require.Len(t, score.Dimensions, 6)
	byName := map[string]LifeDimension{}
	for _, d := range score.Dimensions {
		byName[d.Name] = d
	}

	// Sleep exactly at the 7.5h ideal scores 100.
	assert.InDelta(t, 100, byName["sleep"].Score, 0.001)
	// Exercise every day.
	assert.InDelta(t, 100, byName["physical"].Score, 0.001)
	// Abstinence plus every day.
	assert.InDelta(t, 100, byName["abstinence"].Score, 0.001)
	// Rating 5/6.
	assert.InDelta(t, 83.3, byName["mood"].Score, 0.1)
	// Social: 100% social-day rate blended with 5/6 mean rating.
	assert.InDelta(t, 0.5*100+0.5*83.33, byName["social"].Score, 0.1)

	assert.Greater(t, score.Total, 0.0)
	assert.LessOrEqual(t, score.Total, 100.0)
	assert.Zero(t, score.TrendDelta, "no prior window")
	for _, d := range score.Dimensions {
		assert.Equal(t, TrendFlat, d.Trend)
	}
}

func TestComputeLifeScore_TrendAgainstPriorWindow(t *testing.T) {
	var records []domain.DailyRecord
	// Prior window: weak days.
	for d := 1; d <= 14; d++ {
		r := rec(d, withRating(domain.RatingBad), withSleep(5))
		r.TaskCount = 1
		records = append(records, r)
	}
	// Recent window: strong days.
	for d := 15; d <= 28; d++ {
		r := rec(d, withRating(domain.RatingVeryGood), withSleep(7.5), withAbstinence(domain.AbstinencePlus))
		r.TotalHours = 8
		r.TaskCount = 5
		r.HadExercise = true
		records = append(records, r)
	}

	score := ComputeLifeScore(records)

	assert.Positive(t, score.TrendDelta)
	byName := map[string]LifeDimension{}
	for _, d := range score.Dimensions {
		byName[d.Name] = d
	}
	assert.Equal(t, TrendUp, byName["mood"].Trend)
	assert.Equal(t, TrendUp, byName["sleep"].Trend)
	assert.Equal(t, TrendUp, byName["physical"].Trend)
}

func TestComputeLifeScore_NeutralDefaults(t *testing.T) {
	// Records without ratings or sleep fall back to neutral values.
	records := []domain.DailyRecord{rec(1), rec(2), rec(3)}

	score := ComputeLifeScore(records)

	byName := map[string]LifeDimension{}
	for _, d := range score.Dimensions {
		byName[d.Name] = d
	}
	assert.InDelta(t, moodNeutral, byName["mood"].Score, 0.001)
	assert.Zero(t, byName["sleep"].Score, "no sleep data floors the dimension")
	assert.InDelta(t, 0.5*socialNeutralRating, byName["social"].Score, 0.001)
}

func TestComputeLifeScore_Empty(t *testing.T) {
	score := ComputeLifeScore(nil)

	assert.Zero(t, score.Total)
	assert.Zero(t, score.TrendDelta)
	require.Len(t, score.Dimensions, 6)
}
