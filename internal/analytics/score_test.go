package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func rec(d int, mutate ...func(*domain.DailyRecord)) domain.DailyRecord {
	r := domain.DailyRecord{Date: day(d)}
	for _, m := range mutate {
		m(&r)
	}
	return r
}

func withRating(rating domain.DayRating) func(*domain.DailyRecord) {
	return func(r *domain.DailyRecord) { r.Rating = &rating }
}

func withSleep(hours float64) func(*domain.DailyRecord) {
	return func(r *domain.DailyRecord) { r.Sleep.Hours = &hours }
}

func withAbstinence(s domain.AbstinenceStatus) func(*domain.DailyRecord) {
	return func(r *domain.DailyRecord) { r.Abstinence = &s }
}

func TestScore_FullDay(t *testing.T) {
	r := rec(1, withRating(domain.RatingPerfect), withSleep(8))
	r.TotalHours = 10
	r.TaskCount = 6
	r.HadExercise = true
	r.HadStudy = true
	r.HadFocusedWork = true

	score := Score(r)

	assert.GreaterOrEqual(t, score, 80.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestScore_BadDay(t *testing.T) {
	r := rec(1, withRating(domain.RatingVeryBad), withSleep(3))
	r.TotalHours = 0
	r.TaskCount = 1

	score := Score(r)

	assert.Less(t, score, 25.0)
	assert.GreaterOrEqual(t, score, 0.0)
}

func TestScore_NeutralDefaults(t *testing.T) {
	// No rating and no sleep data: neutral components, not zero.
	empty := rec(1)
	score := Score(empty)

	assert.InDelta(t, ratingNeutral+sleepNeutral, score, 0.001)
}

func TestScore_SleepDeprivationZeroesComponent(t *testing.T) {
	deprived := rec(1, withSleep(3.5))
	unknown := rec(1)

	// Known-but-deprived sleep scores below unknown sleep.
	assert.Less(t, Score(deprived), Score(unknown))
}

func TestScore_ComponentsAreCapped(t *testing.T) {
	r := rec(1, withRating(domain.RatingPerfect), withSleep(14))
	r.TotalHours = 24
	r.TaskCount = 40
	r.HadExercise = true
	r.HadStudy = true
	r.HadFocusedWork = true

	assert.LessOrEqual(t, Score(r), 100.0)
}

func TestScore_Deterministic(t *testing.T) {
	r := rec(1, withRating(domain.RatingGood), withSleep(7.25))
	r.TotalHours = 6.5
	r.TaskCount = 4

	assert.Equal(t, Score(r), Score(r))
}
