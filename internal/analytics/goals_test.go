package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goals "github.com/ivkhv/daybook/internal/goals/domain"
	"github.com/ivkhv/daybook/internal/journal/domain"
)

func weeklyGoal(activity string, target int) goals.Goal {
	return goals.Goal{TargetActivity: activity, TargetCount: target, Period: goals.PeriodWeek}
}

func TestComputeGoalProgress(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 7; d++ {
		r := rec(d)
		r.HadExercise = d%2 == 1 // days 1, 3, 5, 7
		records = append(records, r)
	}

	progress := ComputeGoalProgress([]goals.Goal{weeklyGoal("GYM", 3)}, records)

	require.Len(t, progress, 1)
	p := progress[0]
	assert.Equal(t, 4, p.Current)
	assert.Equal(t, 3, p.Target)
	assert.True(t, p.IsComplete)
	assert.InDelta(t, 100, p.Percentage, 0.001, "percentage is capped")
}

func TestComputeGoalProgress_WindowAnchoredAtLastRecord(t *testing.T) {
	// Exercise happened on day 1 only; the most recent record is day 10,
	// so the 7-day window [4..10] misses it.
	var records []domain.DailyRecord
	r1 := rec(1)
	r1.HadExercise = true
	records = append(records, r1, rec(9), rec(10))

	progress := ComputeGoalProgress([]goals.Goal{weeklyGoal("GYM", 2)}, records)

	require.Len(t, progress, 1)
	assert.Equal(t, 0, progress[0].Current)
	assert.False(t, progress[0].IsComplete)
	assert.Zero(t, progress[0].Percentage)
}

func TestComputeGoalProgress_MonthlyWindow(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 30; d++ {
		r := rec(d)
		r.HadStudy = d <= 10
		records = append(records, r)
	}
	goal := goals.Goal{TargetActivity: "STUDY", TargetCount: 20, Period: goals.PeriodMonth}

	progress := ComputeGoalProgress([]goals.Goal{goal}, records)

	require.Len(t, progress, 1)
	assert.Equal(t, 10, progress[0].Current)
	assert.InDelta(t, 50, progress[0].Percentage, 0.001)
	assert.False(t, progress[0].IsComplete)
}

func TestComputeGoalProgress_AbstinenceGoal(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 7; d++ {
		status := domain.AbstinencePlus
		if d == 4 {
			status = domain.AbstinenceMinus
		}
		records = append(records, rec(d, withAbstinence(status)))
	}

	progress := ComputeGoalProgress([]goals.Goal{weeklyGoal("PLUS", 7)}, records)

	require.Len(t, progress, 1)
	assert.Equal(t, 6, progress[0].Current)
	assert.False(t, progress[0].IsComplete)
}

func TestComputeGoalProgress_LiteralTagFallback(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 3; d++ {
		r := rec(d)
		r.Activities = []string{"GUITAR"}
		records = append(records, r)
	}

	progress := ComputeGoalProgress([]goals.Goal{weeklyGoal("GUITAR", 3)}, records)

	require.Len(t, progress, 1)
	assert.Equal(t, 3, progress[0].Current)
	assert.True(t, progress[0].IsComplete)
}

func TestComputeGoalProgress_NoRecords(t *testing.T) {
	progress := ComputeGoalProgress([]goals.Goal{weeklyGoal("GYM", 3)}, nil)

	require.Len(t, progress, 1)
	assert.Zero(t, progress[0].Current)
	assert.Equal(t, 3, progress[0].Target)
	assert.Zero(t, progress[0].Percentage)
	assert.False(t, progress[0].IsComplete)
}

func TestComputeGoalProgress_PercentageBounds(t *testing.T) {
	var records []domain.DailyRecord
	for d := 1; d <= 7; d++ {
		r := rec(d)
		r.HadExercise = true
		records = append(records, r)
	}

	targets := []int{1, 2, 5, 7, 20}
	for _, target := range targets {
		progress := ComputeGoalProgress([]goals.Goal{weeklyGoal("GYM", target)}, records)
		require.Len(t, progress, 1)
		assert.GreaterOrEqual(t, progress[0].Percentage, 0.0, "target %d", target)
		assert.LessOrEqual(t, progress[0].Percentage, 100.0, "target %d", target)
	}
}
