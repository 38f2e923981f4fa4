package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivkhv/daybook/internal/goals/domain"
	"github.com/ivkhv/daybook/internal/storage"
)

func newTestRepo(t *testing.T) *SQLiteGoalRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.Migrate(context.Background(), db, storage.DriverSQLite))
	return NewSQLiteGoalRepository(db)
}

func newGoal(t *testing.T, owner, activity string, count int, period domain.Period) *domain.Goal {
	t.Helper()
	goal, err := domain.NewGoal(owner, activity, count, period)
	require.NoError(t, err)
	return goal
}

func TestSQLiteGoalRepository_UpsertAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	goal := newGoal(t, "owner-1", "gym", 4, domain.PeriodWeek)

	require.NoError(t, repo.Upsert(ctx, goal))

	goals, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, goal.ID, goals[0].ID)
	assert.Equal(t, "GYM", goals[0].TargetActivity)
	assert.Equal(t, 4, goals[0].TargetCount)
	assert.Equal(t, domain.PeriodWeek, goals[0].Period)
	assert.WithinDuration(t, goal.CreatedAt, goals[0].CreatedAt, time.Second)
}

func TestSQLiteGoalRepository_UpsertReplacesSameOwnerActivity(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := newGoal(t, "owner-1", "GYM", 3, domain.PeriodWeek)
	require.NoError(t, repo.Upsert(ctx, first))

	second := newGoal(t, "owner-1", "GYM", 5, domain.PeriodMonth)
	require.NoError(t, repo.Upsert(ctx, second))

	goals, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, second.ID, goals[0].ID)
	assert.Equal(t, 5, goals[0].TargetCount)
	assert.Equal(t, domain.PeriodMonth, goals[0].Period)
}

func TestSQLiteGoalRepository_ListScopedToOwner(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newGoal(t, "owner-1", "GYM", 3, domain.PeriodWeek)))
	require.NoError(t, repo.Upsert(ctx, newGoal(t, "owner-2", "CODING", 5, domain.PeriodWeek)))

	goals, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "GYM", goals[0].TargetActivity)

	empty, err := repo.ListByOwner(ctx, "owner-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSQLiteGoalRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	goal := newGoal(t, "owner-1", "GYM", 3, domain.PeriodWeek)
	require.NoError(t, repo.Upsert(ctx, goal))

	deleted, err := repo.Delete(ctx, goal.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	goals, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, goals)

	deleted, err = repo.Delete(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}
