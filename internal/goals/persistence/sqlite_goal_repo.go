// Package persistence implements the goal repository on SQLite and
// Postgres.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ivkhv/daybook/internal/goals/domain"
)

// SQLiteGoalRepository implements domain.Repository using SQLite.
type SQLiteGoalRepository struct {
	db *sql.DB
}

// NewSQLiteGoalRepository creates a SQLite goal repository.
func NewSQLiteGoalRepository(db *sql.DB) *SQLiteGoalRepository {
	return &SQLiteGoalRepository{db: db}
}

// Upsert inserts the goal, replacing any existing goal for the same owner
// and activity.
func (r *SQLiteGoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	const query = `
INSERT INTO goals (id, owner_id, target_activity, target_count, period, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (owner_id, target_activity) DO UPDATE SET
    id = excluded.id,
    target_count = excluded.target_count,
    period = excluded.period,
    created_at = excluded.created_at`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID.String(),
		goal.OwnerID,
		goal.TargetActivity,
		goal.TargetCount,
		string(goal.Period),
		goal.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert goal: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's goals ordered by creation time.
func (r *SQLiteGoalRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Goal, error) {
	const query = `
SELECT id, owner_id, target_activity, target_count, period, created_at
FROM goals
WHERE owner_id = ?
ORDER BY created_at, target_activity`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	return scanGoals(rows)
}

// Delete removes a goal by id, reporting whether a row existed.
func (r *SQLiteGoalRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("delete goal: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete goal: %w", err)
	}
	return n > 0, nil
}

// scanGoals converts result rows into goals; shared with the Postgres
// repository, which selects the same columns.
func scanGoals(rows *sql.Rows) ([]*domain.Goal, error) {
	var goals []*domain.Goal
	for rows.Next() {
		var (
			rawID, rawCreated string
			goal              domain.Goal
			period            string
		)
		if err := rows.Scan(&rawID, &goal.OwnerID, &goal.TargetActivity, &goal.TargetCount, &period, &rawCreated); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}

		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("parse goal id %q: %w", rawID, err)
		}
		createdAt, err := time.Parse(time.RFC3339, rawCreated)
		if err != nil {
			return nil, fmt.Errorf("parse goal created_at %q: %w", rawCreated, err)
		}

		goal.ID = id
		goal.Period = domain.Period(period)
		goal.CreatedAt = createdAt
		goals = append(goals, &goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}
