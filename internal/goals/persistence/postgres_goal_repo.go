package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ivkhv/daybook/internal/goals/domain"
)

// PostgresGoalRepository implements domain.Repository using Postgres via
// the pgx stdlib driver.
type PostgresGoalRepository struct {
	db *sql.DB
}

// NewPostgresGoalRepository creates a Postgres goal repository.
func NewPostgresGoalRepository(db *sql.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

// Upsert inserts the goal, replacing any existing goal for the same owner
// and activity.
func (r *PostgresGoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	const query = `
INSERT INTO goals (id, owner_id, target_activity, target_count, period, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
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
func (r *PostgresGoalRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Goal, error) {
	const query = `
SELECT id, owner_id, target_activity, target_count, period, created_at
FROM goals
WHERE owner_id = $1
ORDER BY created_at, target_activity`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	return scanGoals(rows)
}

// Delete removes a goal by id, reporting whether a row existed.
func (r *PostgresGoalRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id.String())
	if err != nil {
		return false, fmt.Errorf("delete goal: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete goal: %w", err)
	}
	return n > 0, nil
}
