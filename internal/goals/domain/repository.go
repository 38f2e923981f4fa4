package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the goal store contract. Upsert replaces an existing goal
// for the same owner and activity, so re-setting a goal never duplicates it.
type Repository interface {
	Upsert(ctx context.Context, goal *Goal) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Goal, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
