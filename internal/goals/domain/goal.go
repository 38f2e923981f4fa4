package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Period is the rolling window a goal is evaluated over.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// IsValid returns true for a known period.
func (p Period) IsValid() bool {
	return p == PeriodWeek || p == PeriodMonth
}

// Goal is a user-defined activity target, e.g. "GYM 4 times per week".
// Immutable after creation except via explicit replace.
type Goal struct {
	ID             uuid.UUID
	OwnerID        string
	TargetActivity string
	TargetCount    int
	Period         Period
	CreatedAt      time.Time
}

var (
	ErrInvalidTarget   = errors.New("target count must be positive")
	ErrInvalidPeriod   = errors.New("period must be week or month")
	ErrMissingActivity = errors.New("target activity is required")
	ErrMissingOwner    = errors.New("owner id is required")
)

// NewGoal creates a validated goal. The activity is stored upper-cased to
// match the aggregator's tag normalization.
func NewGoal(ownerID, activity string, targetCount int, period Period) (*Goal, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	activity = strings.ToUpper(strings.TrimSpace(activity))
	if activity == "" {
		return nil, ErrMissingActivity
	}
	if targetCount <= 0 {
		return nil, ErrInvalidTarget
	}
	if !period.IsValid() {
		return nil, ErrInvalidPeriod
	}

	return &Goal{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		TargetActivity: activity,
		TargetCount:    targetCount,
		Period:         period,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
