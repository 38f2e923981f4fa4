// Package cache provides a pass-through record cache keyed by date range.
// Analytics results are identical whether or not a cache is in front of
// the data source; the cache only saves round trips.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// Store caches daily records by date-range key. A miss is (nil, false,
// nil); errors are reserved for backend failures.
type Store interface {
	Get(ctx context.Context, key string) ([]domain.DailyRecord, bool, error)
	Put(ctx context.Context, key string, records []domain.DailyRecord) error
}

// RangeKey builds the canonical cache key for a fetch window.
func RangeKey(start, end time.Time) string {
	return fmt.Sprintf("records:%s:%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
