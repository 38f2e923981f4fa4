// Package journal assembles daily records from the external data source,
// with an optional pass-through cache in front.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ivkhv/daybook/internal/journal/aggregation"
	"github.com/ivkhv/daybook/internal/journal/cache"
	"github.com/ivkhv/daybook/internal/journal/domain"
	"github.com/ivkhv/daybook/internal/journal/parsing"
	"github.com/ivkhv/daybook/pkg/observability"
)

const (
	defaultWindowDays = 90
	syncWindowDays    = 365
)

// Source fetches raw task rows for a date window.
type Source interface {
	FetchRows(ctx context.Context, start, end time.Time) ([]domain.TaskRow, error)
}

// Service fetches, aggregates, and caches daily records. Results are
// identical whether or not a cache store is configured.
type Service struct {
	source     Source
	store      cache.Store
	logger     *slog.Logger
	now        func() time.Time
	windowDays int
}

// NewService creates a journal service. The store may be nil, which
// disables caching.
func NewService(source Source, store cache.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:     source,
		store:      store,
		logger:     logger,
		now:        time.Now,
		windowDays: defaultWindowDays,
	}
}

// SetDefaultWindow overrides the fallback window used by Recent.
// Non-positive values are ignored.
func (s *Service) SetDefaultWindow(days int) {
	if days > 0 {
		s.windowDays = days
	}
}

// Records returns one DailyRecord per distinct date in [start, end],
// sorted ascending. forceRefresh bypasses the cache.
func (s *Service) Records(ctx context.Context, start, end time.Time, forceRefresh bool) ([]domain.DailyRecord, error) {
	key := cache.RangeKey(start, end)

	if s.store != nil && !forceRefresh {
		records, hit, err := s.store.Get(ctx, key)
		if err != nil {
			s.logger.Warn("cache get failed, falling through to source", "key", key, "error", err)
		} else if hit {
			s.logger.Debug("serving records from cache", "key", key, "count", len(records))
			return records, nil
		}
	}

	rows, err := s.source.FetchRows(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch rows: %w", err)
	}
	records := aggregation.BuildRecords(rows)

	if s.store != nil {
		if err := s.store.Put(ctx, key, records); err != nil {
			s.logger.Warn("cache put failed", "key", key, "error", err)
		}
	}
	return records, nil
}

// RecordsForMonth returns the records for one calendar month.
func (s *Service) RecordsForMonth(ctx context.Context, month parsing.Month, forceRefresh bool) ([]domain.DailyRecord, error) {
	start, end := month.Range()
	return s.Records(ctx, start, end, forceRefresh)
}

// Recent returns records for the last n days, anchored at today. A
// non-positive n falls back to the default window.
func (s *Service) Recent(ctx context.Context, days int, forceRefresh bool) ([]domain.DailyRecord, error) {
	if days <= 0 {
		days = s.windowDays
	}
	end := s.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)
	return s.Records(ctx, start, end, forceRefresh)
}

// Sync force-refreshes a full year of records and returns how many days
// were rebuilt.
func (s *Service) Sync(ctx context.Context) (int, error) {
	logger := observability.LogOperation(s.logger, "journal.sync")
	end := s.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -syncWindowDays)
	records, err := s.Records(ctx, start, end, true)
	if err != nil {
		return 0, err
	}
	logger.Info("sync complete", "days", len(records))
	return len(records), nil
}
