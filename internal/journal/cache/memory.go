package cache

import (
	"context"
	"sync"
	"time"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// MemoryStore is an in-process Store with TTL expiry. Used when no Redis
// is configured, and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	records   []domain.DailyRecord
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]domain.DailyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok || s.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	out := make([]domain.DailyRecord, len(entry.records))
	copy(out, entry.records)
	return out, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, records []domain.DailyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]domain.DailyRecord, len(records))
	copy(stored, records)
	s.entries[key] = memoryEntry{records: stored, expiresAt: s.now().Add(s.ttl)}
	return nil
}
