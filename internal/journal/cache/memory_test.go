package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	records := []domain.DailyRecord{{Date: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}}

	require.NoError(t, store.Put(ctx, "records:a:b", records))

	got, hit, err := store.Get(ctx, "records:a:b")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, records, got)
}

func TestMemoryStore_Miss(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	_, hit, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "k", []domain.DailyRecord{{}}))

	// Jump the clock past the TTL.
	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, hit, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "k", []domain.DailyRecord{{FreeText: "original"}}))

	got, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got[0].FreeText = "mutated"

	again, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].FreeText)
}

func TestRangeKey(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "records:2025-04-01:2025-04-30", RangeKey(start, end))
}
