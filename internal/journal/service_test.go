package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivkhv/daybook/internal/journal/cache"
	"github.com/ivkhv/daybook/internal/journal/domain"
)

type fakeSource struct {
	rows      []domain.TaskRow
	err       error
	calls     int
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeSource) FetchRows(_ context.Context, start, end time.Time) ([]domain.TaskRow, error) {
	f.calls++
	f.lastStart, f.lastEnd = start, end
	return f.rows, f.err
}

func taskRow(id string, d int, title string) domain.TaskRow {
	return domain.TaskRow{
		ID:    id,
		Title: title,
		Date:  time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC),
	}
}

func window() (time.Time, time.Time) {
	return time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
}

func TestRecords_FetchesAndAggregates(t *testing.T) {
	source := &fakeSource{rows: []domain.TaskRow{
		taskRow("t1", 1, "Coding"),
		taskRow("t2", 1, "Gym"),
		taskRow("t3", 2, "University"),
	}}
	svc := NewService(source, nil, nil)

	start, end := window()
	records, err := svc.Records(context.Background(), start, end, false)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].TaskCount)
	assert.Equal(t, 1, records[1].TaskCount)
}

func TestRecords_SecondCallServedFromCache(t *testing.T) {
	source := &fakeSource{rows: []domain.TaskRow{taskRow("t1", 1, "Coding")}}
	svc := NewService(source, cache.NewMemoryStore(time.Minute), nil)
	start, end := window()

	first, err := svc.Records(context.Background(), start, end, false)
	require.NoError(t, err)
	second, err := svc.Records(context.Background(), start, end, false)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first, second, "cache must not change results")
}

func TestRecords_ForceRefreshBypassesCache(t *testing.T) {
	source := &fakeSource{rows: []domain.TaskRow{taskRow("t1", 1, "Coding")}}
	svc := NewService(source, cache.NewMemoryStore(time.Minute), nil)
	start, end := window()

	_, err := svc.Records(context.Background(), start, end, false)
	require.NoError(t, err)
	_, err = svc.Records(context.Background(), start, end, true)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
}

func TestRecords_SourceError(t *testing.T) {
	source := &fakeSource{err: errors.New("notion down")}
	svc := NewService(source, nil, nil)
	start, end := window()

	_, err := svc.Records(context.Background(), start, end, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "notion down")
}

func TestRecent_UsesDefaultWindow(t *testing.T) {
	source := &fakeSource{}
	svc := NewService(source, nil, nil)
	svc.now = func() time.Time { return time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC) }

	_, err := svc.Recent(context.Background(), 0, false)

	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 90*24*time.Hour, source.lastEnd.Sub(source.lastStart))
}

func TestSetDefaultWindow(t *testing.T) {
	source := &fakeSource{}
	svc := NewService(source, nil, nil)
	svc.now = func() time.Time { return time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC) }
	svc.SetDefaultWindow(30)

	_, err := svc.Recent(context.Background(), 0, false)

	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, source.lastEnd.Sub(source.lastStart))
}

func TestSync_ReturnsDayCount(t *testing.T) {
	source := &fakeSource{rows: []domain.TaskRow{
		taskRow("t1", 1, "Coding"),
		taskRow("t2", 2, "Gym"),
	}}
	svc := NewService(source, cache.NewMemoryStore(time.Minute), nil)
	svc.now = func() time.Time { return time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC) }

	n, err := svc.Sync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
