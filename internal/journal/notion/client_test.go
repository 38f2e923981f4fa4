package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageJSON(id, date, title string) map[string]any {
	props := map[string]any{
		"Name": map[string]any{"title": []map[string]any{{"plain_text": title}}},
		"Done": map[string]any{"checkbox": true},
		"Hours": map[string]any{"number": 2.5},
		"Tags": map[string]any{"multi_select": []map[string]any{{"name": "GYM"}}},
		"Text": map[string]any{"rich_text": []map[string]any{{"plain_text": "Woke up at 9:00"}}},
	}
	if date != "" {
		props["Date"] = map[string]any{"date": map[string]any{"start": date}}
	}
	return map[string]any{"id": id, "properties": props}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		Token:      "secret",
		DatabaseID: "db-1",
		BaseURL:    srv.URL,
	}, nil)
}

func TestFetchRows_Paginates(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/db-1/query", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.Header.Get("Notion-Version"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		n := atomic.AddInt32(&calls, 1)
		var resp map[string]any
		switch n {
		case 1:
			assert.NotContains(t, body, "start_cursor")
			resp = map[string]any{
				"results":     []any{pageJSON("p1", "2025-04-01", "Coding")},
				"has_more":    true,
				"next_cursor": "cur-2",
			}
		default:
			assert.Equal(t, "cur-2", body["start_cursor"])
			resp = map[string]any{
				"results":  []any{pageJSON("p2", "2025-04-02", "Gym")},
				"has_more": false,
			}
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	rows, err := client.FetchRows(context.Background(), day(1), day(5))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	first := rows[0]
	assert.Equal(t, "p1", first.ID)
	assert.Equal(t, "Coding", first.Title)
	assert.Equal(t, day(1), first.Date)
	assert.True(t, first.Done)
	assert.Equal(t, 2.5, first.Hours)
	assert.Equal(t, []string{"GYM"}, first.Tags)
	assert.Equal(t, "Woke up at 9:00", first.BodyText)
}

func TestFetchRows_SkipsPagesWithoutDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"results": []any{
				pageJSON("p1", "", "No date"),
				pageJSON("p2", "2025-04-02", "Kept"),
			},
			"has_more": false,
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	rows, err := client.FetchRows(context.Background(), day(1), day(5))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "p2", rows[0].ID)
}

func TestFetchRows_RetriesOnServerError(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		resp := map[string]any{
			"results":  []any{pageJSON("p1", "2025-04-01", "Recovered")},
			"has_more": false,
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	rows, err := client.FetchRows(context.Background(), day(1), day(5))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchRows_ContextCancelledDuringBackoff(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchRows(ctx, day(1), day(5))

	require.Error(t, err)
}

func TestFetchRows_DateRangeInRequestFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		payload, err := json.Marshal(body.Filter)
		require.NoError(t, err)
		assert.Contains(t, string(payload), "2025-04-01")
		assert.Contains(t, string(payload), "2025-04-05")
		fmt.Fprint(w, `{"results":[],"has_more":false}`)
	})

	rows, err := client.FetchRows(context.Background(), day(1), day(5))

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func day(d int) time.Time {
	return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)
}
