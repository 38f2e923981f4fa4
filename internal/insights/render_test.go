package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

func record(d int) domain.DailyRecord {
	return domain.DailyRecord{Date: time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)}
}

func TestRenderWindow(t *testing.T) {
	rating := domain.RatingGood
	abstinence := domain.AbstinencePlus
	hours := 7.5

	r := record(1)
	r.Rating = &rating
	r.Abstinence = &abstinence
	r.Sleep.Hours = &hours
	r.TotalHours = 8
	r.TaskCount = 5
	r.Activities = []string{"CODING", "GYM"}
	r.FreeText = "Solid day, shipped the parser."

	out := RenderWindow([]domain.DailyRecord{r})

	assert.Contains(t, out, "2025-04-01: rating=good")
	assert.Contains(t, out, "sleep=7.5h")
	assert.Contains(t, out, "abstinence=PLUS")
	assert.Contains(t, out, "activities=[CODING, GYM]")
	assert.Contains(t, out, "journal: Solid day, shipped the parser.")
}

func TestRenderWindow_MissingFieldsShowNA(t *testing.T) {
	out := RenderWindow([]domain.DailyRecord{record(1)})

	assert.Contains(t, out, "rating=N/A")
	assert.Contains(t, out, "sleep=N/A")
	assert.Contains(t, out, "abstinence=N/A")
	assert.Contains(t, out, "activities=[none]")
	assert.NotContains(t, out, "journal:")
}

func TestRenderWindow_TruncatesJournal(t *testing.T) {
	r := record(1)
	r.FreeText = strings.Repeat("x", 500)

	out := RenderWindow([]domain.DailyRecord{r})

	require.Contains(t, out, "journal:")
	snippet := out[strings.Index(out, "journal: ")+len("journal: "):]
	assert.Equal(t, journalTruncate+1, len([]rune(snippet)), "200 chars plus ellipsis")
	assert.True(t, strings.HasSuffix(snippet, "…"))
}

func TestRenderWindow_SortsAndSkipsSummaries(t *testing.T) {
	summary := record(2)
	summary.IsPeriodSummary = true
	records := []domain.DailyRecord{record(3), summary, record(1)}

	out := RenderWindow(records)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "2025-04-01"))
	assert.True(t, strings.HasPrefix(lines[1], "2025-04-03"))
}

func TestRenderWindow_Empty(t *testing.T) {
	assert.Equal(t, "No data.", RenderWindow(nil))
}

func TestRenderWindow_CapsActivityList(t *testing.T) {
	r := record(1)
	for i := 0; i < 12; i++ {
		r.Activities = append(r.Activities, string(rune('A'+i)))
	}

	out := RenderWindow([]domain.DailyRecord{r})

	assert.Contains(t, out, "activities=[A, B, C, D, E, F, G, H]")
	assert.NotContains(t, out, "I")
}
