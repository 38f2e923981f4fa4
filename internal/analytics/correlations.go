package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// ActivityCorrelation relates one activity tag to the day rating.
type ActivityCorrelation struct {
	Activity   string
	AvgRating  float64
	SampleSize int
	VsBaseline float64
}

// CorrelationMatrix is the result of the activity/rating correlation pass.
type CorrelationMatrix struct {
	BaselineRating float64
	Correlations   []ActivityCorrelation
	ComboInsights  []string
}

// summaryTag is the canonical summary activity; it appears on every day
// and is therefore uninformative for correlation.
const summaryTag = "MARK"

// ComputeCorrelations computes, for every activity appearing on at least
// three rated days, its mean rating and delta against the all-days
// baseline, plus pairwise combo statistics for frequently co-occurring
// activities.
func ComputeCorrelations(records []domain.DailyRecord) CorrelationMatrix {
	days := daily(records)
	matrix := CorrelationMatrix{}
	if len(days) == 0 {
		return matrix
	}

	if ratings := ratingScores(days); len(ratings) > 0 {
		matrix.BaselineRating = round2(mean(ratings))
	}

	perActivity := make(map[string][]float64)
	order := []string{}
	for _, r := range days {
		if r.Rating == nil {
			continue
		}
		score := float64(r.Rating.Score())
		for _, a := range r.Activities {
			if strings.EqualFold(a, summaryTag) {
				continue
			}
			if _, ok := perActivity[a]; !ok {
				order = append(order, a)
			}
			perActivity[a] = append(perActivity[a], score)
		}
	}

	for _, a := range order {
		scores := perActivity[a]
		if len(scores) < correlationMinSamples {
			continue
		}
		avg := round2(mean(scores))
		matrix.Correlations = append(matrix.Correlations, ActivityCorrelation{
			Activity:   a,
			AvgRating:  avg,
			SampleSize: len(scores),
			VsBaseline: round2(avg - matrix.BaselineRating),
		})
	}
	sort.SliceStable(matrix.Correlations, func(i, j int) bool {
		return matrix.Correlations[i].VsBaseline > matrix.Correlations[j].VsBaseline
	})

	matrix.ComboInsights = comboInsights(days)
	return matrix
}

// comboInsights reports the mean rating for every unordered pair of
// co-occurring activities with enough joint rated days, ordered by
// occurrence count, top five.
func comboInsights(days []domain.DailyRecord) []string {
	type combo struct {
		key    string
		scores []float64
	}
	combos := make(map[string]*combo)

	for _, r := range days {
		if r.Rating == nil {
			continue
		}
		score := float64(r.Rating.Score())

		var acts []string
		for _, a := range r.Activities {
			if !strings.EqualFold(a, summaryTag) {
				acts = append(acts, a)
			}
		}
		for i := 0; i < len(acts); i++ {
			for j := i + 1; j < len(acts); j++ {
				a, b := acts[i], acts[j]
				if a > b {
					a, b = b, a
				}
				key := a + "+" + b
				if combos[key] == nil {
					combos[key] = &combo{key: key}
				}
				combos[key].scores = append(combos[key].scores, score)
			}
		}
	}

	sorted := make([]*combo, 0, len(combos))
	for _, c := range combos {
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i].scores) != len(sorted[j].scores) {
			return len(sorted[i].scores) > len(sorted[j].scores)
		}
		return sorted[i].key < sorted[j].key
	})

	var out []string
	for _, c := range sorted {
		if len(out) >= comboTopN {
			break
		}
		if len(c.scores) < comboMinSamples {
			continue
		}
		out = append(out, fmt.Sprintf("%s: avg rating %.2f (n=%d)", c.key, mean(c.scores), len(c.scores)))
	}
	return out
}
