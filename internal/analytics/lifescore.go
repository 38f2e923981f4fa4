package analytics

import (
	"math"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// Trend is the direction of a dimension between two windows.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// LifeDimension is one normalized 0-100 facet of the life score.
type LifeDimension struct {
	Name  string
	Score float64
	Trend Trend
}

// LifeScore aggregates six life dimensions over the most recent 14
// records, with a trend against the preceding 14 when available.
type LifeScore struct {
	Total      float64
	TrendDelta float64
	Dimensions []LifeDimension
}

var dimensionNames = []string{"productivity", "sleep", "physical", "social", "abstinence", "mood"}

// ComputeLifeScore derives the life score from the record history.
func ComputeLifeScore(records []domain.DailyRecord) LifeScore {
	days := daily(records)

	recent := lastN(days, lifeWindow)
	var prior []domain.DailyRecord
	if len(days) > lifeWindow {
		rest := days[:len(days)-len(recent)]
		prior = lastN(rest, lifeWindow)
	}

	recentScores := dimensionScores(recent)
	score := LifeScore{Total: round1(mean(recentScores))}

	var priorScores []float64
	if len(prior) > 0 {
		priorScores = dimensionScores(prior)
		score.TrendDelta = round1(score.Total - round1(mean(priorScores)))
	}

	for i, name := range dimensionNames {
		dim := LifeDimension{Name: name, Score: round1(recentScores[i]), Trend: TrendFlat}
		if len(prior) > 0 {
			dim.Trend = trendFor(recentScores[i] - priorScores[i])
		}
		score.Dimensions = append(score.Dimensions, dim)
	}

	return score
}

// dimensionScores returns the six dimension values in dimensionNames order.
func dimensionScores(days []domain.DailyRecord) []float64 {
	if len(days) == 0 {
		return make([]float64, len(dimensionNames))
	}

	scores := make([]float64, 0, len(days))
	for _, r := range days {
		scores = append(scores, Score(r))
	}
	productivity := mean(scores)

	sleepScore := 0.0
	if sleep := sleepHours(days); len(sleep) > 0 {
		deviation := math.Abs(mean(sleep) - sleepIdealHours)
		sleepScore = math.Max(0, 100-sleepDeviationPenalty*deviation)
	}

	physical := rate(days, func(r domain.DailyRecord) bool { return r.HadExercise }) * 100

	socialRate := rate(days, func(r domain.DailyRecord) bool { return r.HadSocial }) * 100
	socialRating := socialNeutralRating
	var socialDayRatings []float64
	for _, r := range days {
		if r.HadSocial && r.Rating != nil {
			socialDayRatings = append(socialDayRatings, float64(r.Rating.Score()))
		}
	}
	if len(socialDayRatings) > 0 {
		socialRating = mean(socialDayRatings) / ratingScaleMax * 100
	}
	social := 0.5*socialRate + 0.5*socialRating

	abstinence := rate(days, func(r domain.DailyRecord) bool {
		return r.Abstinence != nil && *r.Abstinence == domain.AbstinencePlus
	}) * 100

	mood := moodNeutral
	if ratings := ratingScores(days); len(ratings) > 0 {
		mood = mean(ratings) / ratingScaleMax * 100
	}

	return []float64{productivity, sleepScore, physical, social, abstinence, mood}
}

func trendFor(delta float64) Trend {
	switch {
	case delta > trendFlatBand:
		return TrendUp
	case delta < -trendFlatBand:
		return TrendDown
	default:
		return TrendFlat
	}
}
