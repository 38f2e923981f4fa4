package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// Direction marks whether an anomalous day was above or below baseline.
type Direction string

const (
	DirectionHigh Direction = "high"
	DirectionLow  Direction = "low"
)

// Anomaly is a day whose productivity score deviates far from the mean.
type Anomaly struct {
	Date        time.Time
	Score       float64
	BaselineAvg float64
	Direction   Direction
	Activities  []string
}

// DetectAnomalies flags days whose productivity score deviates from the
// mean by more than 1.5 sample standard deviations. Requires at least
// seven records; below that it returns nil.
func DetectAnomalies(records []domain.DailyRecord) []Anomaly {
	days := daily(records)
	if len(days) < anomalyMinRecords {
		return nil
	}

	scores := make([]float64, len(days))
	for i, r := range days {
		scores[i] = Score(r)
	}
	avg := mean(scores)
	sd := stddev(scores)
	if sd == 0 {
		return nil
	}
	threshold := anomalyDeviationMult * sd

	var anomalies []Anomaly
	for i, r := range days {
		deviation := scores[i] - avg
		if math.Abs(deviation) <= threshold {
			continue
		}
		direction := DirectionHigh
		if deviation < 0 {
			direction = DirectionLow
		}
		anomalies = append(anomalies, Anomaly{
			Date:        r.Date,
			Score:       scores[i],
			BaselineAvg: round1(avg),
			Direction:   direction,
			Activities:  r.Activities,
		})
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		di := math.Abs(anomalies[i].Score - anomalies[i].BaselineAvg)
		dj := math.Abs(anomalies[j].Score - anomalies[j].BaselineAvg)
		return di > dj
	})
	if len(anomalies) > anomalyTopN {
		anomalies = anomalies[:anomalyTopN]
	}
	return anomalies
}
