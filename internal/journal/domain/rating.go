package domain

// DayRating is the closed set of day marks a journal entry may carry.
// The labels match the vocabulary used in the journal body text.
type DayRating string

const (
	RatingPerfect  DayRating = "perfect"
	RatingVeryGood DayRating = "very good"
	RatingGood     DayRating = "good"
	RatingNormal   DayRating = "normal"
	RatingBad      DayRating = "bad"
	RatingVeryBad  DayRating = "very bad"
)

// Score returns the ordinal value of the rating, 6 = best.
func (r DayRating) Score() int {
	switch r {
	case RatingPerfect:
		return 6
	case RatingVeryGood:
		return 5
	case RatingGood:
		return 4
	case RatingNormal:
		return 3
	case RatingBad:
		return 2
	case RatingVeryBad:
		return 1
	default:
		return 0
	}
}

// IsGood reports whether the rating is "good" or better.
func (r DayRating) IsGood() bool {
	return r.Score() >= 4
}

// IsValid returns true for a known rating label.
func (r DayRating) IsValid() bool {
	return r.Score() > 0
}

// String returns the journal label of the rating.
func (r DayRating) String() string {
	return string(r)
}
