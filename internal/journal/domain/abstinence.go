package domain

// AbstinenceStatus is the three-state habit outcome tracked in the daily
// summary entry. Scores are signed so that higher is always better.
type AbstinenceStatus string

const (
	AbstinencePlus             AbstinenceStatus = "PLUS"
	AbstinenceMinus            AbstinenceStatus = "MINUS"
	AbstinenceMinusWithPartner AbstinenceStatus = "MINUS_PARTNER"
)

// Score returns the signed value of the status.
func (s AbstinenceStatus) Score() int {
	switch s {
	case AbstinencePlus:
		return 1
	case AbstinenceMinusWithPartner:
		return -1
	case AbstinenceMinus:
		return -2
	default:
		return 0
	}
}

// IsNegative reports whether the status is either of the minus variants.
func (s AbstinenceStatus) IsNegative() bool {
	return s == AbstinenceMinus || s == AbstinenceMinusWithPartner
}

// String returns the canonical label of the status.
func (s AbstinenceStatus) String() string {
	return string(s)
}
