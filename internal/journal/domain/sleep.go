package domain

// SleepInfo holds the sleep facts extracted from a day's summary text.
// Every field is independently optional: a nil pointer means the text did
// not mention that fact, which is distinct from a zero value.
type SleepInfo struct {
	// WokeUpAt is the wake time normalized to "H:MM".
	WokeUpAt *string
	// DurationLabel is the raw duration as written, e.g. "8:54".
	DurationLabel *string
	// Hours is the duration converted to decimal hours.
	Hours *float64
	// RecoveryScore is the wearable recovery reading, if mentioned.
	RecoveryScore *int
}

// IsZero reports whether no sleep fact was found at all.
func (s SleepInfo) IsZero() bool {
	return s.WokeUpAt == nil && s.DurationLabel == nil && s.Hours == nil && s.RecoveryScore == nil
}
