package domain

import "time"

// TaskRow is one atomic entry fetched from the journal store for a single
// day. A day usually has several rows: one per activity plus an optional
// summary row whose body text carries rating, sleep and abstinence facts.
// Rows are immutable once fetched.
type TaskRow struct {
	ID       string
	Title    string
	Date     time.Time
	Tags     []string
	Done     bool
	Hours    float64
	BodyText string
}

// Day returns the row's date truncated to midnight UTC, the grouping key
// used by the aggregator.
func (r TaskRow) Day() time.Time {
	return time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC)
}
