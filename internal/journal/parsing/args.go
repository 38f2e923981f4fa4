package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// Label returns the "2006-01" form of the month.
func (m Month) Label() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Range returns the first and last day of the month, midnight UTC.
func (m Month) Range() (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}

var isoMonthRe = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})$`)

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July,
	"aug": time.August, "sep": time.September, "oct": time.October,
	"nov": time.November, "dec": time.December,
}

// ParseMonth parses a user-supplied month specifier: "2006-01", a bare
// month number, an English month name or abbreviation, or the empty string
// for the month containing now. This is the only class of parser in the
// core that reports failure via an error, and the failure is always caused
// by a caller-supplied string.
func ParseMonth(arg string, now time.Time) (Month, error) {
	arg = strings.ToLower(strings.TrimSpace(arg))

	if arg == "" {
		return Month{Year: now.Year(), Month: now.Month()}, nil
	}

	if m := isoMonthRe.FindStringSubmatch(arg); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return Month{}, fmt.Errorf("month must be 1-12, got %d", month)
		}
		return Month{Year: year, Month: time.Month(month)}, nil
	}

	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > 12 {
			return Month{}, fmt.Errorf("month must be 1-12, got %d", n)
		}
		return Month{Year: now.Year(), Month: time.Month(n)}, nil
	}

	if month, ok := monthNames[arg]; ok {
		return Month{Year: now.Year(), Month: month}, nil
	}

	return Month{}, fmt.Errorf("cannot parse month %q", arg)
}

// ParseCompareMonths parses two month specifiers for a comparison command.
func ParseCompareMonths(args []string, now time.Time) (Month, Month, error) {
	if len(args) < 2 {
		return Month{}, Month{}, fmt.Errorf("two months required, e.g. \"compare january february\"")
	}
	a, err := ParseMonth(args[0], now)
	if err != nil {
		return Month{}, Month{}, err
	}
	b, err := ParseMonth(args[1], now)
	if err != nil {
		return Month{}, Month{}, err
	}
	return a, b, nil
}

// GoalSpec is a parsed goal definition from user input.
type GoalSpec struct {
	Activity string
	Target   int
	Period   string // "week" or "month"
}

// ParseGoalSpec parses "<activity> <count>[/week|/month]"; the period
// defaults to week.
func ParseGoalSpec(args []string) (GoalSpec, error) {
	if len(args) < 2 {
		return GoalSpec{}, fmt.Errorf("expected <activity> <count>[/week|/month], e.g. \"gym 4/week\"")
	}

	spec := GoalSpec{
		Activity: strings.ToUpper(args[0]),
		Period:   "week",
	}

	target := args[1]
	if idx := strings.IndexByte(target, '/'); idx >= 0 {
		period := target[idx+1:]
		if period != "week" && period != "month" {
			return GoalSpec{}, fmt.Errorf("period must be week or month, got %q", period)
		}
		spec.Period = period
		target = target[:idx]
	}

	count, err := strconv.Atoi(target)
	if err != nil {
		return GoalSpec{}, fmt.Errorf("cannot parse target count %q", target)
	}
	if count <= 0 {
		return GoalSpec{}, fmt.Errorf("target count must be positive, got %d", count)
	}
	spec.Target = count

	return spec, nil
}
