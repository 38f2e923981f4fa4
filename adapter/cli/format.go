package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

const dateFormat = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateFormat)
}

func formatRating(r *domain.DayRating) string {
	if r == nil {
		return "n/a"
	}
	return r.String()
}

func formatAbstinence(a *domain.AbstinenceStatus) string {
	if a == nil {
		return "n/a"
	}
	return a.String()
}

func formatSleep(s domain.SleepInfo) string {
	if s.Hours == nil {
		return "n/a"
	}
	out := fmt.Sprintf("%.1fh", *s.Hours)
	if s.RecoveryScore != nil {
		out += fmt.Sprintf(" (recovery %d%%)", *s.RecoveryScore)
	}
	return out
}

func formatActivities(activities []string) string {
	if len(activities) == 0 {
		return "none"
	}
	return strings.Join(activities, ", ")
}

// progressBar renders a fixed-width ASCII bar for a 0-100 percentage.
func progressBar(percentage float64, width int) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := int(percentage / 100 * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func divider() string {
	return strings.Repeat("-", 60)
}
