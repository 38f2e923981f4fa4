package notion

import (
	"strings"
	"time"

	"github.com/ivkhv/daybook/internal/journal/domain"
)

// Property names in the journal database.
const (
	propTitle = "Name"
	propDate  = "Date"
	propTags  = "Tags"
	propDone  = "Done"
	propHours = "Hours"
	propText  = "Text"
)

type page struct {
	ID         string              `json:"id"`
	Properties map[string]property `json:"properties"`
}

// property is a union of the Notion value kinds this database uses; only
// the field matching the property's type is populated.
type property struct {
	Title       []richText    `json:"title"`
	RichText    []richText    `json:"rich_text"`
	Date        *dateValue    `json:"date"`
	MultiSelect []selectValue `json:"multi_select"`
	Checkbox    bool          `json:"checkbox"`
	Number      *float64      `json:"number"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

type dateValue struct {
	Start string `json:"start"`
}

type selectValue struct {
	Name string `json:"name"`
}

// mapPage converts one Notion page to a task row. Returns false when the
// page has no date and must be skipped.
func mapPage(p page) (domain.TaskRow, bool) {
	date, ok := pageDate(p)
	if !ok {
		return domain.TaskRow{}, false
	}

	row := domain.TaskRow{
		ID:       p.ID,
		Title:    plainText(p.Properties[propTitle].Title),
		Date:     date,
		Done:     p.Properties[propDone].Checkbox,
		BodyText: plainText(p.Properties[propText].RichText),
	}
	if n := p.Properties[propHours].Number; n != nil {
		row.Hours = *n
	}
	for _, s := range p.Properties[propTags].MultiSelect {
		if s.Name != "" {
			row.Tags = append(row.Tags, s.Name)
		}
	}
	return row, true
}

func pageDate(p page) (time.Time, bool) {
	d := p.Properties[propDate].Date
	if d == nil || d.Start == "" {
		return time.Time{}, false
	}
	raw := d.Start
	if len(raw) > 10 {
		raw = raw[:10]
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func plainText(parts []richText) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.PlainText)
	}
	return b.String()
}
