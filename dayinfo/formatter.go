package dayinfo

import (
	"context"
	"strings"
	"time"

	"github.com/va6996/dateaware/holiday"
)

// HolidaySource resolves a year to its holiday map. Implementations never fail.
type HolidaySource interface {
	GetHolidayMap(ctx context.Context, year int) holiday.Map
}

// Formatter renders the three-day block
type Formatter struct {
	Holidays HolidaySource
	Now      func() time.Time
}

// NewFormatter creates a Formatter reading the wall clock
func NewFormatter(holidays HolidaySource) *Formatter {
	return &Formatter{
		Holidays: holidays,
		Now:      time.Now,
	}
}

// Days returns the annotated yesterday/today/tomorrow records.
// Holidays come from today's year even when a neighbour crosses into another year.
func (f *Formatter) Days(ctx context.Context) []Day {
	today := f.Now()
	var m holiday.Map
	if f.Holidays != nil {
		m = f.Holidays.GetHolidayMap(ctx, today.Year())
	}
	return ThreeDays(today, m)
}

// Render returns the three lines joined by newlines
func (f *Formatter) Render(ctx context.Context) string {
	days := f.Days(ctx)
	lines := make([]string, 0, len(days))
	for _, d := range days {
		lines = append(lines, d.Line())
	}
	return strings.Join(lines, "\n")
}

// Lookup annotates a single date using that date's own year
func (f *Formatter) Lookup(ctx context.Context, t time.Time) Day {
	var m holiday.Map
	if f.Holidays != nil {
		m = f.Holidays.GetHolidayMap(ctx, t.Year())
	}
	return DayFor(t, m)
}
