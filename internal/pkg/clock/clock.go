package clock

import (
	"fmt"
	"time"
)

// Clock resolves all calendar arithmetic in one pinned timezone so that day
// and month boundaries are consistent across recording and reporting.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func New(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFixed returns a clock frozen at t, for tests.
func NewFixed(t time.Time, timezone string) (*Clock, error) {
	c, err := New(timezone)
	if err != nil {
		return nil, err
	}
	c.now = func() time.Time { return t }
	return c, nil
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// DayWindow returns [startOfDay, endOfDay) for the local day containing t.
func (c *Clock) DayWindow(t time.Time) (time.Time, time.Time) {
	local := t.In(c.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
	return start, start.AddDate(0, 0, 1)
}

// MonthWindow returns [startOfMonth, startOfNextMonth) for the local month
// containing t.
func (c *Clock) MonthWindow(t time.Time) (time.Time, time.Time) {
	local := t.In(c.loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, c.loc)
	return start, start.AddDate(0, 1, 0)
}

// DaysInMonth returns the number of calendar days in the local month
// containing t.
func (c *Clock) DaysInMonth(t time.Time) int {
	local := t.In(c.loc)
	// Day zero of the next month is the last day of this one.
	return time.Date(local.Year(), local.Month()+1, 0, 0, 0, 0, 0, c.loc).Day()
}

// IsWeekend reports whether the local day containing t is Saturday or Sunday.
func (c *Clock) IsWeekend(t time.Time) bool {
	wd := t.In(c.loc).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MinutesIntoDay returns minutes elapsed since local midnight for t.
func (c *Clock) MinutesIntoDay(t time.Time) int {
	local := t.In(c.loc)
	return local.Hour()*60 + local.Minute()
}
