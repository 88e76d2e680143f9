// ABOUTME: Program calendar for the fixed 30-week habit program.
// ABOUTME: Maps dates to clamped week numbers and gates strength training.
package program

import (
	"time"

	"github.com/harperreed/lifestyle/internal/models"
)

const (
	// Weeks is the length of the program in weeks.
	Weeks = 30
	// DaysPerWeek is seven; named for the window math below.
	DaysPerWeek = 7
	// Days is the total program length in days.
	Days = Weeks * DaysPerWeek
	// StrengthStartWeek is the first week strength training is offered.
	StrengthStartWeek = 3
)

// DefaultStart is the anchor date of the default program.
var DefaultStart = models.Date{Year: 2025, Month: time.June, Day: 2}

// Calendar maps calendar dates onto program weeks. It is a pure function of
// its anchor date and carries no mutable state.
type Calendar struct {
	start models.Date
}

// New creates a calendar anchored at the given start date. A zero start
// falls back to DefaultStart.
func New(start models.Date) *Calendar {
	if start.IsZero() {
		start = DefaultStart
	}
	return &Calendar{start: start}
}

// Default returns a calendar anchored at DefaultStart.
func Default() *Calendar {
	return New(DefaultStart)
}

// Window returns the program's start date and exclusive end date
// (start + 210 days).
func (c *Calendar) Window() (start, end models.Date) {
	return c.start, c.start.AddDays(Days)
}

// WeekNumber returns the 1-based program week the date falls into, clamped
// to [1, 30]. Dates before the start map to week 1 and dates past the end
// map to week 30, so corrections logged outside the formal window still
// land in a valid week.
func (c *Calendar) WeekNumber(d models.Date) int {
	week := d.DaysSince(c.start)/DaysPerWeek + 1
	return ClampWeek(week)
}

// WeekStart returns the first date of a program week (week clamped).
func (c *Calendar) WeekStart(week int) models.Date {
	return c.start.AddDays((ClampWeek(week) - 1) * DaysPerWeek)
}

// WeekDates returns the seven consecutive dates of a program week.
func (c *Calendar) WeekDates(week int) []models.Date {
	start := c.WeekStart(week)
	dates := make([]models.Date, DaysPerWeek)
	for i := range dates {
		dates[i] = start.AddDays(i)
	}
	return dates
}

// StrengthAvailable reports whether strength training is offered on the
// given date. The program introduces it in week 3.
func (c *Calendar) StrengthAvailable(d models.Date) bool {
	return c.WeekNumber(d) >= StrengthStartWeek
}

// ClampWeek clamps a week index to the valid range [1, 30].
func ClampWeek(week int) int {
	if week < 1 {
		return 1
	}
	if week > Weeks {
		return Weeks
	}
	return week
}
