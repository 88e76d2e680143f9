// ABOUTME: Reporting views over daily record snapshots.
// ABOUTME: Combines the program calendar with the stats aggregator; no I/O.
package report

import (
	"sort"
	"time"

	"github.com/harperreed/lifestyle/internal/models"
	"github.com/harperreed/lifestyle/internal/program"
	"github.com/harperreed/lifestyle/internal/stats"
)

// Reporter answers view queries over an explicitly loaded record snapshot.
// The caller owns loading; every method here is read-only and side-effect
// free, so views never mutate or re-persist the record set.
type Reporter struct {
	cal *program.Calendar
}

// New creates a Reporter over the given program calendar.
func New(cal *program.Calendar) *Reporter {
	return &Reporter{cal: cal}
}

// DailyView describes a single date: its program week, whether strength
// training is offered, and the record if one exists (nil otherwise).
type DailyView struct {
	Date            models.Date         `json:"date"`
	Week            int                 `json:"week"`
	StrengthOffered bool                `json:"strength_offered"`
	Record          *models.DailyRecord `json:"record"`
}

// DayCell is one row of a weekly breakdown. A nil Record means no data was
// logged for the date — distinct from a record full of zeros.
type DayCell struct {
	Date   models.Date         `json:"date"`
	Record *models.DailyRecord `json:"record"`
}

// Missing reports whether the day has no logged record.
func (c DayCell) Missing() bool {
	return c.Record == nil
}

// ExerciseMinutes returns the day's composite exercise time, 0 when missing.
func (c DayCell) ExerciseMinutes() float64 {
	if c.Record == nil {
		return 0
	}
	return c.Record.ExerciseMinutes()
}

// WeeklyView is the summary for one program week plus a per-day breakdown
// covering all seven dates, logged or not.
type WeeklyView struct {
	Week    int           `json:"week"`
	Start   models.Date   `json:"start"`
	End     models.Date   `json:"end"`
	Summary stats.Summary `json:"summary"`
	Days    []DayCell     `json:"days"`
}

// WeekRow is one week's aggregate inside a monthly view.
type WeekRow struct {
	Week    int           `json:"week"`
	Summary stats.Summary `json:"summary"`
}

// MonthlyView is the summary for a calendar month plus per-week trend rows
// partitioned by each record's stored week number.
type MonthlyView struct {
	Year    int           `json:"year"`
	Month   time.Month    `json:"month"`
	Summary stats.Summary `json:"summary"`
	Weeks   []WeekRow     `json:"weeks"`
}

// TrendPoint is one date in the all-time chronological series.
type TrendPoint struct {
	Date             models.Date `json:"date"`
	TreadmillMinutes float64     `json:"treadmill_minutes"`
	Steps            int         `json:"steps"`
	LunchWalkMinutes float64     `json:"lunch_walk_minutes"`
	Weight           *float64    `json:"weight"`
	ExerciseMinutes  float64     `json:"exercise_minutes"`
}

// AllTimeView is the aggregate over the entire history plus program
// progress and a chart-ready time series.
type AllTimeView struct {
	Summary         stats.Summary `json:"summary"`
	ProgressPercent float64       `json:"progress_percent"`
	Series          []TrendPoint  `json:"series"`
}

// Daily resolves the view for a single date.
func (rp *Reporter) Daily(records map[string]*models.DailyRecord, d models.Date) DailyView {
	return DailyView{
		Date:            d,
		Week:            rp.cal.WeekNumber(d),
		StrengthOffered: rp.cal.StrengthAvailable(d),
		Record:          records[d.String()],
	}
}

// Weekly builds the view for a program week (index clamped to 1..30).
// The summary covers only dates that have records; the breakdown always
// has seven cells so missing days stay visible.
func (rp *Reporter) Weekly(records map[string]*models.DailyRecord, week int) WeeklyView {
	week = program.ClampWeek(week)
	dates := rp.cal.WeekDates(week)

	present := map[string]*models.DailyRecord{}
	days := make([]DayCell, 0, len(dates))
	for _, d := range dates {
		r := records[d.String()]
		if r != nil {
			present[d.String()] = r
		}
		days = append(days, DayCell{Date: d, Record: r})
	}

	return WeeklyView{
		Week:    week,
		Start:   dates[0],
		End:     dates[len(dates)-1],
		Summary: stats.Aggregate(present),
		Days:    days,
	}
}

// Monthly builds the view for a calendar month. Records are partitioned by
// their stored week field for the trend rows; re-aggregating the partitions
// together reproduces the month summary.
func (rp *Reporter) Monthly(records map[string]*models.DailyRecord, year int, month time.Month) MonthlyView {
	monthRecords := map[string]*models.DailyRecord{}
	for key, r := range records {
		if r.Date.Year == year && r.Date.Month == month {
			monthRecords[key] = r
		}
	}

	byWeek := map[int]map[string]*models.DailyRecord{}
	for key, r := range monthRecords {
		week := r.Week
		if week == 0 {
			// Older records may predate week stamping.
			week = rp.cal.WeekNumber(r.Date)
		}
		if byWeek[week] == nil {
			byWeek[week] = map[string]*models.DailyRecord{}
		}
		byWeek[week][key] = r
	}

	weeks := make([]WeekRow, 0, len(byWeek))
	for week, part := range byWeek {
		weeks = append(weeks, WeekRow{Week: week, Summary: stats.Aggregate(part)})
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Week < weeks[j].Week })

	return MonthlyView{
		Year:    year,
		Month:   month,
		Summary: stats.Aggregate(monthRecords),
		Weeks:   weeks,
	}
}

// AllTime aggregates the entire history. Progress is days logged against
// the fixed 210-day program length; the series is sorted chronologically.
func (rp *Reporter) AllTime(records map[string]*models.DailyRecord) AllTimeView {
	summary := stats.Aggregate(records)

	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]TrendPoint, 0, len(keys))
	for _, k := range keys {
		r := records[k]
		series = append(series, TrendPoint{
			Date:             r.Date,
			TreadmillMinutes: r.TreadmillMinutes,
			Steps:            r.Steps,
			LunchWalkMinutes: r.LunchWalkMinutes,
			Weight:           r.Weight,
			ExerciseMinutes:  r.ExerciseMinutes(),
		})
	}

	return AllTimeView{
		Summary:         summary,
		ProgressPercent: float64(summary.DayCount) / program.Days * 100,
		Series:          series,
	}
}
