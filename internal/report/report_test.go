// ABOUTME: Tests for the reporting views.
// ABOUTME: Covers daily/weekly/monthly/all-time views over record snapshots.
package report

import (
	"math"
	"testing"
	"time"

	"github.com/harperreed/lifestyle/internal/models"
	"github.com/harperreed/lifestyle/internal/program"
	"github.com/harperreed/lifestyle/internal/stats"
)

func testCalendar() *program.Calendar {
	return program.Default()
}

func addRecord(recs map[string]*models.DailyRecord, cal *program.Calendar, offset int, mutate func(r *models.DailyRecord)) *models.DailyRecord {
	d := program.DefaultStart.AddDays(offset)
	r := models.NewDailyRecord(d, cal.WeekNumber(d))
	if mutate != nil {
		mutate(r)
	}
	recs[r.Key()] = r
	return r
}

func TestDailyView(t *testing.T) {
	cal := testCalendar()
	rp := New(cal)
	recs := map[string]*models.DailyRecord{}
	addRecord(recs, cal, 15, func(r *models.DailyRecord) { r.Steps = 5000 })

	view := rp.Daily(recs, program.DefaultStart.AddDays(15))
	if view.Week != 3 {
		t.Errorf("Week = %d, want 3", view.Week)
	}
	if !view.StrengthOffered {
		t.Error("week 3 should offer strength training")
	}
	if view.Record == nil || view.Record.Steps != 5000 {
		t.Errorf("Record = %+v, want steps 5000", view.Record)
	}
}

func TestDailyViewMissingRecord(t *testing.T) {
	rp := New(testCalendar())

	view := rp.Daily(map[string]*models.DailyRecord{}, program.DefaultStart)
	if view.Record != nil {
		t.Error("missing date should yield nil Record")
	}
	if view.Week != 1 {
		t.Errorf("Week = %d, want 1", view.Week)
	}
	if view.StrengthOffered {
		t.Error("week 1 should not offer strength training")
	}
}

func TestWeeklyViewBreakdown(t *testing.T) {
	cal := testCalendar()
	rp := New(cal)
	recs := map[string]*models.DailyRecord{}
	// Week 2 spans offsets 7..13. Log two days, one of them all zeros.
	addRecord(recs, cal, 7, func(r *models.DailyRecord) { r.TreadmillMinutes = 30 })
	addRecord(recs, cal, 9, nil)

	view := rp.Weekly(recs, 2)

	if view.Week != 2 {
		t.Errorf("Week = %d, want 2", view.Week)
	}
	if view.Start != program.DefaultStart.AddDays(7) {
		t.Errorf("Start = %v, want %v", view.Start, program.DefaultStart.AddDays(7))
	}
	if view.End != program.DefaultStart.AddDays(13) {
		t.Errorf("End = %v, want %v", view.End, program.DefaultStart.AddDays(13))
	}
	if len(view.Days) != 7 {
		t.Fatalf("len(Days) = %d, want 7", len(view.Days))
	}
	if view.Summary.DayCount != 2 {
		t.Errorf("Summary.DayCount = %d, want 2 (missing days not synthesized)", view.Summary.DayCount)
	}

	// Zero-valued logged day and missing day must stay distinguishable.
	if view.Days[0].Missing() {
		t.Error("day 0 was logged, should not be missing")
	}
	if view.Days[2].Missing() {
		t.Error("day 2 was logged (all zeros), should not be missing")
	}
	if !view.Days[1].Missing() {
		t.Error("day 1 was not logged, should be missing")
	}
	if view.Days[1].ExerciseMinutes() != 0 {
		t.Errorf("missing day ExerciseMinutes = %v, want 0", view.Days[1].ExerciseMinutes())
	}
	if view.Days[0].ExerciseMinutes() != 30 {
		t.Errorf("day 0 ExerciseMinutes = %v, want 30", view.Days[0].ExerciseMinutes())
	}
}

func TestWeeklyViewClampsWeek(t *testing.T) {
	rp := New(testCalendar())
	view := rp.Weekly(map[string]*models.DailyRecord{}, 99)
	if view.Week != program.Weeks {
		t.Errorf("Week = %d, want %d", view.Week, program.Weeks)
	}
}

func TestMonthlyViewFiltersAndPartitions(t *testing.T) {
	cal := testCalendar()
	rp := New(cal)
	recs := map[string]*models.DailyRecord{}
	// June 2025: program starts 2025-06-02. Offsets 0..28 stay in June.
	addRecord(recs, cal, 0, func(r *models.DailyRecord) { r.TreadmillMinutes = 10 }) // week 1
	addRecord(recs, cal, 3, func(r *models.DailyRecord) { r.TreadmillMinutes = 20 }) // week 1
	addRecord(recs, cal, 8, func(r *models.DailyRecord) { r.TreadmillMinutes = 30 }) // week 2
	// July record must be excluded from June.
	addRecord(recs, cal, 40, func(r *models.DailyRecord) { r.TreadmillMinutes = 99 })

	view := rp.Monthly(recs, 2025, time.June)

	if view.Summary.DayCount != 3 {
		t.Errorf("DayCount = %d, want 3", view.Summary.DayCount)
	}
	if view.Summary.TreadmillTotal != 60 {
		t.Errorf("TreadmillTotal = %v, want 60", view.Summary.TreadmillTotal)
	}
	if len(view.Weeks) != 2 {
		t.Fatalf("len(Weeks) = %d, want 2", len(view.Weeks))
	}
	if view.Weeks[0].Week != 1 || view.Weeks[1].Week != 2 {
		t.Errorf("weeks = [%d %d], want [1 2]", view.Weeks[0].Week, view.Weeks[1].Week)
	}
	if view.Weeks[0].Summary.DayCount != 2 {
		t.Errorf("week 1 DayCount = %d, want 2", view.Weeks[0].Summary.DayCount)
	}
}

func TestMonthlyPartitionConsistency(t *testing.T) {
	cal := testCalendar()
	rp := New(cal)
	recs := map[string]*models.DailyRecord{}
	for _, offset := range []int{0, 2, 5, 8, 11, 16, 20, 25} {
		o := offset
		addRecord(recs, cal, o, func(r *models.DailyRecord) {
			r.TreadmillMinutes = float64(o * 3)
			r.Steps = o * 500
			r.LunchWalkMinutes = float64(o)
			if o%2 == 0 {
				r.WithWeight(80 - float64(o)/10)
			}
		})
	}

	view := rp.Monthly(recs, 2025, time.June)

	// Re-aggregating all partition members together must reproduce the
	// month-level totals.
	var dayCount, strength int
	var treadmill, lunch float64
	var steps int
	for _, row := range view.Weeks {
		dayCount += row.Summary.DayCount
		strength += row.Summary.StrengthSessions
		treadmill += row.Summary.TreadmillTotal
		steps += row.Summary.StepsTotal
		lunch += row.Summary.LunchWalkTotal
	}

	if dayCount != view.Summary.DayCount {
		t.Errorf("partition day count = %d, month = %d", dayCount, view.Summary.DayCount)
	}
	if treadmill != view.Summary.TreadmillTotal {
		t.Errorf("partition treadmill = %v, month = %v", treadmill, view.Summary.TreadmillTotal)
	}
	if steps != view.Summary.StepsTotal {
		t.Errorf("partition steps = %d, month = %d", steps, view.Summary.StepsTotal)
	}
	if lunch != view.Summary.LunchWalkTotal {
		t.Errorf("partition lunch walk = %v, month = %v", lunch, view.Summary.LunchWalkTotal)
	}
	if strength != view.Summary.StrengthSessions {
		t.Errorf("partition strength = %d, month = %d", strength, view.Summary.StrengthSessions)
	}
}

func TestMonthlyViewUnstampedWeekFallsBack(t *testing.T) {
	cal := testCalendar()
	rp := New(cal)
	d := program.DefaultStart.AddDays(8)
	r := models.NewDailyRecord(d, 0) // week never stamped
	recs := map[string]*models.DailyRecord{r.Key(): r}

	view := rp.Monthly(recs, 2025, time.June)
	if len(view.Weeks) != 1 || view.Weeks[0].Week != 2 {
		t.Errorf("weeks = %+v, want single row for week 2", view.Weeks)
	}
}

func TestAllTimeView(t *testing.T) {
	cal := testCalendar()
	rp := New(cal)
	recs := map[string]*models.DailyRecord{}
	addRecord(recs, cal, 5, func(r *models.DailyRecord) {
		r.TreadmillMinutes = 30
		r.Steps = 1000
	})
	addRecord(recs, cal, 1, func(r *models.DailyRecord) { r.WithWeight(80) })
	addRecord(recs, cal, 21, func(r *models.DailyRecord) { r.WithWeight(78) })

	view := rp.AllTime(recs)

	want := 3.0 / program.Days * 100
	if math.Abs(view.ProgressPercent-want) > 1e-9 {
		t.Errorf("ProgressPercent = %v, want %v", view.ProgressPercent, want)
	}
	if len(view.Series) != 3 {
		t.Fatalf("len(Series) = %d, want 3", len(view.Series))
	}
	// Chronological order regardless of map iteration.
	for i := 1; i < len(view.Series); i++ {
		if !view.Series[i-1].Date.Before(view.Series[i].Date) {
			t.Errorf("series not sorted at index %d", i)
		}
	}
	if view.Series[1].ExerciseMinutes != 40 {
		t.Errorf("ExerciseMinutes = %v, want 40", view.Series[1].ExerciseMinutes)
	}
	if view.Summary.WeightChange != -2 {
		t.Errorf("WeightChange = %v, want -2", view.Summary.WeightChange)
	}
}

func TestAllTimeViewEmpty(t *testing.T) {
	rp := New(testCalendar())
	view := rp.AllTime(map[string]*models.DailyRecord{})

	if view.ProgressPercent != 0 {
		t.Errorf("ProgressPercent = %v, want 0", view.ProgressPercent)
	}
	if len(view.Series) != 0 {
		t.Errorf("Series should be empty, got %d points", len(view.Series))
	}
	if view.Summary != (stats.Summary{}) {
		t.Errorf("Summary should be zero, got %+v", view.Summary)
	}
}
