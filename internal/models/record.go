// ABOUTME: DailyRecord model for one day of lifestyle tracking data.
// ABOUTME: Optional metrics are pointers so absent and zero stay distinct.
package models

import (
	"fmt"
)

// StepsPerExerciseMinute converts a step count into walking minutes for the
// composite exercise-time figure (100 steps ≈ 1 minute). Historical totals
// depend on this exact divisor; do not change it.
const StepsPerExerciseMinute = 100

// MaxMoodNoteLen bounds the free-text mood note.
const MaxMoodNoteLen = 256

// DailyRecord holds everything logged for a single calendar date. The date
// is the unique key; saving a date always replaces the whole record.
// Weight and BloodSugar are nil when not recorded — a nil or zero value
// never contributes to averages over those fields.
type DailyRecord struct {
	Date             Date     `json:"date"`
	Week             int      `json:"week"`
	TreadmillMinutes float64  `json:"treadmill_minutes"`
	Steps            int      `json:"steps"`
	LunchWalkMinutes float64  `json:"lunch_walk_minutes"`
	StrengthTraining bool     `json:"strength_training"`
	Weight           *float64 `json:"weight"`
	BloodSugar       *float64 `json:"blood_sugar"`
	MoodNote         string   `json:"mood_note"`
}

// NewDailyRecord creates a record for a date with its program week stamped.
func NewDailyRecord(date Date, week int) *DailyRecord {
	return &DailyRecord{Date: date, Week: week}
}

// Key returns the storage key for the record (its ISO date).
func (r *DailyRecord) Key() string {
	return r.Date.String()
}

// WithWeight records a weight reading. Non-positive values are ignored so
// the field stays "not recorded".
func (r *DailyRecord) WithWeight(kg float64) *DailyRecord {
	if kg > 0 {
		r.Weight = &kg
	}
	return r
}

// WithBloodSugar records a blood sugar reading, same convention as WithWeight.
func (r *DailyRecord) WithBloodSugar(v float64) *DailyRecord {
	if v > 0 {
		r.BloodSugar = &v
	}
	return r
}

// WithMoodNote sets the free-text mood note.
func (r *DailyRecord) WithMoodNote(note string) *DailyRecord {
	r.MoodNote = note
	return r
}

// ExerciseMinutes returns the composite exercise time for the day:
// treadmill minutes plus step-derived walking minutes plus lunch-walk minutes.
func (r *DailyRecord) ExerciseMinutes() float64 {
	return r.TreadmillMinutes + float64(r.Steps)/StepsPerExerciseMinute + r.LunchWalkMinutes
}

// HasWeight reports whether the record carries a countable weight value.
func (r *DailyRecord) HasWeight() bool {
	return r.Weight != nil && *r.Weight > 0
}

// HasBloodSugar reports whether the record carries a countable blood sugar value.
func (r *DailyRecord) HasBloodSugar() bool {
	return r.BloodSugar != nil && *r.BloodSugar > 0
}

// Validate checks field ranges before the record is persisted.
func (r *DailyRecord) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("record has no date")
	}
	if r.TreadmillMinutes < 0 {
		return fmt.Errorf("treadmill minutes must be non-negative")
	}
	if r.Steps < 0 {
		return fmt.Errorf("steps must be non-negative")
	}
	if r.LunchWalkMinutes < 0 {
		return fmt.Errorf("lunch walk minutes must be non-negative")
	}
	if len(r.MoodNote) > MaxMoodNoteLen {
		return fmt.Errorf("mood note exceeds %d characters", MaxMoodNoteLen)
	}
	return nil
}
