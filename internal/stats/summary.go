// ABOUTME: Summary statistics aggregation over sets of daily records.
// ABOUTME: One reduction serves the weekly, monthly, and all-time views.
package stats

import (
	"sort"

	"github.com/harperreed/lifestyle/internal/models"
)

// Summary is a stateless aggregate over a set of daily records. It is
// recomputed on demand and never persisted.
type Summary struct {
	DayCount int `json:"day_count"`

	TreadmillTotal float64 `json:"treadmill_total"`
	TreadmillAvg   float64 `json:"treadmill_avg"`
	StepsTotal     int     `json:"steps_total"`
	StepsAvg       float64 `json:"steps_avg"`
	LunchWalkTotal float64 `json:"lunch_walk_total"`
	LunchWalkAvg   float64 `json:"lunch_walk_avg"`

	// Composite exercise time: treadmill + steps/100 + lunch walk.
	ExerciseTimeTotal float64 `json:"exercise_time_total"`
	ExerciseTimeAvg   float64 `json:"exercise_time_avg"`

	StrengthSessions int `json:"strength_sessions"`

	// Weight and blood sugar are computed only over records where the value
	// is present and > 0; their denominators are independent of DayCount.
	WeightAvg     float64 `json:"weight_avg"`
	WeightLatest  float64 `json:"weight_latest"`
	WeightChange  float64 `json:"weight_change"`
	BloodSugarAvg float64 `json:"blood_sugar_avg"`
}

// Aggregate reduces any set of daily records, keyed by ISO date, into a
// Summary. An empty set yields the zero Summary; no average ever divides
// by zero. The reduction is order-independent: weight and blood sugar
// sequences are ordered by date internally.
func Aggregate(records map[string]*models.DailyRecord) Summary {
	var s Summary
	s.DayCount = len(records)
	if s.DayCount == 0 {
		return s
	}

	// ISO date keys sort lexicographically into chronological order.
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var weights, bloodSugars []float64
	for _, k := range keys {
		r := records[k]
		s.TreadmillTotal += r.TreadmillMinutes
		s.StepsTotal += r.Steps
		s.LunchWalkTotal += r.LunchWalkMinutes
		if r.StrengthTraining {
			s.StrengthSessions++
		}
		if r.HasWeight() {
			weights = append(weights, *r.Weight)
		}
		if r.HasBloodSugar() {
			bloodSugars = append(bloodSugars, *r.BloodSugar)
		}
	}

	s.ExerciseTimeTotal = s.TreadmillTotal +
		float64(s.StepsTotal)/models.StepsPerExerciseMinute +
		s.LunchWalkTotal

	days := float64(s.DayCount)
	s.TreadmillAvg = s.TreadmillTotal / days
	s.StepsAvg = float64(s.StepsTotal) / days
	s.LunchWalkAvg = s.LunchWalkTotal / days
	s.ExerciseTimeAvg = s.ExerciseTimeTotal / days

	if len(weights) > 0 {
		s.WeightAvg = mean(weights)
		s.WeightLatest = weights[len(weights)-1]
		if len(weights) > 1 {
			s.WeightChange = weights[len(weights)-1] - weights[0]
		}
	}
	if len(bloodSugars) > 0 {
		s.BloodSugarAvg = mean(bloodSugars)
	}

	return s
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
