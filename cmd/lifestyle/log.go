// ABOUTME: CLI command for logging a day's lifestyle entry.
// ABOUTME: Fully replaces the record for the date; week is stamped at save.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifestyle/internal/models"
	"github.com/harperreed/lifestyle/internal/program"
)

var (
	logDate       string
	logTreadmill  float64
	logSteps      int
	logLunchWalk  float64
	logStrength   bool
	logWeight     float64
	logBloodSugar float64
	logMood       string
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Log a day's entry",
	Long: `Log one day of lifestyle data. Saving a date always rewrites the
whole record: flags you leave out reset to their defaults, so repeat all
values when correcting a day.

Weight and blood sugar are only recorded when given a positive value;
leaving them out (or passing 0) means "not measured today", which keeps
them out of every average.

Strength training is part of the program from week 3. Before that the
flag is ignored with a note.

Examples:
  lifestyle log --treadmill 30 --steps 8000 --lunch-walk 15
  lifestyle log --date 2025-06-20 --strength --weight 82.5
  lifestyle log --mood "Felt great, slept well"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}

		week := cal.WeekNumber(date)
		r := models.NewDailyRecord(date, week)
		r.TreadmillMinutes = logTreadmill
		r.Steps = logSteps
		r.LunchWalkMinutes = logLunchWalk
		r.WithWeight(logWeight)
		r.WithBloodSugar(logBloodSugar)
		r.WithMoodNote(logMood)

		if logStrength {
			if cal.StrengthAvailable(date) {
				r.StrengthTraining = true
			} else {
				color.Yellow("! strength training starts from week %d; flag ignored for week %d",
					program.StrengthStartWeek, week)
			}
		}

		if err := r.Validate(); err != nil {
			return err
		}
		if err := store.Upsert(r); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		color.Green("✓ Logged %s", r.Key())
		faint := color.New(color.Faint)
		fmt.Printf("  week %d of %d · %.1f exercise min (treadmill %.0f + steps %d/%d + lunch walk %.0f)\n",
			week, program.Weeks, r.ExerciseMinutes(), r.TreadmillMinutes,
			r.Steps, models.StepsPerExerciseMinute, r.LunchWalkMinutes)
		if r.Weight != nil {
			fmt.Printf("  %s %.1f kg\n", faint.Sprint("weight"), *r.Weight)
		}
		if r.BloodSugar != nil {
			fmt.Printf("  %s %.1f\n", faint.Sprint("blood sugar"), *r.BloodSugar)
		}
		return nil
	},
}

func resolveDate(s string) (models.Date, error) {
	if s == "" {
		return models.Today(), nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", s)
	}
	return d, nil
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "date to log (YYYY-MM-DD, default today)")
	logCmd.Flags().Float64Var(&logTreadmill, "treadmill", 0, "treadmill time in minutes")
	logCmd.Flags().IntVar(&logSteps, "steps", 0, "step count for the day")
	logCmd.Flags().Float64Var(&logLunchWalk, "lunch-walk", 0, "lunch walk time in minutes")
	logCmd.Flags().BoolVar(&logStrength, "strength", false, "strength training completed")
	logCmd.Flags().Float64Var(&logWeight, "weight", 0, "weight in kg (0 = not measured)")
	logCmd.Flags().Float64Var(&logBloodSugar, "blood-sugar", 0, "blood sugar reading (0 = not measured)")
	logCmd.Flags().StringVar(&logMood, "mood", "", "mood and energy note (max 256 chars)")
	rootCmd.AddCommand(logCmd)
}
