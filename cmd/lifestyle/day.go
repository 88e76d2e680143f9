// ABOUTME: CLI command for the daily view.
// ABOUTME: Shows one date's entry, program week, and strength availability.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifestyle/internal/program"
)

var dayCmd = &cobra.Command{
	Use:     "day [date]",
	Aliases: []string{"d"},
	Short:   "Show one day's entry",
	Long: `Show the entry for a date (default today), its program week, and
whether strength training is offered that day.

Examples:
  lifestyle day               # Today
  lifestyle day 2025-06-20    # A specific date`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateArg := ""
		if len(args) == 1 {
			dateArg = args[0]
		}
		date, err := resolveDate(dateArg)
		if err != nil {
			return err
		}

		view := reporter.Daily(loadSnapshot(), date)

		faint := color.New(color.Faint)
		fmt.Printf("%s · week %d of %d\n", view.Date, view.Week, program.Weeks)
		if view.StrengthOffered {
			fmt.Println("strength training: offered")
		} else {
			fmt.Printf("strength training: starts in week %d\n", program.StrengthStartWeek)
		}

		r := view.Record
		if r == nil {
			fmt.Println("No entry logged for this date.")
			return nil
		}

		fmt.Printf("  treadmill   %.0f min\n", r.TreadmillMinutes)
		fmt.Printf("  steps       %d\n", r.Steps)
		fmt.Printf("  lunch walk  %.0f min\n", r.LunchWalkMinutes)
		fmt.Printf("  exercise    %.1f min %s\n", r.ExerciseMinutes(),
			faint.Sprint("(composite)"))
		fmt.Printf("  strength    %s\n", checkmark(r.StrengthTraining))
		if r.Weight != nil {
			fmt.Printf("  weight      %.1f kg\n", *r.Weight)
		}
		if r.BloodSugar != nil {
			fmt.Printf("  blood sugar %.1f\n", *r.BloodSugar)
		}
		if r.MoodNote != "" {
			fmt.Printf("  mood        %s\n", r.MoodNote)
		}
		return nil
	},
}

func checkmark(done bool) string {
	if done {
		return color.GreenString("✓")
	}
	return color.New(color.Faint).Sprint("-")
}

func init() {
	rootCmd.AddCommand(dayCmd)
}
