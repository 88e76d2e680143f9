// ABOUTME: CLI command for the all-time view.
// ABOUTME: Prints overall stats, program progress, and an optional trend series.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harperreed/lifestyle/internal/program"
)

var summaryTrend bool

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"all", "s"},
	Short:   "Show all-time summary and program progress",
	Long: `Show aggregate statistics over the entire record history, program
completion percent (days logged out of 210), and optionally the full
chronological trend series.

Examples:
  lifestyle summary
  lifestyle summary --trend`,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := reporter.AllTime(loadSnapshot())
		s := view.Summary

		if s.DayCount == 0 {
			fmt.Println("No data logged yet.")
			return nil
		}

		fmt.Printf("All-time · %d days logged · %.1f%% of the %d-week program\n",
			s.DayCount, view.ProgressPercent, program.Weeks)
		fmt.Printf("  treadmill      %.0f min total, %.1f min/day\n", s.TreadmillTotal, s.TreadmillAvg)
		fmt.Printf("  steps          %d total, %.0f/day\n", s.StepsTotal, s.StepsAvg)
		fmt.Printf("  lunch walks    %.0f min total, %.1f min/day\n", s.LunchWalkTotal, s.LunchWalkAvg)
		fmt.Printf("  exercise time  %.0f min total, %.1f min/day\n", s.ExerciseTimeTotal, s.ExerciseTimeAvg)
		fmt.Printf("  strength       %d sessions\n", s.StrengthSessions)
		if s.WeightAvg > 0 {
			fmt.Printf("  weight         %.1f kg avg, %.1f kg latest", s.WeightAvg, s.WeightLatest)
			if s.WeightChange != 0 {
				fmt.Printf(", %+.1f kg change", s.WeightChange)
			}
			fmt.Println()
		}
		if s.BloodSugarAvg > 0 {
			fmt.Printf("  blood sugar    %.1f avg\n", s.BloodSugarAvg)
		}

		if summaryTrend {
			fmt.Println()
			fmt.Printf("%-11s %6s %7s %6s %9s %7s\n",
				"Date", "Tread", "Steps", "Lunch", "Exercise", "Weight")
			for _, p := range view.Series {
				weight := "-"
				if p.Weight != nil {
					weight = fmt.Sprintf("%.1f", *p.Weight)
				}
				fmt.Printf("%-11s %6.0f %7s %6.0f %9.1f %7s\n",
					p.Date, p.TreadmillMinutes, strconv.Itoa(p.Steps),
					p.LunchWalkMinutes, p.ExerciseMinutes, weight)
			}
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryTrend, "trend", false, "print the per-day trend series")
	rootCmd.AddCommand(summaryCmd)
}
