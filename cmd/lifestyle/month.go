// ABOUTME: CLI command for the monthly view.
// ABOUTME: Prints the month summary and a week-by-week trend table.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:     "month <YYYY-MM>",
	Aliases: []string{"m"},
	Short:   "Show a calendar month's summary",
	Long: `Show summary statistics for a calendar month, plus a trend table
aggregated per program week for the weeks that fall inside the month.

Examples:
  lifestyle month 2025-06
  lifestyle month 2025-12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month, err := parseYearMonth(args[0])
		if err != nil {
			return err
		}

		view := reporter.Monthly(loadSnapshot(), year, month)
		s := view.Summary

		fmt.Printf("%s %d\n", view.Month, view.Year)
		if s.DayCount == 0 {
			fmt.Println("No data logged for this month yet.")
			return nil
		}

		fmt.Printf("  days logged    %d\n", s.DayCount)
		fmt.Printf("  treadmill      %.1f min/day avg\n", s.TreadmillAvg)
		fmt.Printf("  steps          %.0f/day avg\n", s.StepsAvg)
		fmt.Printf("  lunch walks    %.1f min/day avg\n", s.LunchWalkAvg)
		fmt.Printf("  exercise time  %.0f min total, %.1f min/day\n", s.ExerciseTimeTotal, s.ExerciseTimeAvg)
		fmt.Printf("  strength       %d sessions\n", s.StrengthSessions)
		if s.WeightChange != 0 {
			fmt.Printf("  weight change  %+.1f kg\n", s.WeightChange)
		}

		fmt.Println()
		printRow("Week", "Days", "Tread", "Steps", "Lunch", "Exercise", "Str", "")
		for _, row := range view.Weeks {
			ws := row.Summary
			printRow(strconv.Itoa(row.Week),
				strconv.Itoa(ws.DayCount),
				fmt.Sprintf("%.1f", ws.TreadmillAvg),
				fmt.Sprintf("%.0f", ws.StepsAvg),
				fmt.Sprintf("%.1f", ws.LunchWalkAvg),
				fmt.Sprintf("%.1f", ws.ExerciseTimeAvg),
				strconv.Itoa(ws.StrengthSessions),
				"")
		}
		return nil
	},
}

func parseYearMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month: %s (use YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}

func init() {
	rootCmd.AddCommand(monthCmd)
}
