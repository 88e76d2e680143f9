// ABOUTME: CLI command for the weekly view.
// ABOUTME: Prints the week summary and a per-day breakdown for all 7 dates.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/harperreed/lifestyle/internal/program"
)

var weekCmd = &cobra.Command{
	Use:     "week <1-30>",
	Aliases: []string{"w"},
	Short:   "Show a program week's summary",
	Long: `Show summary statistics for one program week plus a per-day
breakdown of all seven dates. Days without an entry show "-" so a skipped
day never looks like a zero-exercise day.

Examples:
  lifestyle week 1
  lifestyle week 17`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := strconv.Atoi(args[0])
		if err != nil || week < 1 || week > program.Weeks {
			return fmt.Errorf("invalid week: %s (use 1-%d)", args[0], program.Weeks)
		}

		view := reporter.Weekly(loadSnapshot(), week)
		s := view.Summary

		fmt.Printf("Week %d of %d · %s to %s\n", view.Week, program.Weeks, view.Start, view.End)
		if s.DayCount == 0 {
			fmt.Println("No data logged for this week yet.")
			return nil
		}

		fmt.Printf("  days logged    %d\n", s.DayCount)
		fmt.Printf("  treadmill      %.0f min total\n", s.TreadmillTotal)
		fmt.Printf("  steps          %d total\n", s.StepsTotal)
		fmt.Printf("  lunch walks    %.0f min total\n", s.LunchWalkTotal)
		fmt.Printf("  exercise time  %.1f min total, %.1f min/day\n", s.ExerciseTimeTotal, s.ExerciseTimeAvg)
		fmt.Printf("  strength       %d sessions\n", s.StrengthSessions)
		if s.WeightAvg > 0 {
			fmt.Printf("  weight         %.1f kg avg\n", s.WeightAvg)
		}

		fmt.Println()
		printRow("Day", "Date", "Tread", "Steps", "Lunch", "Exercise", "Str", "Weight")
		for _, cell := range view.Days {
			day := cell.Date.Weekday().String()[:3]
			if cell.Missing() {
				printRow(day, cell.Date.String(), "-", "-", "-", "-", "-", "-")
				continue
			}
			r := cell.Record
			weight := "-"
			if r.Weight != nil {
				weight = fmt.Sprintf("%.1f", *r.Weight)
			}
			printRow(day, cell.Date.String(),
				fmt.Sprintf("%.0f", r.TreadmillMinutes),
				strconv.Itoa(r.Steps),
				fmt.Sprintf("%.0f", r.LunchWalkMinutes),
				fmt.Sprintf("%.1f", cell.ExerciseMinutes()),
				strengthMark(r.StrengthTraining),
				weight)
		}
		return nil
	},
}

func printRow(cols ...string) {
	widths := []int{4, 11, 6, 7, 6, 9, 4, 7}
	var b strings.Builder
	for i, col := range cols {
		b.WriteString(padRight(col, widths[i]))
		b.WriteString(" ")
	}
	fmt.Println(strings.TrimRight(b.String(), " "))
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

// strengthMark is the uncolored variant for fixed-width table cells.
func strengthMark(done bool) string {
	if done {
		return "yes"
	}
	return "-"
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
