// ABOUTME: CLI command for listing recent entries.
// ABOUTME: Shows the last few logged days, newest first.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:     "recent",
	Aliases: []string{"ls"},
	Short:   "List recent entries",
	Long: `List the most recently logged days, newest first.

Examples:
  lifestyle recent          # Last 7 entries
  lifestyle recent -n 14    # Last 14 entries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records := loadSnapshot()
		if len(records) == 0 {
			fmt.Println("No entries logged yet.")
			return nil
		}

		keys := make([]string, 0, len(records))
		for k := range records {
			keys = append(keys, k)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
		if recentLimit > 0 && len(keys) > recentLimit {
			keys = keys[:recentLimit]
		}

		faint := color.New(color.Faint)
		for _, k := range keys {
			r := records[k]
			extras := ""
			if r.Weight != nil {
				extras += fmt.Sprintf("  %.1fkg", *r.Weight)
			}
			if r.MoodNote != "" {
				extras += faint.Sprintf("  (%s)", truncate(r.MoodNote, 30))
			}
			fmt.Printf("%s %s tread %3.0f  steps %6d  lunch %3.0f  str %s%s\n",
				k,
				faint.Sprintf("wk %2d", r.Week),
				r.TreadmillMinutes, r.Steps, r.LunchWalkMinutes,
				strengthMark(r.StrengthTraining), extras)
		}
		return nil
	},
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 7, "max number of entries")
	rootCmd.AddCommand(recentCmd)
}
