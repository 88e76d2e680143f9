// ABOUTME: Root Cobra command for lifestyle CLI.
// ABOUTME: Handles config load and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifestyle/internal/config"
	"github.com/harperreed/lifestyle/internal/models"
	"github.com/harperreed/lifestyle/internal/program"
	"github.com/harperreed/lifestyle/internal/report"
	"github.com/harperreed/lifestyle/internal/storage"
)

var (
	cfg      *config.Config
	store    storage.Store
	cal      *program.Calendar
	reporter *report.Reporter
)

var rootCmd = &cobra.Command{
	Use:   "lifestyle",
	Short: "Daily lifestyle tracker for a 30-week health program",
	Long: `Lifestyle is a CLI tool for tracking daily habits across a fixed
30-week health program.

WHAT IT TRACKS (one entry per day):

  Exercise   treadmill minutes, step count, lunch-walk minutes
  Strength   strength-training completion (offered from week 3)
  Health     weight, blood sugar (optional; absent is never zero)
  Mood       a short free-text note

QUICK START:

  $ lifestyle log --treadmill 30 --steps 8000      # Log today
  $ lifestyle log --date 2025-06-05 --weight 82.5  # Log a past day
  $ lifestyle day                                  # Today's entry + week
  $ lifestyle week 4                               # Week summary + breakdown
  $ lifestyle month 2025-07                        # Month summary + trends
  $ lifestyle summary                              # All-time stats + progress

SUMMARIES:

  Every view is recomputed from the full record set. Exercise time is the
  composite figure treadmill + steps/100 + lunch walk, in minutes. Weight
  and blood sugar averages only count days where a value was recorded.

MCP INTEGRATION:

  Run 'lifestyle mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "lifestyle": { "command": "lifestyle", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Records live in ~/.local/share/lifestyle (a single lifestyle.json by
  default). The backend is selectable in ~/.config/lifestyle/config.json:
  "json", "sqlite", or "charm" (E2E-encrypted sync via Charm Cloud).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cal = cfg.Calendar()
		reporter = report.New(cal)

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSnapshot reads the full record set for a view. Unreadable or corrupt
// storage degrades to a warning and an empty set instead of failing.
func loadSnapshot() map[string]*models.DailyRecord {
	records, err := store.LoadAll()
	if err != nil {
		color.Yellow("! storage unreadable, proceeding with an empty record set: %v", err)
		return map[string]*models.DailyRecord{}
	}
	return records
}
