// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Status and manual sync for the charm storage backend.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifestyle/internal/charm"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync lifestyle data across devices",
	Long: `Sync lifestyle data across devices using Charm Cloud. Requires the
"charm" storage backend in ~/.config/lifestyle/config.json:

  { "backend": "charm" }

Your data is E2E encrypted with your SSH key before upload; the server
never sees unencrypted records. Data syncs automatically after each
logged entry, so the commands here are for checking and forcing sync.

COMMANDS:

  status      Show sync account info and record count
  now         Push/pull pending changes immediately
  reset       Reset local data and restore from cloud (destructive)`,
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charmStore()
		if err != nil {
			return err
		}

		id, err := client.ID()
		if err != nil {
			return fmt.Errorf("failed to get charm account: %w", err)
		}

		records, err := client.LoadAll()
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		fmt.Printf("account  %s\n", id)
		fmt.Printf("records  %d\n", len(records))
		if client.IsReadOnly() {
			color.Yellow("! store is read-only (locked by another process)")
		}
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charmStore()
		if err != nil {
			return err
		}
		if err := client.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		color.Green("✓ Synced")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data from cloud (destructive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charmStore()
		if err != nil {
			return err
		}
		if err := client.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Green("✓ Local data rebuilt from Charm Cloud")
		return nil
	},
}

// charmStore returns the active store as a charm client, or an error when
// another backend is configured.
func charmStore() (*charm.Client, error) {
	client, ok := store.(*charm.Client)
	if !ok {
		return nil, fmt.Errorf("sync requires the charm backend (current: %s)", cfg.GetBackend())
	}
	return client, nil
}

func init() {
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncResetCmd)
	rootCmd.AddCommand(syncCmd)
}
