// ABOUTME: CLI commands for exporting and importing lifestyle data.
// ABOUTME: Full JSON dump of the record set, suitable for backup/restore.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifestyle/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export the complete record set as a JSON envelope. The dump
contains every record exactly as stored; optional fields that were never
recorded stay null, so a later import preserves the absent-vs-zero
distinction.

Examples:
  lifestyle export                   # Write JSON to stdout
  lifestyle export -o backup.json    # Save to file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := storage.ExportJSON(store)
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import records from a JSON export",
	Long: `Import records from a file produced by 'lifestyle export'.
Records for dates that already exist are fully replaced.

Example:
  lifestyle import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		count, err := storage.ImportJSON(store, data)
		if err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}
		color.Green("✓ Imported %d records", count)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
