// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/lifestyle/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "lifestyle": {
        "command": "lifestyle",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_day           Record a day's lifestyle data
  get_day           Get one day's entry with week info
  week_summary      Summary + breakdown for a program week
  month_summary     Summary + weekly trends for a month
  alltime_summary   All-time stats with program progress

AVAILABLE RESOURCES:

  lifestyle://today      Today's entry and strength availability
  lifestyle://progress   All-time summary and completion percent`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, cal)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
