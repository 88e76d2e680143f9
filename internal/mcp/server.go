// ABOUTME: MCP server setup for the lifestyle tracker.
// ABOUTME: Wraps the MCP server with record storage and the program calendar.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lifestyle/internal/program"
	"github.com/harperreed/lifestyle/internal/report"
	"github.com/harperreed/lifestyle/internal/storage"
)

// Server wraps the MCP server with storage access and reporting.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
	cal       *program.Calendar
	reporter  *report.Reporter
}

// NewServer creates a new MCP server over the given store and calendar.
func NewServer(store storage.Store, cal *program.Calendar) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lifestyle",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		cal:       cal,
		reporter:  report.New(cal),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
