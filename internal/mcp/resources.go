// ABOUTME: MCP resource implementations for the lifestyle tracker.
// ABOUTME: Provides lifestyle://today and lifestyle://progress resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lifestyle/internal/models"
)

func (s *Server) registerResources() {
	// lifestyle://today - Today's entry, week number, and strength availability
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifestyle://today",
		Name:        "Today's Entry",
		Description: "Today's lifestyle entry with program week and strength availability",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// lifestyle://progress - All-time summary with program progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifestyle://progress",
		Name:        "Program Progress",
		Description: "All-time summary statistics and program completion percent",
		MIMEType:    "application/json",
	}, s.handleProgressResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	view := s.reporter.Daily(records, models.Today())
	return resourceResult("lifestyle://today", view)
}

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	view := s.reporter.AllTime(records)
	return resourceResult("lifestyle://progress", view)
}

func resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
