// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lifestyle/internal/program"
	"github.com/harperreed/lifestyle/internal/storage"
)

// setupTestServer creates a server over a JSON store in a temp directory,
// anchored at the default program start.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := storage.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	server, err := NewServer(store, program.Default())
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}
	if server.reporter == nil {
		t.Error("Expected non-nil reporter")
	}
}

func TestHandleLogDay(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logDayInput
		wantWeek  int
		wantErr   bool
		errSubstr string
	}{
		{
			name: "exercise only",
			input: logDayInput{
				Date:             "2025-06-02",
				TreadmillMinutes: 30,
				Steps:            8000,
			},
			wantWeek: 1,
		},
		{
			name: "all fields in week 3",
			input: logDayInput{
				Date:             "2025-06-16",
				TreadmillMinutes: 20,
				LunchWalkMinutes: 15,
				StrengthTraining: true,
				Weight:           82.5,
				BloodSugar:       95,
				MoodNote:         "felt strong",
			},
			wantWeek: 3,
		},
		{
			name: "strength before week 3",
			input: logDayInput{
				Date:             "2025-06-09",
				StrengthTraining: true,
			},
			wantErr:   true,
			errSubstr: "strength training starts in week 3",
		},
		{
			name: "unparseable date",
			input: logDayInput{
				Date: "June 2nd",
			},
			wantErr:   true,
			errSubstr: "invalid date",
		},
		{
			name: "mood note too long",
			input: logDayInput{
				Date:     "2025-06-03",
				MoodNote: strings.Repeat("x", 300),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogDay(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("Error %q should contain %q", err.Error(), tt.errSubstr)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output.Date != tt.input.Date {
				t.Errorf("Date = %s, want %s", output.Date, tt.input.Date)
			}
			if output.Week != tt.wantWeek {
				t.Errorf("Week = %d, want %d", output.Week, tt.wantWeek)
			}
			if output.Message == "" {
				t.Error("Expected non-empty Message")
			}
		})
	}
}

func TestHandleLogDayReplacesEntry(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleLogDay(ctx, &mcp.CallToolRequest{}, logDayInput{
		Date:   "2025-06-02",
		Weight: 82.5,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Logging the same date again without a weight drops the old weight.
	_, _, err = server.handleLogDay(ctx, &mcp.CallToolRequest{}, logDayInput{
		Date:  "2025-06-02",
		Steps: 5000,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	records, err := server.store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	got := records["2025-06-02"]
	if got == nil {
		t.Fatal("record missing after log")
	}
	if got.Weight != nil {
		t.Error("replacement entry should not keep the previous weight")
	}
	if got.Steps != 5000 {
		t.Errorf("Steps = %d, want 5000", got.Steps)
	}
}

func TestHandleGetDay(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleLogDay(ctx, &mcp.CallToolRequest{}, logDayInput{
		Date:             "2025-06-02",
		TreadmillMinutes: 30,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, output, err := server.handleGetDay(ctx, &mcp.CallToolRequest{}, getDayInput{
		Date: "2025-06-02",
	})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if output == nil {
		t.Error("Expected non-nil output")
	}
}

func TestHandleGetDayMissing(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleGetDay(ctx, &mcp.CallToolRequest{}, getDayInput{
		Date: "2025-07-01",
	})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	// Missing days come back as a message map, not an error.
	msg, ok := output.(map[string]any)
	if !ok {
		t.Fatalf("Expected message map output, got %T", output)
	}
	if msg["message"] == "" {
		t.Error("Expected non-empty message")
	}
	if msg["week"] != 5 {
		t.Errorf("week = %v, want 5", msg["week"])
	}
}

func TestHandleGetDayInvalidDate(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleGetDay(ctx, &mcp.CallToolRequest{}, getDayInput{
		Date: "not-a-date",
	})
	if err == nil {
		t.Error("Expected error for invalid date")
	}
}

func TestHandleWeekSummary(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleLogDay(ctx, &mcp.CallToolRequest{}, logDayInput{
		Date:             "2025-06-03",
		TreadmillMinutes: 30,
		Steps:            1000,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, output, err := server.handleWeekSummary(ctx, &mcp.CallToolRequest{}, weekSummaryInput{Week: 1})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if output == nil {
		t.Error("Expected non-nil output")
	}
}

func TestHandleMonthSummary(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleMonthSummary(ctx, &mcp.CallToolRequest{}, monthSummaryInput{
		Year:  2025,
		Month: 6,
	})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if output == nil {
		t.Error("Expected non-nil output")
	}
}

func TestHandleMonthSummaryInvalidMonth(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleMonthSummary(ctx, &mcp.CallToolRequest{}, monthSummaryInput{
		Year:  2025,
		Month: 13,
	})
	if err == nil {
		t.Error("Expected error for month 13")
	}
}

func TestHandleAllTimeSummary(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleAllTimeSummary(ctx, &mcp.CallToolRequest{}, allTimeSummaryInput{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if output == nil {
		t.Error("Expected non-nil output")
	}
}

func TestHandleTodayResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "lifestyle://today" {
		t.Errorf("URI = %s, want lifestyle://today", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}
	if result.Contents[0].Text == "" {
		t.Error("Expected non-empty Text")
	}
}

func TestHandleProgressResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleLogDay(ctx, &mcp.CallToolRequest{}, logDayInput{
		Date:             "2025-06-02",
		TreadmillMinutes: 30,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	result, err := server.handleProgressResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if result.Contents[0].URI != "lifestyle://progress" {
		t.Errorf("URI = %s, want lifestyle://progress", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, "progress_percent") {
		t.Error("Expected progress_percent in result")
	}
}

func TestHandleProgressResourceEmpty(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	result, err := server.handleProgressResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("Expected non-nil result")
	}
}
