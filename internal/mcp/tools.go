// ABOUTME: MCP tool implementations for the lifestyle tracker.
// ABOUTME: Exposes day logging and the four summary views to AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lifestyle/internal/models"
	"github.com/harperreed/lifestyle/internal/program"
)

func (s *Server) registerTools() {
	// log_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_day",
		Description: "Record a day's lifestyle data (fully replaces any existing entry for the date)",
	}, s.handleLogDay)

	// get_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get one day's entry with its program week and strength availability",
	}, s.handleGetDay)

	// week_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "week_summary",
		Description: "Summary statistics and per-day breakdown for a program week (1-30)",
	}, s.handleWeekSummary)

	// month_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "month_summary",
		Description: "Summary statistics for a calendar month with week-by-week trend rows",
	}, s.handleMonthSummary)

	// alltime_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "alltime_summary",
		Description: "All-time summary statistics with program progress percent",
	}, s.handleAllTimeSummary)
}

type logDayInput struct {
	Date             string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	TreadmillMinutes float64 `json:"treadmill_minutes,omitempty" jsonschema:"Treadmill time in minutes"`
	Steps            int     `json:"steps,omitempty" jsonschema:"Step count for the day"`
	LunchWalkMinutes float64 `json:"lunch_walk_minutes,omitempty" jsonschema:"Lunch walk time in minutes"`
	StrengthTraining bool    `json:"strength_training,omitempty" jsonschema:"Whether strength training was completed (available from week 3)"`
	Weight           float64 `json:"weight,omitempty" jsonschema:"Weight in kg, omit or 0 when not recorded"`
	BloodSugar       float64 `json:"blood_sugar,omitempty" jsonschema:"Blood sugar reading, omit or 0 when not recorded"`
	MoodNote         string  `json:"mood_note,omitempty" jsonschema:"Free-text mood and energy note (max 256 chars)"`
}

type logDayOutput struct {
	Date    string `json:"date"`
	Week    int    `json:"week"`
	Message string `json:"message"`
}

type getDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type weekSummaryInput struct {
	Week int `json:"week" jsonschema:"Program week number (1-30)"`
}

type monthSummaryInput struct {
	Year  int `json:"year" jsonschema:"Calendar year"`
	Month int `json:"month" jsonschema:"Calendar month (1-12)"`
}

type allTimeSummaryInput struct{}

// Tool handlers

func (s *Server) handleLogDay(ctx context.Context, req *mcp.CallToolRequest, input logDayInput) (*mcp.CallToolResult, logDayOutput, error) {
	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, logDayOutput{}, err
	}

	r := models.NewDailyRecord(date, s.cal.WeekNumber(date))
	r.TreadmillMinutes = input.TreadmillMinutes
	r.Steps = input.Steps
	r.LunchWalkMinutes = input.LunchWalkMinutes
	r.WithWeight(input.Weight)
	r.WithBloodSugar(input.BloodSugar)
	r.WithMoodNote(input.MoodNote)

	if input.StrengthTraining {
		if !s.cal.StrengthAvailable(date) {
			return nil, logDayOutput{}, fmt.Errorf("strength training starts in week %d; %s is week %d",
				program.StrengthStartWeek, date, r.Week)
		}
		r.StrengthTraining = true
	}

	if err := r.Validate(); err != nil {
		return nil, logDayOutput{}, err
	}
	if err := s.store.Upsert(r); err != nil {
		return nil, logDayOutput{}, fmt.Errorf("failed to save record: %w", err)
	}

	return nil, logDayOutput{
		Date:    r.Key(),
		Week:    r.Week,
		Message: fmt.Sprintf("Logged %s (week %d of 30)", r.Key(), r.Week),
	}, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, any, error) {
	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	records, err := s.store.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load records: %w", err)
	}

	view := s.reporter.Daily(records, date)
	if view.Record == nil {
		return nil, map[string]any{
			"date":             view.Date.String(),
			"week":             view.Week,
			"strength_offered": view.StrengthOffered,
			"message":          "No entry logged for this date.",
		}, nil
	}
	return nil, view, nil
}

func (s *Server) handleWeekSummary(ctx context.Context, req *mcp.CallToolRequest, input weekSummaryInput) (*mcp.CallToolResult, any, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load records: %w", err)
	}
	return nil, s.reporter.Weekly(records, input.Week), nil
}

func (s *Server) handleMonthSummary(ctx context.Context, req *mcp.CallToolRequest, input monthSummaryInput) (*mcp.CallToolResult, any, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, nil, fmt.Errorf("invalid month: %d", input.Month)
	}
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load records: %w", err)
	}
	return nil, s.reporter.Monthly(records, input.Year, time.Month(input.Month)), nil
}

func (s *Server) handleAllTimeSummary(ctx context.Context, req *mcp.CallToolRequest, input allTimeSummaryInput) (*mcp.CallToolResult, any, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load records: %w", err)
	}
	return nil, s.reporter.AllTime(records), nil
}

// resolveDate parses an optional date string, defaulting to today.
func (s *Server) resolveDate(str string) (models.Date, error) {
	if str == "" {
		return models.Today(), nil
	}
	d, err := models.ParseDate(str)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", str)
	}
	return d, nil
}
