package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/internal/workouts/streak"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls and formats the results.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func (h *Handler) GetFitlogContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// DashboardSnapshotInput is the input for get_dashboard_snapshot.
type DashboardSnapshotInput struct {
	OwnerID string `json:"owner_id" jsonschema:"Owner (user) id"`
	Date    string `json:"date,omitempty" jsonschema:"Reference day (YYYY-MM-DD), today when empty"`
}

func (h *Handler) GetDashboardSnapshotTool() func(context.Context, *mcp.CallToolRequest, DashboardSnapshotInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DashboardSnapshotInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.OwnerID) == "" {
			return errorResult("owner_id is required"), nil, nil
		}

		var day *streak.CalendarDay
		if in.Date != "" {
			parsed, err := streak.ParseDay(in.Date)
			if err != nil {
				return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
			}
			day = &parsed
		}

		snapshot, err := h.service.GetSnapshot(ctx, in.OwnerID, day)
		if err != nil {
			if errors.Is(err, workouts.ErrOwnerNotFound) {
				return errorResult("No workouts recorded for owner " + in.OwnerID), nil, nil
			}
			return errorResult("Error building dashboard: " + err.Error()), nil, nil
		}
		return jsonResult(snapshot), nil, nil
	}
}

// WorkoutsForDateInput is the input for get_workouts_for_date.
type WorkoutsForDateInput struct {
	OwnerID string `json:"owner_id" jsonschema:"Owner (user) id"`
	Date    string `json:"date" jsonschema:"Day (YYYY-MM-DD)"`
}

func (h *Handler) GetWorkoutsForDateTool() func(context.Context, *mcp.CallToolRequest, WorkoutsForDateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutsForDateInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.OwnerID) == "" {
			return errorResult("owner_id is required"), nil, nil
		}
		day, err := streak.ParseDay(in.Date)
		if err != nil {
			return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}

		entries, err := h.service.ListWorkoutsForDate(ctx, in.OwnerID, day)
		if err != nil {
			return errorResult("Error listing workouts: " + err.Error()), nil, nil
		}
		if entries == nil {
			entries = []workouts.Entry{}
		}
		return jsonResult(map[string]any{
			"todaysWorkouts":     entries,
			"totalCaloriesBurnt": workouts.SumCalories(entries),
		}), nil, nil
	}
}

// ParseWorkoutTextInput is the input for parse_workout_text.
type ParseWorkoutTextInput struct {
	Text string `json:"text" jsonschema:"Workout text, blocks separated by ';' (e.g. #Legs\n-Back Squat\n-5setsX15reps\n-30kg\n-10min)"`
}

func (h *Handler) ParseWorkoutTextTool() func(context.Context, *mcp.CallToolRequest, ParseWorkoutTextInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ParseWorkoutTextInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Text) == "" {
			return errorResult("text is required"), nil, nil
		}
		return jsonResult(h.service.ParseText(in.Text)), nil, nil
	}
}
