package mcp

import (
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/internal/workouts/dashboard"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the fitlog read tools. It is served
// on /mcp by the backend and over stdio by cmd/fitlog_mcp.
func NewServer(pool *pgxpool.Pool, repo *workouts.Repo, aggregator *dashboard.Aggregator) *mcp.Server {
	return newServer(NewContextService(NewPoolSchemaRepo(pool), repo, aggregator))
}

func newServer(svc contextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitlog-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitlog_context",
		Description: "Returns the DB schema of the fitlog tables (owner, workout, reflection): columns, types, nullable, default.",
	}, h.GetFitlogContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_dashboard_snapshot",
		Description: "Returns the dashboard of an owner for a day: calories and workouts of the day, the last 7 days calories, category breakdown, current and highest streak, badges. Args: owner_id; optional date (YYYY-MM-DD), today when empty.",
	}, h.GetDashboardSnapshotTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workouts_for_date",
		Description: "Returns the workouts an owner logged on one day and their calorie total. Args: owner_id, date (YYYY-MM-DD).",
	}, h.GetWorkoutsForDateTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "parse_workout_text",
		Description: "Parses workout text without storing it and returns the workouts with calories and the rejected blocks. Use to check a submission before sending it.",
	}, h.ParseWorkoutTextTool())

	return s
}
