package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ServerParams struct {
	UserID   string
	Pool     *pgxpool.Pool
	Coach    digester
	Workouts workoutLister
	Stats    weeklyVolumer
}

// NewServer builds an MCP server exposing one user's training data: schema,
// coach digest, workouts in a date range and the weekly volume rollup.
// Used by cmd/coach_mcp over stdio.
func NewServer(params ServerParams) *mcp.Server {
	svc := NewContextService(params.UserID, NewPoolSchemaRepo(params.Pool), params.Coach, params.Workouts, params.Stats)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "calisthenix-coach-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_calisthenix_schema",
		Description: "Returns the DB schema of the training tables (users, workouts, exercises, exercise_library, workout_templates, workout_template_exercises, journal_entries, personal_records): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_context",
		Description: "Returns the coach digest for the user: profile, last 7 workouts with completed sets, saved templates and the last 10 personal records. Use it before giving training advice.",
	}, h.GetTrainingContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workouts_for_time_range",
		Description: "Returns the user's workouts with exercises and sets between from_date and to_date (YYYY-MM-DD, both inclusive).",
	}, h.GetWorkoutsForTimeRangeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_volume",
		Description: "Returns the training volume per day for the last 7 calendar days, ending today.",
	}, h.GetWeeklyVolumeTool())

	return s
}
