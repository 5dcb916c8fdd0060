package mcp

import (
	"context"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/stats"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListWorkoutTypes = mcp.NewTool("list_workout_types",
	mcp.WithDescription("List the workout type templates available for quick logging."),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise catalog, sorted by name. Optionally filter by a name or muscle-group substring."),
	mcp.WithString("query", mcp.Description("Case-insensitive filter matched against exercise name and muscle group")),
)

var toolGetHistory = mcp.NewTool("get_history",
	mcp.WithDescription("Completed training sessions grouped by calendar date, newest date first. Each session carries its set count and total volume."),
	mcp.WithString("date", mcp.Description("Restrict to one day (YYYY-MM-DD)")),
)

var toolGetSessionDetail = mcp.NewTool("get_session_detail",
	mcp.WithDescription("One session's recorded sets grouped by exercise, set numbers ascending within each exercise."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from get_history")),
)

var toolGetHomeStats = mcp.NewTool("get_home_stats",
	mcp.WithDescription("Home-view aggregates: this-week (Monday start) and all-time totals, the 7-day volume series, and the most recent workout."),
)

// --- Tool handlers ---

func (h *handlers) listWorkoutTypes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	types, err := h.ds.ListWorkoutTypes(ctx)
	if err != nil {
		h.log.Error("mcp list_workout_types", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(types)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	models.SortExercises(exercises)
	if q := req.GetString("query", ""); q != "" {
		exercises = models.FilterExercises(exercises, q)
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := h.ds.ListHistory(ctx)
	if err != nil {
		h.log.Error("mcp get_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	completed := stats.Completed(sessions)
	if day := req.GetString("date", ""); day != "" {
		completed = stats.SessionsOn(completed, day)
	}

	result, err := mcp.NewToolResultJSON(stats.GroupByDate(completed))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessionDetail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	detail, err := h.ds.SessionDetail(ctx, id)
	if err != nil {
		h.log.Error("mcp get_session_detail", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"session":   detail.Session,
		"exercises": stats.GroupSets(detail.Sets),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getHomeStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := h.ds.ListHistory(ctx)
	if err != nil {
		h.log.Error("mcp get_home_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	now := h.now()
	result, err := mcp.NewToolResultJSON(map[string]any{
		"summary":      stats.Summarize(sessions, now),
		"daily_volume": stats.DailyVolumes(sessions, now),
		"last_workout": stats.LastWorkout(sessions),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
