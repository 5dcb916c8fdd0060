package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/stats"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	models.SortExercises(exercises)
	return jsonContents(req, exercises)
}

func (h *handlers) recentHistory(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sessions, err := h.ds.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := h.now().AddDate(0, 0, -14).Format("2006-01-02")
	var recent []models.Session
	for _, s := range stats.Completed(sessions) {
		if s.DateKey() >= cutoff {
			recent = append(recent, s)
		}
	}
	return jsonContents(req, stats.GroupByDate(recent))
}

func (h *handlers) homeSummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sessions, err := h.ds.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	now := h.now()
	return jsonContents(req, map[string]any{
		"summary":      stats.Summarize(sessions, now),
		"daily_volume": stats.DailyVolumes(sessions, now),
		"last_workout": stats.LastWorkout(sessions),
	})
}

func jsonContents(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
