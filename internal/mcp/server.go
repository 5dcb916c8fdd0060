// Package mcp exposes the training data as an MCP server so agents can
// query catalog, history, and home-view aggregates over stdio.
package mcp

import (
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronLog training data server. Query workout types, the exercise catalog, completed session history, session details, and home-view stats. All data is scoped to the signed-in user."),
	)

	h := &handlers{ds: ds, log: log, now: time.Now}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListWorkoutTypes, Handler: h.listWorkoutTypes},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetHistory, Handler: h.getHistory},
		server.ServerTool{Tool: toolGetSessionDetail, Handler: h.getSessionDetail},
		server.ServerTool{Tool: toolGetHomeStats, Handler: h.getHomeStats},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resRecentHistory, Handler: h.recentHistory},
		server.ServerResource{Resource: resHomeSummary, Handler: h.homeSummary},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers. now is
// injectable so aggregate tests can pin the clock.
type handlers struct {
	ds  DataSource
	log *slog.Logger
	now func() time.Time
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"ironlog://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises with muscle groups and instructions, sorted by name"),
	mcp.WithMIMEType("application/json"),
)

var resRecentHistory = mcp.NewResource(
	"ironlog://recent_history",
	"Recent History",
	mcp.WithResourceDescription("Completed sessions from the last 14 days, grouped by date"),
	mcp.WithMIMEType("application/json"),
)

var resHomeSummary = mcp.NewResource(
	"ironlog://home_summary",
	"Home Summary",
	mcp.WithResourceDescription("This-week and all-time totals, the 7-day volume series, and the most recent workout"),
	mcp.WithMIMEType("application/json"),
)
