package mcp

import (
	"context"

	"github.com/claude/ironlog/internal/api"
	"github.com/claude/ironlog/internal/models"
)

// DataSource abstracts the read side of the API for MCP tools. *api.Client
// satisfies it; tests substitute a fake.
type DataSource interface {
	ListWorkoutTypes(ctx context.Context) ([]models.WorkoutType, error)
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	ListHistory(ctx context.Context) ([]models.Session, error)
	SessionDetail(ctx context.Context, sessionID string) (*models.SessionDetail, error)
}

// Compile-time check: *api.Client satisfies DataSource.
var _ DataSource = (*api.Client)(nil)
