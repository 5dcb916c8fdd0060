package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/claude/ironlog/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// fakeSource returns scripted data for the handler tests.
type fakeSource struct {
	types     []models.WorkoutType
	exercises []models.Exercise
	workouts  []models.Workout
	sessions  []models.Session
	detail    *models.SessionDetail

	err error
}

func (f *fakeSource) ListWorkoutTypes(ctx context.Context) ([]models.WorkoutType, error) {
	return f.types, f.err
}

func (f *fakeSource) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return f.exercises, f.err
}

func (f *fakeSource) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	return f.workouts, f.err
}

func (f *fakeSource) ListHistory(ctx context.Context) ([]models.Session, error) {
	return f.sessions, f.err
}

func (f *fakeSource) SessionDetail(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func testHandlers(ds DataSource) *handlers {
	return &handlers{
		ds:  ds,
		log: slog.New(slog.DiscardHandler),
		now: func() time.Time { return time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC) },
	}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// resultText unwraps the single text content of a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res.IsError {
		t.Fatalf("tool returned error result: %+v", res.Content)
	}
	if len(res.Content) != 1 {
		t.Fatalf("got %d content items, want 1", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestListExercisesSortedAndFiltered(t *testing.T) {
	ds := &fakeSource{exercises: []models.Exercise{
		{ExerciseID: "2", Name: "Squat", MuscleGroup: "Legs"},
		{ExerciseID: "1", Name: "Bench Press", MuscleGroup: "Chest"},
	}}
	h := testHandlers(ds)

	res, err := h.listExercises(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	var got []models.Exercise
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "Bench Press" {
		t.Errorf("exercises = %+v, want sorted by name", got)
	}

	res, err = h.listExercises(context.Background(), callRequest(map[string]any{"query": "legs"}))
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Squat" {
		t.Errorf("filtered = %+v, want only Squat", got)
	}
}

func TestGetHistoryGroupsCompletedOnly(t *testing.T) {
	ds := &fakeSource{sessions: []models.Session{
		{SessionID: "a", Status: "COMPLETED", CreatedAt: "2025-01-06T10:00:00Z"},
		{SessionID: "b", Status: "IN_PROGRESS", CreatedAt: "2025-01-06T11:00:00Z"},
		{SessionID: "c", Status: "COMPLETED", CreatedAt: "2025-01-07T09:00:00Z"},
	}}
	h := testHandlers(ds)

	res, err := h.getHistory(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	var groups []struct {
		Date     string           `json:"Date"`
		Sessions []models.Session `json:"Sessions"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &groups); err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Date != "2025-01-07" {
		t.Errorf("first group = %s, want newest date", groups[0].Date)
	}
	for _, g := range groups {
		for _, s := range g.Sessions {
			if s.SessionID == "b" {
				t.Error("in-progress session leaked into history")
			}
		}
	}
}

func TestGetSessionDetailRequiresID(t *testing.T) {
	h := testHandlers(&fakeSource{})
	res, err := h.getSessionDetail(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("missing session_id should produce an error result")
	}
}

func TestGetSessionDetailGroupsSets(t *testing.T) {
	ds := &fakeSource{detail: &models.SessionDetail{
		Session: models.Session{SessionID: "s1", Status: "COMPLETED"},
		Sets: []models.SetRecord{
			{ExerciseID: "bench", SetNumber: 2},
			{ExerciseID: "bench", SetNumber: 1},
			{ExerciseID: "squat", SetNumber: 1},
		},
	}}
	h := testHandlers(ds)

	res, err := h.getSessionDetail(context.Background(), callRequest(map[string]any{"session_id": "s1"}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"s1"`) {
		t.Errorf("result missing session: %s", text)
	}
	var payload struct {
		Exercises []struct {
			ExerciseID string             `json:"ExerciseID"`
			Sets       []models.SetRecord `json:"Sets"`
		} `json:"exercises"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Exercises) != 2 || payload.Exercises[0].ExerciseID != "bench" {
		t.Fatalf("exercises = %+v", payload.Exercises)
	}
	if payload.Exercises[0].Sets[0].SetNumber != 1 {
		t.Error("sets not ascending within exercise")
	}
}

func TestGetHomeStatsUsesInjectedClock(t *testing.T) {
	ds := &fakeSource{sessions: []models.Session{
		{Status: "COMPLETED", CompletedAt: "2025-01-08T10:00:00Z", SetsCount: 3, TotalVolume: 500},
	}}
	h := testHandlers(ds)

	res, err := h.getHomeStats(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	var payload struct {
		Summary struct {
			ThisWeek struct {
				Workouts int `json:"workouts"`
			} `json:"thisWeek"`
		} `json:"summary"`
		DailyVolume []struct {
			Date   string  `json:"date"`
			Volume float64 `json:"volume"`
		} `json:"daily_volume"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Summary.ThisWeek.Workouts != 1 {
		t.Errorf("this-week workouts = %d, want 1", payload.Summary.ThisWeek.Workouts)
	}
	if len(payload.DailyVolume) != 7 || payload.DailyVolume[6].Date != "2025-01-08" {
		t.Errorf("daily volume = %+v", payload.DailyVolume)
	}
	if payload.DailyVolume[6].Volume != 500 {
		t.Errorf("today's volume = %v, want 500", payload.DailyVolume[6].Volume)
	}
}

func TestToolErrorsAreResults(t *testing.T) {
	h := testHandlers(&fakeSource{err: errors.New("api down")})

	res, err := h.listWorkoutTypes(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("data source failure should produce an error result, not a protocol error")
	}
}
