package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/claude/ironlog/internal/api"
	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/stats"
	tea "github.com/charmbracelet/bubbletea"
)

type staticTokens struct{}

func (staticTokens) IDToken(ctx context.Context) (string, error) { return "test-token", nil }

func testModel() model {
	log := slog.New(slog.DiscardHandler)
	client := api.New("http://api.invalid", staticTokens{}, log)
	m := newModel(context.Background(), client, log)
	m.width = 80
	m.height = 24
	m.now = func() time.Time { return time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC) }
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTabSwitching(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(keyMsg("3"))
	m = updated.(model)
	if m.activeTab != tabWorkout {
		t.Fatalf("activeTab = %d, want workout", m.activeTab)
	}

	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(model)
	if m.activeTab != tabHistory {
		t.Errorf("activeTab = %d after tab, want history", m.activeTab)
	}

	// Wraps from the last tab back to the first.
	updated, _ = m.Update(keyMsg("5"))
	m = updated.(model)
	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(model)
	if m.activeTab != tabHome {
		t.Errorf("activeTab = %d after wrap, want home", m.activeTab)
	}
}

func TestHelpModalToggle(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(keyMsg("?"))
	m = updated.(model)
	if m.modal.kind != modalHelp {
		t.Fatal("help modal should be open")
	}

	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(model)
	if m.modal.kind != modalNone {
		t.Error("help modal should be closed")
	}
}

func TestExerciseFilter(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(exercisesLoadedMsg{exercises: []models.Exercise{
		{ExerciseID: "2", Name: "Squat", MuscleGroup: "Legs"},
		{ExerciseID: "1", Name: "Bench Press", MuscleGroup: "Chest"},
	}})
	m = updated.(model)

	// Loading sorts by name.
	visible := m.visibleExercises()
	if len(visible) != 2 || visible[0].Name != "Bench Press" {
		t.Fatalf("visible = %+v, want sorted", visible)
	}

	m.queryInput.SetValue("legs")
	visible = m.visibleExercises()
	if len(visible) != 1 || visible[0].Name != "Squat" {
		t.Errorf("filtered = %+v, want only Squat", visible)
	}
}

func TestHistoryRowsCompletedOnly(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(historyLoadedMsg{sessions: []models.Session{
		{SessionID: "a", Status: "COMPLETED", CreatedAt: "2025-01-06T10:00:00Z"},
		{SessionID: "b", Status: "IN_PROGRESS", CreatedAt: "2025-01-07T10:00:00Z"},
		{SessionID: "c", Status: "COMPLETED", CreatedAt: "2025-01-07T09:00:00Z"},
	}})
	m = updated.(model)

	rows := m.historyRows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].SessionID != "c" {
		t.Errorf("first row = %s, want newest date first", rows[0].SessionID)
	}
}

func TestHistoryLoadErrorSetsStatus(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(historyLoadedMsg{err: errors.New("api down")})
	m = updated.(model)
	if m.statusLevel != statusError {
		t.Errorf("statusLevel = %d, want error", m.statusLevel)
	}
	if m.sessionsLoaded {
		t.Error("sessionsLoaded should stay false on error")
	}
}

func TestLogTabWaitsForBothLoads(t *testing.T) {
	m := testModel()
	m.activeTab = tabLog

	updated, _ := m.Update(typesLoadedMsg{types: []models.WorkoutType{{TypeID: "t1", Name: "Push Day"}}})
	m = updated.(model)
	if !strings.Contains(m.viewLog(), "Loading") {
		t.Error("log tab should wait for the workout list")
	}

	updated, _ = m.Update(workoutsLoadedMsg{workouts: []models.Workout{{WorkoutName: "Push Day", CreatedAt: "2025-01-07T10:00:00Z"}}})
	m = updated.(model)
	view := m.viewLog()
	if !strings.Contains(view, "Push Day") {
		t.Errorf("log tab missing content:\n%s", view)
	}
	if strings.Contains(view, "Loading") {
		t.Error("log tab still loading after both loads")
	}
}

func TestRenderVolumeChartScaling(t *testing.T) {
	days := []stats.DayVolume{
		{Date: "2025-01-07", Label: "Tue", Volume: 0},
		{Date: "2025-01-08", Label: "Wed", Volume: 600},
	}
	chart := renderVolumeChart(days, 1)
	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if strings.Contains(lines[0], "=") {
		t.Error("zero-volume day should have no bar")
	}
	if !strings.Contains(lines[1], strings.Repeat("=", 30)) {
		t.Error("max day should have a full bar")
	}
}

func TestCompleteWithoutWorkoutIsNoop(t *testing.T) {
	m := testModel()
	m.activeTab = tabWorkout

	updated, cmd := m.Update(keyMsg("c"))
	m = updated.(model)
	if cmd != nil {
		t.Error("c without an active workout should not issue a command")
	}
	if m.modal.kind != modalNone {
		t.Error("no modal should open without an active workout")
	}
}

// TestBusyGatesLedgerKeys verifies ledger keys are ignored while a builder
// command is in flight: its result message arrives on the update loop, and
// mutating the ledger before then would race the pending save.
func TestBusyGatesLedgerKeys(t *testing.T) {
	m := testModel()
	m.activeTab = tabWorkout
	m.busy = true

	for _, key := range []string{"n", "a", "s", "d", "x", "c", "enter"} {
		updated, cmd := m.Update(keyMsg(key))
		m = updated.(model)
		if cmd != nil {
			t.Errorf("key %q issued a command while busy", key)
		}
		if m.inputMode != inputNone || m.modal.kind != modalNone {
			t.Errorf("key %q opened input or modal while busy", key)
		}
	}
	if !strings.Contains(m.status, "Waiting") {
		t.Errorf("status = %q, want a waiting notice", m.status)
	}

	// Adding from the exercises tab mutates the same ledger.
	m.activeTab = tabExercises
	m.exercises = []models.Exercise{{ExerciseID: "e1", Name: "Bench Press"}}
	updated, cmd := m.Update(keyMsg("a"))
	m = updated.(model)
	if cmd != nil || m.activeTab != tabExercises {
		t.Error("adding an exercise should be ignored while busy")
	}
}

// TestResultMessagesClearBusy verifies each in-flight command's result
// message re-enables input, on success and on failure alike.
func TestResultMessagesClearBusy(t *testing.T) {
	msgs := []tea.Msg{
		workoutStartedMsg{title: "Push Day"},
		setSavedMsg{setNumber: 1},
		completedMsg{err: errors.New("boom")},
	}
	for _, msg := range msgs {
		m := testModel()
		m.busy = true
		updated, _ := m.Update(msg)
		if updated.(model).busy {
			t.Errorf("%T left the model busy", msg)
		}
	}
}

func TestWorkoutStartedSwitchesTab(t *testing.T) {
	m := testModel()
	m.activeTab = tabHome

	updated, _ := m.Update(workoutStartedMsg{title: "Push Day"})
	m = updated.(model)
	if m.activeTab != tabWorkout {
		t.Error("starting a workout should land on the workout tab")
	}
	if m.statusLevel != statusInfo {
		t.Errorf("statusLevel = %d, want info", m.statusLevel)
	}
}
