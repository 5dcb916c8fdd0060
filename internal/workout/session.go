package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/claude/ironlog/internal/models"
)

// SessionAPI is the slice of the API client the builder needs. *api.Client
// satisfies it.
type SessionAPI interface {
	CreateSession(ctx context.Context, title string) (string, error)
	SaveSet(ctx context.Context, sessionID string, set models.SetRecord) error
	CompleteSession(ctx context.Context, sessionID string) (*models.Session, error)
}

// SetEntry is one row of an exercise's set ledger. Reps and Weight stay as
// the user's raw input until the set is saved; Saved rows are immutable.
type SetEntry struct {
	SetNumber int
	Reps      string
	Weight    string
	Saved     bool
}

// WorkoutExercise is one exercise in the active session with its ledger.
type WorkoutExercise struct {
	Exercise models.Exercise
	Sets     []SetEntry
}

// ValidationError reports rejected set input. No request is made when one
// is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	ErrNoSession       = errors.New("no active session")
	ErrSetSaved        = errors.New("set already saved")
	ErrNoSavedSets     = errors.New("no saved sets")
	ErrUnknownExercise = errors.New("exercise not in session")
	ErrUnknownSet      = errors.New("no such set")
	ErrResting         = errors.New("rest in progress")
	ErrDeclined        = errors.New("completion declined")
)

// Builder holds the client-side state of one in-progress workout session.
// It is safe for concurrent use: the view layer reads it while saves run on
// other goroutines. The lock is never held across a network call; methods
// that make one re-find their entry afterwards, because the ledger may have
// moved underneath them in the meantime.
type Builder struct {
	api     SessionAPI
	confirm func(prompt string) bool
	timer   *RestTimer
	log     *slog.Logger

	mu        sync.Mutex
	sessionID string
	title     string
	exercises []*WorkoutExercise
}

// NewBuilder returns an idle builder. confirm gates completion while unsaved
// sets exist; a nil confirm declines.
func NewBuilder(api SessionAPI, confirm func(string) bool, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{api: api, confirm: confirm, timer: NewRestTimer(), log: log}
}

// StartWorkout creates a server session and begins a local one. Any previous
// local state is discarded only after the server call succeeds.
func (b *Builder) StartWorkout(ctx context.Context, title string) error {
	id, err := b.api.CreateSession(ctx, title)
	if err != nil {
		return fmt.Errorf("start workout: %w", err)
	}
	b.mu.Lock()
	b.timer.Stop()
	b.sessionID = id
	b.title = title
	b.exercises = nil
	b.mu.Unlock()
	b.log.Info("workout started", "sessionId", id, "title", title)
	return nil
}

// AddExercise adds an exercise to the session with an empty ledger.
// Adding an exercise already present is a no-op.
func (b *Builder) AddExercise(ex models.Exercise) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sessionID == "" {
		return ErrNoSession
	}
	if b.find(ex.ExerciseID) != nil {
		return nil
	}
	b.exercises = append(b.exercises, &WorkoutExercise{Exercise: ex})
	return nil
}

// RemoveExercise drops an exercise and its ledger, saved sets included --
// saved sets already live on the server. Stops the rest timer if the
// removed exercise owned it.
func (b *Builder) RemoveExercise(exerciseID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sessionID == "" {
		return ErrNoSession
	}
	for i, we := range b.exercises {
		if we.Exercise.ExerciseID == exerciseID {
			b.exercises = append(b.exercises[:i], b.exercises[i+1:]...)
			if b.timer.RestingFor(exerciseID) {
				b.timer.Stop()
			}
			return nil
		}
	}
	return ErrUnknownExercise
}

// AddSet appends an empty set numbered one past the exercise's current
// maximum. Rejected while the exercise is resting; StartNextSet is the
// path out of rest.
func (b *Builder) AddSet(exerciseID string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sessionID == "" {
		return 0, ErrNoSession
	}
	if b.timer.RestingFor(exerciseID) {
		return 0, ErrResting
	}
	we := b.find(exerciseID)
	if we == nil {
		return 0, ErrUnknownExercise
	}
	max := 0
	for _, s := range we.Sets {
		if s.SetNumber > max {
			max = s.SetNumber
		}
	}
	n := max + 1
	we.Sets = append(we.Sets, SetEntry{SetNumber: n})
	return n, nil
}

// StartNextSet ends the exercise's rest and opens its next set.
func (b *Builder) StartNextSet(exerciseID string) (int, error) {
	if b.timer.RestingFor(exerciseID) {
		b.timer.Stop()
	}
	return b.AddSet(exerciseID)
}

// EditSet updates an unsaved set's reps and weight. Editing a saved set is
// rejected; the server copy is the record.
func (b *Builder) EditSet(exerciseID string, setNumber int, reps, weight string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sessionID == "" {
		return ErrNoSession
	}
	set, err := b.findSet(exerciseID, setNumber)
	if err != nil {
		return err
	}
	if set.Saved {
		return ErrSetSaved
	}
	set.Reps = reps
	set.Weight = weight
	return nil
}

// DeleteSet removes an unsaved set from the ledger. Saved sets cannot be
// deleted.
func (b *Builder) DeleteSet(exerciseID string, setNumber int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sessionID == "" {
		return ErrNoSession
	}
	we := b.find(exerciseID)
	if we == nil {
		return ErrUnknownExercise
	}
	for i, s := range we.Sets {
		if s.SetNumber == setNumber {
			if s.Saved {
				return ErrSetSaved
			}
			we.Sets = append(we.Sets[:i], we.Sets[i+1:]...)
			return nil
		}
	}
	return ErrUnknownSet
}

// SaveSet validates a set's input, records it on the server with the rest
// seconds counted since the previous save, marks it saved, and starts the
// rest timer for the exercise. Validation failures make no request. The
// ledger is unlocked while the request is in flight; set numbers are never
// reused, so the entry is re-found by number afterwards. If it was deleted
// in the meantime the server copy stands and there is nothing to mark.
func (b *Builder) SaveSet(ctx context.Context, exerciseID string, setNumber int) error {
	b.mu.Lock()
	if b.sessionID == "" {
		b.mu.Unlock()
		return ErrNoSession
	}
	sessionID := b.sessionID
	set, err := b.findSet(exerciseID, setNumber)
	if err != nil {
		b.mu.Unlock()
		return err
	}
	if set.Saved {
		b.mu.Unlock()
		return ErrSetSaved
	}
	reps, weight, err := parseSet(set.Reps, set.Weight)
	if err != nil {
		b.mu.Unlock()
		return err
	}
	rec := models.SetRecord{
		ExerciseID:  exerciseID,
		SetNumber:   setNumber,
		Reps:        reps,
		Weight:      weight,
		RestSeconds: b.timer.Elapsed(),
	}
	b.mu.Unlock()

	if err := b.api.SaveSet(ctx, sessionID, rec); err != nil {
		return fmt.Errorf("save set: %w", err)
	}

	b.mu.Lock()
	if set, err := b.findSet(exerciseID, setNumber); err == nil {
		set.Saved = true
	}
	if b.find(exerciseID) != nil {
		b.timer.Start(exerciseID)
	}
	b.mu.Unlock()
	b.log.Info("set saved", "sessionId", sessionID, "exerciseId", exerciseID, "set", setNumber)
	return nil
}

// parseSet turns the raw inputs into positive finite numbers.
func parseSet(reps, weight string) (float64, float64, error) {
	r, err := parsePositive(reps)
	if err != nil {
		return 0, 0, &ValidationError{Reason: "reps must be a positive number"}
	}
	w, err := parsePositive(weight)
	if err != nil {
		return 0, 0, &ValidationError{Reason: "weight must be a positive number"}
	}
	return r, w, nil
}

func parsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.New("out of range")
	}
	return v, nil
}

// HasSaved reports whether any set has been recorded on the server.
func (b *Builder) HasSaved() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hasSaved()
}

// HasUnsaved reports whether any set is still local-only.
func (b *Builder) HasUnsaved() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hasUnsaved()
}

func (b *Builder) hasSaved() bool {
	for _, we := range b.exercises {
		for _, s := range we.Sets {
			if s.Saved {
				return true
			}
		}
	}
	return false
}

func (b *Builder) hasUnsaved() bool {
	for _, we := range b.exercises {
		for _, s := range we.Sets {
			if !s.Saved {
				return true
			}
		}
	}
	return false
}

// CompleteWorkout finishes the session. It requires at least one saved set,
// asks for confirmation when unsaved sets would be discarded, stops the
// rest timer, and clears local state only after the server confirms. On
// failure the session and ledger stay intact so the user can retry.
func (b *Builder) CompleteWorkout(ctx context.Context) (*models.Session, error) {
	b.mu.Lock()
	if b.sessionID == "" {
		b.mu.Unlock()
		return nil, ErrNoSession
	}
	if !b.hasSaved() {
		b.mu.Unlock()
		return nil, ErrNoSavedSets
	}
	sessionID := b.sessionID
	unsaved := b.hasUnsaved()
	b.mu.Unlock()

	// The confirm hook may block on the user; never under the lock.
	if unsaved {
		if b.confirm == nil || !b.confirm("Unsaved sets will be discarded. Finish anyway?") {
			return nil, ErrDeclined
		}
	}
	b.timer.Stop()
	done, err := b.api.CompleteSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("complete workout: %w", err)
	}
	b.mu.Lock()
	if b.sessionID == sessionID {
		b.sessionID = ""
		b.title = ""
		b.exercises = nil
	}
	b.mu.Unlock()
	b.log.Info("workout completed", "sessionId", sessionID)
	return done, nil
}

func (b *Builder) find(exerciseID string) *WorkoutExercise {
	for _, we := range b.exercises {
		if we.Exercise.ExerciseID == exerciseID {
			return we
		}
	}
	return nil
}

func (b *Builder) findSet(exerciseID string, setNumber int) (*SetEntry, error) {
	we := b.find(exerciseID)
	if we == nil {
		return nil, ErrUnknownExercise
	}
	for i := range we.Sets {
		if we.Sets[i].SetNumber == setNumber {
			return &we.Sets[i], nil
		}
	}
	return nil, ErrUnknownSet
}

// Active reports whether a session is in progress.
func (b *Builder) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessionID != ""
}

// SessionID returns the server id of the active session, "" when idle.
func (b *Builder) SessionID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessionID
}

// Title returns the active session's title.
func (b *Builder) Title() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title
}

// Exercises returns a snapshot of the session's exercises in the order
// added. Callers get copies; in-flight saves cannot move under a render.
func (b *Builder) Exercises() []WorkoutExercise {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]WorkoutExercise, len(b.exercises))
	for i, we := range b.exercises {
		out[i] = WorkoutExercise{
			Exercise: we.Exercise,
			Sets:     append([]SetEntry(nil), we.Sets...),
		}
	}
	return out
}

// Timer returns the session's rest timer for rendering.
func (b *Builder) Timer() *RestTimer { return b.timer }
