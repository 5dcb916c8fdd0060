// Package tui is the interactive terminal client: a tabbed view over the
// home stats, exercise catalog, active workout session, history, and quick
// logging.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/ironlog/internal/api"
	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/workout"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tabKind int

const (
	tabHome tabKind = iota
	tabExercises
	tabWorkout
	tabHistory
	tabLog
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalComplete
)

type inputMode int

const (
	inputNone inputMode = iota
	inputTitle
	inputSet
	inputQuery
	inputNote
)

type confirmModal struct {
	kind        modalKind
	message     string
	confirmText string
	cancelText  string
	selected    int
}

// workoutRow is one visible line of the workout ledger: an exercise header
// (setNumber 0) or one of its sets.
type workoutRow struct {
	exerciseID string
	setNumber  int
}

type model struct {
	ctx     context.Context
	api     *api.Client
	builder *workout.Builder
	log     *slog.Logger
	now     func() time.Time

	width     int
	height    int
	activeTab tabKind
	modal     confirmModal
	inputMode inputMode

	status      string
	statusLevel statusLevel

	// busy is set while a builder command (start, save, complete) is in
	// flight; ledger mutations wait for its result message.
	busy bool

	// Home and History render from the same session list.
	sessions       []models.Session
	sessionsLoaded bool
	dayCursor      int

	exercises       []models.Exercise
	exercisesLoaded bool
	exCursor        int
	queryInput      textinput.Model

	titleInput  textinput.Model
	repsInput   textinput.Model
	weightInput textinput.Model
	setField    int
	rowCursor   int

	histCursor int
	detail     *models.SessionDetail
	detailFor  string

	workoutTypes   []models.WorkoutType
	workouts       []models.Workout
	typesLoaded    bool
	workoutsLoaded bool
	typeCursor     int
	noteInput      textinput.Model
}

// Run starts the terminal client and blocks until it exits.
func Run(ctx context.Context, client *api.Client, log *slog.Logger) error {
	if client == nil {
		return fmt.Errorf("api client is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		log = slog.Default()
	}
	program := tea.NewProgram(newModel(ctx, client, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, client *api.Client, log *slog.Logger) model {
	query := textinput.New()
	query.Placeholder = "filter exercises"
	query.CharLimit = 64

	title := textinput.New()
	title.Placeholder = "workout title"
	title.CharLimit = 80

	reps := textinput.New()
	reps.Placeholder = "reps"
	reps.CharLimit = 8
	reps.Width = 8

	weight := textinput.New()
	weight.Placeholder = "weight"
	weight.CharLimit = 8
	weight.Width = 8

	note := textinput.New()
	note.Placeholder = "note (optional)"
	note.CharLimit = 120

	// The completion gate is the modal; the builder's own confirm hook
	// never fires with unanswered questions here.
	builder := workout.NewBuilder(client, func(string) bool { return true }, log)

	return model{
		ctx:         ctx,
		api:         client,
		builder:     builder,
		log:         log,
		now:         time.Now,
		activeTab:   tabHome,
		dayCursor:   6,
		queryInput:  query,
		titleInput:  title,
		repsInput:   reps,
		weightInput: weight,
		noteInput:   note,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.loadHistoryCmd(),
		m.loadExercisesCmd(),
		m.loadTypesCmd(),
		m.loadWorkoutsCmd(),
		tickCmd(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal.kind != modalNone {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)
	case exercisesLoadedMsg:
		return m.handleExercisesLoaded(msg)
	case detailLoadedMsg:
		return m.handleDetailLoaded(msg)
	case typesLoadedMsg:
		return m.handleTypesLoaded(msg)
	case workoutsLoadedMsg:
		return m.handleWorkoutsLoaded(msg)
	case workoutStartedMsg:
		return m.handleWorkoutStarted(msg)
	case setSavedMsg:
		return m.handleSetSaved(msg)
	case completedMsg:
		return m.handleCompleted(msg)
	case workoutLoggedMsg:
		return m.handleWorkoutLogged(msg)
	}

	return m, nil
}

// --- key handling ---

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputMode != inputNone {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.builder.Timer().Stop()
		return m, tea.Quit
	case "?":
		m.modal = confirmModal{kind: modalHelp}
		return m, nil
	case "1":
		return m.activateTab(tabHome)
	case "2":
		return m.activateTab(tabExercises)
	case "3":
		return m.activateTab(tabWorkout)
	case "4":
		return m.activateTab(tabHistory)
	case "5":
		return m.activateTab(tabLog)
	case "tab", "]":
		return m.activateTab((m.activeTab + 1) % 5)
	case "shift+tab", "backtab", "[":
		return m.activateTab((m.activeTab + 4) % 5)
	}

	switch m.activeTab {
	case tabHome:
		return m.handleHomeKey(msg)
	case tabExercises:
		return m.handleExercisesKey(msg)
	case tabWorkout:
		return m.handleWorkoutKey(msg)
	case tabHistory:
		return m.handleHistoryKey(msg)
	case tabLog:
		return m.handleLogKey(msg)
	}
	return m, nil
}

func (m model) activateTab(target tabKind) (tea.Model, tea.Cmd) {
	m.activeTab = target
	return m, nil
}

func (m model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.dayCursor > 0 {
			m.dayCursor--
		}
	case "right", "l":
		if m.dayCursor < 6 {
			m.dayCursor++
		}
	case "r":
		m.sessionsLoaded = false
		return m, m.loadHistoryCmd()
	}
	return m, nil
}

func (m model) handleExercisesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleExercises()
	switch msg.String() {
	case "up", "k":
		if m.exCursor > 0 {
			m.exCursor--
		}
	case "down", "j":
		if m.exCursor < len(visible)-1 {
			m.exCursor++
		}
	case "/":
		m.inputMode = inputQuery
		m.queryInput.Focus()
	case "esc":
		m.queryInput.SetValue("")
		m.exCursor = 0
	case "a":
		if m.exCursor >= len(visible) {
			return m, nil
		}
		if m.busy {
			m.setStatus("Waiting for the server...", statusInfo)
			return m, nil
		}
		if !m.builder.Active() {
			m.setStatus("Start a workout first (tab 3, key n)", statusError)
			return m, nil
		}
		ex := visible[m.exCursor]
		if err := m.builder.AddExercise(ex); err != nil {
			m.setStatus(err.Error(), statusError)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Added %s to workout", ex.Name), statusInfo)
		m.activeTab = tabWorkout
	}
	return m, nil
}

func (m model) handleWorkoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		switch msg.String() {
		case "n", "a", "space", "enter", "s", "d", "x", "c":
			m.setStatus("Waiting for the server...", statusInfo)
			return m, nil
		}
	}

	rows := m.workoutRows()
	switch msg.String() {
	case "up", "k":
		if m.rowCursor > 0 {
			m.rowCursor--
		}
	case "down", "j":
		if m.rowCursor < len(rows)-1 {
			m.rowCursor++
		}
	case "n":
		if m.builder.Active() {
			m.setStatus("A workout is already in progress", statusError)
			return m, nil
		}
		m.inputMode = inputTitle
		m.titleInput.SetValue("")
		m.titleInput.Focus()
	case "a":
		row, ok := m.currentRow(rows)
		if !ok {
			return m, nil
		}
		if _, err := m.builder.AddSet(row.exerciseID); err != nil {
			m.setStatus(err.Error(), statusError)
			return m, nil
		}
		m.rowCursor = m.rowForNewestSet(row.exerciseID)
	case "space":
		row, ok := m.currentRow(rows)
		if !ok {
			return m, nil
		}
		if _, err := m.builder.StartNextSet(row.exerciseID); err != nil {
			m.setStatus(err.Error(), statusError)
			return m, nil
		}
		m.rowCursor = m.rowForNewestSet(row.exerciseID)
	case "enter":
		return m.beginSetEdit(rows)
	case "s":
		return m.saveCurrentSet(rows)
	case "d":
		row, ok := m.currentRow(rows)
		if !ok || row.setNumber == 0 {
			return m, nil
		}
		if err := m.builder.DeleteSet(row.exerciseID, row.setNumber); err != nil {
			m.setStatus(err.Error(), statusError)
			return m, nil
		}
		if m.rowCursor > 0 {
			m.rowCursor--
		}
	case "x":
		row, ok := m.currentRow(rows)
		if !ok {
			return m, nil
		}
		if err := m.builder.RemoveExercise(row.exerciseID); err != nil {
			m.setStatus(err.Error(), statusError)
			return m, nil
		}
		m.rowCursor = 0
	case "r":
		m.builder.Timer().Reset()
	case "c":
		if !m.builder.Active() {
			return m, nil
		}
		if !m.builder.HasSaved() {
			m.setStatus("Save at least one set before finishing", statusError)
			return m, nil
		}
		if m.builder.HasUnsaved() {
			m.modal = confirmModal{
				kind:        modalComplete,
				message:     "Unsaved sets will be discarded. Finish anyway?",
				confirmText: "Finish",
				cancelText:  "Keep going",
				selected:    1,
			}
			return m, nil
		}
		m.busy = true
		return m, m.completeCmd()
	}
	return m, nil
}

func (m model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.historyRows()
	switch msg.String() {
	case "up", "k":
		if m.histCursor > 0 {
			m.histCursor--
		}
	case "down", "j":
		if m.histCursor < len(rows)-1 {
			m.histCursor++
		}
	case "enter":
		if m.histCursor >= len(rows) {
			return m, nil
		}
		id := rows[m.histCursor].SessionID
		if id == "" || id == m.detailFor {
			return m, nil
		}
		return m, m.loadDetailCmd(id)
	case "esc":
		m.detail = nil
		m.detailFor = ""
	case "r":
		return m, m.loadHistoryCmd()
	}
	return m, nil
}

func (m model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case "down", "j":
		if m.typeCursor < len(m.workoutTypes)-1 {
			m.typeCursor++
		}
	case "enter":
		if m.typeCursor >= len(m.workoutTypes) {
			return m, nil
		}
		m.inputMode = inputNote
		m.noteInput.SetValue("")
		m.noteInput.Focus()
	case "r":
		m.typesLoaded = false
		m.workoutsLoaded = false
		return m, tea.Batch(m.loadTypesCmd(), m.loadWorkoutsCmd())
	}
	return m, nil
}

// handleInputKey routes keys to the focused text input; enter commits,
// esc cancels.
func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.cancelInput(), nil
	case "enter":
		return m.commitInput()
	case "tab", "shift+tab":
		if m.inputMode == inputSet {
			m.setField = 1 - m.setField
			if m.setField == 0 {
				m.repsInput.Focus()
				m.weightInput.Blur()
			} else {
				m.weightInput.Focus()
				m.repsInput.Blur()
			}
			return m, nil
		}
	case "ctrl+c":
		m.builder.Timer().Stop()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.inputMode {
	case inputTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case inputQuery:
		m.queryInput, cmd = m.queryInput.Update(msg)
		m.exCursor = 0
	case inputNote:
		m.noteInput, cmd = m.noteInput.Update(msg)
	case inputSet:
		if m.setField == 0 {
			m.repsInput, cmd = m.repsInput.Update(msg)
		} else {
			m.weightInput, cmd = m.weightInput.Update(msg)
		}
	}
	return m, cmd
}

func (m model) cancelInput() model {
	switch m.inputMode {
	case inputTitle:
		m.titleInput.Blur()
	case inputQuery:
		m.queryInput.Blur()
	case inputNote:
		m.noteInput.Blur()
	case inputSet:
		m.repsInput.Blur()
		m.weightInput.Blur()
	}
	m.inputMode = inputNone
	return m
}

func (m model) commitInput() (tea.Model, tea.Cmd) {
	switch m.inputMode {
	case inputTitle:
		title := m.titleInput.Value()
		if title == "" {
			title = "Workout " + m.now().Format("Jan 2")
		}
		m = m.cancelInput()
		m.busy = true
		return m, m.startWorkoutCmd(title)
	case inputQuery:
		m.queryInput.Blur()
		m.inputMode = inputNone
		return m, nil
	case inputNote:
		note := m.noteInput.Value()
		m = m.cancelInput()
		if m.typeCursor >= len(m.workoutTypes) {
			return m, nil
		}
		return m, m.logWorkoutCmd(m.workoutTypes[m.typeCursor].TypeID, note)
	case inputSet:
		row, ok := m.currentRow(m.workoutRows())
		m = m.cancelInput()
		if !ok || row.setNumber == 0 {
			return m, nil
		}
		err := m.builder.EditSet(row.exerciseID, row.setNumber, m.repsInput.Value(), m.weightInput.Value())
		if err != nil {
			m.setStatus(err.Error(), statusError)
		}
		return m, nil
	}
	return m.cancelInput(), nil
}

func (m model) beginSetEdit(rows []workoutRow) (tea.Model, tea.Cmd) {
	row, ok := m.currentRow(rows)
	if !ok || row.setNumber == 0 {
		return m, nil
	}
	set, ok := m.findSet(row)
	if !ok {
		return m, nil
	}
	if set.Saved {
		m.setStatus("Saved sets cannot be edited", statusError)
		return m, nil
	}
	m.inputMode = inputSet
	m.setField = 0
	m.repsInput.SetValue(set.Reps)
	m.weightInput.SetValue(set.Weight)
	m.repsInput.Focus()
	m.weightInput.Blur()
	return m, nil
}

func (m model) saveCurrentSet(rows []workoutRow) (tea.Model, tea.Cmd) {
	row, ok := m.currentRow(rows)
	if !ok || row.setNumber == 0 {
		return m, nil
	}
	m.busy = true
	return m, m.saveSetCmd(row.exerciseID, row.setNumber)
}

// --- modal ---

func (m model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if _, isTick := msg.(tickMsg); isTick {
			return m, tickCmd()
		}
		return m, nil
	}
	if m.modal.kind == modalHelp {
		switch key.String() {
		case "?", "esc", "enter":
			m.modal = confirmModal{kind: modalNone}
		case "ctrl+c", "q":
			m.builder.Timer().Stop()
			return m, tea.Quit
		}
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "shift+tab", "backtab":
		m.modal.selected = 1 - m.modal.selected
		return m, nil
	case "enter":
		confirm := m.modal.selected == 0
		kind := m.modal.kind
		m.modal = confirmModal{kind: modalNone}
		if confirm && kind == modalComplete {
			m.busy = true
			return m, m.completeCmd()
		}
		return m, nil
	case "esc":
		m.modal = confirmModal{kind: modalNone}
		return m, nil
	}
	return m, nil
}

// --- message handlers ---

func (m model) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("History load failed: %v", msg.err), statusError)
		return m, nil
	}
	m.sessions = msg.sessions
	m.sessionsLoaded = true
	if rows := m.historyRows(); m.histCursor >= len(rows) {
		m.histCursor = 0
	}
	return m, nil
}

func (m model) handleExercisesLoaded(msg exercisesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Exercise load failed: %v", msg.err), statusError)
		return m, nil
	}
	models.SortExercises(msg.exercises)
	m.exercises = msg.exercises
	m.exercisesLoaded = true
	m.exCursor = 0
	return m, nil
}

func (m model) handleDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Session load failed: %v", msg.err), statusError)
		return m, nil
	}
	m.detail = msg.detail
	m.detailFor = msg.sessionID
	return m, nil
}

func (m model) handleTypesLoaded(msg typesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Workout type load failed: %v", msg.err), statusError)
		return m, nil
	}
	m.workoutTypes = msg.types
	m.typesLoaded = true
	if m.typeCursor >= len(m.workoutTypes) {
		m.typeCursor = 0
	}
	return m, nil
}

func (m model) handleWorkoutsLoaded(msg workoutsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Workout load failed: %v", msg.err), statusError)
		return m, nil
	}
	m.workouts = msg.workouts
	m.workoutsLoaded = true
	return m, nil
}

func (m model) handleWorkoutStarted(msg workoutStartedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Start failed: %v", msg.err), statusError)
		return m, nil
	}
	m.activeTab = tabWorkout
	m.rowCursor = 0
	m.setStatus(fmt.Sprintf("Workout %q started", msg.title), statusInfo)
	return m, nil
}

func (m model) handleSetSaved(msg setSavedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", msg.err), statusError)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Set %d saved, rest running", msg.setNumber), statusInfo)
	return m, nil
}

func (m model) handleCompleted(msg completedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Finish failed: %v", msg.err), statusError)
		return m, nil
	}
	m.rowCursor = 0
	m.activeTab = tabHome
	m.setStatus("Workout completed", statusInfo)
	return m, m.loadHistoryCmd()
}

func (m model) handleWorkoutLogged(msg workoutLoggedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Log failed: %v", msg.err), statusError)
		return m, nil
	}
	m.setStatus("Workout logged", statusInfo)
	return m, m.loadWorkoutsCmd()
}

// --- commands ---

func (m model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.api.ListHistory(m.ctx)
		return historyLoadedMsg{sessions: sessions, err: err}
	}
}

func (m model) loadExercisesCmd() tea.Cmd {
	return func() tea.Msg {
		exercises, err := m.api.ListExercises(m.ctx)
		return exercisesLoadedMsg{exercises: exercises, err: err}
	}
}

func (m model) loadDetailCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.api.SessionDetail(m.ctx, sessionID)
		return detailLoadedMsg{sessionID: sessionID, detail: detail, err: err}
	}
}

func (m model) loadTypesCmd() tea.Cmd {
	return func() tea.Msg {
		types, err := m.api.ListWorkoutTypes(m.ctx)
		return typesLoadedMsg{types: types, err: err}
	}
}

func (m model) loadWorkoutsCmd() tea.Cmd {
	return func() tea.Msg {
		workouts, err := m.api.ListWorkouts(m.ctx)
		return workoutsLoadedMsg{workouts: workouts, err: err}
	}
}

func (m model) startWorkoutCmd(title string) tea.Cmd {
	return func() tea.Msg {
		err := m.builder.StartWorkout(m.ctx, title)
		return workoutStartedMsg{title: title, err: err}
	}
}

func (m model) saveSetCmd(exerciseID string, setNumber int) tea.Cmd {
	return func() tea.Msg {
		err := m.builder.SaveSet(m.ctx, exerciseID, setNumber)
		return setSavedMsg{exerciseID: exerciseID, setNumber: setNumber, err: err}
	}
}

func (m model) completeCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.builder.CompleteWorkout(m.ctx)
		return completedMsg{session: session, err: err}
	}
}

func (m model) logWorkoutCmd(typeID, note string) tea.Cmd {
	return func() tea.Msg {
		w, err := m.api.CreateWorkout(m.ctx, typeID, note)
		return workoutLoggedMsg{workout: w, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// --- row helpers ---

func (m model) visibleExercises() []models.Exercise {
	return models.FilterExercises(m.exercises, m.queryInput.Value())
}

func (m model) workoutRows() []workoutRow {
	var rows []workoutRow
	for _, we := range m.builder.Exercises() {
		rows = append(rows, workoutRow{exerciseID: we.Exercise.ExerciseID})
		for _, s := range we.Sets {
			rows = append(rows, workoutRow{exerciseID: we.Exercise.ExerciseID, setNumber: s.SetNumber})
		}
	}
	return rows
}

func (m model) currentRow(rows []workoutRow) (workoutRow, bool) {
	if m.rowCursor < 0 || m.rowCursor >= len(rows) {
		return workoutRow{}, false
	}
	return rows[m.rowCursor], true
}

// rowForNewestSet returns the cursor position of an exercise's last set.
func (m model) rowForNewestSet(exerciseID string) int {
	rows := m.workoutRows()
	last := 0
	for i, r := range rows {
		if r.exerciseID == exerciseID {
			last = i
		}
	}
	return last
}

func (m model) findSet(row workoutRow) (workout.SetEntry, bool) {
	for _, we := range m.builder.Exercises() {
		if we.Exercise.ExerciseID != row.exerciseID {
			continue
		}
		for _, s := range we.Sets {
			if s.SetNumber == row.setNumber {
				return s, true
			}
		}
	}
	return workout.SetEntry{}, false
}

// historyRows flattens the date groups into selectable session rows.
func (m model) historyRows() []models.Session {
	var rows []models.Session
	for _, g := range m.historyGroups() {
		rows = append(rows, g.Sessions...)
	}
	return rows
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

// --- messages ---

type tickMsg time.Time

type historyLoadedMsg struct {
	sessions []models.Session
	err      error
}

type exercisesLoadedMsg struct {
	exercises []models.Exercise
	err       error
}

type detailLoadedMsg struct {
	sessionID string
	detail    *models.SessionDetail
	err       error
}

type typesLoadedMsg struct {
	types []models.WorkoutType
	err   error
}

type workoutsLoadedMsg struct {
	workouts []models.Workout
	err      error
}

type workoutStartedMsg struct {
	title string
	err   error
}

type setSavedMsg struct {
	exerciseID string
	setNumber  int
	err        error
}

type completedMsg struct {
	session *models.Session
	err     error
}

type workoutLoggedMsg struct {
	workout *models.Workout
	err     error
}
