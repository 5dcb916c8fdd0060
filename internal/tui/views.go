package tui

import (
	"fmt"
	"strings"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/stats"
	"github.com/claude/ironlog/internal/workout"
	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content string
	switch m.activeTab {
	case tabHome:
		content = m.viewHome()
	case tabExercises:
		content = m.viewExercises()
	case tabWorkout:
		content = m.viewWorkout()
	case tabHistory:
		content = m.viewHistory()
	case tabLog:
		content = m.viewLog()
	}

	contentHeight := m.height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}
	pane := paneStyle.Width(m.width - 2).Height(contentHeight).Render(content)

	view := strings.Join([]string{
		m.renderTabs(),
		m.renderHelpLine(),
		pane,
		m.renderStatusLine(),
	}, "\n")

	if m.modal.kind != modalNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
	}
	return view
}

func (m model) renderTabs() string {
	labels := []string{"[1] Home", "[2] Exercises", "[3] Workout", "[4] History", "[5] Log"}
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := tabInactiveStyle
		if tabKind(i) == m.activeTab {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	hint := valueMuted.Render("Press ? for help")
	spacerWidth := m.width - lipgloss.Width(content) - lipgloss.Width(hint)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return tabBarStyle.Width(m.width).Render(content + strings.Repeat(" ", spacerWidth) + hint)
}

func (m model) renderHelpLine() string {
	var text string
	switch m.activeTab {
	case tabHome:
		text = "left/right pick day | r refresh | 1-5 tabs | q quit"
	case tabExercises:
		text = "up/down move | / filter | a add to workout | 1-5 tabs | q quit"
	case tabWorkout:
		if m.builder.Active() {
			text = "a add set | enter edit | s save | space next set | d delete | x drop exercise | r reset rest | c finish"
		} else {
			text = "n start workout | 1-5 tabs | q quit"
		}
	case tabHistory:
		text = "up/down move | enter detail | esc close | r refresh | q quit"
	case tabLog:
		text = "up/down pick type | enter log | r refresh | q quit"
	}
	return helpBarStyle.Width(m.width).Render(text)
}

func (m model) renderStatusLine() string {
	if m.status == "" {
		return ""
	}
	style := valueMuted
	switch m.statusLevel {
	case statusError:
		style = statusErrorStyle
	case statusInfo:
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func (m model) modalView() string {
	modalStyle := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
	if m.modal.kind == modalHelp {
		return modalStyle.Render(m.helpContent())
	}
	buttons := make([]string, 0, 2)
	for i, option := range []string{m.modal.confirmText, m.modal.cancelText} {
		style := valueMuted
		if i == m.modal.selected {
			style = selectedStyle
		}
		buttons = append(buttons, style.Render("["+option+"]"))
	}
	content := strings.Join([]string{m.modal.message, "", strings.Join(buttons, " ")}, "\n")
	return modalStyle.Render(content)
}

func (m model) helpContent() string {
	sections := []string{
		labelStyle.Render("Global"),
		"q or ctrl+c: quit",
		"1-5 / tab / [ ]: switch tabs",
		"?: toggle help",
		"",
		labelStyle.Render("Workout"),
		"n: start a workout",
		"a: add a set to the selected exercise",
		"enter: edit the selected set",
		"s: save the selected set",
		"space: end rest and start the next set",
		"d: delete an unsaved set",
		"x: remove an exercise",
		"r: reset the rest timer",
		"c: finish the workout",
		"",
		labelStyle.Render("Help"),
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}

// --- home ---

func (m model) viewHome() string {
	if !m.sessionsLoaded {
		return valueMuted.Render("Loading history...")
	}
	now := m.now()
	summary := stats.Summarize(m.sessions, now)
	days := stats.DailyVolumes(m.sessions, now)

	var b strings.Builder
	b.WriteString(labelStyle.Render("This Week") + "\n")
	b.WriteString(renderTotals(summary.ThisWeek) + "\n\n")
	b.WriteString(labelStyle.Render("All Time") + "\n")
	b.WriteString(renderTotals(summary.AllTime) + "\n\n")

	b.WriteString(labelStyle.Render("Last 7 Days") + "\n")
	b.WriteString(renderVolumeChart(days, m.dayCursor))

	if m.dayCursor >= 0 && m.dayCursor < len(days) {
		day := days[m.dayCursor]
		onDay := stats.SessionsOn(m.sessions, day.Date)
		b.WriteString("\n" + labelStyle.Render(day.Date) + "\n")
		if len(onDay) == 0 {
			b.WriteString(valueMuted.Render("No workouts") + "\n")
		}
		for _, s := range onDay {
			b.WriteString(fmt.Sprintf("%s  %d sets, %.0f volume\n", s.Title, s.SetsCount, s.TotalVolume))
		}
	}

	if last := stats.LastWorkout(m.sessions); last != nil {
		b.WriteString("\n" + labelStyle.Render("Last Workout") + "\n")
		b.WriteString(fmt.Sprintf("%s  %s  %d sets, %.0f volume\n",
			last.DateKey(), last.Title, last.SetsCount, last.TotalVolume))
	}
	return b.String()
}

func renderTotals(t stats.Totals) string {
	return fmt.Sprintf("workouts %d | sets %d | volume %.0f", t.Workouts, t.Sets, t.Volume)
}

// renderVolumeChart draws one bar per day, scaled to the week's maximum.
func renderVolumeChart(days []stats.DayVolume, cursor int) string {
	const barWidth = 30
	max := 0.0
	for _, d := range days {
		if d.Volume > max {
			max = d.Volume
		}
	}
	var b strings.Builder
	for i, d := range days {
		n := 0
		if max > 0 {
			n = int(d.Volume / max * barWidth)
		}
		label := fmt.Sprintf("%s %s", d.Label, strings.Repeat("=", n))
		line := fmt.Sprintf("%s %.0f", label, d.Volume)
		if i == cursor {
			line = selectedStyle.Render(line)
		} else {
			line = barStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// --- exercises ---

func (m model) viewExercises() string {
	var b strings.Builder
	if m.inputMode == inputQuery {
		b.WriteString("Filter: " + m.queryInput.View() + "\n\n")
	} else if q := m.queryInput.Value(); q != "" {
		b.WriteString(valueMuted.Render("Filter: "+q+" (esc clears)") + "\n\n")
	}

	visible := m.visibleExercises()
	if len(visible) == 0 {
		b.WriteString(valueMuted.Render("No exercises"))
		return b.String()
	}
	for i, ex := range visible {
		line := fmt.Sprintf("%-30s %s", ex.Name, valueMuted.Render(ex.MuscleGroup))
		if i == m.exCursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// --- workout ---

func (m model) viewWorkout() string {
	if !m.builder.Active() {
		return valueMuted.Render("No workout in progress. Press n to start one.")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.builder.Title()) + "\n")
	b.WriteString(m.renderRestLine() + "\n\n")

	rows := m.workoutRows()
	if len(rows) == 0 {
		b.WriteString(valueMuted.Render("Add exercises from tab 2."))
		return b.String()
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.rowCursor {
			cursor = selectedStyle.Render("> ")
		}
		if row.setNumber == 0 {
			b.WriteString(cursor + labelStyle.Render(m.exerciseName(row.exerciseID)) + "\n")
			continue
		}
		set, _ := m.findSet(row)
		b.WriteString(cursor + "  " + m.renderSetLine(row, set, i == m.rowCursor) + "\n")
	}
	return b.String()
}

func (m model) renderSetLine(row workoutRow, set workout.SetEntry, selected bool) string {
	if selected && m.inputMode == inputSet {
		return fmt.Sprintf("set %d  reps %s  weight %s", set.SetNumber, m.repsInput.View(), m.weightInput.View())
	}
	reps := set.Reps
	if reps == "" {
		reps = "-"
	}
	weight := set.Weight
	if weight == "" {
		weight = "-"
	}
	line := fmt.Sprintf("set %d  %s x %s", set.SetNumber, reps, weight)
	if set.Saved {
		return line + " " + savedStyle.Render("[saved]")
	}
	return line
}

func (m model) renderRestLine() string {
	exerciseID, elapsed, resting := m.builder.Timer().Snapshot()
	if !resting {
		return valueMuted.Render("No rest running")
	}
	return restStyle.Render(fmt.Sprintf("Resting %s (%s)  space: next set  r: reset",
		workout.FormatMMSS(elapsed), m.exerciseName(exerciseID)))
}

func (m model) exerciseName(exerciseID string) string {
	for _, we := range m.builder.Exercises() {
		if we.Exercise.ExerciseID == exerciseID {
			if we.Exercise.Name != "" {
				return we.Exercise.Name
			}
			break
		}
	}
	return exerciseID
}

// --- history ---

func (m model) historyGroups() []stats.DateGroup {
	return stats.GroupByDate(stats.Completed(m.sessions))
}

func (m model) viewHistory() string {
	// Sessions and the exercise catalog load in parallel; the view needs
	// both to label set groups.
	if !m.sessionsLoaded || !m.exercisesLoaded {
		return valueMuted.Render("Loading history...")
	}
	groups := m.historyGroups()
	if len(groups) == 0 {
		return valueMuted.Render("No completed workouts yet")
	}

	var b strings.Builder
	idx := 0
	for _, g := range groups {
		b.WriteString(labelStyle.Render(g.Date) + "\n")
		for _, s := range g.Sessions {
			line := fmt.Sprintf("%s  %d sets, %.0f volume", s.Title, s.SetsCount, s.TotalVolume)
			if idx == m.histCursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
			idx++
		}
	}

	if m.detail != nil {
		byID := models.ExercisesByID(m.exercises)
		b.WriteString("\n" + labelStyle.Render("Detail: "+m.detail.Session.Title) + "\n")
		for _, g := range stats.GroupSets(m.detail.Sets) {
			name := g.ExerciseID
			if ex, ok := byID[g.ExerciseID]; ok {
				name = ex.Name
			}
			b.WriteString(name + "\n")
			for _, set := range g.Sets {
				b.WriteString(fmt.Sprintf("  set %d  %.0f x %.1f  rest %s\n",
					set.SetNumber, set.Reps, set.Weight, workout.FormatMMSS(set.RestSeconds)))
			}
		}
	}
	return b.String()
}

// --- quick log ---

func (m model) viewLog() string {
	// Both loads must land before the tab renders, matching the paired
	// fetch on entry.
	if !m.typesLoaded || !m.workoutsLoaded {
		return valueMuted.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Quick Log") + "\n")
	if len(m.workoutTypes) == 0 {
		b.WriteString(valueMuted.Render("No workout types") + "\n")
	}
	for i, wt := range m.workoutTypes {
		line := wt.Name
		if i == m.typeCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.inputMode == inputNote {
		b.WriteString("\nNote: " + m.noteInput.View() + "\n")
	}

	b.WriteString("\n" + labelStyle.Render("Recent") + "\n")
	if len(m.workouts) == 0 {
		b.WriteString(valueMuted.Render("Nothing logged yet") + "\n")
	}
	for i, w := range m.workouts {
		if i >= 10 {
			break
		}
		line := w.WorkoutName
		if w.Note != "" {
			line += "  " + valueMuted.Render(w.Note)
		}
		if len(w.CreatedAt) >= 10 {
			line = w.CreatedAt[:10] + "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
