package stats

import (
	"sort"

	"github.com/claude/ironlog/internal/models"
)

// DateGroup is the history list's unit: one calendar date and its sessions
// in fetch order.
type DateGroup struct {
	Date     string
	Sessions []models.Session
}

// GroupByDate buckets sessions by calendar date, newest date first.
// Sessions with no usable date land under "Unknown".
func GroupByDate(sessions []models.Session) []DateGroup {
	index := make(map[string]int)
	var groups []DateGroup
	for _, s := range sessions {
		key := s.Date
		if key == "" && len(s.CreatedAt) >= 10 {
			key = s.CreatedAt[:10]
		}
		if key == "" {
			key = "Unknown"
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{Date: key})
		}
		groups[i].Sessions = append(groups[i].Sessions, s)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups
}

// ExerciseSets is one exercise's sets within a session detail.
type ExerciseSets struct {
	ExerciseID string
	Sets       []models.SetRecord
}

// GroupSets groups a session's sets by exercise, exercises ordered by first
// appearance, sets ascending by set number within each exercise.
func GroupSets(sets []models.SetRecord) []ExerciseSets {
	index := make(map[string]int)
	var groups []ExerciseSets
	for _, set := range sets {
		id := set.ExerciseID
		if id == "" {
			id = "unknown"
		}
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, ExerciseSets{ExerciseID: id})
		}
		groups[i].Sets = append(groups[i].Sets, set)
	}
	for i := range groups {
		sort.SliceStable(groups[i].Sets, func(a, b int) bool {
			return groups[i].Sets[a].SetNumber < groups[i].Sets[b].SetNumber
		})
	}
	return groups
}
