// Package models holds the wire types served by the fitness API and the
// small amount of shared behavior on them. Timestamps stay as ISO-8601
// strings: they compare and sort correctly without parsing.
package models

import (
	"sort"
	"strings"
)

// WorkoutType is a quick-log template: one tap logs a workout of this type.
type WorkoutType struct {
	TypeID   string `json:"typeId"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Exercise is one entry of the exercise catalog.
type Exercise struct {
	ExerciseID   string `json:"exerciseId"`
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscleGroup,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	VideoURL     string `json:"videoUrl,omitempty"`
}

// SortExercises orders the catalog alphabetically by name, ignoring case.
// The sort is stable so equal names keep their served order.
func SortExercises(list []Exercise) {
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
}

// FilterExercises returns the exercises whose name or muscle group contains
// the query, case-insensitively. A blank query matches everything.
func FilterExercises(list []Exercise, query string) []Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	var out []Exercise
	for _, ex := range list {
		if strings.Contains(strings.ToLower(ex.Name), q) ||
			strings.Contains(strings.ToLower(ex.MuscleGroup), q) {
			out = append(out, ex)
		}
	}
	return out
}

// ExercisesByID indexes a catalog by exercise id.
func ExercisesByID(list []Exercise) map[string]Exercise {
	m := make(map[string]Exercise, len(list))
	for _, ex := range list {
		m[ex.ExerciseID] = ex
	}
	return m
}
