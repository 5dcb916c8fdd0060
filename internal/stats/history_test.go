package stats

import (
	"testing"

	"github.com/claude/ironlog/internal/models"
)

// TestGroupByDate verifies date bucketing and newest-first group order.
func TestGroupByDate(t *testing.T) {
	sessions := []models.Session{
		{SessionID: "a", CreatedAt: "2025-01-06T10:00:00Z"},
		{SessionID: "b", CreatedAt: "2025-01-07T09:00:00Z"},
		{SessionID: "c", CreatedAt: "2025-01-06T18:00:00Z"},
		{SessionID: "d"},
	}

	groups := GroupByDate(sessions)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].Date != "Unknown" {
		// "Unknown" sorts above digits; the dated groups follow newest first.
		t.Fatalf("groups[0].Date = %q", groups[0].Date)
	}
	if groups[1].Date != "2025-01-07" || groups[2].Date != "2025-01-06" {
		t.Errorf("date order = %s, %s", groups[1].Date, groups[2].Date)
	}
	if len(groups[2].Sessions) != 2 || groups[2].Sessions[0].SessionID != "a" {
		t.Errorf("2025-01-06 group = %+v", groups[2].Sessions)
	}
}

// TestGroupSets verifies grouping by exercise with ascending set numbers.
func TestGroupSets(t *testing.T) {
	sets := []models.SetRecord{
		{ExerciseID: "bench", SetNumber: 2, Reps: 8, Weight: 135},
		{ExerciseID: "squat", SetNumber: 1, Reps: 5, Weight: 225},
		{ExerciseID: "bench", SetNumber: 1, Reps: 10, Weight: 115},
		{ExerciseID: "bench", SetNumber: 3, Reps: 6, Weight: 145},
	}

	groups := GroupSets(sets)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].ExerciseID != "bench" || groups[1].ExerciseID != "squat" {
		t.Errorf("group order = %s, %s; want first-appearance order", groups[0].ExerciseID, groups[1].ExerciseID)
	}
	nums := []int{}
	for _, s := range groups[0].Sets {
		nums = append(nums, s.SetNumber)
	}
	if len(nums) != 3 || nums[0] != 1 || nums[1] != 2 || nums[2] != 3 {
		t.Errorf("bench set order = %v, want [1 2 3]", nums)
	}
}

// TestGroupSetsEmptyExerciseID verifies orphan sets fall into "unknown".
func TestGroupSetsEmptyExerciseID(t *testing.T) {
	groups := GroupSets([]models.SetRecord{{SetNumber: 1}})
	if len(groups) != 1 || groups[0].ExerciseID != "unknown" {
		t.Errorf("groups = %+v", groups)
	}
}
