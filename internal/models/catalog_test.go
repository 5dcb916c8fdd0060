package models

import (
	"encoding/json"
	"testing"
)

// TestSortExercisesCaseInsensitive verifies alphabetical order ignores case
// and keeps server order for ties.
func TestSortExercisesCaseInsensitive(t *testing.T) {
	list := []Exercise{
		{ExerciseID: "1", Name: "squat"},
		{ExerciseID: "2", Name: "Bench Press"},
		{ExerciseID: "3", Name: "deadlift"},
		{ExerciseID: "4", Name: "bench press"}, // tie with 2, must stay after it
	}
	SortExercises(list)

	want := []string{"2", "4", "3", "1"}
	for i, id := range want {
		if list[i].ExerciseID != id {
			t.Fatalf("position %d = %s (%s), want id %s", i, list[i].ExerciseID, list[i].Name, id)
		}
	}
}

// TestFilterExercises covers name and muscle-group matching.
func TestFilterExercises(t *testing.T) {
	list := []Exercise{
		{Name: "Bench Press", MuscleGroup: "Chest"},
		{Name: "Squat", MuscleGroup: "Legs"},
		{Name: "Incline Press", MuscleGroup: "Chest"},
	}

	if got := FilterExercises(list, "press"); len(got) != 2 {
		t.Errorf("press matched %d, want 2", len(got))
	}
	if got := FilterExercises(list, "chest"); len(got) != 2 {
		t.Errorf("chest matched %d, want 2", len(got))
	}
	if got := FilterExercises(list, "  "); len(got) != 3 {
		t.Errorf("blank query matched %d, want all", len(got))
	}
	if got := FilterExercises(list, "rowing"); len(got) != 0 {
		t.Errorf("rowing matched %d, want 0", len(got))
	}
}

// TestSessionNumericCoercion verifies setsCount and totalVolume survive the
// shapes the API has served: numbers, numeric strings, null, and absent.
// Non-numeric values count as zero instead of failing the decode.
func TestSessionNumericCoercion(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantSets   int
		wantVolume float64
	}{
		{"numbers", `{"sessionId":"s1","setsCount":12,"totalVolume":500.5}`, 12, 500.5},
		{"numeric strings", `{"sessionId":"s1","setsCount":"12","totalVolume":"500"}`, 12, 500},
		{"absent", `{"sessionId":"s1"}`, 0, 0},
		{"null", `{"sessionId":"s1","setsCount":null,"totalVolume":null}`, 0, 0},
		{"garbage", `{"sessionId":"s1","setsCount":"a few","totalVolume":{"kg":500}}`, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Session
			if err := json.Unmarshal([]byte(tc.body), &s); err != nil {
				t.Fatal(err)
			}
			if s.SessionID != "s1" {
				t.Errorf("sessionId = %q, want s1", s.SessionID)
			}
			if s.SetsCount != tc.wantSets || s.TotalVolume != tc.wantVolume {
				t.Errorf("sets = %d, volume = %v, want %d and %v",
					s.SetsCount, s.TotalVolume, tc.wantSets, tc.wantVolume)
			}
		})
	}
}

// TestSessionDateKey verifies completedAt wins over createdAt.
func TestSessionDateKey(t *testing.T) {
	s := Session{CreatedAt: "2025-01-05T08:00:00Z", CompletedAt: "2025-01-06T10:30:00Z"}
	if got := s.DateKey(); got != "2025-01-06" {
		t.Errorf("DateKey = %q, want 2025-01-06", got)
	}

	s = Session{CreatedAt: "2025-01-05T08:00:00Z"}
	if got := s.DateKey(); got != "2025-01-05" {
		t.Errorf("DateKey = %q, want 2025-01-05", got)
	}

	if got := (Session{}).DateKey(); got != "" {
		t.Errorf("DateKey = %q, want empty", got)
	}
}
