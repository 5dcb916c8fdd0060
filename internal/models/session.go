package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// StatusCompleted is the terminal session status. Anything else is treated
// as in progress and excluded from history and aggregates.
const StatusCompleted = "COMPLETED"

// Session is one training session as served by /history.
type Session struct {
	SessionID   string  `json:"sessionId"`
	Title       string  `json:"title"`
	Status      string  `json:"status"`
	Date        string  `json:"date,omitempty"` // YYYY-MM-DD when the server provides it
	CreatedAt   string  `json:"createdAt,omitempty"`
	CompletedAt string  `json:"completedAt,omitempty"`
	SetsCount   int     `json:"setsCount"`
	TotalVolume float64 `json:"totalVolume"`
}

// UnmarshalJSON decodes a session, coercing setsCount and totalVolume. The
// API has served those as numbers, numeric strings, or not at all; one bad
// value must not fail the whole history decode, so anything non-numeric
// counts as zero.
func (s *Session) UnmarshalJSON(data []byte) error {
	type alias Session
	aux := struct {
		SetsCount   json.RawMessage `json:"setsCount"`
		TotalVolume json.RawMessage `json:"totalVolume"`
		*alias
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.SetsCount = int(coerceNumber(aux.SetsCount))
	s.TotalVolume = coerceNumber(aux.TotalVolume)
	return nil
}

// coerceNumber reads a JSON number or a numeric string; missing, null, and
// everything else become 0.
func coerceNumber(raw json.RawMessage) float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}
	return 0
}

// Completed reports whether the session reached the terminal status.
func (s Session) Completed() bool { return s.Status == StatusCompleted }

// Timestamp returns the session's best timestamp: completion when present,
// creation otherwise.
func (s Session) Timestamp() string {
	if s.CompletedAt != "" {
		return s.CompletedAt
	}
	return s.CreatedAt
}

// DateKey returns the session's calendar date as YYYY-MM-DD, "" when no
// timestamp exists.
func (s Session) DateKey() string {
	ts := s.Timestamp()
	if len(ts) < 10 {
		return ""
	}
	return ts[:10]
}

// SetRecord is one recorded set, both as sent on save and as served back in
// a session detail.
type SetRecord struct {
	ExerciseID  string  `json:"exerciseId"`
	SetNumber   int     `json:"setNumber"`
	Reps        float64 `json:"reps"`
	Weight      float64 `json:"weight"`
	RestSeconds int     `json:"restSeconds"`
}

// SessionDetail is one session with its recorded sets.
type SessionDetail struct {
	Session Session     `json:"session"`
	Sets    []SetRecord `json:"sets"`
}

// Workout is one quick-logged workout.
type Workout struct {
	WorkoutID     string `json:"workoutId"`
	WorkoutTypeID string `json:"workoutTypeId"`
	WorkoutName   string `json:"workoutName"`
	Note          string `json:"note,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}
