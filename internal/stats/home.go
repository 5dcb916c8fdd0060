// Package stats computes the client-side aggregations shown on the home
// and history views. The server owns the raw numbers (setsCount,
// totalVolume); everything here is grouping, partitioning, and summing
// over already-fetched sessions.
package stats

import (
	"sort"
	"time"

	"github.com/claude/ironlog/internal/models"
)

// Totals is one aggregate row: workout count, set count, summed volume.
type Totals struct {
	Workouts int     `json:"workouts"`
	Sets     int     `json:"sets"`
	Volume   float64 `json:"volume"`
}

// Summary holds the home view's two partitions.
type Summary struct {
	ThisWeek Totals `json:"thisWeek"`
	AllTime  Totals `json:"allTime"`
}

// DayVolume is one bar of the 7-day volume series.
type DayVolume struct {
	Date   string  `json:"date"`  // YYYY-MM-DD
	Label  string  `json:"label"` // short weekday name
	Volume float64 `json:"volume"`
}

// Completed returns only sessions in the terminal status. Sessions in any
// other state never reach history or home aggregates.
func Completed(sessions []models.Session) []models.Session {
	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Completed() {
			out = append(out, s)
		}
	}
	return out
}

// WeekStart returns the local-time Monday 00:00:00 on or before t.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	return day.AddDate(0, 0, diff)
}

// parseTimestamp accepts the timestamp shapes the API has served.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Summarize partitions completed sessions into this-week (Monday 00:00:00
// local through now, inclusive) and all-time totals. Sessions without a
// parseable timestamp count toward all-time only.
func Summarize(sessions []models.Session, now time.Time) Summary {
	weekStart := WeekStart(now)

	var sum Summary
	for _, s := range Completed(sessions) {
		sum.AllTime.Workouts++
		sum.AllTime.Sets += s.SetsCount
		sum.AllTime.Volume += s.TotalVolume

		ts, ok := parseTimestamp(s.Timestamp())
		if !ok {
			continue
		}
		if !ts.Before(weekStart) && !ts.After(now) {
			sum.ThisWeek.Workouts++
			sum.ThisWeek.Sets += s.SetsCount
			sum.ThisWeek.Volume += s.TotalVolume
		}
	}
	return sum
}

// DailyVolumes returns the last 7 calendar days (oldest first, today last)
// with each day's summed completed volume. Days without sessions stay at 0.
func DailyVolumes(sessions []models.Session, now time.Time) []DayVolume {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := make([]DayVolume, 0, 7)
	index := make(map[string]int, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		key := d.Format("2006-01-02")
		index[key] = len(days)
		days = append(days, DayVolume{Date: key, Label: d.Format("Mon")})
	}

	for _, s := range Completed(sessions) {
		if i, ok := index[s.DateKey()]; ok {
			days[i].Volume += s.TotalVolume
		}
	}
	return days
}

// LastWorkout returns the completed session with the greatest timestamp,
// or nil when none exist. ISO-8601 timestamps compare correctly as strings.
func LastWorkout(sessions []models.Session) *models.Session {
	var best *models.Session
	for i := range sessions {
		s := &sessions[i]
		if !s.Completed() {
			continue
		}
		if best == nil || s.Timestamp() > best.Timestamp() {
			best = s
		}
	}
	return best
}

// SessionsOn returns the completed sessions whose date key matches the
// given YYYY-MM-DD day, newest first.
func SessionsOn(sessions []models.Session, day string) []models.Session {
	var out []models.Session
	for _, s := range Completed(sessions) {
		if s.DateKey() == day {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp() > out[j].Timestamp()
	})
	return out
}
