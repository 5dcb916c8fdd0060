// Package workout drives an in-progress training session: the set ledger
// for each exercise, the save/complete flow against the API, and the rest
// timer between sets.
package workout

import (
	"fmt"
	"sync"
	"time"
)

// RestTimer counts seconds of rest after a saved set. At most one exercise
// owns the timer at a time; starting it for another exercise restarts the
// count from zero.
type RestTimer struct {
	interval time.Duration

	mu         sync.Mutex
	resting    bool
	exerciseID string
	elapsed    int
	cancel     chan struct{}
}

// NewRestTimer returns a stopped timer ticking at one-second resolution.
func NewRestTimer() *RestTimer {
	return &RestTimer{interval: time.Second}
}

// Start begins counting rest for the given exercise from zero, displacing
// any exercise that was resting before.
func (t *RestTimer) Start(exerciseID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.resting = true
	t.exerciseID = exerciseID
	t.elapsed = 0
	t.cancel = make(chan struct{})
	go t.run(t.cancel)
}

func (t *RestTimer) run(cancel chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			if !t.tick(cancel) {
				return
			}
		}
	}
}

// tick advances the count by one second. It returns false when this
// goroutine has been displaced by a later Start or Stop.
func (t *RestTimer) tick(cancel chan struct{}) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != cancel {
		return false
	}
	t.elapsed++
	return true
}

// Stop halts the timer and clears its owner. Safe to call when stopped.
func (t *RestTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *RestTimer) stopLocked() {
	if t.cancel != nil {
		close(t.cancel)
		t.cancel = nil
	}
	t.resting = false
	t.exerciseID = ""
	t.elapsed = 0
}

// Reset zeroes the count without changing the owner. No-op when stopped.
func (t *RestTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.resting {
		t.elapsed = 0
	}
}

// RestingFor reports whether the given exercise currently owns the timer.
func (t *RestTimer) RestingFor(exerciseID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resting && t.exerciseID == exerciseID
}

// Elapsed returns the seconds counted so far, 0 when stopped.
func (t *RestTimer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Snapshot returns the owner and count in one read, for rendering.
func (t *RestTimer) Snapshot() (exerciseID string, elapsed int, resting bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.exerciseID, t.elapsed, t.resting
}

// FormatMMSS renders a second count as MM:SS, e.g. 75 -> "01:15".
func FormatMMSS(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
