package game

import "time"

// Timer is a frame-polled scheduler. The render loop asks Due on every frame
// and ticks the game when it returns true.
type Timer struct {
	interval   time.Duration
	lastUpdate time.Time
	running    bool
}

func NewTimer(interval time.Duration) *Timer {
	return &Timer{interval: interval}
}

// Start (re)arms the timer so the first tick fires one interval after now.
func (t *Timer) Start(now time.Time) {
	t.lastUpdate = now
	t.running = true
}

func (t *Timer) Stop() {
	t.running = false
}

func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) Interval() time.Duration {
	return t.interval
}

// SetInterval changes the period. The current phase is kept.
func (t *Timer) SetInterval(d time.Duration) {
	t.interval = d
}

// Due reports whether a tick should fire at now and, if so, consumes it.
// At most one tick fires per call, so a slow frame never causes a burst.
func (t *Timer) Due(now time.Time) bool {
	if !t.running {
		return false
	}
	if now.Sub(t.lastUpdate) < t.interval {
		return false
	}
	t.lastUpdate = now
	return true
}
