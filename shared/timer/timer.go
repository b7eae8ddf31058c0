// Package timer provides millisecond clocks and interval timers used to gate
// simulation updates.
package timer

import "time"

// Clock reports monotonic time in milliseconds.
type Clock interface {
	Now() int64
}

// ManualClock only moves when advanced. The session drives one with each
// frame's elapsed time so every timer sees simulated time.
type ManualClock struct {
	now int64
}

func (c *ManualClock) Now() int64 { return c.now }

// Advance moves the clock forward. Negative values are ignored.
func (c *ManualClock) Advance(ms int64) {
	if ms > 0 {
		c.now += ms
	}
}

// SystemClock reads wall-clock time relative to its creation.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// Timer measures elapsed time since its last reset and fires at a fixed interval.
type Timer struct {
	Interval int64

	clock Clock
	tick  int64
}

// New returns a timer reset to the clock's current time.
func New(clock Clock, interval int64) *Timer {
	return &Timer{Interval: interval, clock: clock, tick: clock.Now()}
}

// Reset restarts the interval from now.
func (t *Timer) Reset() {
	t.tick = t.clock.Now()
}

// Elapsed returns milliseconds since the last reset.
func (t *Timer) Elapsed() int64 {
	return t.clock.Now() - t.tick
}

// Expired reports whether at least Interval ms passed since the last reset.
func (t *Timer) Expired() bool {
	return t.Elapsed() >= t.Interval
}

// Ready reports whether more than Interval ms passed since the last reset,
// and re-arms the timer when it did.
func (t *Timer) Ready() bool {
	if t.Elapsed() > t.Interval {
		t.Reset()
		return true
	}
	return false
}
