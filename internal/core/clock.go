package core

import "time"

// Clock converts wall-clock instants into the millisecond timestamps the
// simulation consumes. The epoch is fixed when the clock is created.
type Clock struct {
	start time.Time
}

// NewClock creates a clock whose epoch is start.
func NewClock(start time.Time) Clock {
	return Clock{start: start}
}

// Millis returns whole milliseconds elapsed between the epoch and t.
// Instants before the epoch map to 0.
func (c Clock) Millis(t time.Time) int64 {
	ms := t.Sub(c.start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// Start returns the clock epoch.
func (c Clock) Start() time.Time {
	return c.start
}
