package app

import (
	"time"

	"github.com/coder/quartz"
)

// DeltaClock measures real elapsed time between frames. Motion integrates
// against this measured delta, not a fixed step, so physics follows wall
// time even when the frame rate wobbles.
type DeltaClock struct {
	clock quartz.Clock
	last  time.Time
}

// NewDeltaClock constructs a DeltaClock. A nil clock falls back to the real
// one; tests inject a mock.
func NewDeltaClock(clock quartz.Clock) *DeltaClock {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &DeltaClock{clock: clock}
}

// Tick returns the seconds elapsed since the previous call. The first call
// returns zero so startup latency never becomes a giant integration step.
func (c *DeltaClock) Tick() float64 {
	now := c.clock.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
