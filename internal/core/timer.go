package core

import "time"

// Cadence reports when a fixed interval has elapsed, e.g. for cycling seeds in
// the viewer.
type Cadence struct {
	every time.Duration
	last  time.Time
	now   func() time.Time
}

// NewCadence constructs a Cadence firing once per interval.
func NewCadence(every time.Duration) *Cadence {
	if every <= 0 {
		every = time.Second
	}
	return &Cadence{every: every, now: time.Now}
}

// SetInterval changes the interval. It is safe to call from the main loop.
func (c *Cadence) SetInterval(every time.Duration) {
	if every <= 0 {
		every = time.Second
	}
	c.every = every
}

// Reset restarts the interval from now.
func (c *Cadence) Reset() { c.last = c.now() }

// Due reports whether a full interval has passed since the last firing.
func (c *Cadence) Due() bool {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if now.Sub(c.last) >= c.every {
		c.last = now
		return true
	}
	return false
}
