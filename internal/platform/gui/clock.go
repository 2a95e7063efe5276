package gui

import "time"

// maxFrameElapsed caps the time handed to one tick after a stall.
const maxFrameElapsed = 250 * time.Millisecond

// frameClock measures the wall time between Update calls.
type frameClock struct {
	interval time.Duration
	last     time.Time
}

// step returns the time to advance the session by. The first call after a
// reset uses the nominal interval.
func (c *frameClock) step(now time.Time) time.Duration {
	elapsed := c.interval
	if !c.last.IsZero() {
		elapsed = min(now.Sub(c.last), maxFrameElapsed)
	}
	c.last = now
	return elapsed
}

func (c *frameClock) reset() {
	c.last = time.Time{}
}
