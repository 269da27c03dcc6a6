package input

import (
	"math"
	"time"
)

// Default double-click tolerances.
const (
	DefaultDoubleClickInterval = 300 * time.Millisecond
	DefaultDoubleClickDistance = 4.0
)

// ClickTracker turns a stream of presses into double-click detections.
// A press counts as the second click when it lands within Interval and Distance of the previous press.
// The zero value uses the defaults. Not safe for concurrent use; windows call it from their event loop.
type ClickTracker struct {
	Interval time.Duration
	Distance float64

	last    time.Time
	lastX   float64
	lastY   float64
	pending bool
}

// Press records a press and reports whether it completes a double click.
// A completed double click resets the tracker so a third press starts a new pair.
//
// Parameters:
//   - x, y: press position in pixels
//   - at: press time
//
// Returns:
//   - bool: true if this press is the second click of a double click
func (c *ClickTracker) Press(x, y float64, at time.Time) bool {
	interval := c.Interval
	if interval <= 0 {
		interval = DefaultDoubleClickInterval
	}
	distance := c.Distance
	if distance <= 0 {
		distance = DefaultDoubleClickDistance
	}

	if c.pending && at.Sub(c.last) <= interval && math.Hypot(x-c.lastX, y-c.lastY) <= distance {
		c.pending = false
		return true
	}
	c.pending = true
	c.last = at
	c.lastX, c.lastY = x, y
	return false
}
