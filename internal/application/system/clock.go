package system

import (
	"fmt"
	"math"
)

// DefaultMaxTicksPerFrame caps the catch-up work of one frame
const DefaultMaxTicksPerFrame = 8

// FixedClock converts variable frame time into whole fixed ticks
type FixedClock struct {
	step     float64
	maxTicks int
	acc      float64
}

// NewFixedClock creates a clock ticking every step seconds
func NewFixedClock(step float64, maxTicks int) (*FixedClock, error) {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil, fmt.Errorf("fixed step must be positive, got %v", step)
	}
	if maxTicks < 1 {
		maxTicks = DefaultMaxTicksPerFrame
	}
	return &FixedClock{step: step, maxTicks: maxTicks}, nil
}

// Step returns the fixed timestep in seconds
func (c *FixedClock) Step() float64 {
	return c.step
}

// Advance adds frame seconds and returns the number of ticks to run.
// Time beyond maxTicks is dropped rather than carried into later frames.
func (c *FixedClock) Advance(frame float64) int {
	if frame > 0 {
		c.acc += frame
	}

	// Tolerate float drift so 1/60 frames on a 1/120 clock give 2 ticks.
	const eps = 1e-9
	n := int((c.acc + eps) / c.step)
	if n > c.maxTicks {
		n = c.maxTicks
		c.acc = 0
		return n
	}
	c.acc -= float64(n) * c.step
	if c.acc < 0 {
		c.acc = 0
	}
	return n
}

// Alpha returns the fraction of a tick left in the accumulator, in [0, 1]
func (c *FixedClock) Alpha() float64 {
	a := c.acc / c.step
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Reset empties the accumulator
func (c *FixedClock) Reset() {
	c.acc = 0
}
