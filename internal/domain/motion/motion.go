// Package motion contains the horizontal and vertical speed models of the hero.
//
// All functions are pure with respect to their inputs: they read a tuning
// bundle and a fixed timestep and update a State in place. Positive Y is up.
package motion

// Velocity is the 2D velocity handed to the physics backend each tick
type Velocity struct {
	X, Y float64
}

// State is the per-hero motion state, owned by the hero entity
type State struct {
	HorizontalSpeed float64 // magnitude along OrientX, never negative
	VerticalSpeed   float64 // signed, positive is up
	MoveDirX        int     // latest intent: -1, 0 or 1
	OrientX         int     // facing: -1 or 1
}

// NewState returns a resting state facing right
func NewState() State {
	return State{OrientX: 1}
}

// SetMoveDirX overwrites the movement intent, normalized to -1, 0 or 1
func (s *State) SetMoveDirX(dirX int) {
	s.MoveDirX = Sign(dirX)
}

// Velocity composes the output vector
func (s State) Velocity() Velocity {
	return Velocity{
		X: s.HorizontalSpeed * float64(s.OrientX),
		Y: s.VerticalSpeed,
	}
}
