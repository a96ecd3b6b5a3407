package entity

import "github.com/younwookim/herocore/internal/domain/motion"

// Body is the physics backend the hero hands its velocity to.
// The core never resolves collisions itself; it only states intent.
type Body interface {
	SetVelocity(v motion.Velocity)
}

// OrientVisual mirrors a visual root from the hero facing.
// It is driven once per presentation frame, not per fixed tick.
type OrientVisual interface {
	SetScaleX(scaleX float64)
}

// BodyFunc adapts a function to the Body interface
type BodyFunc func(v motion.Velocity)

// SetVelocity calls f(v)
func (f BodyFunc) SetVelocity(v motion.Velocity) {
	f(v)
}
