// Package tuning holds the immutable parameter bundles that shape hero movement.
//
// Tuning values are authored externally (see infrastructure/config) and
// validated once when a Set is built. The simulation never re-checks them.
package tuning

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid tuning")

// Horizontal shapes horizontal speed for one movement context
type Horizontal struct {
	Acceleration     float64 // units/s² added while moving
	Deceleration     float64 // units/s² removed while idle
	TurnBackFriction float64 // units/s² removed while input opposes facing
	SpeedMax         float64 // units/s
}

// Validate checks that every field is finite and non-negative
func (h Horizontal) Validate() error {
	return nonNegative(
		field{"acceleration", h.Acceleration},
		field{"deceleration", h.Deceleration},
		field{"turnBackFriction", h.TurnBackFriction},
		field{"speedMax", h.SpeedMax},
	)
}

// Fall shapes vertical speed while airborne
type Fall struct {
	FallGravity  float64 // units/s² pulled downward
	FallSpeedMax float64 // units/s, magnitude of the terminal speed
}

// Validate checks that every field is finite and non-negative
func (f Fall) Validate() error {
	return nonNegative(
		field{"fallGravity", f.FallGravity},
		field{"fallSpeedMax", f.FallSpeedMax},
	)
}

// JumpStage is the tuning for one jump of a multi-jump sequence
type JumpStage struct {
	JumpSpeed       float64 // units/s forced upward during impulsion
	JumpMinDuration float64 // seconds before an early release is honored
	JumpMaxDuration float64 // seconds of sustained impulsion
}

// Validate checks ranges and that min <= max
func (j JumpStage) Validate() error {
	if err := nonNegative(
		field{"jumpSpeed", j.JumpSpeed},
		field{"jumpMinDuration", j.JumpMinDuration},
		field{"jumpMaxDuration", j.JumpMaxDuration},
	); err != nil {
		return err
	}
	if j.JumpMinDuration > j.JumpMaxDuration {
		return fmt.Errorf("%w: jumpMinDuration %v > jumpMaxDuration %v", ErrInvalid, j.JumpMinDuration, j.JumpMaxDuration)
	}
	return nil
}

// Dash holds both dash variants and the shared cooldown
type Dash struct {
	GroundSpeed    float64
	GroundDuration float64
	AirSpeed       float64
	AirDuration    float64
	Cooldown       float64
}

// Validate checks that every field is finite and non-negative
func (d Dash) Validate() error {
	return nonNegative(
		field{"groundSpeed", d.GroundSpeed},
		field{"groundDuration", d.GroundDuration},
		field{"airSpeed", d.AirSpeed},
		field{"airDuration", d.AirDuration},
		field{"cooldown", d.Cooldown},
	)
}

// Speed returns the fixed dash speed of the variant
func (d Dash) Speed(air bool) float64 {
	if air {
		return d.AirSpeed
	}
	return d.GroundSpeed
}

// Duration returns the dash duration of the variant
func (d Dash) Duration(air bool) float64 {
	if air {
		return d.AirDuration
	}
	return d.GroundDuration
}

type field struct {
	name  string
	value float64
}

func nonNegative(fields ...field) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s must be finite and >= 0, got %v", ErrInvalid, f.name, f.value)
		}
	}
	return nil
}
