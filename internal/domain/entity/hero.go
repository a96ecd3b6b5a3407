package entity

import (
	"errors"
	"fmt"

	"github.com/younwookim/herocore/internal/domain/motion"
	"github.com/younwookim/herocore/internal/domain/tuning"
)

// ErrMissingCollaborator is returned by NewHero when a sensor or body is nil
var ErrMissingCollaborator = errors.New("missing collaborator")

// Hero is the character entity.
//
// It owns the motion, jump and dash state and advances all of them in a
// single ordered FixedUpdate. Commands (SetMoveDirX, JumpStart,
// StopJumpImpulsion, DashStart) may be issued between ticks.
type Hero struct {
	tuning  tuning.Set
	sensors Sensors
	body    Body

	motion   motion.State
	jump     JumpState
	dash     DashState
	contacts Contacts
}

// NewHero creates a hero at rest, facing right.
// A nil sensor or body is a configuration error surfaced here, never per tick.
func NewHero(set tuning.Set, sensors Sensors, body Body) (*Hero, error) {
	if sensors == nil {
		return nil, fmt.Errorf("%w: sensors", ErrMissingCollaborator)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: body", ErrMissingCollaborator)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("hero tuning: %w", err)
	}

	h := &Hero{
		tuning:  set,
		sensors: sensors,
		body:    body,
	}
	h.Reset()
	return h, nil
}

// Reset re-initializes every piece of mutable state.
// Contacts are sensed right away so commands issued before the first tick
// see where the hero stands.
func (h *Hero) Reset() {
	h.motion = motion.NewState()
	h.jump = JumpState{}
	h.dash = newDashState(h.tuning.Dash().Cooldown)
	h.contacts = ReadContacts(h.sensors)
}

// SetTuning swaps the tuning between ticks.
// An invalid set is rejected and the current one is kept.
func (h *Hero) SetTuning(set tuning.Set) error {
	if err := set.Validate(); err != nil {
		return fmt.Errorf("hero tuning: %w", err)
	}
	h.tuning = set
	if n := set.JumpCount(); h.jump.Index > n {
		h.jump.Index = n
	}
	return nil
}

// Tuning returns the active tuning set
func (h *Hero) Tuning() tuning.Set {
	return h.tuning
}

// SetMoveDirX overwrites the horizontal intent for the next tick
func (h *Hero) SetMoveDirX(dirX int) {
	h.motion.SetMoveDirX(dirX)
}

// FixedUpdate advances the hero by one fixed timestep.
//
// The order of the steps is part of the contract: sensing, charge reset,
// cooldown clock, horizontal (dash or model), vertical (jump or fall),
// velocity output, then the wall clamp which only affects the next tick.
func (h *Hero) FixedUpdate(dt float64) motion.Velocity {
	h.contacts = ReadContacts(h.sensors)

	h.jump.resetCharges(h.contacts.Ground)

	h.dash.TimeSinceDash += dt

	if h.IsDashing() {
		h.updateDash(dt)
	} else {
		ctx := tuning.ContextFor(h.contacts.Ground)
		motion.UpdateHorizontal(&h.motion, h.tuning.Horizontal(ctx), dt)
	}

	if h.IsJumping() {
		h.updateJump(dt)
	} else if !h.contacts.Ground && !h.IsDashing() {
		motion.ApplyFall(&h.motion, h.tuning.Fall(tuning.NormalFall), dt)
	} else if h.contacts.Ground {
		motion.Land(&h.motion)
	}

	v := h.motion.Velocity()
	h.body.SetVelocity(v)

	h.resetSpeedOnWallCollision()
	return v
}

// resetSpeedOnWallCollision stops pushing into a wall on the faced side.
// It runs during dashes too; a dash into a wall is already truncated.
func (h *Hero) resetSpeedOnWallCollision() {
	if h.IsJumping() {
		return
	}
	if h.contacts.BlockedToward(h.motion.OrientX) {
		h.motion.HorizontalSpeed = 0
	}
}

// UpdateOrientVisual pushes the facing to the visual once per rendered frame
func (h *Hero) UpdateOrientVisual(v OrientVisual) {
	v.SetScaleX(float64(h.motion.OrientX))
}

// IsTouchingGround reports the ground contact of the last tick
func (h *Hero) IsTouchingGround() bool {
	return h.contacts.Ground
}

// IsTouchingWallLeft reports the left wall contact of the last tick
func (h *Hero) IsTouchingWallLeft() bool {
	return h.contacts.WallLeft
}

// IsTouchingWallRight reports the right wall contact of the last tick
func (h *Hero) IsTouchingWallRight() bool {
	return h.contacts.WallRight
}

// OrientX returns the facing, -1 or 1
func (h *Hero) OrientX() int {
	return h.motion.OrientX
}

// Motion returns a copy of the motion state
func (h *Hero) Motion() motion.State {
	return h.motion
}

// Jump returns a copy of the jump state
func (h *Hero) Jump() JumpState {
	return h.jump
}

// Dash returns a copy of the dash state
func (h *Hero) Dash() DashState {
	return h.dash
}
