package entity

import (
	"github.com/younwookim/herocore/internal/domain/motion"
	"github.com/younwookim/herocore/internal/domain/tuning"
)

// DashStage is the phase of the dash state machine
type DashStage int

const (
	DashIdle DashStage = iota
	DashDashing
)

// String returns the string representation of the dash stage
func (s DashStage) String() string {
	switch s {
	case DashIdle:
		return "Idle"
	case DashDashing:
		return "Dashing"
	default:
		return "Unknown"
	}
}

// DashState tracks the current dash and the cooldown clock
type DashState struct {
	Stage         DashStage
	Timer         float64 // seconds since dash start
	TimeSinceDash float64 // cooldown clock, reset only by a dash start
	IsAirDash     bool
	Orient        int
}

// newDashState starts with the cooldown already elapsed
func newDashState(cooldown float64) DashState {
	return DashState{TimeSinceDash: cooldown}
}

// DashStart begins a dash if the cooldown has elapsed.
// Returns false (and changes nothing) otherwise.
func (h *Hero) DashStart() bool {
	if !h.CanDash() {
		return false
	}

	h.dash.Stage = DashDashing
	h.dash.Timer = 0
	h.dash.TimeSinceDash = 0
	h.dash.IsAirDash = !h.contacts.Ground
	h.dash.Orient = motion.OrientFrom(h.motion.MoveDirX, h.motion.OrientX)
	h.motion.OrientX = h.dash.Orient

	if h.dash.IsAirDash {
		h.jump.cancel()
		h.motion.VerticalSpeed = 0
	}
	return true
}

// IsDashing reports an active dash
func (h *Hero) IsDashing() bool {
	return h.dash.Stage == DashDashing
}

// CanDash reports whether DashStart would succeed
func (h *Hero) CanDash() bool {
	return !h.IsDashing() && h.dash.TimeSinceDash >= h.tuning.Dash().Cooldown
}

func (h *Hero) updateDash(dt float64) {
	d := h.tuning.Dash()
	air := h.dash.IsAirDash
	duration := d.Duration(air)

	h.dash.Timer += dt
	h.motion.HorizontalSpeed = d.Speed(air)
	h.motion.OrientX = h.dash.Orient

	if h.contacts.BlockedToward(h.dash.Orient) {
		h.dash.Timer = duration
		h.motion.HorizontalSpeed = 0
	}

	if h.dash.Timer >= duration {
		h.endDash()
	}
}

func (h *Hero) endDash() {
	bound := h.tuning.Horizontal(tuning.ContextFor(!h.dash.IsAirDash)).SpeedMax
	motion.ClampSpeed(&h.motion, bound)
	h.dash.Stage = DashIdle
}
