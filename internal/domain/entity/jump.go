package entity

import (
	"github.com/younwookim/herocore/internal/domain/motion"
	"github.com/younwookim/herocore/internal/domain/tuning"
)

// JumpStage is the phase of the jump state machine
type JumpStage int

const (
	JumpIdle JumpStage = iota
	JumpImpulsing
	JumpFalling
)

// String returns the string representation of the jump stage
func (s JumpStage) String() string {
	switch s {
	case JumpIdle:
		return "Idle"
	case JumpImpulsing:
		return "Impulsing"
	case JumpFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// JumpState tracks the current jump and the consumed charges
type JumpState struct {
	Stage JumpStage
	Index int     // charges consumed; the active stage tuning is Index-1
	Timer float64 // seconds since impulsion start
}

// canStart reports whether a new jump may begin with n configured stages
func (j *JumpState) canStart(n int) bool {
	return j.Index < n && (j.Stage == JumpIdle || j.Stage == JumpFalling)
}

func (j *JumpState) start() {
	j.Stage = JumpImpulsing
	j.Timer = 0
	j.Index++
}

// resetCharges gives the charges back on the ground unless the hero is
// still pushing off, so the landing frame cannot eat a fresh jump.
func (j *JumpState) resetCharges(grounded bool) {
	if grounded && j.Stage != JumpImpulsing {
		j.Index = 0
	}
}

func (j *JumpState) cancel() {
	j.Stage = JumpIdle
}

// JumpStart begins the next jump of the sequence.
// Returns false when no charge is left, a jump is still impulsing or an
// air dash is active.
func (h *Hero) JumpStart() bool {
	if !h.CanJump() {
		return false
	}
	h.jump.start()
	return true
}

// StopJumpImpulsion ends the impulsion early (button released).
// The controller gates it on IsJumpMinDurationReached.
func (h *Hero) StopJumpImpulsion() {
	if h.jump.Stage != JumpImpulsing {
		return
	}
	h.jump.Stage = JumpFalling
}

// IsJumping reports any active jump stage
func (h *Hero) IsJumping() bool {
	return h.jump.Stage != JumpIdle
}

// IsJumpImpulsing reports the sustained upward phase
func (h *Hero) IsJumpImpulsing() bool {
	return h.jump.Stage == JumpImpulsing
}

// IsJumpMinDurationReached reports whether an early release may be honored
func (h *Hero) IsJumpMinDurationReached() bool {
	if h.jump.Index == 0 {
		return false
	}
	return h.jump.Timer >= h.activeJumpStage().JumpMinDuration
}

// HasJumpsLeft reports unconsumed jump charges
func (h *Hero) HasJumpsLeft() bool {
	return h.jump.Index < h.tuning.JumpCount()
}

// CanJump reports whether JumpStart would succeed.
// An air dash holds the hero level, so no jump may start until it ends.
func (h *Hero) CanJump() bool {
	if h.IsDashing() && h.dash.IsAirDash {
		return false
	}
	return h.jump.canStart(h.tuning.JumpCount())
}

func (h *Hero) activeJumpStage() tuning.JumpStage {
	i := h.jump.Index - 1
	if i < 0 {
		i = 0
	}
	if n := h.tuning.JumpCount(); i >= n {
		i = n - 1
	}
	return h.tuning.JumpStage(i)
}

func (h *Hero) updateJump(dt float64) {
	switch h.jump.Stage {
	case JumpImpulsing:
		h.updateJumpImpulsion(dt)
	case JumpFalling:
		h.updateJumpFalling(dt)
	}
}

func (h *Hero) updateJumpImpulsion(dt float64) {
	h.jump.Timer += dt
	stage := h.activeJumpStage()
	if h.jump.Timer < stage.JumpMaxDuration {
		motion.ApplyImpulsion(&h.motion, stage)
		return
	}
	h.jump.Stage = JumpFalling
}

func (h *Hero) updateJumpFalling(dt float64) {
	if h.contacts.Ground {
		motion.Land(&h.motion)
		h.jump.Stage = JumpIdle
		return
	}
	motion.ApplyFall(&h.motion, h.tuning.Fall(tuning.JumpFall), dt)
}
