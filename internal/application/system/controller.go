package system

// Actor is the command surface of the hero the controller drives
type Actor interface {
	SetMoveDirX(dirX int)
	JumpStart() bool
	StopJumpImpulsion()
	DashStart() bool

	IsTouchingGround() bool
	IsJumpImpulsing() bool
	IsJumpMinDurationReached() bool
	CanJump() bool
	CanDash() bool
}

// HeroController turns input into hero commands, once per fixed tick.
//
// A jump press that cannot be honored is buffered for jumpBuffer seconds
// and retried against CanJump while grounded, so a press just before
// landing still jumps.
type HeroController struct {
	actor      Actor
	jumpBuffer float64
	buffered   float64 // remaining buffer time
}

// NewHeroController creates a new hero controller
func NewHeroController(actor Actor, jumpBuffer float64) *HeroController {
	return &HeroController{actor: actor, jumpBuffer: jumpBuffer}
}

// SetJumpBuffer changes the buffer window for later presses
func (c *HeroController) SetJumpBuffer(seconds float64) {
	c.jumpBuffer = seconds
}

// IsJumpBuffered reports a pending buffered press
func (c *HeroController) IsJumpBuffered() bool {
	return c.buffered > 0
}

// Reset drops any buffered press
func (c *HeroController) Reset() {
	c.buffered = 0
}

// Apply issues the commands for one fixed tick
func (c *HeroController) Apply(in InputState, dt float64) {
	c.actor.SetMoveDirX(in.MoveX())

	c.handleJump(in, dt)

	if !in.Jump && c.actor.IsJumpImpulsing() && c.actor.IsJumpMinDurationReached() {
		c.actor.StopJumpImpulsion()
	}

	if in.DashPressed && c.actor.CanDash() {
		c.actor.DashStart()
	}
}

func (c *HeroController) handleJump(in InputState, dt float64) {
	if in.JumpPressed {
		if c.actor.CanJump() {
			c.actor.JumpStart()
			c.buffered = 0
			return
		}
		c.buffered = c.jumpBuffer
		return
	}

	if c.buffered <= 0 {
		return
	}
	if c.actor.IsTouchingGround() && c.actor.CanJump() {
		c.actor.JumpStart()
		c.buffered = 0
		return
	}
	c.buffered -= dt
}
