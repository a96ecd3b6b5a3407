package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDT = 1.0 / 60.0

// fakeActor records commands and answers predicates from fields
type fakeActor struct {
	grounded   bool
	impulsing  bool
	minReached bool
	canJump    bool
	canDash    bool

	moveDir    int
	jumpStarts int
	stops      int
	dashStarts int
}

func (a *fakeActor) SetMoveDirX(dirX int) { a.moveDir = dirX }

func (a *fakeActor) JumpStart() bool {
	a.jumpStarts++
	return true
}

func (a *fakeActor) StopJumpImpulsion() { a.stops++ }

func (a *fakeActor) DashStart() bool {
	a.dashStarts++
	return true
}

func (a *fakeActor) IsTouchingGround() bool         { return a.grounded }
func (a *fakeActor) IsJumpImpulsing() bool          { return a.impulsing }
func (a *fakeActor) IsJumpMinDurationReached() bool { return a.minReached }
func (a *fakeActor) CanJump() bool                  { return a.canJump }
func (a *fakeActor) CanDash() bool                  { return a.canDash }

func TestHeroController_MoveDir(t *testing.T) {
	actor := &fakeActor{}
	c := NewHeroController(actor, 0.1)

	c.Apply(InputState{Left: true}, testDT)
	assert.Equal(t, -1, actor.moveDir)

	c.Apply(InputState{}, testDT)
	assert.Equal(t, 0, actor.moveDir, "intent is overwritten every tick")
}

func TestHeroController_JumpPress(t *testing.T) {
	actor := &fakeActor{canJump: true}
	c := NewHeroController(actor, 0.1)

	c.Apply(InputState{Jump: true, JumpPressed: true}, testDT)

	assert.Equal(t, 1, actor.jumpStarts)
	assert.False(t, c.IsJumpBuffered())
}

func TestHeroController_JumpBuffer(t *testing.T) {
	t.Run("consumed on landing", func(t *testing.T) {
		actor := &fakeActor{}
		c := NewHeroController(actor, 0.1)

		c.Apply(InputState{Jump: true, JumpPressed: true}, testDT)
		assert.Zero(t, actor.jumpStarts)
		assert.True(t, c.IsJumpBuffered())

		c.Apply(InputState{Jump: true}, testDT)
		assert.Zero(t, actor.jumpStarts)

		actor.grounded, actor.canJump = true, true
		c.Apply(InputState{Jump: true}, testDT)
		assert.Equal(t, 1, actor.jumpStarts)
		assert.False(t, c.IsJumpBuffered())
	})

	t.Run("expires", func(t *testing.T) {
		actor := &fakeActor{}
		c := NewHeroController(actor, 0.05)

		c.Apply(InputState{JumpPressed: true}, testDT)
		for i := 0; i < 4; i++ {
			c.Apply(InputState{}, testDT)
		}
		assert.False(t, c.IsJumpBuffered())

		actor.grounded, actor.canJump = true, true
		c.Apply(InputState{}, testDT)
		assert.Zero(t, actor.jumpStarts)
	})

	t.Run("not consumed in the air", func(t *testing.T) {
		actor := &fakeActor{}
		c := NewHeroController(actor, 0.1)

		c.Apply(InputState{JumpPressed: true}, testDT)
		actor.canJump = true
		c.Apply(InputState{}, testDT)

		assert.Zero(t, actor.jumpStarts, "buffer only retries the ground jump")
	})

	t.Run("zero buffer", func(t *testing.T) {
		actor := &fakeActor{}
		c := NewHeroController(actor, 0)

		c.Apply(InputState{JumpPressed: true}, testDT)
		assert.False(t, c.IsJumpBuffered())
	})

	t.Run("reset drops press", func(t *testing.T) {
		actor := &fakeActor{}
		c := NewHeroController(actor, 0.1)

		c.Apply(InputState{JumpPressed: true}, testDT)
		c.Reset()
		assert.False(t, c.IsJumpBuffered())
	})
}

func TestHeroController_EarlyRelease(t *testing.T) {
	tests := []struct {
		name       string
		held       bool
		impulsing  bool
		minReached bool
		wantStop   bool
	}{
		{"released after min", false, true, true, true},
		{"released before min", false, true, false, false},
		{"still held", true, true, true, false},
		{"not impulsing", false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := &fakeActor{impulsing: tt.impulsing, minReached: tt.minReached}
			c := NewHeroController(actor, 0.1)

			c.Apply(InputState{Jump: tt.held}, testDT)

			assert.Equal(t, tt.wantStop, actor.stops == 1)
		})
	}
}

func TestHeroController_Dash(t *testing.T) {
	actor := &fakeActor{}
	c := NewHeroController(actor, 0.1)

	c.Apply(InputState{DashPressed: true}, testDT)
	assert.Zero(t, actor.dashStarts, "gated on CanDash")

	actor.canDash = true
	c.Apply(InputState{}, testDT)
	assert.Zero(t, actor.dashStarts, "edge triggered")

	c.Apply(InputState{DashPressed: true}, testDT)
	assert.Equal(t, 1, actor.dashStarts)
}

func TestHeroController_SetJumpBuffer(t *testing.T) {
	actor := &fakeActor{}
	c := NewHeroController(actor, 0)

	c.SetJumpBuffer(0.2)
	c.Apply(InputState{JumpPressed: true}, testDT)

	assert.True(t, c.IsJumpBuffered())
}
