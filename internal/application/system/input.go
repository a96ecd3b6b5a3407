package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the player intent of one presentation frame
type InputState struct {
	Left        bool
	Right       bool
	Jump        bool // held
	JumpPressed bool // pressed this frame
	DashPressed bool // pressed this frame
}

// MoveX returns the horizontal intent, -1, 0 or 1
func (in InputState) MoveX() int {
	x := 0
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	return x
}

// Held drops the edge-triggered fields.
// Extra fixed ticks of the same frame must not replay a press.
func (in InputState) Held() InputState {
	in.JumpPressed = false
	in.DashPressed = false
	return in
}

// InputSource produces one InputState per presentation frame
type InputSource interface {
	Poll() InputState
}

// KeyMap binds actions to keys; any bound key triggers the action
type KeyMap struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
	Dash  []ebiten.Key
}

// DefaultKeyMap returns WASD and arrow bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:  []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Dash:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyShiftLeft},
	}
}

// KeyboardInput polls ebiten's keyboard state
type KeyboardInput struct {
	keys KeyMap
}

// NewKeyboardInput creates a new keyboard input source
func NewKeyboardInput(keys KeyMap) *KeyboardInput {
	return &KeyboardInput{keys: keys}
}

// Poll reads the current input state
func (k *KeyboardInput) Poll() InputState {
	return InputState{
		Left:        anyPressed(k.keys.Left),
		Right:       anyPressed(k.keys.Right),
		Jump:        anyPressed(k.keys.Jump),
		JumpPressed: anyJustPressed(k.keys.Jump),
		DashPressed: anyJustPressed(k.keys.Dash),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
