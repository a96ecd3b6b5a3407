package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Toggle switches between playing and paused
func (s GameState) Toggle() GameState {
	if s == StatePaused {
		return StatePlaying
	}
	return StatePaused
}
