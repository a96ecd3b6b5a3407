package motion

import "github.com/younwookim/herocore/internal/domain/tuning"

// ApplyFall pulls the vertical speed down by one tick of gravity and clamps
// it to the terminal fall speed.
func ApplyFall(s *State, f tuning.Fall, dt float64) {
	s.VerticalSpeed -= f.FallGravity * dt
	if s.VerticalSpeed < -f.FallSpeedMax {
		s.VerticalSpeed = -f.FallSpeedMax
	}
}

// ApplyImpulsion forces the vertical speed to the jump speed of a stage.
// Impulsion is sustained: it is reapplied every tick, not added once.
func ApplyImpulsion(s *State, j tuning.JumpStage) {
	s.VerticalSpeed = j.JumpSpeed
}

// Land stops vertical motion
func Land(s *State) {
	s.VerticalSpeed = 0
}
