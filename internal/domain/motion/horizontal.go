package motion

import "github.com/younwookim/herocore/internal/domain/tuning"

// UpdateHorizontal advances the horizontal speed by one fixed tick.
//
// Input opposing the current facing bleeds speed through turn-back friction
// and flips the facing only once the speed reaches zero. Otherwise the hero
// accelerates toward SpeedMax while there is input, decelerates toward zero
// when there is none, and faces the input immediately.
func UpdateHorizontal(s *State, t tuning.Horizontal, dt float64) {
	if areOrientAndMovementOpposite(s) {
		turnBack(s, t, dt)
		return
	}

	if s.MoveDirX != 0 {
		accelerate(s, t, dt)
	} else {
		decelerate(s, t, dt)
	}
	changeOrientFromHorizontalMovement(s)
}

func accelerate(s *State, t tuning.Horizontal, dt float64) {
	s.HorizontalSpeed += t.Acceleration * dt
	if s.HorizontalSpeed > t.SpeedMax {
		s.HorizontalSpeed = t.SpeedMax
	}
}

func decelerate(s *State, t tuning.Horizontal, dt float64) {
	s.HorizontalSpeed -= t.Deceleration * dt
	if s.HorizontalSpeed < 0 {
		s.HorizontalSpeed = 0
	}
}

func turnBack(s *State, t tuning.Horizontal, dt float64) {
	s.HorizontalSpeed -= t.TurnBackFriction * dt
	if s.HorizontalSpeed <= 0 {
		s.HorizontalSpeed = 0
		changeOrientFromHorizontalMovement(s)
	}
}

// ClampSpeed bounds the horizontal speed into [0, max]
func ClampSpeed(s *State, max float64) {
	if s.HorizontalSpeed > max {
		s.HorizontalSpeed = max
	}
	if s.HorizontalSpeed < 0 {
		s.HorizontalSpeed = 0
	}
}
