package motion

// Sign returns -1, 0 or 1
func Sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// OrientFrom returns the sign of dir, or fallback when dir is zero
func OrientFrom(dir, fallback int) int {
	if dir == 0 {
		return fallback
	}
	return Sign(dir)
}

// areOrientAndMovementOpposite reports a pending turn-back
func areOrientAndMovementOpposite(s *State) bool {
	return s.MoveDirX*s.OrientX < 0
}

// changeOrientFromHorizontalMovement faces the intent direction, if any
func changeOrientFromHorizontalMovement(s *State) {
	if s.MoveDirX == 0 {
		return
	}
	s.OrientX = Sign(s.MoveDirX)
}
