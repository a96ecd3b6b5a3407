package entity

// GroundSensor casts downward for a solid surface
type GroundSensor interface {
	DetectGroundNearBy() bool
}

// WallSensor casts sideways for a solid surface
type WallSensor interface {
	DetectWallNearByLeft() bool
	DetectWallNearByRight() bool
}

// Sensors is the full proximity contract the hero reads every fixed tick
type Sensors interface {
	GroundSensor
	WallSensor
}

// Contacts is the snapshot of one sensor read
type Contacts struct {
	Ground    bool
	WallLeft  bool
	WallRight bool
}

// ReadContacts casts every ray once
func ReadContacts(s Sensors) Contacts {
	return Contacts{
		Ground:    s.DetectGroundNearBy(),
		WallLeft:  s.DetectWallNearByLeft(),
		WallRight: s.DetectWallNearByRight(),
	}
}

// BlockedToward reports a wall on the side dir points to
func (c Contacts) BlockedToward(dir int) bool {
	switch {
	case dir < 0:
		return c.WallLeft
	case dir > 0:
		return c.WallRight
	default:
		return false
	}
}
