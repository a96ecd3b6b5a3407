package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig wraps every structural config error
var ErrInvalidConfig = errors.New("invalid config")

// Sensor backends accepted in body.sensors.kind
const (
	SensorSpace = "space"
	SensorTile  = "tile"
)

// Validate checks the parts of the tuning file the tuning set does not cover
func (c *TuningConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale < 1 {
		return fmt.Errorf("%w: display scale %d", ErrInvalidConfig, d.Scale)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, d.Framerate)
	}

	if !finite(c.Body.Width, c.Body.Height) || c.Body.Width <= 0 || c.Body.Height <= 0 {
		return fmt.Errorf("%w: body size %vx%v", ErrInvalidConfig, c.Body.Width, c.Body.Height)
	}
	switch c.Body.Sensors.Kind {
	case "", SensorSpace, SensorTile:
	default:
		return fmt.Errorf("%w: unknown sensor kind %q", ErrInvalidConfig, c.Body.Sensors.Kind)
	}
	if !finite(c.Body.Sensors.Length) || c.Body.Sensors.Length < 0 {
		return fmt.Errorf("%w: ray length %v", ErrInvalidConfig, c.Body.Sensors.Length)
	}

	for _, side := range [][]AnchorConfig{c.Body.Sensors.Ground, c.Body.Sensors.Left, c.Body.Sensors.Right} {
		for _, a := range side {
			if !finite(a.X, a.Y) {
				return fmt.Errorf("%w: sensor anchor %v,%v", ErrInvalidConfig, a.X, a.Y)
			}
		}
	}

	if !finite(c.Controller.JumpBuffer) || c.Controller.JumpBuffer < 0 {
		return fmt.Errorf("%w: jump buffer %v", ErrInvalidConfig, c.Controller.JumpBuffer)
	}

	if _, err := c.ToSet(); err != nil {
		return err
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate checks the stage grid dimensions
func (s *StageConfig) Validate() error {
	if s.Size.TileSize <= 0 {
		return fmt.Errorf("%w: stage %s tile size %d", ErrInvalidConfig, s.ID, s.Size.TileSize)
	}
	if s.Size.Width < s.Size.TileSize {
		return fmt.Errorf("%w: stage %s narrower than one tile", ErrInvalidConfig, s.ID)
	}
	if len(s.Layers.Collision) == 0 {
		return fmt.Errorf("%w: stage %s has no collision rows", ErrInvalidConfig, s.ID)
	}
	return nil
}
