package config

import (
	"fmt"

	"github.com/younwookim/herocore/internal/domain/tuning"
)

// TuningConfig is the root config for hero tuning files.
// The same tags serve YAML, JSON and TOML.
type TuningConfig struct {
	Display    DisplayConfig     `json:"display" yaml:"display" toml:"display"`
	Body       BodyConfig        `json:"body" yaml:"body" toml:"body"`
	Ground     HorizontalConfig  `json:"ground" yaml:"ground" toml:"ground"`
	Air        HorizontalConfig  `json:"air" yaml:"air" toml:"air"`
	Fall       FallConfig        `json:"fall" yaml:"fall" toml:"fall"`
	JumpFall   FallConfig        `json:"jumpFall" yaml:"jumpFall" toml:"jumpFall"`
	Jumps      []JumpStageConfig `json:"jumps" yaml:"jumps" toml:"jumps"`
	Dash       DashConfig        `json:"dash" yaml:"dash" toml:"dash"`
	Controller ControllerConfig  `json:"controller" yaml:"controller" toml:"controller"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth" toml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight" toml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale" toml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate" toml:"framerate"`
}

// BodyConfig describes the hero collision box and its rays
type BodyConfig struct {
	Width   float64      `json:"width" yaml:"width" toml:"width"`
	Height  float64      `json:"height" yaml:"height" toml:"height"`
	Sensors SensorConfig `json:"sensors" yaml:"sensors" toml:"sensors"`
}

// SensorConfig selects the sensor backend ("space" or "tile").
// Empty anchor lists fall back to the default corner rays.
type SensorConfig struct {
	Kind   string         `json:"kind" yaml:"kind" toml:"kind"`
	Length float64        `json:"length" yaml:"length" toml:"length"`
	Ground []AnchorConfig `json:"ground" yaml:"ground" toml:"ground"`
	Left   []AnchorConfig `json:"left" yaml:"left" toml:"left"`
	Right  []AnchorConfig `json:"right" yaml:"right" toml:"right"`
}

type AnchorConfig struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

type HorizontalConfig struct {
	Acceleration     float64 `json:"acceleration" yaml:"acceleration" toml:"acceleration"`
	Deceleration     float64 `json:"deceleration" yaml:"deceleration" toml:"deceleration"`
	TurnBackFriction float64 `json:"turnBackFriction" yaml:"turnBackFriction" toml:"turnBackFriction"`
	SpeedMax         float64 `json:"speedMax" yaml:"speedMax" toml:"speedMax"`
}

type FallConfig struct {
	Gravity  float64 `json:"gravity" yaml:"gravity" toml:"gravity"`
	SpeedMax float64 `json:"speedMax" yaml:"speedMax" toml:"speedMax"`
}

type JumpStageConfig struct {
	Speed       float64 `json:"speed" yaml:"speed" toml:"speed"`
	MinDuration float64 `json:"minDuration" yaml:"minDuration" toml:"minDuration"`
	MaxDuration float64 `json:"maxDuration" yaml:"maxDuration" toml:"maxDuration"`
}

type DashConfig struct {
	GroundSpeed    float64 `json:"groundSpeed" yaml:"groundSpeed" toml:"groundSpeed"`
	GroundDuration float64 `json:"groundDuration" yaml:"groundDuration" toml:"groundDuration"`
	AirSpeed       float64 `json:"airSpeed" yaml:"airSpeed" toml:"airSpeed"`
	AirDuration    float64 `json:"airDuration" yaml:"airDuration" toml:"airDuration"`
	Cooldown       float64 `json:"cooldown" yaml:"cooldown" toml:"cooldown"`
}

// ControllerConfig tunes the input layer, not the hero itself
type ControllerConfig struct {
	// JumpBuffer is how long (seconds) a jump press is remembered while
	// the hero cannot jump yet.
	JumpBuffer float64 `json:"jumpBuffer" yaml:"jumpBuffer" toml:"jumpBuffer"`
}

// ToSet converts the file representation into a validated tuning set
func (c *TuningConfig) ToSet() (tuning.Set, error) {
	jumps := make([]tuning.JumpStage, len(c.Jumps))
	for i, j := range c.Jumps {
		jumps[i] = tuning.JumpStage{
			JumpSpeed:       j.Speed,
			JumpMinDuration: j.MinDuration,
			JumpMaxDuration: j.MaxDuration,
		}
	}

	set, err := tuning.NewSet(
		c.Ground.toTuning(),
		c.Air.toTuning(),
		c.Fall.toTuning(),
		c.JumpFall.toTuning(),
		jumps,
		tuning.Dash{
			GroundSpeed:    c.Dash.GroundSpeed,
			GroundDuration: c.Dash.GroundDuration,
			AirSpeed:       c.Dash.AirSpeed,
			AirDuration:    c.Dash.AirDuration,
			Cooldown:       c.Dash.Cooldown,
		},
	)
	if err != nil {
		return tuning.Set{}, fmt.Errorf("failed to build tuning set: %w", err)
	}
	return set, nil
}

func (h HorizontalConfig) toTuning() tuning.Horizontal {
	return tuning.Horizontal{
		Acceleration:     h.Acceleration,
		Deceleration:     h.Deceleration,
		TurnBackFriction: h.TurnBackFriction,
		SpeedMax:         h.SpeedMax,
	}
}

func (f FallConfig) toTuning() tuning.Fall {
	return tuning.Fall{
		FallGravity:  f.Gravity,
		FallSpeedMax: f.SpeedMax,
	}
}
