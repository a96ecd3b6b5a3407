package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/herocore/internal/domain/tuning"
)

func createTestConfig() *TuningConfig {
	return &TuningConfig{
		Display:  DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Scale: 2, Framerate: 60},
		Body:     BodyConfig{Width: 12, Height: 16},
		Ground:   HorizontalConfig{Acceleration: 1, Deceleration: 2, TurnBackFriction: 3, SpeedMax: 4},
		Air:      HorizontalConfig{Acceleration: 5, Deceleration: 6, TurnBackFriction: 7, SpeedMax: 8},
		Fall:     FallConfig{Gravity: 9, SpeedMax: 10},
		JumpFall: FallConfig{Gravity: 11, SpeedMax: 12},
		Jumps: []JumpStageConfig{
			{Speed: 13, MinDuration: 0.1, MaxDuration: 0.2},
		},
		Dash: DashConfig{GroundSpeed: 14, GroundDuration: 0.3, AirSpeed: 15, AirDuration: 0.4, Cooldown: 0.5},
	}
}

func TestTuningConfig_ToSet(t *testing.T) {
	set, err := createTestConfig().ToSet()
	require.NoError(t, err)

	assert.Equal(t, tuning.Horizontal{Acceleration: 1, Deceleration: 2, TurnBackFriction: 3, SpeedMax: 4}, set.Horizontal(tuning.Ground))
	assert.Equal(t, tuning.Horizontal{Acceleration: 5, Deceleration: 6, TurnBackFriction: 7, SpeedMax: 8}, set.Horizontal(tuning.Air))
	assert.Equal(t, tuning.Fall{FallGravity: 9, FallSpeedMax: 10}, set.Fall(tuning.NormalFall))
	assert.Equal(t, tuning.Fall{FallGravity: 11, FallSpeedMax: 12}, set.Fall(tuning.JumpFall))
	require.Equal(t, 1, set.JumpCount())
	assert.Equal(t, tuning.JumpStage{JumpSpeed: 13, JumpMinDuration: 0.1, JumpMaxDuration: 0.2}, set.JumpStage(0))
	assert.Equal(t, 0.5, set.Dash().Cooldown)
	assert.Equal(t, 15.0, set.Dash().AirSpeed)
}

func TestTuningConfig_ToSetInvalid(t *testing.T) {
	cfg := createTestConfig()
	cfg.Jumps[0].MinDuration = 1

	_, err := cfg.ToSet()
	assert.ErrorIs(t, err, tuning.ErrInvalid)
}

func TestTuningConfig_Validate(t *testing.T) {
	require.NoError(t, createTestConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *TuningConfig)
	}{
		{"zero screen", func(c *TuningConfig) { c.Display.ScreenWidth = 0 }},
		{"zero scale", func(c *TuningConfig) { c.Display.Scale = 0 }},
		{"zero framerate", func(c *TuningConfig) { c.Display.Framerate = 0 }},
		{"zero body", func(c *TuningConfig) { c.Body.Height = 0 }},
		{"unknown sensor", func(c *TuningConfig) { c.Body.Sensors.Kind = "laser" }},
		{"negative ray length", func(c *TuningConfig) { c.Body.Sensors.Length = -1 }},
		{"negative buffer", func(c *TuningConfig) { c.Controller.JumpBuffer = -0.1 }},
		{"NaN body width", func(c *TuningConfig) { c.Body.Width = math.NaN() }},
		{"infinite body height", func(c *TuningConfig) { c.Body.Height = math.Inf(1) }},
		{"NaN ray length", func(c *TuningConfig) { c.Body.Sensors.Length = math.NaN() }},
		{"NaN anchor", func(c *TuningConfig) {
			c.Body.Sensors.Left = []AnchorConfig{{X: math.NaN(), Y: 0}}
		}},
		{"NaN buffer", func(c *TuningConfig) { c.Controller.JumpBuffer = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
