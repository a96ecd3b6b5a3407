package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/herocore/internal/application/system"
	"github.com/younwookim/herocore/internal/infrastructure/config"
)

func createTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Stage:     "demo",
		Tuning:    "hero.yaml",
		Framerate: 60,
		TickRate:  120,
		Frames:    make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i}
	}
	return data
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true, JP: true},
			{F: 2, DP: true},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Left: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Right: true, Jump: true, JumpPressed: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{DashPressed: true}, input)

	_, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.True(t, replayer.Done())
}

func TestReplayer_Poll(t *testing.T) {
	replayer := NewReplayer(ReplayData{Frames: []FrameInput{{F: 0, R: true}}})

	var src system.InputSource = replayer
	assert.True(t, src.Poll().Right)
	assert.Equal(t, system.InputState{}, src.Poll(), "idle past the end")
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(createTestReplayData(5))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(createTestReplayData(3))

	for !replayer.Done() {
		replayer.GetInput()
	}

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	_, ok := replayer.GetInput()
	assert.True(t, ok)
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		body := `{"version":"2.0","stage":"demo","tuning":"hero.yaml","framerate":60,"tickRate":120,
			"frames":[{"f":0,"r":true},{"f":1,"jp":true,"j":true}],"final":"tick=2"}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		data, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, "demo", data.Stage)
		assert.Equal(t, 120, data.TickRate)
		assert.Len(t, data.Frames, 2)
		assert.True(t, data.Frames[1].JP)
		assert.Equal(t, "tick=2", data.Final)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})
}

func TestReplayer_ReloadsAt(t *testing.T) {
	fast := config.TuningConfig{Ground: config.HorizontalConfig{SpeedMax: 200}}
	slow := config.TuningConfig{Ground: config.HorizontalConfig{SpeedMax: 50}}
	r := NewReplayer(ReplayData{Reloads: []TuningReload{
		{F: 3, Tuning: fast},
		{F: 3, Tuning: slow},
		{F: 7, Tuning: fast},
	}})

	assert.Empty(t, r.ReloadsAt(0))
	assert.Equal(t, []config.TuningConfig{fast, slow}, r.ReloadsAt(3))
	assert.Equal(t, []config.TuningConfig{fast}, r.ReloadsAt(7))
}
