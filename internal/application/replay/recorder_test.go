package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/herocore/internal/application/system"
	"github.com/younwookim/herocore/internal/infrastructure/config"
)

func TestRecorderAndReplayer(t *testing.T) {
	recorder := NewRecorder("demo", "hero.yaml", 60, 120)
	inputs := []system.InputState{
		{Right: true},
		{Right: true, Jump: true, JumpPressed: true},
		{Right: true, Jump: true},
		{Left: true, DashPressed: true},
	}

	for _, input := range inputs {
		recorder.RecordFrame(input)
	}
	assert.Equal(t, 4, recorder.FrameCount())

	data := recorder.GetData()
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, "hero.yaml", data.Tuning)
	assert.Equal(t, 3, data.Frames[3].F)

	replayer := NewReplayer(data)
	for i, want := range inputs {
		got, ok := replayer.GetInput()
		require.True(t, ok, "frame %d", i)
		assert.Equal(t, want, got, "frame %d", i)
	}
}

func TestRecorder_Stop(t *testing.T) {
	recorder := NewRecorder("demo", "hero.yaml", 60, 120)
	recorder.RecordFrame(system.InputState{Right: true})

	recorder.Stop()
	recorder.RecordFrame(system.InputState{Left: true})

	assert.False(t, recorder.IsRecording())
	assert.Equal(t, 1, recorder.FrameCount())
}

func TestRecorder_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	recorder := NewRecorder("demo", "hero.yaml", 60, 120)
	recorder.RecordFrame(system.InputState{Right: true, DashPressed: true})
	recorder.SetFinal("tick=2")
	require.NoError(t, recorder.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, recorder.GetData().Frames, data.Frames)
	assert.Equal(t, "tick=2", data.Final)
	assert.Equal(t, 60, data.Framerate)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	recorder := NewRecorder("demo", "hero.yaml", 60, 120)

	err := recorder.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}

func TestRecorder_SetSensor(t *testing.T) {
	rec := NewRecorder("demo", "hero.yaml", 60, 120)
	assert.Empty(t, rec.GetData().Sensor)

	rec.SetSensor("tile")
	assert.Equal(t, "tile", rec.GetData().Sensor)
}

func TestRecorder_TuningAndReloads(t *testing.T) {
	rec := NewRecorder("demo", "hero.yaml", 60, 120)
	start := &config.TuningConfig{Ground: config.HorizontalConfig{SpeedMax: 120}}
	rec.SetTuning(start)
	start.Ground.SpeedMax = 999
	assert.Equal(t, 120.0, rec.GetData().TuningConfig.Ground.SpeedMax, "the starting tuning is copied")

	rec.RecordFrame(system.InputState{})
	rec.RecordFrame(system.InputState{})
	rec.RecordReload(&config.TuningConfig{Ground: config.HorizontalConfig{SpeedMax: 200}})

	reloads := rec.GetData().Reloads
	require.Len(t, reloads, 1)
	assert.Equal(t, 2, reloads[0].F, "applies before the next recorded frame")

	rec.Stop()
	rec.RecordReload(&config.TuningConfig{})
	assert.Len(t, rec.GetData().Reloads, 1)
}

func TestRecorder_SaveKeepsTuning(t *testing.T) {
	rec := NewRecorder("demo", "hero.yaml", 60, 120)
	rec.SetTuning(&config.TuningConfig{Ground: config.HorizontalConfig{SpeedMax: 120}})
	rec.RecordFrame(system.InputState{Right: true})
	rec.RecordReload(&config.TuningConfig{Ground: config.HorizontalConfig{SpeedMax: 200}})
	rec.RecordFrame(system.InputState{Right: true})

	filename := filepath.Join(t.TempDir(), "tuned.json")
	require.NoError(t, rec.Save(filename))

	data, err := LoadReplay(filename)
	require.NoError(t, err)
	require.NotNil(t, data.TuningConfig)
	assert.Equal(t, 120.0, data.TuningConfig.Ground.SpeedMax)
	require.Len(t, data.Reloads, 1)
	assert.Equal(t, 1, data.Reloads[0].F)
	assert.Equal(t, 200.0, data.Reloads[0].Tuning.Ground.SpeedMax)
}
