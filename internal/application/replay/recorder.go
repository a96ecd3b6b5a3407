package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/herocore/internal/application/system"
	"github.com/younwookim/herocore/internal/infrastructure/config"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a stage and tuning file
func NewRecorder(stage, tuning string, framerate, tickRate int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Stage:     stage,
			Tuning:    tuning,
			Framerate: framerate,
			TickRate:  tickRate,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  r.frame,
		L:  input.Left,
		R:  input.Right,
		J:  input.Jump,
		JP: input.JumpPressed,
		DP: input.DashPressed,
	})
	r.frame++
}

// SetSensor records the sensor kind override the session ran with
func (r *Recorder) SetSensor(kind string) {
	r.data.Sensor = kind
}

// SetTuning stores the tuning the session starts with
func (r *Recorder) SetTuning(cfg *config.TuningConfig) {
	c := *cfg
	r.data.TuningConfig = &c
}

// RecordReload stores a tuning swap applied before the next recorded frame
func (r *Recorder) RecordReload(cfg *config.TuningConfig) {
	if !r.recording {
		return
	}
	r.data.Reloads = append(r.data.Reloads, TuningReload{F: r.frame, Tuning: *cfg})
}

// SetFinal stores the state reached after the last recorded frame
func (r *Recorder) SetFinal(snapshot string) {
	r.data.Final = snapshot
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
