package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/herocore/internal/application/system"
	"github.com/younwookim/herocore/internal/infrastructure/config"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

var _ system.InputSource = (*Replayer)(nil)

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		Jump:        fi.J,
		JumpPressed: fi.JP,
		DashPressed: fi.DP,
	}, true
}

// ReloadsAt returns the tuning swaps recorded before frame, in order
func (r *Replayer) ReloadsAt(frame int) []config.TuningConfig {
	var out []config.TuningConfig
	for _, rl := range r.data.Reloads {
		if rl.F == frame {
			out = append(out, rl.Tuning)
		}
	}
	return out
}

// Poll implements system.InputSource; past the end it reports no input
func (r *Replayer) Poll() system.InputState {
	in, _ := r.GetInput()
	return in
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Data returns the replay data
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
