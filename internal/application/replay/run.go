package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/herocore/internal/application/system"
)

// ErrMismatch is returned when a replay ends in a different state than recorded
var ErrMismatch = errors.New("replay diverged")

// Play feeds every recorded frame to the simulation, applying recorded tuning
// reloads before the frame they preceded, and returns the final state
func Play(sim *system.Simulation, r *Replayer) (system.Snapshot, error) {
	frameDT := frameSeconds(r.data.Framerate)
	for {
		frame := r.CurrentFrame()
		for _, cfg := range r.ReloadsAt(frame) {
			if err := sim.ApplyTuning(&cfg); err != nil {
				return sim.Snapshot(), fmt.Errorf("failed to apply tuning reload at frame %d: %w", frame, err)
			}
		}

		in, ok := r.GetInput()
		if !ok {
			break
		}
		sim.Frame(in, frameDT)
	}
	return sim.Snapshot(), nil
}

// Verify plays the replay and compares the result with the recorded final state.
// Recordings without a final state only play.
func Verify(sim *system.Simulation, r *Replayer) (system.Snapshot, error) {
	snap, err := Play(sim, r)
	if err != nil {
		return snap, err
	}
	want := r.data.Final
	if want == "" {
		return snap, nil
	}
	if got := snap.String(); got != want {
		return snap, fmt.Errorf("%w:\n  recorded: %s\n  replayed: %s", ErrMismatch, want, got)
	}
	return snap, nil
}

func frameSeconds(framerate int) float64 {
	if framerate <= 0 {
		framerate = 60
	}
	return 1.0 / float64(framerate)
}
