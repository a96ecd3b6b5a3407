package main

import (
	"fmt"

	"github.com/younwookim/herocore/internal/application/replay"
	"github.com/younwookim/herocore/internal/application/system"
	"github.com/younwookim/herocore/internal/infrastructure/config"
)

// runReplay rebuilds the recorded session from its own stage, tuning, tick
// rate and sensor kind, plays it without a window and checks the final state.
// A tuning stored in the recording wins over the tuning file on disk.
func runReplay(loader *config.Loader, filename string) (system.Snapshot, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return system.Snapshot{}, err
	}

	tuning, stage, err := recordedConfig(loader, data)
	if err != nil {
		return system.Snapshot{}, fmt.Errorf("failed to load recorded config: %w", err)
	}

	sim, err := system.NewSimulation(tuning, system.LoadStage(stage), system.SimulationOptions{
		TickRate: data.TickRate,
		Sensor:   data.Sensor,
	})
	if err != nil {
		return system.Snapshot{}, fmt.Errorf("failed to create simulation: %w", err)
	}

	return replay.Verify(sim, replay.NewReplayer(*data))
}

func recordedConfig(loader *config.Loader, data *replay.ReplayData) (*config.TuningConfig, *config.StageConfig, error) {
	if data.TuningConfig == nil {
		cfg, err := loader.LoadAll(data.Tuning, data.Stage)
		if err != nil {
			return nil, nil, err
		}
		return cfg.Tuning, cfg.Stage, nil
	}

	if err := data.TuningConfig.Validate(); err != nil {
		return nil, nil, err
	}
	stage, err := loader.LoadStage(data.Stage)
	if err != nil {
		return nil, nil, err
	}
	return data.TuningConfig, stage, nil
}
