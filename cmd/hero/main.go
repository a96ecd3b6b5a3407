package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/herocore/internal/application/game"
	"github.com/younwookim/herocore/internal/application/replay"
	"github.com/younwookim/herocore/internal/application/scene/playing"
	"github.com/younwookim/herocore/internal/application/system"
	"github.com/younwookim/herocore/internal/infrastructure/config"
)

// options holds the parsed command line
type options struct {
	configDir string
	tuning    string
	stage     string
	record    string
	replay    string
	tickRate  int
	sensor    string
	watch     bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.configDir, "config", "configs", "Config directory")
	fs.StringVar(&o.tuning, "tuning", "hero.yaml", "Tuning file (.yaml, .json or .toml) inside the config directory")
	fs.StringVar(&o.stage, "stage", "demo", "Stage name under <config>/stages")
	fs.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fs.StringVar(&o.replay, "replay", "", "Replay a recording headlessly and verify its final state")
	fs.IntVar(&o.tickRate, "tps", system.DefaultTickRate, "Simulation ticks per second")
	fs.StringVar(&o.sensor, "sensor", "", "Sensor backend override: space or tile")
	fs.BoolVar(&o.watch, "watch", false, "Reload the tuning file when it changes")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.tickRate <= 0 {
		return o, fmt.Errorf("tps must be positive, got %d", o.tickRate)
	}
	return o, nil
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	loader := config.NewLoader(opts.configDir)

	if opts.replay != "" {
		snap, err := runReplay(loader, opts.replay)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(snap)
		return
	}

	if err := run(loader, opts); err != nil {
		log.Fatal(err)
	}
}

func run(loader *config.Loader, opts options) error {
	cfg, err := loader.LoadAll(opts.tuning, opts.stage)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sim, err := system.NewSimulation(cfg.Tuning, system.LoadStage(cfg.Stage), system.SimulationOptions{
		TickRate: opts.tickRate,
		Sensor:   opts.sensor,
	})
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}

	display := cfg.Tuning.Display
	scene := playing.New(cfg, sim, system.NewKeyboardInput(system.DefaultKeyMap()))

	if opts.record != "" {
		rec := replay.NewRecorder(opts.stage, opts.tuning, display.Framerate, opts.tickRate)
		rec.SetSensor(opts.sensor)
		scene.EnableRecording(rec, opts.record)
	}

	if opts.watch {
		w, err := config.NewWatcher(filepath.Dir(filepath.Join(opts.configDir, opts.tuning)))
		if err != nil {
			return fmt.Errorf("failed to watch tuning: %w", err)
		}
		scene.WatchTuning(w, loader, opts.tuning)
		log.Printf("Watching %s for tuning changes", opts.tuning)
	}

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Hero Core: " + cfg.Stage.Name)
	ebiten.SetTPS(display.Framerate)

	return game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate).Run()
}
