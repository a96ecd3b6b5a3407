package system

import (
	"fmt"

	"github.com/younwookim/herocore/internal/domain/entity"
	"github.com/younwookim/herocore/internal/domain/motion"
	"github.com/younwookim/herocore/internal/infrastructure/config"
	"github.com/younwookim/herocore/internal/infrastructure/physics"
)

// DefaultTickRate is the fixed simulation rate in ticks per second
const DefaultTickRate = 120

// SimulationOptions overrides parts of the tuning file
type SimulationOptions struct {
	TickRate         int    // 0 uses DefaultTickRate
	MaxTicksPerFrame int    // 0 uses DefaultMaxTicksPerFrame
	Sensor           string // "" uses the tuning file's sensor kind
}

// Simulation wires the hero to a physics world, sensors and a controller.
// Every tick runs controller, hero, then the physics step, in that order.
type Simulation struct {
	stage      *entity.Stage
	world      *physics.World
	hero       *entity.Hero
	controller *HeroController
	clock      *FixedClock

	ticks    uint64
	velocity motion.Velocity
}

// NewSimulation builds a simulation for a stage from a tuning config
func NewSimulation(cfg *config.TuningConfig, stage *entity.Stage, opts SimulationOptions) (*Simulation, error) {
	set, err := cfg.ToSet()
	if err != nil {
		return nil, err
	}

	rate := opts.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	clock, err := NewFixedClock(1.0/float64(rate), opts.MaxTicksPerFrame)
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld(stage, physics.BodySize{Width: cfg.Body.Width, Height: cfg.Body.Height})

	kind := cfg.Body.Sensors.Kind
	if opts.Sensor != "" {
		kind = opts.Sensor
	}
	sensors, err := newSensors(kind, stage, world, raysFor(cfg.Body))
	if err != nil {
		return nil, err
	}

	hero, err := entity.NewHero(set, sensors, world)
	if err != nil {
		return nil, fmt.Errorf("failed to create hero: %w", err)
	}

	return &Simulation{
		stage:      stage,
		world:      world,
		hero:       hero,
		controller: NewHeroController(hero, cfg.Controller.JumpBuffer),
		clock:      clock,
	}, nil
}

func newSensors(kind string, stage *entity.Stage, world *physics.World, rays physics.Rays) (entity.Sensors, error) {
	switch kind {
	case "", config.SensorSpace:
		return physics.NewSpaceSensor(world, rays)
	case config.SensorTile:
		return physics.NewTileSensor(stage, world, rays)
	default:
		return nil, fmt.Errorf("%w: unknown sensor kind %q", config.ErrInvalidConfig, kind)
	}
}

// raysFor builds rays from the body config, filling gaps with defaults
func raysFor(body config.BodyConfig) physics.Rays {
	rays := physics.DefaultRays(physics.BodySize{Width: body.Width, Height: body.Height})
	s := body.Sensors
	if s.Length > 0 {
		rays.Length = s.Length
	}
	if len(s.Ground) > 0 {
		rays.Ground = anchors(s.Ground)
	}
	if len(s.Left) > 0 {
		rays.Left = anchors(s.Left)
	}
	if len(s.Right) > 0 {
		rays.Right = anchors(s.Right)
	}
	return rays
}

func anchors(cfg []config.AnchorConfig) []physics.Anchor {
	out := make([]physics.Anchor, len(cfg))
	for i, a := range cfg {
		out[i] = physics.Anchor{X: a.X, Y: a.Y}
	}
	return out
}

// Frame runs the fixed ticks owed for frameDT seconds and returns their count.
// Press edges apply to the first tick only.
func (s *Simulation) Frame(in InputState, frameDT float64) int {
	n := s.clock.Advance(frameDT)
	for i := 0; i < n; i++ {
		if i > 0 {
			in = in.Held()
		}
		s.Tick(in)
	}
	return n
}

// Tick runs exactly one fixed step
func (s *Simulation) Tick(in InputState) {
	dt := s.clock.Step()
	s.controller.Apply(in, dt)
	s.velocity = s.hero.FixedUpdate(dt)
	s.world.Step(dt)
	s.ticks++
}

// ApplyTuning swaps the hero tuning and controller settings between ticks.
// Body size and sensor changes need a restart.
func (s *Simulation) ApplyTuning(cfg *config.TuningConfig) error {
	set, err := cfg.ToSet()
	if err != nil {
		return err
	}
	if err := s.hero.SetTuning(set); err != nil {
		return err
	}
	s.controller.SetJumpBuffer(cfg.Controller.JumpBuffer)
	return nil
}

// Reset respawns the hero and clears all simulation state
func (s *Simulation) Reset() {
	s.world.Respawn()
	s.hero.Reset()
	s.controller.Reset()
	s.clock.Reset()
	s.ticks = 0
	s.velocity = motion.Velocity{}
}

// Hero returns the simulated hero
func (s *Simulation) Hero() *entity.Hero {
	return s.hero
}

// World returns the physics world
func (s *Simulation) World() *physics.World {
	return s.world
}

// Stage returns the stage
func (s *Simulation) Stage() *entity.Stage {
	return s.stage
}

// Controller returns the hero controller
func (s *Simulation) Controller() *HeroController {
	return s.controller
}

// Ticks returns the number of fixed ticks run since creation or Reset
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// StepSeconds returns the fixed timestep
func (s *Simulation) StepSeconds() float64 {
	return s.clock.Step()
}

// Snapshot is a comparable summary of the simulation state
type Snapshot struct {
	Tick      uint64
	X, Y      float64
	Velocity  motion.Velocity
	Jump      entity.JumpStage
	JumpIndex int
	Dash      entity.DashStage
	Grounded  bool
	OrientX   int
}

// Snapshot captures the current state
func (s *Simulation) Snapshot() Snapshot {
	x, y := s.world.HeroPosition()
	j := s.hero.Jump()
	return Snapshot{
		Tick:      s.ticks,
		X:         x,
		Y:         y,
		Velocity:  s.velocity,
		Jump:      j.Stage,
		JumpIndex: j.Index,
		Dash:      s.hero.Dash().Stage,
		Grounded:  s.hero.IsTouchingGround(),
		OrientX:   s.hero.OrientX(),
	}
}

// String formats the snapshot on one line
func (sn Snapshot) String() string {
	return fmt.Sprintf("tick=%d pos=(%.2f,%.2f) vel=(%.2f,%.2f) jump=%s#%d dash=%s grounded=%t orient=%d",
		sn.Tick, sn.X, sn.Y, sn.Velocity.X, sn.Velocity.Y, sn.Jump, sn.JumpIndex, sn.Dash, sn.Grounded, sn.OrientX)
}
