// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/herocore/internal/application/replay"
	"github.com/younwookim/herocore/internal/application/scene"
	"github.com/younwookim/herocore/internal/application/state"
	"github.com/younwookim/herocore/internal/application/system"
	"github.com/younwookim/herocore/internal/domain/entity"
	"github.com/younwookim/herocore/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorGround  = colornames.Sienna
	colorWall    = colornames.Slategray
	colorHero    = colornames.Limegreen
	colorFacing  = colornames.White
	colorDashing = colornames.Gold
	colorContact = colornames.Crimson
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

const defaultBackground = "midnightblue"

// heroVisual is the mirrored visual root of the hero
type heroVisual struct {
	scaleX float64
}

// SetScaleX implements entity.OrientVisual
func (v *heroVisual) SetScaleX(scaleX float64) {
	v.scaleX = scaleX
}

// Playing is the main gameplay scene
type Playing struct {
	sim      *system.Simulation
	input    system.InputSource
	stageCfg *config.StageConfig
	state    state.GameState
	screenW  int
	screenH  int
	visual   heroVisual
	bg       color.Color

	showDebug bool

	// Tuning hot reload
	tuning     *config.TuningConfig
	loader     *config.Loader
	tuningFile string
	watcher    *config.Watcher

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, sim *system.Simulation, input system.InputSource) *Playing {
	return &Playing{
		sim:       sim,
		input:     input,
		stageCfg:  cfg.Stage,
		tuning:    cfg.Tuning,
		state:     state.StatePlaying,
		screenW:   cfg.Tuning.Display.ScreenWidth,
		screenH:   cfg.Tuning.Display.ScreenHeight,
		visual:    heroVisual{scaleX: 1},
		bg:        backgroundColor(cfg.Stage.Background.Color),
		showDebug: true,
	}
}

// backgroundColor resolves an SVG color name, falling back to the default
func backgroundColor(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Map[defaultBackground]
}

// EnableRecording records every frame's input and saves it on exit.
// An empty filename is replaced by a timestamped one at save time.
// The active tuning and every later reload are stored with the frames.
func (p *Playing) EnableRecording(rec *replay.Recorder, filename string) {
	rec.SetTuning(p.tuning)
	p.recorder = rec
	p.recordFilename = filename
	log.Printf("Recording enabled: %s", filename)
}

// WatchTuning reloads the tuning file whenever the watcher reports it
func (p *Playing) WatchTuning(w *config.Watcher, loader *config.Loader, tuningFile string) {
	p.watcher = w
	p.loader = loader
	p.tuningFile = tuningFile
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = p.state.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		p.showDebug = !p.showDebug
	}

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(dt)
	case state.StatePaused:
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.restart()
		return
	}

	input := p.input.Poll()

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.sim.Frame(input, dt)

	// Presentation tick: facing is pushed once per frame, not per fixed tick.
	p.sim.Hero().UpdateOrientVisual(&p.visual)
}

// drainReloads applies pending tuning changes between ticks
func (p *Playing) drainReloads() {
	if p.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			if filepath.Base(name) != filepath.Base(p.tuningFile) {
				continue
			}
			p.reloadTuning()
		case err, ok := <-p.watcher.Errors:
			if !ok {
				p.watcher = nil
				return
			}
			log.Printf("Tuning watcher error: %v", err)
		default:
			return
		}
	}
}

func (p *Playing) reloadTuning() {
	cfg, err := p.loader.LoadTuning(p.tuningFile)
	if err != nil {
		log.Printf("Tuning reload rejected: %v", err)
		return
	}
	if err := p.sim.ApplyTuning(cfg); err != nil {
		log.Printf("Tuning reload rejected: %v", err)
		return
	}
	p.tuning = cfg
	if p.recorder != nil {
		p.recorder.RecordReload(cfg)
		log.Printf("Tuning reloaded: %s (recorded before frame %d)", p.tuningFile, p.recorder.FrameCount())
		return
	}
	log.Printf("Tuning reloaded: %s", p.tuningFile)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	p.recorder.SetFinal(p.sim.Snapshot().String())
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	p.sim.Reset()
	p.visual.scaleX = 1
	// A recording only replays from spawn; restart drops what came before.
	if p.recorder != nil {
		data := p.recorder.GetData()
		p.recorder = replay.NewRecorder(data.Stage, data.Tuning, data.Framerate, data.TickRate)
		p.recorder.SetSensor(data.Sensor)
		p.recorder.SetTuning(p.tuning)
	}
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.bg)

	p.drawTiles(screen)
	p.drawHero(screen)

	if p.showDebug {
		p.drawDebug(screen)
	}

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image) {
	st := p.sim.Stage()
	size := float32(st.TileSize)

	for ty := 0; ty < st.Height; ty++ {
		for tx := 0; tx < st.Width; tx++ {
			tile := st.GetTile(tx, ty)
			if !tile.Solid {
				continue
			}

			var c color.Color
			switch tile.Type {
			case entity.TileGround:
				c = colorGround
			case entity.TileWall:
				c = colorWall
			default:
				continue
			}

			vector.FillRect(screen, float32(tx)*size, float32(ty)*size, size, size, c, false)
		}
	}
}

func (p *Playing) drawHero(screen *ebiten.Image) {
	world := p.sim.World()
	size := world.HeroSize()
	cx, cy := world.ToScreen(world.HeroPosition())

	x := float32(cx - size.Width/2)
	y := float32(cy - size.Height/2)
	w, h := float32(size.Width), float32(size.Height)

	body := color.Color(colorHero)
	if p.sim.Hero().IsDashing() {
		body = colorDashing
	}
	vector.FillRect(screen, x, y, w, h, body, false)

	// Eye on the facing side, mirrored by the visual's scaleX.
	eyeX := float32(cx) + float32(p.visual.scaleX)*w/4 - 1
	vector.FillRect(screen, eyeX, y+3, 2, 2, colorFacing, false)

	hero := p.sim.Hero()
	if hero.IsTouchingGround() {
		vector.FillRect(screen, x, y+h, w, 1, colorContact, false)
	}
	if hero.IsTouchingWallLeft() {
		vector.FillRect(screen, x-1, y, 1, h, colorContact, false)
	}
	if hero.IsTouchingWallRight() {
		vector.FillRect(screen, x+w, y, 1, h, colorContact, false)
	}
}

func (p *Playing) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, debugText(p.sim))
	ebitenutil.DebugPrintAt(screen, "A/D: Move | W: Jump | Space: Dash | R: Reset | F1: Debug | ESC: Pause", 4, p.screenH-16)
}

// debugText renders the hero state shown in the corner overlay
func debugText(sim *system.Simulation) string {
	hero := sim.Hero()
	m := hero.Motion()
	j := hero.Jump()
	d := hero.Dash()
	return fmt.Sprintf(
		"moveDir %d  orient %d\nspeed h %.1f  v %.1f\njump %s %d/%d\ndash %s  cd %.2f\nground %t  wall L %t R %t\ntick %d",
		m.MoveDirX, m.OrientX,
		m.HorizontalSpeed, m.VerticalSpeed,
		j.Stage, j.Index, hero.Tuning().JumpCount(),
		d.Stage, d.TimeSinceDash,
		hero.IsTouchingGround(), hero.IsTouchingWallLeft(), hero.IsTouchingWallRight(),
		sim.Ticks(),
	)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene (implements scene.Scene)
func (p *Playing) OnEnter() {
	p.state = state.StatePlaying
}

// OnExit saves the recording and stops watching (implements scene.Scene)
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
	if p.watcher != nil {
		if err := p.watcher.Close(); err != nil {
			log.Printf("Failed to close tuning watcher: %v", err)
		}
		p.watcher = nil
	}
}

// State returns the current scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Layout returns the logical screen size
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
