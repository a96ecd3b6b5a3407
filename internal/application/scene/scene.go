// Package scene defines the Scene interface driven by the game loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the program, such as the playing field.
//
// The game loop calls Update once per presentation frame and Draw once per
// rendered frame. Returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt seconds of wall time.
	// A returned error terminates the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is left or the game closes.
	// Recordings are flushed and watchers released here.
	OnExit()
}
