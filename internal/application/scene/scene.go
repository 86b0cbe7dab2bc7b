// Package scene defines the Scene interface for game screens.
//
// The gameplay screen implements it; the game loop only knows this interface,
// so screens can be swapped without touching the loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Screen transitions are handled by returning a new Scene from Update.
// This is unrelated to the level scenes the simulation teleports between.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene or when the game stops.
	OnExit()
}
