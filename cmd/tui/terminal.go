package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/scenehop/internal/application/system"
	"github.com/younwookim/scenehop/internal/infrastructure/asset"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
	"github.com/younwookim/scenehop/internal/infrastructure/input"
	"github.com/younwookim/scenehop/internal/render"
)

// KeyHold is how long a key counts as held after its last press or repeat.
// It outlasts the initial auto-repeat delay of common terminals (250-500ms),
// so a held key keeps moving until its repeats take over.
const KeyHold = 550 * time.Millisecond

// terminal runs the simulation in a tcell screen
type terminal struct {
	screen   tcell.Screen
	keyboard *input.Keyboard
	bindings input.Bindings
	sim      *system.Simulation
	state    *system.SimulationState
	renderer *render.Renderer
	surface  *render.CellSurface
	tick     time.Duration
	paused   bool
}

func newTerminal(screen tcell.Screen, cfg *config.Settings, sim *system.Simulation, loaded system.LoadedScene, sprites *asset.Handle) *terminal {
	tps := cfg.Display.TPS
	if tps <= 0 {
		tps = 60
	}
	return &terminal{
		screen:   screen,
		keyboard: input.NewKeyboard(),
		bindings: input.Bindings{
			Left:   cfg.Keys.Left,
			Right:  cfg.Keys.Right,
			Jump:   cfg.Keys.Jump,
			Attack: cfg.Keys.Attack,
		},
		sim:      sim,
		state:    sim.NewState(loaded),
		renderer: render.NewRenderer(sprites),
		surface:  render.NewCellSurface(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		tick:     time.Second / time.Duration(tps),
	}
}

// handleEvent applies one terminal event. It returns false to quit.
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
			t.paused = !t.paused
			t.keyboard.Reset()
			return true
		}
		if name := keyName(ev); name != "" {
			t.keyboard.Press(name)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// step runs one simulation tick
func (t *terminal) step() system.StepResult {
	if t.paused {
		return system.StepResult{}
	}
	t.keyboard.ReleaseStale(KeyHold)
	res := t.sim.Step(t.state, t.keyboard.Snapshot(t.bindings))

	if res.Requested != "" {
		log.Printf("teleport to %s", res.Requested)
	}
	if res.Swapped {
		log.Printf("scene %s loaded", t.state.Scene.Name)
	}
	if res.Err != nil {
		log.Printf("scene load failed: %v", res.Err)
	}
	return res
}

func (t *terminal) draw() {
	st := t.state
	t.renderer.Draw(t.surface, st.Scene, st.Images, st.Player)

	status := fmt.Sprintf("%s  %s  x=%.0f y=%.0f", st.SceneName, st.Player.State, st.Player.X, st.Player.Y)
	if t.paused {
		status += "  PAUSED"
	}
	t.surface.Text(0, 0, status)
	if st.LastError != nil {
		t.surface.Text(0, render.CellHeight, st.LastError.Error())
	}

	t.surface.Flush(t.screen)
	t.screen.Show()
}

// run polls terminal events on a goroutine and ticks on a ticker until quit
func (t *terminal) run() {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(eventChan, quit)
	defer close(quit)

	t.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.step()
			t.draw()
		}
	}
}
