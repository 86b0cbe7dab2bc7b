// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/scenehop/internal/application/replay"
	"github.com/younwookim/scenehop/internal/application/scene"
	"github.com/younwookim/scenehop/internal/application/state"
	"github.com/younwookim/scenehop/internal/application/system"
	"github.com/younwookim/scenehop/internal/domain/entity"
	"github.com/younwookim/scenehop/internal/infrastructure/asset"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
	"github.com/younwookim/scenehop/internal/infrastructure/watch"
	"github.com/younwookim/scenehop/internal/render"
)

var colorOverlay = color.RGBA{0, 0, 0, 150}

// InputSource supplies the input of one tick
type InputSource interface {
	GetInput() entity.InputState
}

// ChangeSource reports scene files changed on disk
type ChangeSource interface {
	Poll() []string
}

// ReplayInput plays recorded input back, then reports no keys held
type ReplayInput struct {
	Replayer *replay.Replayer
	finished bool
}

// GetInput returns the next recorded frame
func (r *ReplayInput) GetInput() entity.InputState {
	in, ok := r.Replayer.GetInput()
	if !ok && !r.finished {
		r.finished = true
		log.Printf("replay finished after %d frames", r.Replayer.TotalFrames())
	}
	return in
}

// Options configures optional gameplay features
type Options struct {
	Input      InputSource  // Defaults to the keyboard
	Changes    ChangeSource // Hot reload source, nil disables it
	RecordPath string       // Record input to this file when set
	Sprites    *asset.Handle
}

// Playing is the main gameplay scene
type Playing struct {
	config     *config.Settings
	sim        *system.Simulation
	simState   *system.SimulationState
	state      state.GameState
	startScene string
	loadErr    error

	input    InputSource
	changes  ChangeSource
	renderer *render.Renderer
	textures *render.TextureCache
	screenW  int
	screenH  int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene that starts in startScene.
// The start scene is loaded in the background once the scene is entered.
func New(cfg *config.Settings, sim *system.Simulation, startScene string, opts Options) (*Playing, error) {
	input := opts.Input
	if input == nil {
		keys, err := system.NewInputSystem(cfg.Keys)
		if err != nil {
			return nil, fmt.Errorf("failed to bind keys: %w", err)
		}
		input = keys
	}

	p := &Playing{
		config:         cfg,
		sim:            sim,
		state:          state.StateLoading,
		startScene:     startScene,
		input:          input,
		changes:        opts.Changes,
		renderer:       render.NewRenderer(opts.Sprites),
		textures:       render.NewTextureCache(),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: opts.RecordPath,
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(startScene)
		log.Printf("recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return p.state
}

// Simulation returns the simulation state, nil while loading
func (p *Playing) Simulation() *system.SimulationState {
	return p.simState
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.state {
	case state.StateLoading:
		p.updateLoading()
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateLoadFailed:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			p.Retry()
		}
	}

	return nil, nil // nil = stay on this scene
}

// Retry requests the start scene again after a failed load
func (p *Playing) Retry() {
	if p.state != state.StateLoadFailed {
		return
	}
	p.loadErr = nil
	p.state = state.StateLoading
	p.sim.Loader().Request(p.startScene, "")
}

func (p *Playing) updateLoading() {
	res, ok := p.sim.Loader().Poll()
	if !ok {
		return
	}
	if res.Err != nil {
		p.loadErr = res.Err
		p.state = state.StateLoadFailed
		log.Printf("failed to load start scene: %v", res.Err)
		return
	}

	p.simState = p.sim.NewState(res.Loaded)
	p.state = state.StatePlaying
	log.Printf("scene %s loaded", res.Name)
}

func (p *Playing) updatePlaying() {
	// Check for pause
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.checkReload()

	input := p.input.GetInput()

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	res := p.sim.Step(p.simState, input)
	if p.recorder != nil && (res.Swapped || res.Err != nil) {
		p.recorder.RecordLoad()
	}
	p.logStep(res)
}

// checkReload asks for the current scene again when its file changed
func (p *Playing) checkReload() {
	if p.changes == nil {
		return
	}
	current, err := config.SceneFile(p.simState.Scene.Name)
	if err != nil {
		return
	}
	for _, changed := range p.changes.Poll() {
		if watch.SameScene(changed, current) {
			log.Printf("scene %s changed on disk, reloading", current)
			p.sim.Reload(p.simState)
			return
		}
	}
}

func (p *Playing) logStep(res system.StepResult) {
	if res.Requested != "" {
		log.Printf("teleport to %s", res.Requested)
	}
	if res.Swapped {
		log.Printf("scene %s loaded", p.simState.Scene.Name)
	}
	if res.Err != nil {
		var ref *system.InvalidSceneReference
		if errors.As(res.Err, &ref) {
			log.Printf("staying in %s: %v", ref.From, res.Err)
		} else {
			log.Printf("scene load failed: %v", res.Err)
		}
	}
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

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("failed to save recording: %v", err)
	} else {
		log.Printf("recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.DrawTo(render.NewEbitenSurface(screen, p.textures))
}

// DrawTo renders the game onto any surface
func (p *Playing) DrawTo(s render.Surface) {
	if p.simState == nil {
		s.Clear(render.ColorBackground)
	} else {
		st := p.simState
		p.renderer.Draw(s, st.Scene, st.Images, st.Player)
		p.drawHUD(s)
	}

	switch p.state {
	case state.StateLoading:
		s.Text(p.screenW/2-40, p.screenH/2, "LOADING...")
	case state.StatePaused:
		s.FillRect(entity.Rect{W: float64(p.screenW), H: float64(p.screenH)}, colorOverlay)
		s.Text(p.screenW/2-50, p.screenH/2-20, "PAUSED\nESC to resume")
	case state.StateLoadFailed:
		s.Text(16, p.screenH/2-20, fmt.Sprintf("LOAD FAILED\n%v\nENTER to retry", p.loadErr))
	}
}

func (p *Playing) drawHUD(s render.Surface) {
	st := p.simState
	text := fmt.Sprintf("scene: %s  state: %s  frame: %d", st.SceneName, st.Player.State, st.Player.FrameIndex)
	if st.LastError != nil {
		text += "\nlast error: " + st.LastError.Error()
	}
	s.Text(4, 4, text)
}

// OnEnter starts loading the start scene (implements scene.Scene)
func (p *Playing) OnEnter() {
	p.sim.Loader().Request(p.startScene, "")
}

// OnExit saves the recording and stops background loading (implements scene.Scene)
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
	}
	p.sim.Loader().Close()
}
