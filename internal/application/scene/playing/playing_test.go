package playing

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/scenehop/internal/application/replay"
	"github.com/younwookim/scenehop/internal/application/scene"
	"github.com/younwookim/scenehop/internal/application/state"
	"github.com/younwookim/scenehop/internal/application/system"
	"github.com/younwookim/scenehop/internal/domain/entity"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
	"github.com/younwookim/scenehop/internal/render"
)

const (
	homeScene = `{
  "elements": [
    {"x": 0, "y": 440, "width": 640, "height": 40, "color": "green", "type": "platform"},
    {"x": 40, "y": 40, "width": 20, "height": 20, "type": "teleporter", "targetScene": "away.json"}
  ]
}`
	awayScene = `{
  "spawn": {"x": 400, "y": 100},
  "elements": [
    {"x": 0, "y": 440, "width": 640, "height": 40, "type": "platform"}
  ]
}`
)

// scriptedInput returns the given inputs in order, then no keys
type scriptedInput struct {
	inputs []entity.InputState
	next   int
}

func (s *scriptedInput) GetInput() entity.InputState {
	if s.next >= len(s.inputs) {
		return entity.InputState{}
	}
	in := s.inputs[s.next]
	s.next++
	return in
}

// fakeChanges hands out queued file changes once
type fakeChanges struct {
	queued []string
}

func (f *fakeChanges) Poll() []string {
	out := f.queued
	f.queued = nil
	return out
}

// createTestPlaying creates a playing scene over in-memory scenes
func createTestPlaying(t *testing.T, start string, opts Options) (*Playing, *system.Simulation) {
	t.Helper()
	cfg := config.DefaultSettings()
	source := config.NewFSLoader(fstest.MapFS{
		"scenes/home.json": {Data: []byte(homeScene)},
		"scenes/away.json": {Data: []byte(awayScene)},
	}, "")
	loader := system.NewSceneLoader(source, system.NewSceneBuilder(cfg), nil, time.Second)
	sim := system.NewSimulation(cfg, loader)
	t.Cleanup(loader.Close)

	if opts.Input == nil {
		opts.Input = &scriptedInput{}
	}
	p, err := New(cfg, sim, start, opts)
	require.NoError(t, err)
	return p, sim
}

// enter runs OnEnter and the first Update once the start scene is loaded
func enter(t *testing.T, p *Playing, sim *system.Simulation) {
	t.Helper()
	p.OnEnter()
	sim.Loader().Wait()
	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p, _ := createTestPlaying(t, "home.json", Options{})

	assert.Equal(t, state.StateLoading, p.State())
	assert.Nil(t, p.Simulation())
}

func TestNewPlaying_BadKeyBinding(t *testing.T) {
	cfg := config.DefaultSettings()
	cfg.Keys.Left = []string{"NoSuchKey"}
	sim := system.NewSimulation(cfg, system.NewSceneLoader(nil, system.NewSceneBuilder(cfg), nil, 0))

	_, err := New(cfg, sim, "home.json", Options{})
	assert.ErrorContains(t, err, "failed to bind keys")
}

func TestPlaying_LoadsStartScene(t *testing.T) {
	p, sim := createTestPlaying(t, "home.json", Options{})

	enter(t, p, sim)

	assert.Equal(t, state.StatePlaying, p.State())
	require.NotNil(t, p.Simulation())
	assert.Equal(t, "home.json", p.Simulation().Scene.Name)
}

func TestPlaying_LoadFailedAndRetry(t *testing.T) {
	p, sim := createTestPlaying(t, "nowhere.json", Options{})

	enter(t, p, sim)

	assert.Equal(t, state.StateLoadFailed, p.State())
	var loadErr *system.SceneLoadError
	assert.ErrorAs(t, p.loadErr, &loadErr)

	p.Retry()
	assert.Equal(t, state.StateLoading, p.State())
	assert.Nil(t, p.loadErr)
}

func TestPlaying_TeleportsBetweenScenes(t *testing.T) {
	p, sim := createTestPlaying(t, "home.json", Options{})
	enter(t, p, sim)

	// Player starts on the teleporter: the first tick requests the load
	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, "away.json", p.Simulation().SceneName)

	sim.Loader().Wait()
	_, err = p.Update(1.0 / 60.0)
	require.NoError(t, err)

	st := p.Simulation()
	assert.Equal(t, "away.json", st.Scene.Name)
	assert.Equal(t, 400.0, st.Player.X)
}

func TestPlaying_HotReload(t *testing.T) {
	changes := &fakeChanges{}
	p, sim := createTestPlaying(t, "away.json", Options{Changes: changes})
	enter(t, p, sim)
	before := p.Simulation().Scene

	changes.queued = []string{"/tmp/scenes/other.json"}
	_, _ = p.Update(1.0 / 60.0)
	_, pending := sim.Loader().Pending()
	assert.False(t, pending, "unrelated file is ignored")

	changes.queued = []string{"/tmp/scenes/away.json"}
	_, _ = p.Update(1.0 / 60.0)
	sim.Loader().Wait()
	_, _ = p.Update(1.0 / 60.0)

	assert.NotSame(t, before, p.Simulation().Scene)
	assert.Equal(t, "away.json", p.Simulation().Scene.Name)
}

func TestPlaying_UsesInputSource(t *testing.T) {
	input := &scriptedInput{inputs: []entity.InputState{{Right: true}, {Right: true}}}
	p, sim := createTestPlaying(t, "away.json", Options{Input: input})
	enter(t, p, sim)

	_, _ = p.Update(1.0 / 60.0)
	_, _ = p.Update(1.0 / 60.0)

	assert.Equal(t, 410.0, p.Simulation().Player.X)
	assert.Equal(t, entity.AnimWalk, p.Simulation().Player.State)
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	input := &scriptedInput{inputs: []entity.InputState{{Left: true}, {Attack: true}}}
	p, sim := createTestPlaying(t, "away.json", Options{Input: input, RecordPath: path})
	require.NotNil(t, p.recorder)
	enter(t, p, sim)

	_, _ = p.Update(1.0 / 60.0)
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, 2, p.recorder.FrameCount())

	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "away.json", data.Scene)
	assert.Equal(t, []replay.FrameInput{{F: 0, L: true}, {F: 1, A: true}}, data.Frames)
}

func TestPlaying_RecordsLoadFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	p, sim := createTestPlaying(t, "home.json", Options{RecordPath: path})
	enter(t, p, sim)

	// Frame 0 requests the away scene from the teleporter, frame 1 applies it
	_, _ = p.Update(1.0 / 60.0)
	sim.Loader().Wait()
	_, _ = p.Update(1.0 / 60.0)
	require.Equal(t, "away.json", p.Simulation().Scene.Name)
	_, _ = p.Update(1.0 / 60.0)

	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 3)
	assert.Equal(t, []int{1}, data.Loads)
}

func TestPlaying_OnExitWithoutFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	p, _ := createTestPlaying(t, "away.json", Options{RecordPath: path})

	p.OnExit()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReplayInput(t *testing.T) {
	data := replay.NewReplayData("away.json", []entity.InputState{{Up: true}})
	in := &ReplayInput{Replayer: replay.NewReplayer(data)}

	assert.Equal(t, entity.InputState{Up: true}, in.GetInput())
	assert.Equal(t, entity.InputState{}, in.GetInput())
	assert.True(t, in.finished)
}

// cellRecorder is a render.Surface that keeps only the text
type cellRecorder struct {
	*render.CellSurface
	texts []string
}

func (c *cellRecorder) Text(x, y int, s string) {
	c.texts = append(c.texts, s)
	c.CellSurface.Text(x, y, s)
}

func TestPlaying_DrawTo(t *testing.T) {
	p, sim := createTestPlaying(t, "home.json", Options{})

	s := &cellRecorder{CellSurface: render.NewCellSurface(640, 480)}
	p.DrawTo(s)
	assert.Equal(t, []string{"LOADING..."}, s.texts)

	enter(t, p, sim)
	s.texts = nil
	p.DrawTo(s)

	require.Len(t, s.texts, 1)
	assert.Contains(t, s.texts[0], "scene: home.json")

	// The floor platform is drawn green at the bottom
	c, _ := s.At(10, 28)
	assert.Equal(t, color.RGBA{G: 128, A: 255}, c)
}
