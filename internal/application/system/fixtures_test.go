package system

import (
	"context"
	"sync"
	"testing/fstest"

	"github.com/younwookim/scenehop/internal/infrastructure/config"
)

const scene1JSON = `{
  "elements": [
    {"x": 0, "y": 440, "width": 640, "height": 40, "color": "green", "type": "platform"},
    {"x": 40, "y": 40, "width": 20, "height": 20, "color": "#f0f", "type": "teleporter", "targetScene": "scene2.json"},
    {"x": 500, "y": 100, "width": 30, "height": 30, "color": "chartreuse-ish"}
  ]
}`

const scene2JSON = `{
  "spawn": {"x": 300, "y": 290},
  "elements": [
    {"x": 0, "y": 440, "width": 640, "height": 40, "type": "platform"},
    {"x": 300, "y": 300, "width": 20, "height": 20, "type": "teleporter", "targetScene": "scene1.json"}
  ]
}`

const brokenLinkJSON = `{
  "elements": [
    {"x": 40, "y": 40, "width": 20, "height": 20, "type": "teleporter", "targetScene": "missing.json"}
  ]
}`

const quietJSON = `{
  "elements": [
    {"x": 0, "y": 440, "width": 640, "height": 40, "type": "platform"}
  ]
}`

const tilesJSON = `{
  "background": "assets/bg.png",
  "spawn": {"x": 100, "y": 100},
  "structures": [
    {"x": 1, "y": 2, "resource": "tiles.grass", "allow_pass_through": 0},
    {"x": 2, "y": 2, "resource": "tiles.water", "allow_pass_through": 1},
    {"x": 5, "y": 5, "resource": "tiles.door", "allow_pass_through": true, "type": "teleporter", "targetScene": "scene1.json"}
  ]
}`

const deepSpawnJSON = `{"spawn": {"x": 10, "y": 1000}, "elements": []}`

func testScenesFS() fstest.MapFS {
	return fstest.MapFS{
		"scenes/scene1.json": {Data: []byte(scene1JSON)},
		"scenes/scene2.json": {Data: []byte(scene2JSON)},
		"scenes/broken.json": {Data: []byte(brokenLinkJSON)},
		"scenes/quiet.json":  {Data: []byte(quietJSON)},
		"scenes/tiles.json":  {Data: []byte(tilesJSON)},
		"scenes/deep.json":   {Data: []byte(deepSpawnJSON)},
	}
}

// gatedSource holds loads of gated scenes until release is called or the
// load context ends
type gatedSource struct {
	inner SceneSource
	gated map[string]bool
	gate  chan struct{}

	mu    sync.Mutex
	calls []string
}

func newGatedSource(inner SceneSource, names ...string) *gatedSource {
	gated := make(map[string]bool, len(names))
	for _, n := range names {
		gated[n] = true
	}
	return &gatedSource{inner: inner, gated: gated, gate: make(chan struct{})}
}

func (s *gatedSource) LoadScene(ctx context.Context, name string) (*config.SceneDocument, error) {
	s.mu.Lock()
	s.calls = append(s.calls, name)
	s.mu.Unlock()

	if s.gated[name] {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.inner.LoadScene(ctx, name)
}

func (s *gatedSource) release() {
	close(s.gate)
}

func (s *gatedSource) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}
