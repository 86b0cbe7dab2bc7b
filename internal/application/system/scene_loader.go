package system

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/younwookim/scenehop/internal/domain/entity"
	"github.com/younwookim/scenehop/internal/infrastructure/asset"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
)

// SceneSource reads scene documents by name
type SceneSource interface {
	LoadScene(ctx context.Context, name string) (*config.SceneDocument, error)
}

// LoadedScene is a built scene together with the image handles it draws from.
// It is swapped into the simulation as one value.
type LoadedScene struct {
	Scene  *entity.Scene
	Images map[string]*asset.Handle
}

// LoadResult is the outcome of one background load
type LoadResult struct {
	Generation uint64
	Name       string
	From       string // Scene whose teleporter asked for the load, empty otherwise
	Loaded     LoadedScene
	Err        error
}

// SceneLoader builds scenes in the background.
//
// Only the latest request matters: each Request bumps a generation counter
// and cancels the previous load, and completions from older generations are
// dropped. The finished result waits in a single slot until Poll takes it.
type SceneLoader struct {
	source  SceneSource
	builder *SceneBuilder
	assets  *asset.Cache
	timeout time.Duration

	mu        sync.Mutex
	gen       uint64
	requested string
	pending   bool
	cancel    context.CancelFunc
	slot      *LoadResult

	wg sync.WaitGroup
}

// NewSceneLoader creates a loader. assets may be nil when images are not needed.
func NewSceneLoader(source SceneSource, builder *SceneBuilder, assets *asset.Cache, timeout time.Duration) *SceneLoader {
	return &SceneLoader{
		source:  source,
		builder: builder,
		assets:  assets,
		timeout: timeout,
	}
}

// Load reads and builds a scene synchronously and starts its image loads
func (l *SceneLoader) Load(ctx context.Context, name string) (LoadedScene, error) {
	scene, err := l.build(ctx, name)
	if err != nil {
		return LoadedScene{}, err
	}

	loaded := LoadedScene{Scene: scene}
	if l.assets != nil {
		loaded.Images = l.assets.ResolveAll(scene.ImagePaths())
	}
	return loaded, nil
}

func (l *SceneLoader) build(ctx context.Context, name string) (*entity.Scene, error) {
	doc, err := l.source.LoadScene(ctx, name)
	if err != nil {
		return nil, &SceneLoadError{Scene: name, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &SceneLoadError{Scene: name, Err: err}
	}
	scene, err := l.builder.Build(name, doc)
	if err != nil {
		return nil, &SceneLoadError{Scene: name, Err: err}
	}
	return scene, nil
}

// Request starts loading name in the background and returns its generation.
// from names the scene whose teleporter triggered the load; a failure is then
// reported as an InvalidSceneReference. A request for the scene that is
// already pending joins that load instead of restarting it.
func (l *SceneLoader) Request(name, from string) uint64 {
	l.mu.Lock()
	if l.pending && l.requested == name {
		gen := l.gen
		l.mu.Unlock()
		return gen
	}

	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.requested = name
	l.pending = true
	l.slot = nil

	var ctx context.Context
	var cancel context.CancelFunc
	if l.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), l.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer cancel()

		loaded, err := l.Load(ctx, name)
		if err != nil && from != "" {
			err = &InvalidSceneReference{From: from, Target: name, Err: err}
		}
		l.complete(LoadResult{
			Generation: gen,
			Name:       name,
			From:       from,
			Loaded:     loaded,
			Err:        err,
		})
	}()
	return gen
}

func (l *SceneLoader) complete(res LoadResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if res.Generation != l.gen {
		return
	}
	l.slot = &res
}

// Poll takes the finished result of the latest request, if there is one
func (l *SceneLoader) Poll() (LoadResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.slot == nil {
		return LoadResult{}, false
	}
	res := *l.slot
	l.slot = nil
	l.pending = false
	return res, true
}

// Pending returns the requested scene while its result has not been polled
func (l *SceneLoader) Pending() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.requested, l.pending
}

// Wait blocks until every started load has finished
func (l *SceneLoader) Wait() {
	l.wg.Wait()
}

// Close cancels the in-flight load and waits for it
func (l *SceneLoader) Close() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.mu.Unlock()
	l.wg.Wait()
}

// Verify builds start and every scene reachable through its teleporters.
// It returns the visited scene names in discovery order.
func (l *SceneLoader) Verify(ctx context.Context, start string) ([]string, error) {
	parent := map[string]string{start: ""}
	order := []string{start}
	for i := 0; i < len(order); i++ {
		name := order[i]
		scene, err := l.build(ctx, name)
		if err != nil {
			if from := parent[name]; from != "" {
				return order[:i], &InvalidSceneReference{From: from, Target: name, Err: err}
			}
			return nil, err
		}
		for _, target := range scene.Targets() {
			if _, seen := parent[target]; seen {
				continue
			}
			parent[target] = name
			order = append(order, target)
		}
	}
	return order, nil
}

// String describes the loader state for logs
func (l *SceneLoader) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("SceneLoader{gen: %d, requested: %q, pending: %v}", l.gen, l.requested, l.pending)
}
