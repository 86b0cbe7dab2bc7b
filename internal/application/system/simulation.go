package system

import (
	"slices"

	"github.com/younwookim/scenehop/internal/domain/entity"
	"github.com/younwookim/scenehop/internal/infrastructure/asset"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
)

// SimulationState is everything one tick reads and writes.
//
// SceneName is the scene the simulation is heading to: a teleport sets it
// at once, while Scene keeps the last fully loaded scene until the swap.
type SimulationState struct {
	Player    *entity.Player
	Scene     *entity.Scene
	SceneName string
	Images    map[string]*asset.Handle
	Tick      uint64
	LastError error

	touching []int // Teleporter colliders overlapped on the previous tick
}

// StepResult reports what happened during one tick
type StepResult struct {
	Requested string // Target requested by a teleporter this tick
	Swapped   bool
	Contacts  []ContactIntent
	Err       error // Load failure surfaced this tick
}

// Simulation runs the fixed-order tick: swap, input, physics, animation, collision
type Simulation struct {
	cfg       *config.Settings
	motion    *MotionSystem
	animation *AnimationSystem
	collision *CollisionSystem
	loader    *SceneLoader
	dedupe    bool
}

// NewSimulation creates a simulation that loads scenes through loader
func NewSimulation(cfg *config.Settings, loader *SceneLoader) *Simulation {
	return &Simulation{
		cfg:       cfg,
		motion:    NewMotionSystem(cfg),
		animation: NewAnimationSystem(cfg.Player.FrameDelay),
		collision: NewCollisionSystem(),
		loader:    loader,
		dedupe:    cfg.Simulation.DedupeTeleports,
	}
}

// Loader returns the scene loader
func (s *Simulation) Loader() *SceneLoader {
	return s.loader
}

// NewState creates the state for a freshly loaded start scene.
// The player starts at the configured position, or the scene spawn point.
// Unlike a swap, the start scene does not count existing overlaps as seen,
// so a player placed on a teleporter uses it on the first tick.
func (s *Simulation) NewState(loaded LoadedScene) *SimulationState {
	p := s.cfg.Player
	st := &SimulationState{
		Player: entity.NewPlayer(p.StartX, p.StartY, p.Width, p.Height, p.Scale),
	}
	s.apply(st, loaded, true)
	st.touching = nil
	return st
}

// Step advances the state by one tick
func (s *Simulation) Step(st *SimulationState, input entity.InputState) StepResult {
	return s.step(st, input, true)
}

// StepHold advances the state by one tick but leaves a finished load in the
// loader slot. Replays use it to land a swap on the tick it was recorded.
func (s *Simulation) StepHold(st *SimulationState, input entity.InputState) StepResult {
	return s.step(st, input, false)
}

func (s *Simulation) step(st *SimulationState, input entity.InputState, poll bool) StepResult {
	var result StepResult
	st.Tick++

	if res, ok := s.pollLoader(poll); ok {
		if res.Err != nil {
			st.LastError = res.Err
			if st.Scene != nil {
				st.SceneName = st.Scene.Name
			}
			result.Err = res.Err
		} else {
			arrival := res.From != "" || st.Scene == nil || st.Scene.Name != res.Name
			s.apply(st, res.Loaded, arrival)
			result.Swapped = true
		}
	}

	s.motion.Update(st.Player, input)
	s.animation.Update(st.Player)

	intents := s.collision.Detect(st.Player.Hitbox(), st.Scene)
	for _, in := range intents {
		if c, ok := in.(ContactIntent); ok {
			result.Contacts = append(result.Contacts, c)
		}
	}

	touching := teleportersIn(intents)
	if tp, ok := LastTeleport(intents); ok && s.shouldTeleport(st, touching, tp.Target) {
		st.SceneName = tp.Target
		s.loader.Request(tp.Target, st.Scene.Name)
		result.Requested = tp.Target
	}
	st.touching = touching

	return result
}

func (s *Simulation) pollLoader(poll bool) (LoadResult, bool) {
	if !poll {
		return LoadResult{}, false
	}
	return s.loader.Poll()
}

// Reload asks for the current scene to be read again
func (s *Simulation) Reload(st *SimulationState) {
	if st.Scene == nil {
		return
	}
	s.loader.Request(st.Scene.Name, "")
}

func (s *Simulation) shouldTeleport(st *SimulationState, touching []int, target string) bool {
	if !s.dedupe {
		return true
	}
	if name, pending := s.loader.Pending(); pending && name == target {
		return false
	}
	for _, idx := range touching {
		if !slices.Contains(st.touching, idx) {
			return true
		}
	}
	return false
}

// apply swaps in a loaded scene. Overlaps in the new scene count as already
// seen, so arriving on a teleporter does not fire it. The spawn point is used
// only on arrival; a reload of the current scene leaves the player in place.
func (s *Simulation) apply(st *SimulationState, loaded LoadedScene, arrival bool) {
	st.Scene = loaded.Scene
	st.Images = loaded.Images
	st.SceneName = loaded.Scene.Name
	st.LastError = nil

	if sp := loaded.Scene.Spawn; sp != nil && arrival {
		st.Player.PlaceAt(sp.X, sp.Y)
	}
	s.motion.KeepAboveFloor(st.Player)
	st.touching = teleportersIn(s.collision.Detect(st.Player.Hitbox(), st.Scene))
}
