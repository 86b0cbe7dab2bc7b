package system

import "github.com/younwookim/scenehop/internal/domain/entity"

// CollisionSystem checks the player hitbox against scene geometry
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Detect returns one intent per overlapped collider, in collider order.
// Decor produces nothing. Overlap is strict, so touching edges do not count.
func (s *CollisionSystem) Detect(box entity.Rect, scene *entity.Scene) []Intent {
	if scene == nil {
		return nil
	}

	var intents []Intent
	for i, c := range scene.Colliders {
		if c.Kind == entity.ColliderDecor || !box.Overlaps(c.Box) {
			continue
		}
		switch c.Kind {
		case entity.ColliderTeleporter:
			intents = append(intents, TeleportIntent{Collider: i, Target: c.Target})
		default:
			intents = append(intents, ContactIntent{Collider: i, Kind: c.Kind})
		}
	}
	return intents
}

// LastTeleport returns the last teleport intent in the list.
// When several teleporters overlap at once, the later one wins.
func LastTeleport(intents []Intent) (TeleportIntent, bool) {
	var last TeleportIntent
	found := false
	for _, in := range intents {
		if t, ok := in.(TeleportIntent); ok {
			last = t
			found = true
		}
	}
	return last, found
}

// teleportersIn returns the collider indices of all teleport intents
func teleportersIn(intents []Intent) []int {
	var idx []int
	for _, in := range intents {
		if t, ok := in.(TeleportIntent); ok {
			idx = append(idx, t.Collider)
		}
	}
	return idx
}
