package system

import "github.com/younwookim/scenehop/internal/domain/entity"

// Intent is something a collision asks the simulation to do
type Intent interface {
	isIntent()
}

// TeleportIntent asks for a swap to the target scene
type TeleportIntent struct {
	Collider int // Index into Scene.Colliders
	Target   string
}

func (TeleportIntent) isIntent() {}

// ContactIntent reports overlap with solid or pass-through geometry.
// No positional correction is applied for it.
type ContactIntent struct {
	Collider int
	Kind     entity.ColliderKind
}

func (ContactIntent) isIntent() {}
