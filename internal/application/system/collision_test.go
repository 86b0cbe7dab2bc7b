package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/scenehop/internal/domain/entity"
)

func TestCollisionSystem_Detect(t *testing.T) {
	scene := &entity.Scene{
		Colliders: []entity.Collider{
			{Box: entity.Rect{X: 0, Y: 0, W: 10, H: 10}, Kind: entity.ColliderSolid},
			{Box: entity.Rect{X: 5, Y: 5, W: 10, H: 10}, Kind: entity.ColliderDecor},
			{Box: entity.Rect{X: 5, Y: 5, W: 10, H: 10}, Kind: entity.ColliderTeleporter, Target: "scene2.json"},
			{Box: entity.Rect{X: 5, Y: 5, W: 10, H: 10}, Kind: entity.ColliderPassThrough},
			{Box: entity.Rect{X: 10, Y: 0, W: 10, H: 10}, Kind: entity.ColliderSolid},
		},
	}
	sys := NewCollisionSystem()

	intents := sys.Detect(entity.Rect{X: 0, Y: 0, W: 10, H: 10}, scene)

	assert.Equal(t, []Intent{
		ContactIntent{Collider: 0, Kind: entity.ColliderSolid},
		TeleportIntent{Collider: 2, Target: "scene2.json"},
		ContactIntent{Collider: 3, Kind: entity.ColliderPassThrough},
	}, intents)
}

func TestCollisionSystem_TouchingEdgesDoNotCollide(t *testing.T) {
	scene := &entity.Scene{
		Colliders: []entity.Collider{
			{Box: entity.Rect{X: 10, Y: 0, W: 10, H: 10}, Kind: entity.ColliderTeleporter, Target: "x"},
		},
	}

	intents := NewCollisionSystem().Detect(entity.Rect{X: 0, Y: 0, W: 10, H: 10}, scene)
	assert.Empty(t, intents)
}

func TestCollisionSystem_NilScene(t *testing.T) {
	assert.Nil(t, NewCollisionSystem().Detect(entity.Rect{W: 1, H: 1}, nil))
}

func TestLastTeleport(t *testing.T) {
	t.Run("last one wins", func(t *testing.T) {
		intents := []Intent{
			TeleportIntent{Collider: 0, Target: "a.json"},
			ContactIntent{Collider: 1},
			TeleportIntent{Collider: 2, Target: "b.json"},
		}

		tp, ok := LastTeleport(intents)

		assert.True(t, ok)
		assert.Equal(t, "b.json", tp.Target)
		assert.Equal(t, []int{0, 2}, teleportersIn(intents))
	})

	t.Run("none", func(t *testing.T) {
		_, ok := LastTeleport([]Intent{ContactIntent{Collider: 1}})
		assert.False(t, ok)
	})
}
