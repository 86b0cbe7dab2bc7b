package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(50, 60, 16, 16, 3)

	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 60.0, p.Y)
	assert.Equal(t, DirRight, p.Direction)
	assert.Equal(t, AnimIdle, p.State)
	assert.False(t, p.Jumping)
	assert.Zero(t, p.VelocityY)
}

func TestPlayer_Hitbox(t *testing.T) {
	p := NewPlayer(10, 20, 16, 16, 3)

	assert.Equal(t, Rect{X: 10, Y: 20, W: 48, H: 48}, p.Hitbox())
	assert.Equal(t, 48.0, p.ScaledWidth())
	assert.Equal(t, 48.0, p.ScaledHeight())
}

func TestPlayer_SetState(t *testing.T) {
	t.Run("change resets cursor", func(t *testing.T) {
		p := NewPlayer(0, 0, 16, 16, 3)
		p.State = AnimWalk
		p.FrameIndex = 7
		p.FrameTimer = 3

		p.SetState(AnimAttack)

		assert.Equal(t, AnimAttack, p.State)
		assert.Equal(t, 0, p.FrameIndex)
		assert.Equal(t, 0, p.FrameTimer)
	})

	t.Run("same state keeps cursor", func(t *testing.T) {
		p := NewPlayer(0, 0, 16, 16, 3)
		p.State = AnimWalk
		p.FrameIndex = 5
		p.FrameTimer = 2

		p.SetState(AnimWalk)

		assert.Equal(t, 5, p.FrameIndex)
		assert.Equal(t, 2, p.FrameTimer)
	})
}

func TestPlayer_PlaceAt(t *testing.T) {
	p := NewPlayer(0, 0, 16, 16, 3)
	p.Jumping = true
	p.VelocityY = -4
	p.SetState(AnimJump)

	p.PlaceAt(100, 200)

	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 200.0, p.Y)
	assert.False(t, p.Jumping)
	assert.Zero(t, p.VelocityY)
	assert.Equal(t, AnimIdle, p.State)
}
