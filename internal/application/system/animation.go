package system

import "github.com/younwookim/scenehop/internal/domain/entity"

// AnimationSystem advances the player's frame cursor
type AnimationSystem struct {
	frameDelay int
}

// NewAnimationSystem creates an animation system that advances one frame
// every frameDelay ticks
func NewAnimationSystem(frameDelay int) *AnimationSystem {
	if frameDelay < 1 {
		frameDelay = 1
	}
	return &AnimationSystem{frameDelay: frameDelay}
}

// Update counts one tick and returns true when the frame advanced
func (s *AnimationSystem) Update(p *entity.Player) bool {
	frames := p.State.FrameCount()
	if p.FrameIndex >= frames || p.FrameIndex < 0 {
		p.FrameIndex = 0
	}

	p.FrameTimer++
	if p.FrameTimer < s.frameDelay {
		return false
	}
	p.FrameTimer = 0
	p.FrameIndex = (p.FrameIndex + 1) % frames
	return true
}
