package system

import (
	"github.com/younwookim/scenehop/internal/domain/entity"
	"github.com/younwookim/scenehop/internal/infrastructure/config"
)

// MotionSystem applies input and gravity to the player.
// The floor is the bottom edge of the screen.
type MotionSystem struct {
	speed       float64
	jumpImpulse float64
	gravity     float64
	screenW     float64
	screenH     float64
	clamp       bool
}

// NewMotionSystem creates a motion system from the settings
func NewMotionSystem(cfg *config.Settings) *MotionSystem {
	return &MotionSystem{
		speed:       cfg.Player.Speed,
		jumpImpulse: cfg.Player.JumpImpulse,
		gravity:     cfg.Player.Gravity,
		screenW:     float64(cfg.Display.ScreenWidth),
		screenH:     float64(cfg.Display.ScreenHeight),
		clamp:       cfg.Simulation.ClampToScreen,
	}
}

// Update runs one tick of movement and sets the resulting animation state
func (s *MotionSystem) Update(p *entity.Player, input entity.InputState) {
	next := s.ApplyInput(p, input)
	next = s.Integrate(p, next)
	p.SetState(next)
}

// ApplyInput moves the player horizontally, starts jumps, and returns the
// animation state the input asks for. The state is derived from this tick's
// input alone: with no key held a grounded player is idle.
func (s *MotionSystem) ApplyInput(p *entity.Player, input entity.InputState) entity.AnimState {
	next := entity.AnimIdle
	if p.Jumping {
		next = entity.AnimJump
	}

	if input.Left {
		p.Direction = entity.DirLeft
		p.X += s.speed * p.Direction.Sign()
		if !p.Jumping {
			next = entity.AnimWalk
		}
	}
	if input.Right {
		p.Direction = entity.DirRight
		p.X += s.speed * p.Direction.Sign()
		if !p.Jumping {
			next = entity.AnimWalk
		}
	}

	if input.Up && !p.Jumping {
		p.Jumping = true
		p.VelocityY = -s.jumpImpulse
		next = entity.AnimJump
	}

	// Attack wins over the movement states, airborne or not
	if input.Attack {
		next = entity.AnimAttack
	}

	if s.clamp {
		s.clampX(p)
	}
	return next
}

// Integrate applies gravity while airborne and lands the player on the floor.
// Landing forces the idle state.
func (s *MotionSystem) Integrate(p *entity.Player, next entity.AnimState) entity.AnimState {
	if !p.Jumping {
		return next
	}

	p.VelocityY += s.gravity
	p.Y += p.VelocityY

	floor := s.Floor(p)
	if p.Y >= floor {
		p.Y = floor
		p.Jumping = false
		p.VelocityY = 0
		return entity.AnimIdle
	}
	return next
}

// Floor returns the y of a player standing on the floor
func (s *MotionSystem) Floor(p *entity.Player) float64 {
	return s.screenH - p.ScaledHeight()
}

// KeepAboveFloor moves a player placed below the floor up onto it
func (s *MotionSystem) KeepAboveFloor(p *entity.Player) {
	if floor := s.Floor(p); p.Y > floor {
		p.Y = floor
	}
}

func (s *MotionSystem) clampX(p *entity.Player) {
	maxX := s.screenW - p.ScaledWidth()
	if p.X > maxX {
		p.X = maxX
	}
	if p.X < 0 {
		p.X = 0
	}
}
