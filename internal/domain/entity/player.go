package entity

// Player is the single controllable sprite.
// X and Y are the top-left corner in scene pixels. Width and Height are the
// sprite cell size; the hitbox and the drawn sprite are both Scale times larger.
type Player struct {
	X, Y      float64
	VelocityY float64

	Width, Height float64
	Scale         float64

	Jumping   bool
	Direction Direction

	State      AnimState
	FrameIndex int
	FrameTimer int
}

// NewPlayer creates a grounded, idle, right-facing player
func NewPlayer(x, y, width, height, scale float64) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Scale:     scale,
		Direction: DirRight,
		State:     AnimIdle,
	}
}

// ScaledWidth returns the rendered width of the player
func (p *Player) ScaledWidth() float64 {
	return p.Width * p.Scale
}

// ScaledHeight returns the rendered height of the player
func (p *Player) ScaledHeight() float64 {
	return p.Height * p.Scale
}

// Hitbox returns the rendered box used for collision checks
func (p *Player) Hitbox() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.ScaledWidth(), H: p.ScaledHeight()}
}

// SetState switches the animation state.
// The frame cursor restarts when the state changes so FrameIndex stays
// below the new state's frame count.
func (p *Player) SetState(s AnimState) {
	if p.State == s {
		return
	}
	p.State = s
	p.FrameIndex = 0
	p.FrameTimer = 0
}

// PlaceAt moves the player and clears any airborne motion
func (p *Player) PlaceAt(x, y float64) {
	p.X = x
	p.Y = y
	p.VelocityY = 0
	p.Jumping = false
	p.SetState(AnimIdle)
}
