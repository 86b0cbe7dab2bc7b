package entity

// Rect is an axis-aligned box in scene pixels, anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// MaxX returns the right edge of the rect
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the bottom edge of the rect
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Overlaps reports whether the two rects overlap on both axes.
// Intervals are open, so boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && r.MaxX() > o.X &&
		r.Y < o.MaxY() && r.MaxY() > o.Y
}

// Point is a position in scene pixels
type Point struct {
	X, Y float64
}

// Direction is the way the player faces
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Sign returns 1 for right and -1 for left
func (d Direction) Sign() float64 {
	if d == DirLeft {
		return -1
	}
	return 1
}

// AnimState selects the sprite row and the frame count of the player animation
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimJump
	AnimAttack
)

// animTable maps each state to its sprite sheet row and frame count.
var animTable = [...]struct {
	name   string
	row    int
	frames int
}{
	AnimIdle:   {"idle", 0, 7},
	AnimWalk:   {"walk", 1, 8},
	AnimJump:   {"jump", 2, 1},
	AnimAttack: {"attack", 3, 4},
}

func (s AnimState) valid() bool {
	return s >= 0 && int(s) < len(animTable)
}

// String returns the string representation of the state
func (s AnimState) String() string {
	if !s.valid() {
		return "unknown"
	}
	return animTable[s].name
}

// FrameCount returns the number of frames in the state's sprite row.
// Unknown states have a single frame.
func (s AnimState) FrameCount() int {
	if !s.valid() {
		return 1
	}
	return animTable[s].frames
}

// Row returns the sprite sheet row used by the state
func (s AnimState) Row() int {
	if !s.valid() {
		return 0
	}
	return animTable[s].row
}

// InputState is the per-tick snapshot of the logical keys the simulation reads
type InputState struct {
	Left   bool
	Right  bool
	Up     bool
	Attack bool
}
