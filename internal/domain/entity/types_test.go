package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"corner overlap", Rect{0, 0, 10, 10}, Rect{9, 9, 10, 10}, true},
		{"touching right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 3, 3}, true},
		{"identical", Rect{5, 5, 4, 4}, Rect{5, 5, 4, 4}, true},
		{"apart", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"overlap on x only", Rect{0, 0, 10, 10}, Rect{5, 11, 10, 10}, false},
		{"fractional overlap", Rect{0, 0, 10, 10}, Rect{9.5, 0, 1, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 3, Y: 4, W: 10, H: 20}
	assert.Equal(t, 13.0, r.MaxX())
	assert.Equal(t, 24.0, r.MaxY())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "right", DirRight.String())
	assert.Equal(t, "left", DirLeft.String())
	assert.Equal(t, "unknown", Direction(7).String())
	assert.Equal(t, 1.0, DirRight.Sign())
	assert.Equal(t, -1.0, DirLeft.Sign())
}

func TestAnimState_Table(t *testing.T) {
	tests := []struct {
		state  AnimState
		name   string
		row    int
		frames int
	}{
		{AnimIdle, "idle", 0, 7},
		{AnimWalk, "walk", 1, 8},
		{AnimJump, "jump", 2, 1},
		{AnimAttack, "attack", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.state.String())
			assert.Equal(t, tt.row, tt.state.Row())
			assert.Equal(t, tt.frames, tt.state.FrameCount())
		})
	}
}

func TestAnimState_Unknown(t *testing.T) {
	s := AnimState(42)
	assert.Equal(t, "unknown", s.String())
	assert.Equal(t, 1, s.FrameCount())
	assert.Equal(t, 0, s.Row())
	assert.Equal(t, 1, AnimState(-1).FrameCount())
}
