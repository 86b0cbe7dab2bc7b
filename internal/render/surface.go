// Package render draws scenes and the player onto a Surface.
//
// The drawing rules live here once; the ebiten window and the terminal
// frontend only differ in the Surface they pass in.
package render

import (
	"image"
	"image/color"

	"github.com/younwookim/scenehop/internal/domain/entity"
)

// ImageOptions controls how DrawImage samples the source
type ImageOptions struct {
	FlipX  bool // Mirror around the vertical axis of dst
	Smooth bool // Linear filtering instead of nearest neighbour
}

// Surface is a drawing target measured in scene pixels
type Surface interface {
	Size() (width, height int)
	Clear(c color.Color)
	FillRect(r entity.Rect, c color.Color)
	DrawImage(img image.Image, src image.Rectangle, dst entity.Rect, opts ImageOptions)
	Text(x, y int, s string)
}
