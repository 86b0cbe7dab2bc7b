package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/scenehop/internal/domain/entity"
)

// TextureCache keeps one GPU image per decoded image
type TextureCache struct {
	textures map[image.Image]*ebiten.Image
}

// NewTextureCache creates an empty texture cache
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[image.Image]*ebiten.Image)}
}

// Texture returns the ebiten image for img, uploading it on first use
func (c *TextureCache) Texture(img image.Image) *ebiten.Image {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	tex, ok := c.textures[img]
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		c.textures[img] = tex
	}
	return tex
}

// Len returns the number of uploaded textures
func (c *TextureCache) Len() int {
	return len(c.textures)
}

// EbitenSurface draws onto an ebiten screen image
type EbitenSurface struct {
	dst      *ebiten.Image
	textures *TextureCache
}

// NewEbitenSurface wraps the screen passed to Draw
func NewEbitenSurface(dst *ebiten.Image, textures *TextureCache) *EbitenSurface {
	return &EbitenSurface{dst: dst, textures: textures}
}

func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s *EbitenSurface) FillRect(r entity.Rect, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *EbitenSurface) DrawImage(img image.Image, src image.Rectangle, dst entity.Rect, opts ImageOptions) {
	if src.Empty() {
		return
	}
	tex := s.textures.Texture(img)
	sub, ok := tex.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}

	sx := dst.W / float64(src.Dx())
	sy := dst.H / float64(src.Dy())

	op := &ebiten.DrawImageOptions{}
	if opts.FlipX {
		// Mirror inside the cell, then shift back so dst.X stays the left edge
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.Dx()), 0)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(dst.X, dst.Y)
	if opts.Smooth {
		op.Filter = ebiten.FilterLinear
	} else {
		op.Filter = ebiten.FilterNearest
	}
	s.dst.DrawImage(sub, op)
}

func (s *EbitenSurface) Text(x, y int, str string) {
	ebitenutil.DebugPrintAt(s.dst, str, x, y)
}
