package render

import (
	"image"
	"image/color"

	"github.com/younwookim/scenehop/internal/domain/entity"
	"github.com/younwookim/scenehop/internal/infrastructure/asset"
)

// Colors for shapes drawn without an image
var (
	ColorBackground  = color.RGBA{26, 26, 46, 255}
	ColorPlayer      = color.RGBA{0, 0, 255, 255}
	ColorSolid       = color.RGBA{139, 90, 43, 255}
	ColorPassThrough = color.NRGBA{70, 130, 180, 160}
	ColorTeleporter  = color.RGBA{160, 32, 240, 255}
)

// Renderer draws a scene and the player
type Renderer struct {
	sprites *asset.Handle
}

// NewRenderer creates a renderer. sprites may be nil or not ready yet,
// in which case the player is drawn as a box.
func NewRenderer(sprites *asset.Handle) *Renderer {
	return &Renderer{sprites: sprites}
}

// Draw renders a full frame
func (r *Renderer) Draw(s Surface, scene *entity.Scene, images map[string]*asset.Handle, p *entity.Player) {
	s.Clear(ColorBackground)
	if scene != nil {
		r.DrawScene(s, scene, images)
	}
	if p != nil {
		r.DrawPlayer(s, p)
	}
}

// DrawScene draws the background and the scene geometry in list order
func (r *Renderer) DrawScene(s Surface, scene *entity.Scene, images map[string]*asset.Handle) {
	if bg := readyImage(images, scene.Background); bg != nil {
		w, h := s.Size()
		s.DrawImage(bg, bg.Bounds(), entity.Rect{W: float64(w), H: float64(h)}, ImageOptions{Smooth: true})
	}

	for _, e := range scene.Elements {
		if img := readyImage(images, e.ImagePath); img != nil {
			s.DrawImage(img, img.Bounds(), e.Box, ImageOptions{})
			continue
		}
		s.FillRect(e.Box, e.Color)
	}

	for _, st := range scene.Structures {
		if img := readyImage(images, st.ImagePath); img != nil {
			s.DrawImage(img, img.Bounds(), st.Box, ImageOptions{})
			continue
		}
		s.FillRect(st.Box, structureColor(st))
	}
}

// DrawPlayer draws the current animation frame, or a box without a sheet
func (r *Renderer) DrawPlayer(s Surface, p *entity.Player) {
	var sheet image.Image
	if r.sprites != nil {
		sheet = r.sprites.Image()
	}
	if sheet == nil {
		s.FillRect(p.Hitbox(), ColorPlayer)
		return
	}

	s.DrawImage(sheet, SpriteFrame(p), p.Hitbox(), ImageOptions{FlipX: p.Direction.Sign() < 0})
}

// SpriteFrame returns the sheet cell of the player's current frame.
// Columns are frames, rows are animation states.
func SpriteFrame(p *entity.Player) image.Rectangle {
	w, h := int(p.Width), int(p.Height)
	x := p.FrameIndex * w
	y := p.State.Row() * h
	return image.Rect(x, y, x+w, y+h)
}

func structureColor(st entity.Structure) color.Color {
	switch {
	case st.Teleporter:
		return ColorTeleporter
	case st.PassThrough:
		return ColorPassThrough
	default:
		return ColorSolid
	}
}

func readyImage(images map[string]*asset.Handle, path string) image.Image {
	if path == "" {
		return nil
	}
	h, ok := images[path]
	if !ok || h == nil {
		return nil
	}
	return h.Image()
}
