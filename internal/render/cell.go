package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/scenehop/internal/domain/entity"
)

// Size of one terminal cell in scene pixels
const (
	CellWidth  = 8
	CellHeight = 16
)

// CellSurface rasterizes a frame into terminal cells.
// Each cell takes the color found at its center; text is laid over the colors.
type CellSurface struct {
	width, height int // Scene pixels
	cols, rows    int
	colors        []color.RGBA
	text          []rune
}

// NewCellSurface creates a surface covering width x height scene pixels
func NewCellSurface(width, height int) *CellSurface {
	cols := width / CellWidth
	rows := height / CellHeight
	return &CellSurface{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		colors: make([]color.RGBA, cols*rows),
		text:   make([]rune, cols*rows),
	}
}

func (s *CellSurface) Size() (int, int) {
	return s.width, s.height
}

// Grid returns the number of columns and rows
func (s *CellSurface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// At returns the color and text rune of a cell
func (s *CellSurface) At(col, row int) (color.RGBA, rune) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return color.RGBA{}, 0
	}
	i := row*s.cols + col
	return s.colors[i], s.text[i]
}

func (s *CellSurface) Clear(c color.Color) {
	rgba := toRGBA(c)
	for i := range s.colors {
		s.colors[i] = rgba
		s.text[i] = 0
	}
}

func (s *CellSurface) FillRect(r entity.Rect, c color.Color) {
	src := toRGBA(c)
	s.eachCell(r, func(i int, _, _ float64) {
		s.colors[i] = blend(s.colors[i], src)
	})
}

func (s *CellSurface) DrawImage(img image.Image, src image.Rectangle, dst entity.Rect, opts ImageOptions) {
	if src.Empty() || dst.W <= 0 || dst.H <= 0 {
		return
	}
	s.eachCell(dst, func(i int, cx, cy float64) {
		u := (cx - dst.X) / dst.W
		v := (cy - dst.Y) / dst.H
		if opts.FlipX {
			u = 1 - u
		}
		px := src.Min.X + int(u*float64(src.Dx()))
		py := src.Min.Y + int(v*float64(src.Dy()))
		if px >= src.Max.X {
			px = src.Max.X - 1
		}
		if py >= src.Max.Y {
			py = src.Max.Y - 1
		}
		s.colors[i] = blend(s.colors[i], toRGBA(img.At(px, py)))
	})
}

func (s *CellSurface) Text(x, y int, str string) {
	startCol := x / CellWidth
	col, row := startCol, y/CellHeight
	for _, r := range str {
		if r == '\n' {
			col = startCol
			row++
			continue
		}
		if row >= 0 && row < s.rows && col >= 0 && col < s.cols {
			s.text[row*s.cols+col] = r
		}
		col++
	}
}

// Flush copies the cells to a tcell screen. It does not call Show.
func (s *CellSurface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			i := row*s.cols + col
			c := s.colors[i]
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			ch := s.text[i]
			if ch == 0 {
				ch = ' '
			} else {
				style = style.Foreground(tcell.ColorWhite)
			}
			screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// eachCell calls fn for every cell whose center lies inside r
func (s *CellSurface) eachCell(r entity.Rect, fn func(i int, cx, cy float64)) {
	for row := 0; row < s.rows; row++ {
		cy := float64(row*CellHeight) + CellHeight/2
		if cy < r.Y || cy >= r.MaxY() {
			continue
		}
		for col := 0; col < s.cols; col++ {
			cx := float64(col*CellWidth) + CellWidth/2
			if cx < r.X || cx >= r.MaxX() {
				continue
			}
			fn(row*s.cols+col, cx, cy)
		}
	}
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// blend draws the premultiplied src over dst
func blend(dst, src color.RGBA) color.RGBA {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}
	a := uint32(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8(uint32(s) + uint32(d)*(255-a)/255)
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}
