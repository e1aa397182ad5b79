package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenCanvas draws onto an ebiten image
type ebitenCanvas struct {
	dst       *ebiten.Image
	fill      color.Color
	stroke    color.Color
	backdrop  color.Color
	lineWidth float32
}

func newEbitenCanvas(dst *ebiten.Image) *ebitenCanvas {
	return &ebitenCanvas{
		dst:       dst,
		fill:      color.Black,
		stroke:    color.Black,
		backdrop:  color.Transparent,
		lineWidth: 1,
	}
}

func (c *ebitenCanvas) SetBackdrop(clr color.Color)    { c.backdrop = clr }
func (c *ebitenCanvas) SetFillColor(clr color.Color)   { c.fill = clr }
func (c *ebitenCanvas) SetStrokeColor(clr color.Color) { c.stroke = clr }
func (c *ebitenCanvas) SetLineWidth(width float64)     { c.lineWidth = float32(width) }

// ClearRect replaces the pixels of the rectangle with the backdrop colour
func (c *ebitenCanvas) ClearRect(x, y, width, height float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height)),
	).Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}
	c.dst.SubImage(r).(*ebiten.Image).Fill(c.backdrop)
}

func (c *ebitenCanvas) FillCircle(cx, cy, radius float64) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), c.fill, true)
}

func (c *ebitenCanvas) StrokeLine(x1, y1, x2, y2 float64) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), c.lineWidth, c.stroke, true)
}
