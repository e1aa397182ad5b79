// Package term renders the particle field on a terminal through tcell.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Each terminal cell stands for a CellWidth x CellHeight pixel block of the field.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	glyphSmall = '•'
	glyphLarge = '●'
	glyphLink  = '·'

	// cells are far coarser than pixels, so faint colours are boosted
	alphaBoost = 4
)

// Canvas draws onto a tcell screen, blending translucent colours over the backdrop
type Canvas struct {
	screen   tcell.Screen
	fill     color.Color
	stroke   color.Color
	backdrop color.NRGBA
}

// NewCanvas wraps screen
func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{
		screen:   screen,
		fill:     color.White,
		stroke:   color.White,
		backdrop: color.NRGBA{A: 255},
	}
}

// SurfaceSize returns the pixel size of the screen
func SurfaceSize(screen tcell.Screen) (float64, float64) {
	cols, rows := screen.Size()
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

func (c *Canvas) SetBackdrop(clr color.Color) {
	c.backdrop = color.NRGBAModel.Convert(clr).(color.NRGBA)
	c.backdrop.A = 255
}

func (c *Canvas) SetFillColor(clr color.Color)   { c.fill = clr }
func (c *Canvas) SetStrokeColor(clr color.Color) { c.stroke = clr }
func (c *Canvas) SetLineWidth(float64)           {}

// Backdrop returns the backdrop style
func (c *Canvas) Backdrop() tcell.Style {
	return tcell.StyleDefault.Background(toTcell(c.backdrop))
}

// ClearRect blanks every cell touched by the rectangle
func (c *Canvas) ClearRect(x, y, width, height float64) {
	cols, rows := c.screen.Size()
	x0 := clampInt(int(math.Floor(x/CellWidth)), 0, cols)
	y0 := clampInt(int(math.Floor(y/CellHeight)), 0, rows)
	x1 := clampInt(int(math.Ceil((x+width)/CellWidth)), 0, cols)
	y1 := clampInt(int(math.Ceil((y+height)/CellHeight)), 0, rows)

	style := c.Backdrop()
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// FillCircle marks the cell under the centre
func (c *Canvas) FillCircle(cx, cy, radius float64) {
	col, row, ok := c.cell(cx, cy)
	if !ok {
		return
	}
	glyph := glyphSmall
	if radius >= 2 {
		glyph = glyphLarge
	}
	c.screen.SetContent(col, row, glyph, nil, c.Backdrop().Foreground(c.blend(c.fill)))
}

// StrokeLine rasterises the segment over cells with Bresenham's algorithm.
// Cells already holding a glyph are left alone so particles stay visible.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64) {
	cols, rows := c.screen.Size()
	c0, r0 := int(math.Floor(x1/CellWidth)), int(math.Floor(y1/CellHeight))
	c1, r1 := int(math.Floor(x2/CellWidth)), int(math.Floor(y2/CellHeight))
	style := c.Backdrop().Foreground(c.blend(c.stroke))

	dx := absInt(c1 - c0)
	dy := -absInt(r1 - r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	err := dx + dy
	for {
		if c0 >= 0 && c0 < cols && r0 >= 0 && r0 < rows {
			if mainc, _, _, _ := c.screen.GetContent(c0, r0); mainc == ' ' || mainc == 0 {
				c.screen.SetContent(c0, r0, glyphLink, nil, style)
			}
		}
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c0 += sx
		}
		if e2 <= dx {
			err += dx
			r0 += sy
		}
	}
}

func (c *Canvas) cell(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	cols, rows := c.screen.Size()
	col, row := int(x/CellWidth), int(y/CellHeight)
	if col >= cols || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

// blend composites clr over the backdrop
func (c *Canvas) blend(clr color.Color) tcell.Color {
	fg := color.NRGBAModel.Convert(clr).(color.NRGBA)
	a := math.Min(float64(fg.A)*alphaBoost, 255) / 255
	mix := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(b) + (float64(f)-float64(b))*a))
	}
	return toTcell(color.NRGBA{
		R: mix(fg.R, c.backdrop.R),
		G: mix(fg.G, c.backdrop.G),
		B: mix(fg.B, c.backdrop.B),
		A: 255,
	})
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
