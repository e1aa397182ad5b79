package game

import "image/color"

// Palette holds the particle and connector colours for one theme
type Palette struct {
	Particle color.NRGBA
	Link     color.NRGBA
	Backdrop color.NRGBA
}

// Theme palettes. Alpha values are round(a*255) of 0.3, 0.05, 0.1 and 0.03.
var (
	DarkPalette = Palette{
		Particle: color.NRGBA{R: 255, G: 255, B: 255, A: 77},
		Link:     color.NRGBA{R: 255, G: 255, B: 255, A: 13},
		Backdrop: color.NRGBA{R: 15, G: 17, B: 21, A: 255},
	}
	LightPalette = Palette{
		Particle: color.NRGBA{R: 0, G: 0, B: 0, A: 26},
		Link:     color.NRGBA{R: 0, G: 0, B: 0, A: 8},
		Backdrop: color.NRGBA{R: 245, G: 246, B: 248, A: 255},
	}
)

// PaletteFor returns the palette for the given theme
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// Render clears the canvas and draws every particle and every connector
// line of the field. It returns the number of connector lines drawn.
func Render(c Canvas, f *Field, lineWidth float64, dark bool) int {
	pal := PaletteFor(dark)
	w, h := f.Size()
	if b, ok := c.(BackdropSetter); ok {
		b.SetBackdrop(pal.Backdrop)
	}
	c.ClearRect(0, 0, w, h)

	c.SetFillColor(pal.Particle)
	for _, p := range f.Particles() {
		c.FillCircle(p.X, p.Y, p.Size)
	}

	links := 0
	c.SetStrokeColor(pal.Link)
	c.SetLineWidth(lineWidth)
	f.Links(func(a, b *Particle) {
		c.StrokeLine(a.X, a.Y, b.X, b.Y)
		links++
	})
	return links
}
