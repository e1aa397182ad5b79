package game

import (
	"fmt"
	"image/color"
	"reflect"
	"testing"
)

// recordingCanvas logs every drawing call
type recordingCanvas struct {
	ops []string
}

func (c *recordingCanvas) record(format string, args ...any) {
	c.ops = append(c.ops, fmt.Sprintf(format, args...))
}

func (c *recordingCanvas) ClearRect(x, y, w, h float64)      { c.record("clear %g %g %g %g", x, y, w, h) }
func (c *recordingCanvas) SetFillColor(clr color.Color)      { c.record("fill %v", clr) }
func (c *recordingCanvas) SetStrokeColor(clr color.Color)    { c.record("stroke %v", clr) }
func (c *recordingCanvas) SetLineWidth(w float64)            { c.record("width %g", w) }
func (c *recordingCanvas) FillCircle(x, y, r float64)        { c.record("circle %g %g %g", x, y, r) }
func (c *recordingCanvas) StrokeLine(x1, y1, x2, y2 float64) { c.record("line %g %g %g %g", x1, y1, x2, y2) }

func (c *recordingCanvas) count(prefix string) int {
	n := 0
	for _, op := range c.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

type backdropCanvas struct {
	recordingCanvas
	backdrop color.Color
}

func (c *backdropCanvas) SetBackdrop(clr color.Color) { c.backdrop = clr }

func TestRenderDrawsConnectorsBelowThreshold(t *testing.T) {
	f := NewFieldFromParticles(threeParticles(), 1000, 1000, 150)
	c := &recordingCanvas{}

	links := Render(c, f, 1, false)

	if links != 2 {
		t.Fatalf("Render() = %d links, want 2", links)
	}
	if got := c.count("line "); got != 2 {
		t.Fatalf("drew %d lines, want 2", got)
	}
	if got := c.count("circle "); got != 3 {
		t.Fatalf("drew %d circles, want 3", got)
	}
}

func TestRenderClearsFirst(t *testing.T) {
	f := newTestField(t, 10, 640, 480)
	c := &recordingCanvas{}
	Render(c, f, 1, true)

	if len(c.ops) == 0 || c.ops[0] != "clear 0 0 640 480" {
		t.Fatalf("first op = %q, want full clear", c.ops[0])
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	f := newTestField(t, 40, 800, 600)
	for _, dark := range []bool{false, true} {
		first := &recordingCanvas{}
		second := &recordingCanvas{}
		Render(first, f, 1, dark)
		Render(second, f, 1, dark)
		if !reflect.DeepEqual(first.ops, second.ops) {
			t.Fatalf("dark=%v: repeated Render produced different output", dark)
		}
	}
}

func TestRenderUsesThemePalette(t *testing.T) {
	f := NewFieldFromParticles(threeParticles(), 1000, 1000, 150)

	tests := []struct {
		dark bool
		pal  Palette
	}{
		{false, LightPalette},
		{true, DarkPalette},
	}
	for _, tt := range tests {
		c := &backdropCanvas{}
		Render(c, f, 1, tt.dark)

		if c.backdrop != tt.pal.Backdrop {
			t.Errorf("dark=%v: backdrop = %v, want %v", tt.dark, c.backdrop, tt.pal.Backdrop)
		}
		wantFill := fmt.Sprintf("fill %v", tt.pal.Particle)
		wantStroke := fmt.Sprintf("stroke %v", tt.pal.Link)
		if c.count(wantFill) != 1 || c.count(wantStroke) != 1 {
			t.Errorf("dark=%v: ops %v missing %q or %q", tt.dark, c.ops, wantFill, wantStroke)
		}
	}
}

func TestPaletteAlpha(t *testing.T) {
	tests := []struct {
		name string
		got  uint8
		want uint8
	}{
		{"dark particle", DarkPalette.Particle.A, 77},
		{"dark link", DarkPalette.Link.A, 13},
		{"light particle", LightPalette.Particle.A, 26},
		{"light link", LightPalette.Link.A, 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s alpha = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
