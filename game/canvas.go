package game

import "image/color"

// Canvas is the immediate-mode raster surface the field is drawn on
type Canvas interface {
	// ClearRect erases the given rectangle back to the backdrop
	ClearRect(x, y, width, height float64)
	SetFillColor(clr color.Color)
	SetStrokeColor(clr color.Color)
	SetLineWidth(width float64)
	// FillCircle draws a filled circle in the current fill colour
	FillCircle(cx, cy, radius float64)
	// StrokeLine draws a segment in the current stroke colour and width
	StrokeLine(x1, y1, x2, y2 float64)
}

// BackdropSetter is implemented by canvases that have no page behind them
// and need an opaque colour for ClearRect.
type BackdropSetter interface {
	SetBackdrop(clr color.Color)
}
