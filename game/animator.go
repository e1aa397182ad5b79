package game

// Frame is a callback run once per displayed frame with that frame's canvas
type Frame func(c Canvas)

// FrameScheduler runs a frame callback on the next display refresh.
// Each request fires at most once; callbacks re-register to keep running.
type FrameScheduler interface {
	RequestFrame(fn Frame)
}

// DarkReader reports whether the dark theme marker is set
type DarkReader interface {
	Dark() bool
}

// Animator advances and draws a Field once per frame
type Animator struct {
	field     *Field
	theme     DarkReader
	lineWidth float64

	frames    uint64
	lastLinks int
}

// NewAnimator creates an animator for field, reading the theme marker from theme
func NewAnimator(field *Field, theme DarkReader, lineWidth float64) *Animator {
	return &Animator{
		field:     field,
		theme:     theme,
		lineWidth: lineWidth,
	}
}

// Field returns the animated field
func (a *Animator) Field() *Field {
	return a.field
}

// Resize forwards a viewport change to the field
func (a *Animator) Resize(width, height float64) {
	a.field.Resize(width, height)
}

// Tick advances the field one frame
func (a *Animator) Tick() {
	a.field.Tick()
}

// Render draws the current field state with the current theme
func (a *Animator) Render(c Canvas) {
	a.lastLinks = Render(c, a.field, a.lineWidth, a.theme != nil && a.theme.Dark())
}

// Step runs one full animation step: Tick then Render
func (a *Animator) Step(c Canvas) {
	a.Tick()
	a.Render(c)
	a.frames++
}

// Run registers a frame callback with s that steps the animation and
// registers itself again. It has no stop condition; the loop ends when the
// scheduler stops firing frames.
func (a *Animator) Run(s FrameScheduler) {
	var frame Frame
	frame = func(c Canvas) {
		a.Step(c)
		s.RequestFrame(frame)
	}
	s.RequestFrame(frame)
}

// Stats reports the number of completed steps and the connector lines drawn by the last render
func (a *Animator) Stats() (frames uint64, links int) {
	return a.frames, a.lastLinks
}
