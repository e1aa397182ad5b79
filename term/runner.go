package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"constellation/game"
)

var (
	colorLabelDark  = tcell.NewRGBColor(220, 224, 232)
	colorLabelLight = tcell.NewRGBColor(40, 44, 52)
)

// Runner drives an Animator from a ticker, acting as its FrameScheduler.
// Terminal events are pumped on a separate goroutine but handled on the
// loop goroutine, between frames.
type Runner struct {
	screen   tcell.Screen
	canvas   *Canvas
	animator *game.Animator
	toggle   *Checkbox
	interval time.Duration
	logger   *zap.Logger

	pending     game.Frame
	prevButtons tcell.ButtonMask
}

// NewRunner creates a runner drawing animator onto screen every interval
func NewRunner(screen tcell.Screen, animator *game.Animator, toggle *Checkbox, interval time.Duration, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		screen:   screen,
		canvas:   NewCanvas(screen),
		animator: animator,
		toggle:   toggle,
		interval: interval,
		logger:   logger,
	}
}

// RequestFrame schedules fn for the next tick
func (r *Runner) RequestFrame(fn game.Frame) {
	r.pending = fn
}

// Frame runs the pending frame callback, draws the checkbox and shows the screen
func (r *Runner) Frame() {
	if fn := r.pending; fn != nil {
		r.pending = nil
		fn(r.canvas)
	}
	labelClr := colorLabelLight
	if r.toggle.Checked() {
		labelClr = colorLabelDark
	}
	r.toggle.Draw(r.screen, r.canvas.Backdrop().Foreground(labelClr))
	r.screen.Show()
}

// HandleEvent applies one terminal event. It returns false when the user asked to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 't', 'T':
				r.toggle.Activate()
			}
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && r.prevButtons&tcell.Button1 == 0
		r.prevButtons = buttons
		if pressed && r.toggle.Contains(ev.Position()) {
			r.toggle.Activate()
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.animator.Resize(float64(cols*CellWidth), float64(rows*CellHeight))
		r.screen.Sync()
		r.logger.Debug("surface resized", zap.Int("cols", cols), zap.Int("rows", rows))
	}
	return true
}

// Run loops until ctx is cancelled or the user quits. The caller owns the
// screen and must Fini it afterwards, which also stops the event pump.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	statsTicker := time.NewTicker(10 * time.Second)
	defer statsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !r.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			r.Frame()

		case <-statsTicker.C:
			frames, links := r.animator.Stats()
			r.logger.Debug("frame stats", zap.Uint64("frames", frames), zap.Int("links", links))
		}
	}
}
