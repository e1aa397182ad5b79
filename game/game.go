package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

const (
	statsInterval     = 10 * time.Second
	windowedSizeRatio = 0.9
)

// Game drives an Animator from ebiten's frame loop. It is the animator's
// FrameScheduler: Draw runs once per presented frame, so the pending frame
// callback fires at the display refresh rate.
type Game struct {
	config   Config
	animator *Animator
	toggle   *Switch
	logger   *zap.Logger

	pending Frame

	width, height int

	lastStats time.Time
}

// NewGame creates a game around animator with toggle as its on-screen theme switch
func NewGame(config Config, animator *Animator, toggle *Switch, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, h := animator.Field().Size()
	return &Game{
		config:    config,
		animator:  animator,
		toggle:    toggle,
		logger:    logger,
		width:     int(w),
		height:    int(h),
		lastStats: time.Now(),
	}
}

// RequestFrame schedules fn for the next Draw
func (g *Game) RequestFrame(fn Frame) {
	g.pending = fn
}

// Update handles input: the theme switch, Alt+Enter fullscreen and Escape to quit
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.toggleFullscreen()
	}

	if g.toggle != nil {
		g.toggle.Update(g.width)
	}

	if time.Since(g.lastStats) >= statsInterval {
		g.lastStats = time.Now()
		frames, links := g.animator.Stats()
		g.logger.Debug("frame stats",
			zap.Uint64("frames", frames),
			zap.Int("links", links),
			zap.Float64("tps", ebiten.ActualTPS()),
			zap.Float64("fps", ebiten.ActualFPS()),
		)
	}
	return nil
}

func (g *Game) toggleFullscreen() {
	fullscreen := ebiten.IsFullscreen()
	ebiten.SetFullscreen(!fullscreen)
	if fullscreen {
		// Going to windowed - use 90% of monitor size for a reasonable window
		mw, mh := ebiten.Monitor().Size()
		ebiten.SetWindowSize(int(float64(mw)*windowedSizeRatio), int(float64(mh)*windowedSizeRatio))
	}
}

// Draw runs the pending frame callback on the screen, then the switch on top
func (g *Game) Draw(screen *ebiten.Image) {
	if fn := g.pending; fn != nil {
		g.pending = nil
		fn(newEbitenCanvas(screen))
	}
	if g.toggle != nil {
		g.toggle.Draw(screen)
	}
}

// Layout follows the outside size so the drawing surface always matches
// the window, resizing the field when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.animator.Resize(float64(outsideWidth), float64(outsideHeight))
		g.logger.Debug("surface resized", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
	}
	return outsideWidth, outsideHeight
}
