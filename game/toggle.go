package game

import (
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

// Switch geometry
const (
	switchWidth  = 44.0
	switchHeight = 22.0
	switchMargin = 16.0
	knobInset    = 3.0
	labelGap     = 8.0
)

var (
	colorTrackOff  = color.NRGBA{R: 200, G: 204, B: 212, A: 255}
	colorTrackOn   = color.NRGBA{R: 52, G: 58, B: 72, A: 255}
	colorKnob      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorLabelDark = color.NRGBA{R: 220, G: 224, B: 232, A: 255}
	colorLabelLite = color.NRGBA{R: 40, G: 44, B: 52, A: 255}
)

// Switch is an on-screen dark mode checkbox drawn in the top right corner.
// It is clicked with the mouse, tapped, or flipped with the T key.
type Switch struct {
	checked  bool
	handlers []func()

	// knob position, 0 = off, 1 = on
	knob    float64
	knobVel float64
	spring  harmonica.Spring

	x, y float64

	icons     *themeIcons
	iconsDone bool
	face      text.Face
	logger    *zap.Logger
}

// NewSwitch creates an unchecked switch animated at fps frames per second
func NewSwitch(fps int, logger *zap.Logger) *Switch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Switch{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.7),
		face:   text.NewGoXFace(basicfont.Face7x13),
		logger: logger,
	}
}

// Checked reports the checked state
func (s *Switch) Checked() bool {
	return s.checked
}

// SetChecked sets the state without notifying change handlers. The knob
// jumps straight to the new position.
func (s *Switch) SetChecked(checked bool) {
	s.checked = checked
	s.knob = s.target()
	s.knobVel = 0
}

// OnChange subscribes fn to user-initiated changes
func (s *Switch) OnChange(fn func()) {
	s.handlers = append(s.handlers, fn)
}

// Activate flips the switch as a user interaction would and notifies handlers
func (s *Switch) Activate() {
	s.checked = !s.checked
	for _, fn := range s.handlers {
		fn()
	}
}

func (s *Switch) target() float64 {
	if s.checked {
		return 1
	}
	return 0
}

// Place anchors the switch to the top right of a screenWidth wide screen
func (s *Switch) Place(screenWidth int) {
	s.x = float64(screenWidth) - switchWidth - switchMargin
	s.y = switchMargin
}

// Contains reports whether the screen point lies on the switch track
func (s *Switch) Contains(px, py int) bool {
	x, y := float64(px), float64(py)
	return x >= s.x && x <= s.x+switchWidth && y >= s.y && y <= s.y+switchHeight
}

// Animate moves the knob one frame toward its target
func (s *Switch) Animate() {
	s.knob, s.knobVel = s.spring.Update(s.knob, s.knobVel, s.target())
}

// Update handles input for this frame and animates the knob
func (s *Switch) Update(screenWidth int) {
	s.Place(screenWidth)

	activated := inpututil.IsKeyJustPressed(ebiten.KeyT)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if s.Contains(ebiten.CursorPosition()) {
			activated = true
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if s.Contains(ebiten.TouchPosition(id)) {
			activated = true
		}
	}
	if activated {
		s.Activate()
	}

	s.Animate()
}

// Draw renders the switch with its icon and label
func (s *Switch) Draw(dst *ebiten.Image) {
	if !s.iconsDone {
		s.iconsDone = true
		icons, err := loadThemeIcons(iconSize, s.logger)
		if err != nil {
			s.logger.Warn("failed to load theme icons", zap.Error(err))
		} else {
			s.icons = icons
		}
	}

	r := float32(switchHeight / 2)
	x, y := float32(s.x), float32(s.y)
	track := colorTrackOff
	if s.checked {
		track = colorTrackOn
	}
	vector.DrawFilledRect(dst, x+r, y, float32(switchWidth)-2*r, float32(switchHeight), track, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, track, true)
	vector.DrawFilledCircle(dst, x+float32(switchWidth)-r, y+r, r, track, true)

	knobR := r - knobInset
	travel := float32(switchWidth) - 2*r
	kx := x + r + travel*float32(s.knob)
	ky := y + r
	vector.DrawFilledCircle(dst, kx, ky, knobR, colorKnob, true)

	if s.icons != nil {
		icon := s.icons.sun
		if s.checked {
			icon = s.icons.moon
		}
		op := &ebiten.DrawImageOptions{}
		scale := float64(2*knobR) / iconSize * 0.8
		op.GeoM.Translate(-iconSize/2, -iconSize/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(kx), float64(ky))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(icon, op)
	}

	label := ThemeLight
	labelClr := colorLabelLite
	if s.checked {
		label = ThemeDark
		labelClr = colorLabelDark
	}
	w, h := text.Measure(label, s.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(s.x-labelGap-w, s.y+(switchHeight-h)/2)
	op.ColorScale.ScaleWithColor(labelClr)
	text.Draw(dst, label, s.face, op)
}
