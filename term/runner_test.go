package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap/zaptest"

	"constellation/game"
)

type memoryStore map[string]string

func (m memoryStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m memoryStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

type fixture struct {
	screen   tcell.SimulationScreen
	field    *game.Field
	animator *game.Animator
	theme    *game.ThemeController
	toggle   *Checkbox
	store    memoryStore
	runner   *Runner
}

func newFixture(t *testing.T, particles []game.Particle) *fixture {
	t.Helper()
	screen := newTestScreen(t, 80, 24)
	w, h := SurfaceSize(screen)

	fx := &fixture{
		screen: screen,
		field:  game.NewFieldFromParticles(particles, w, h, 150),
		toggle: NewCheckbox(),
		store:  memoryStore{},
	}
	logger := zaptest.NewLogger(t)
	fx.theme = game.NewThemeController(fx.store, fx.toggle, logger)
	fx.theme.LoadInitial()
	fx.theme.Bind()
	fx.animator = game.NewAnimator(fx.field, fx.theme, 1)
	fx.runner = NewRunner(screen, fx.animator, fx.toggle, time.Millisecond, logger)
	fx.animator.Run(fx.runner)
	return fx
}

func cellRune(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

func TestFrameDrawsParticlesAndLinks(t *testing.T) {
	fx := newFixture(t, []game.Particle{
		{X: 4, Y: 8 + 5*CellHeight, Size: 1},
		{X: 4 + 10*CellWidth, Y: 8 + 5*CellHeight, Size: 2.5},
	})

	fx.runner.Frame()

	if got := cellRune(fx.screen, 0, 5); got != glyphSmall {
		t.Fatalf("cell (0,5) = %q, want %q", got, glyphSmall)
	}
	if got := cellRune(fx.screen, 10, 5); got != glyphLarge {
		t.Fatalf("cell (10,5) = %q, want %q", got, glyphLarge)
	}
	for col := 1; col < 10; col++ {
		if got := cellRune(fx.screen, col, 5); got != glyphLink {
			t.Fatalf("cell (%d,5) = %q, want link", col, got)
		}
	}
	if frames, links := fx.animator.Stats(); frames != 1 || links != 1 {
		t.Fatalf("Stats() = %d frames, %d links; want 1, 1", frames, links)
	}
}

func TestFrameClearsPreviousFrame(t *testing.T) {
	fx := newFixture(t, []game.Particle{{X: 4, Y: 8, VX: CellWidth, Size: 1}})

	fx.runner.Frame()
	if got := cellRune(fx.screen, 1, 0); got != glyphSmall {
		t.Fatalf("cell (1,0) = %q, want particle", got)
	}
	fx.runner.Frame()
	if got := cellRune(fx.screen, 1, 0); got != ' ' {
		t.Fatalf("cell (1,0) = %q, want cleared", got)
	}
	if got := cellRune(fx.screen, 2, 0); got != glyphSmall {
		t.Fatalf("cell (2,0) = %q, want particle", got)
	}
}

func TestToggleKeyPersistsTheme(t *testing.T) {
	fx := newFixture(t, nil)

	if !fx.runner.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone)) {
		t.Fatal("HandleEvent(t) asked to quit")
	}
	if !fx.theme.Dark() || !fx.toggle.Checked() {
		t.Fatalf("Dark() = %v, checked = %v; want both true", fx.theme.Dark(), fx.toggle.Checked())
	}
	if fx.store[game.ThemeKey] != game.ThemeDark {
		t.Fatalf("stored theme = %q, want dark", fx.store[game.ThemeKey])
	}

	fx.runner.Frame()
	cols, _ := fx.screen.Size()
	want := "[x] dark"
	start := cols - len(want) - 1
	for i, r := range want {
		if got := cellRune(fx.screen, start+i, 0); got != r {
			t.Fatalf("checkbox cell %d = %q, want %q", i, got, r)
		}
	}
}

func TestMouseClickOnCheckbox(t *testing.T) {
	fx := newFixture(t, nil)
	fx.runner.Frame() // places the checkbox

	cols, _ := fx.screen.Size()
	col := cols - 3

	fx.runner.HandleEvent(tcell.NewEventMouse(col, 0, tcell.Button1, tcell.ModNone))
	// held button does not retrigger
	fx.runner.HandleEvent(tcell.NewEventMouse(col, 0, tcell.Button1, tcell.ModNone))
	fx.runner.HandleEvent(tcell.NewEventMouse(col, 0, tcell.ButtonNone, tcell.ModNone))

	if !fx.theme.Dark() {
		t.Fatal("click on checkbox did not switch to dark")
	}

	fx.runner.HandleEvent(tcell.NewEventMouse(0, 10, tcell.Button1, tcell.ModNone))
	if !fx.theme.Dark() {
		t.Fatal("click elsewhere changed the theme")
	}
}

func TestResizeEvent(t *testing.T) {
	fx := newFixture(t, nil)
	fx.runner.HandleEvent(tcell.NewEventResize(100, 30))

	w, h := fx.field.Size()
	if w != 100*CellWidth || h != 30*CellHeight {
		t.Fatalf("field size = %vx%v, want %dx%d", w, h, 100*CellWidth, 30*CellHeight)
	}
}

func TestQuitKeys(t *testing.T) {
	fx := newFixture(t, nil)
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		if fx.runner.HandleEvent(ev) {
			t.Fatalf("HandleEvent(%v) = true, want quit", ev.Name())
		}
	}
}

func TestLoadInitialDarkChecksBox(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	store := memoryStore{game.ThemeKey: game.ThemeDark}
	toggle := NewCheckbox()
	theme := game.NewThemeController(store, toggle, nil)
	theme.LoadInitial()

	if !toggle.Checked() || !theme.Dark() {
		t.Fatal("stored dark theme not applied")
	}
	toggle.Draw(screen, tcell.StyleDefault)
	if got := cellRune(screen, 40-len("[x] dark")-1+1, 0); got != 'x' {
		t.Fatalf("checkbox mark = %q, want 'x'", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	fx := newFixture(t, []game.Particle{{X: 10, Y: 10, VX: 0.25, Size: 1}})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fx.runner.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
	if frames, _ := fx.animator.Stats(); frames == 0 {
		t.Fatal("Run() never stepped the animation")
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	fx := newFixture(t, nil)
	fx.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- fx.runner.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after quit key")
	}
}
