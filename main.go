package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"constellation/audio"
	"constellation/game"
	"constellation/settings"
	"constellation/term"
)

const (
	backendWindow = "window"
	backendTerm   = "term"

	fallbackSettingsPath = "constellation-settings.json"
)

func main() {
	flag.Parse()

	logger, err := newLogger(*debugFlag, *logFlag, *backendFlag == backendTerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(logger); err != nil {
		logger.Error("constellation stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func newLogger(debug bool, path string, quiet bool) (*zap.Logger, error) {
	if path == "" && quiet {
		// stderr belongs to the terminal screen
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	return cfg.Build()
}

func run(logger *zap.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	store := openStore(logger)

	clicker := audio.NewClicker(*soundFlag, logger)
	defer clicker.Close()

	switch *backendFlag {
	case backendWindow:
		return runWindow(cfg, store, clicker, logger)
	case backendTerm:
		return runTerm(cfg, store, clicker, logger)
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", *backendFlag, backendWindow, backendTerm)
	}
}

func loadConfig() (game.Config, error) {
	cfg, err := game.LoadFromEnv(game.DefaultConfig())
	if err != nil {
		return game.Config{}, err
	}
	if *particlesFlag > 0 {
		cfg.ParticleCount = *particlesFlag
	}
	if *widthFlag > 0 {
		cfg.ScreenWidth = *widthFlag
	}
	if *heightFlag > 0 {
		cfg.ScreenHeight = *heightFlag
	}
	return cfg, cfg.Validate()
}

// openStore never fails: an unreadable settings file means light mode,
// and the next toggle rewrites it.
func openStore(logger *zap.Logger) *settings.Store {
	path := *settingsFlag
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			logger.Warn("using local settings file", zap.String("path", fallbackSettingsPath), zap.Error(err))
			p = fallbackSettingsPath
		}
		path = p
	}

	store, err := settings.Open(path)
	if err != nil {
		logger.Warn("ignoring unreadable settings", zap.String("path", path), zap.Error(err))
	}
	return store
}

// bindTheme wires a toggle control to a theme controller backed by store
func bindTheme(store game.Store, toggle game.Toggle, clicker *audio.Clicker, logger *zap.Logger) *game.ThemeController {
	theme := game.NewThemeController(store, toggle, logger)
	theme.LoadInitial()
	theme.Bind()
	toggle.OnChange(func() {
		clicker.Click(theme.Dark())
	})
	return theme
}

func runWindow(cfg game.Config, store game.Store, clicker *audio.Clicker, logger *zap.Logger) error {
	toggle := game.NewSwitch(ebiten.DefaultTPS, logger)
	theme := bindTheme(store, toggle, clicker, logger)

	field := game.NewField(cfg, float64(cfg.ScreenWidth), float64(cfg.ScreenHeight), nil)
	animator := game.NewAnimator(field, theme, cfg.LineWidth)
	g := game.NewGame(cfg, animator, toggle, logger)
	animator.Run(g)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Constellation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting window backend",
		zap.Int("particles", field.Len()),
		zap.Bool("dark", theme.Dark()),
	)
	return ebiten.RunGame(g)
}

func runTerm(cfg game.Config, store game.Store, clicker *audio.Clicker, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	toggle := term.NewCheckbox()
	theme := bindTheme(store, toggle, clicker, logger)

	w, h := term.SurfaceSize(screen)
	field := game.NewField(cfg, w, h, nil)
	animator := game.NewAnimator(field, theme, cfg.LineWidth)
	runner := term.NewRunner(screen, animator, toggle, cfg.FrameInterval, logger)
	animator.Run(runner)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting terminal backend",
		zap.Int("particles", field.Len()),
		zap.Bool("dark", theme.Dark()),
	)
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
