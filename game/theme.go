package game

import (
	"fmt"

	"go.uber.org/zap"
)

// Theme flag storage key and values
const (
	ThemeKey   = "theme"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Store is a persistent string key-value store
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Toggle is a checkbox-like control
type Toggle interface {
	Checked() bool
	SetChecked(checked bool)
	// OnChange subscribes fn to user-initiated changes of the checked state
	OnChange(fn func())
}

// ThemeController keeps the dark marker, the toggle control and the
// persisted flag in step.
type ThemeController struct {
	store  Store
	toggle Toggle
	logger *zap.Logger

	dark bool
}

// NewThemeController creates a controller in light mode. Call LoadInitial
// to apply the persisted flag.
func NewThemeController(store Store, toggle Toggle, logger *zap.Logger) *ThemeController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThemeController{
		store:  store,
		toggle: toggle,
		logger: logger,
	}
}

// Dark reports whether the dark marker is set
func (t *ThemeController) Dark() bool {
	return t.dark
}

// LoadInitial applies the persisted flag. Only the exact value "dark"
// switches to dark mode; anything else leaves the light default untouched.
func (t *ThemeController) LoadInitial() {
	value, ok := t.store.Get(ThemeKey)
	if !ok || value != ThemeDark {
		t.logger.Debug("theme loaded", zap.String("theme", ThemeLight), zap.Bool("stored", ok))
		return
	}
	t.dark = true
	t.toggle.SetChecked(true)
	t.logger.Debug("theme loaded", zap.String("theme", ThemeDark))
}

// Bind subscribes the controller to the toggle's change event. Write
// failures are logged; the marker stays flipped.
func (t *ThemeController) Bind() {
	t.toggle.OnChange(func() {
		if err := t.OnToggle(); err != nil {
			t.logger.Warn("failed to persist theme", zap.Error(err))
		}
	})
}

// OnToggle flips the dark marker and persists the new value. The stored
// value follows the marker, not the toggle state.
func (t *ThemeController) OnToggle() error {
	t.dark = !t.dark
	value := ThemeLight
	if t.dark {
		value = ThemeDark
	}
	t.logger.Info("theme changed", zap.String("theme", value))
	if err := t.store.Set(ThemeKey, value); err != nil {
		return fmt.Errorf("failed to store theme %q: %w", value, err)
	}
	return nil
}
