package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the particle field configuration
type Config struct {
	// ParticleCount is the number of particles created at startup
	ParticleCount int

	// LinkDistance is the distance below which two particles are connected, in pixels
	LinkDistance float64

	// MaxSpeed bounds each velocity component, in pixels per frame
	MaxSpeed float64

	// MinRadius is the smallest particle radius in pixels
	MinRadius float64

	// MaxRadius is the (exclusive) largest particle radius in pixels
	MaxRadius float64

	// LineWidth is the connector stroke width in pixels
	LineWidth float64

	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// FrameInterval is the frame period used by backends without a display refresh callback
	FrameInterval time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ParticleCount: 80,
		LinkDistance:  150.0,
		MaxSpeed:      0.25,
		MinRadius:     1.0,
		MaxRadius:     3.0,
		LineWidth:     1.0,
		ScreenWidth:   1024,
		ScreenHeight:  768,
		FrameInterval: 16 * time.Millisecond, // ~60 FPS
	}
}

const (
	maxParticleCount = 2000
	maxScreenSize    = 16384
)

// LoadFromEnv overrides fields of base from CONSTELLATION_* environment variables.
func LoadFromEnv(base Config) (Config, error) {
	cfg := base
	var err error

	if cfg.ParticleCount, err = readInt("CONSTELLATION_PARTICLES", cfg.ParticleCount, 1, maxParticleCount); err != nil {
		return Config{}, err
	}
	if cfg.LinkDistance, err = readFloat("CONSTELLATION_LINK_DISTANCE", cfg.LinkDistance, 0, 10000); err != nil {
		return Config{}, err
	}
	if cfg.ScreenWidth, err = readInt("CONSTELLATION_WIDTH", cfg.ScreenWidth, 1, maxScreenSize); err != nil {
		return Config{}, err
	}
	if cfg.ScreenHeight, err = readInt("CONSTELLATION_HEIGHT", cfg.ScreenHeight, 1, maxScreenSize); err != nil {
		return Config{}, err
	}
	if cfg.FrameInterval, err = readDuration("CONSTELLATION_FRAME_INTERVAL", cfg.FrameInterval); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.ParticleCount < 0 || c.ParticleCount > maxParticleCount {
		return fmt.Errorf("particle count must be between 0 and %d", maxParticleCount)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.MinRadius <= 0 || c.MaxRadius < c.MinRadius {
		return fmt.Errorf("radius range [%g, %g) is invalid", c.MinRadius, c.MaxRadius)
	}
	if c.MaxSpeed < 0 {
		return fmt.Errorf("max speed must not be negative")
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be greater than 0")
	}
	return nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readFloat(key string, fallback, min, max float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %g and %g", key, min, max)
	}

	return parsed, nil
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}
