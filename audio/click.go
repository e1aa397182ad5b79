// Package audio plays the short tone that accompanies a theme change.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 40 * time.Millisecond
	darkToneHz    = 660.0
	lightToneHz   = 880.0
	clickVolume   = -2.0
)

// Clicker plays a tone on theme changes. A zero or disabled Clicker is silent.
type Clicker struct {
	enabled bool
	logger  *zap.Logger
}

// NewClicker initialises the speaker when enabled. Speaker failures are
// logged and leave the clicker silent.
func NewClicker(enabled bool, logger *zap.Logger) *Clicker {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Clicker{logger: logger}
	if !enabled {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the field runs without sound
		logger.Warn("audio initialization failed", zap.Error(err))
		return c
	}
	c.enabled = true
	return c
}

// Enabled reports whether the speaker is live
func (c *Clicker) Enabled() bool {
	return c != nil && c.enabled
}

// Click plays the tone for the given theme
func (c *Clicker) Click(dark bool) {
	if !c.Enabled() {
		return
	}
	s, err := Tone(dark)
	if err != nil {
		c.logger.Warn("failed to build click tone", zap.Error(err))
		return
	}
	speaker.Play(s)
}

// Close releases the speaker
func (c *Clicker) Close() {
	if c.Enabled() {
		speaker.Close()
		c.enabled = false
	}
}

// Tone returns the finite click streamer for the given theme
func Tone(dark bool) (beep.Streamer, error) {
	freq := lightToneHz
	if dark {
		freq = darkToneHz
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %gHz tone: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(clickDuration), sine),
		Base:     2,
		Volume:   clickVolume,
	}, nil
}
