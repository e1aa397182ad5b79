package main

import "flag"

// Command-line flags. They override the defaults and CONSTELLATION_*
// environment variables.
var (
	// backendFlag selects the renderer: an ebiten window or the terminal.
	backendFlag = flag.String("backend", "window", "renderer to use: window or term")

	// particlesFlag sets the particle count; 0 keeps the configured value.
	particlesFlag = flag.Int("particles", 0, "number of particles (0 = configured default)")

	widthFlag  = flag.Int("width", 0, "initial window width in pixels (0 = configured default)")
	heightFlag = flag.Int("height", 0, "initial window height in pixels (0 = configured default)")

	// settingsFlag points at the JSON file holding the persisted theme.
	settingsFlag = flag.String("settings", "", "settings file path (default: user config dir)")

	// soundFlag plays a short tone whenever the theme changes.
	soundFlag = flag.Bool("sound", false, "play a tone when the theme changes")

	// debugFlag switches to development logging at debug level.
	debugFlag = flag.Bool("debug", false, "enable debug logging")

	// logFlag redirects logs to a file; the terminal backend logs nowhere without it.
	logFlag = flag.String("log", "", "write logs to this file instead of stderr")
)
