package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagAxis       = flag.String("axis", "", "Local axis aimed along the reflection (X, -X, Y, -Y, Z, -Z)")
	flagDistance   = flag.Float64("distance", -1, "Replay distance (0 uses the measured distance)")
	flagNoPosition = flag.Bool("no-position", false, "Do not move the object")
	flagNoRotation = flag.Bool("no-rotation", false, "Do not rotate the object")
	flagWidth      = flag.Int("width", 0, "Viewport width")
	flagHeight     = flag.Int("height", 0, "Viewport height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAxis != "" {
		cfg.Placement.AimAxis = *flagAxis
	}
	if *flagDistance >= 0 {
		cfg.Placement.Distance = float32(*flagDistance)
	}
	if *flagNoPosition {
		cfg.Placement.AffectsPosition = false
	}
	if *flagNoRotation {
		cfg.Placement.AffectsRotation = false
	}
	if *flagWidth > 0 {
		cfg.Viewport.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewport.Height = *flagHeight
	}
}
