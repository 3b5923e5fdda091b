// Package config handles ref-placer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/ref-placer/internal/placer"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// Config holds all settings.
type Config struct {
	Placement PlacementConfig `yaml:"placement"`
	Speed     SpeedConfig     `yaml:"speed"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Window    WindowConfig    `yaml:"window"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PlacementConfig holds the default placement options.
type PlacementConfig struct {
	AimAxis         string  `yaml:"aim_axis"` // X, -X, Y, -Y, Z, -Z
	AffectsPosition bool    `yaml:"affects_position"`
	AffectsRotation bool    `yaml:"affects_rotation"`
	Distance        float32 `yaml:"distance"` // Replay distance, 0 uses the measured one
}

// SpeedConfig holds mouse wheel scaling.
type SpeedConfig struct {
	WheelStep  float32 `yaml:"wheel_step"`
	SlowFactor float32 `yaml:"slow_factor"`
	FastFactor float32 `yaml:"fast_factor"`
}

// ViewportConfig holds the viewport camera projection.
type ViewportConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FovDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// WindowConfig holds live mode window settings.
type WindowConfig struct {
	Title string `yaml:"title"`
	VSync bool   `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Placement: PlacementConfig{
			AimAxis:         placer.DefaultAimAxis.String(),
			AffectsPosition: placer.DefaultAffectsPosition,
			AffectsRotation: placer.DefaultAffectsRotation,
			Distance:        placer.DefaultDistance,
		},
		Speed: SpeedConfig{
			WheelStep:  placer.DefaultWheelStep,
			SlowFactor: placer.DefaultSlowFactor,
			FastFactor: placer.DefaultFastFactor,
		},
		Viewport: ViewportConfig{
			Width:      1280,
			Height:     720,
			FovDegrees: 50,
			Near:       0.1,
			Far:        1000,
		},
		Window: WindowConfig{
			Title: "Ref Placer",
			VSync: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// PlacerParams converts the placement section.
func (c *Config) PlacerParams() (placer.Params, error) {
	axis, err := math.ParseAxis(c.Placement.AimAxis)
	if err != nil {
		return placer.Params{}, fmt.Errorf("placement.aim_axis: %w", err)
	}
	if c.Placement.Distance < 0 {
		return placer.Params{}, fmt.Errorf("placement.distance must not be negative, got %v", c.Placement.Distance)
	}
	return placer.Params{
		AimAxis:         axis,
		AffectsPosition: c.Placement.AffectsPosition,
		AffectsRotation: c.Placement.AffectsRotation,
		StoredDistance:  c.Placement.Distance,
	}, nil
}

// PlacerSettings converts the speed section.
func (c *Config) PlacerSettings() (placer.Settings, error) {
	s := placer.Settings{
		WheelStep:  c.Speed.WheelStep,
		SlowFactor: c.Speed.SlowFactor,
		FastFactor: c.Speed.FastFactor,
	}
	if err := s.Validate(); err != nil {
		return placer.Settings{}, fmt.Errorf("speed: %w", err)
	}
	return s, nil
}
