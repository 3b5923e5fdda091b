package placer

import (
	"fmt"

	"github.com/Faultbox/ref-placer/pkg/math"
)

// Defaults for Params and Settings.
const (
	DefaultAimAxis         = math.AxisPosZ
	DefaultAffectsPosition = true
	DefaultAffectsRotation = true
	DefaultDistance        = float32(0.0)

	DefaultWheelStep  = float32(0.05)
	DefaultSlowFactor = float32(0.1)
	DefaultFastFactor = float32(10.0)
)

// initialDistance is the live distance before the first surface hit.
const initialDistance = float32(1.0)

// HelpText is shown on the status line while a gesture runs.
const HelpText = "LMB-Drag: Place, Esc/RMB: Cancel, Wheel: Distance, " +
	"Ctrl+Wheel: Fast, Shift+Wheel: Slow"

// Params are the user-facing placement options. They are kept with the edit
// so it can be replayed with adjusted values.
type Params struct {
	// AimAxis is the local axis pointed along the reflection.
	AimAxis         math.Axis
	AffectsPosition bool
	AffectsRotation bool
	// StoredDistance is the standoff used on replay. Zero means use the
	// distance measured during the gesture.
	StoredDistance float32
}

// DefaultParams returns the default placement options.
func DefaultParams() Params {
	return Params{
		AimAxis:         DefaultAimAxis,
		AffectsPosition: DefaultAffectsPosition,
		AffectsRotation: DefaultAffectsRotation,
		StoredDistance:  DefaultDistance,
	}
}

// Settings control how the mouse wheel scales the distance.
type Settings struct {
	WheelStep  float32 // Relative change per wheel notch
	SlowFactor float32 // Step multiplier with Shift held
	FastFactor float32 // Step multiplier with Ctrl held
}

// DefaultSettings returns the default wheel settings.
func DefaultSettings() Settings {
	return Settings{
		WheelStep:  DefaultWheelStep,
		SlowFactor: DefaultSlowFactor,
		FastFactor: DefaultFastFactor,
	}
}

// Validate checks that every wheel step stays within (0, 1).
func (s Settings) Validate() error {
	if s.WheelStep <= 0 || s.SlowFactor <= 0 || s.FastFactor <= 0 {
		return fmt.Errorf("wheel step and speed factors must be positive (step=%v slow=%v fast=%v)",
			s.WheelStep, s.SlowFactor, s.FastFactor)
	}
	for _, step := range []float32{s.WheelStep, s.WheelStep * s.SlowFactor, s.WheelStep * s.FastFactor} {
		if step >= 1 {
			return fmt.Errorf("wheel step %v would collapse the distance in one notch", step)
		}
	}
	return nil
}

// step returns the wheel step for the given modifier state.
// Shift wins when both modifiers are held.
func (s Settings) step(shift, ctrl bool) float32 {
	step := s.WheelStep
	if shift {
		step *= s.SlowFactor
	} else if ctrl {
		step *= s.FastFactor
	}
	return step
}

// FacingLabel returns the label shown to users for an aim axis: the local
// axis that faces the surface, which is the opposite of the aimed axis.
func FacingLabel(aim math.Axis) string {
	return aim.Opposite().String()
}
