package math

import (
	"fmt"
	"strings"
)

// Axis is a signed principal axis.
type Axis int

// Signed axes. The low bit is the sign, the rest is the component index.
const (
	AxisPosX Axis = iota
	AxisNegX
	AxisPosY
	AxisNegY
	AxisPosZ
	AxisNegZ
)

var axisNames = [...]string{"X", "-X", "Y", "-Y", "Z", "-Z"}

// ParseAxis parses "X", "+X", "-X" (and the Y and Z forms), ignoring case.
func ParseAxis(s string) (Axis, error) {
	name := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	for i, n := range axisNames {
		if n == name {
			return Axis(i), nil
		}
	}
	return AxisPosX, fmt.Errorf("unknown axis %q", s)
}

// String returns the axis name, e.g. "-Z".
func (a Axis) String() string {
	if a < 0 || int(a) >= len(axisNames) {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Index returns the component index (0=X, 1=Y, 2=Z).
func (a Axis) Index() int {
	return int(a) / 2
}

// Negative reports whether the axis points down its component.
func (a Axis) Negative() bool {
	return a%2 == 1
}

// Sign returns -1 for negative axes, 1 otherwise.
func (a Axis) Sign() float32 {
	if a.Negative() {
		return -1
	}
	return 1
}

// Opposite returns the same axis with the sign flipped.
func (a Axis) Opposite() Axis {
	return a ^ 1
}

// IsZFamily reports whether the axis is Z or -Z.
func (a Axis) IsZFamily() bool {
	return a.Index() == 2
}

// Vec3 returns the unit vector along the axis.
func (a Axis) Vec3() Vec3 {
	var v Vec3
	switch a.Index() {
	case 0:
		v.X = a.Sign()
	case 1:
		v.Y = a.Sign()
	default:
		v.Z = a.Sign()
	}
	return v
}
