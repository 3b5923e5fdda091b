package placer

import (
	"fmt"
	"strings"

	"github.com/Faultbox/ref-placer/pkg/math"
)

// RotationMode tags which payload of an Orientation is active.
type RotationMode int

// Rotation representations an object can use.
const (
	RotationEuler RotationMode = iota
	RotationQuaternion
	RotationAxisAngle
)

// Orientation is an object's rotation in the representation it prefers.
// Only the payload selected by Mode is meaningful; the others are kept so
// switching modes on the host does not lose data.
type Orientation struct {
	Mode       RotationMode
	Euler      math.Euler
	Quaternion math.Quat
	AxisAngle  math.AxisAngle
}

// EulerOrientation returns an Euler orientation.
func EulerOrientation(e math.Euler) Orientation {
	return Orientation{
		Mode:       RotationEuler,
		Euler:      e,
		Quaternion: math.QuatIdentity(),
		AxisAngle:  math.AxisAngle{Axis: math.Vec3{Y: 1}},
	}
}

// QuaternionOrientation returns a quaternion orientation.
func QuaternionOrientation(q math.Quat) Orientation {
	return Orientation{
		Mode:       RotationQuaternion,
		Quaternion: q,
		AxisAngle:  math.AxisAngle{Axis: math.Vec3{Y: 1}},
	}
}

// Rotation returns the active payload as a quaternion.
func (o Orientation) Rotation() math.Quat {
	switch o.Mode {
	case RotationQuaternion:
		return o.Quaternion.Normalize()
	case RotationAxisAngle:
		return o.AxisAngle.Quat()
	default:
		return math.QuatFromEuler(o.Euler)
	}
}

// WithRotation stores q in the orientation's own representation. Euler
// keeps its axis order. Axis-angle is switched to quaternion first since it
// is not written directly.
func (o Orientation) WithRotation(q math.Quat) Orientation {
	switch o.Mode {
	case RotationEuler:
		o.Euler = q.ToEuler(o.Euler.Order)
	case RotationAxisAngle:
		o.Mode = RotationQuaternion
		o.Quaternion = q
	default:
		o.Quaternion = q
	}
	return o
}

// ModeName returns the host name of the rotation mode: QUATERNION,
// AXIS_ANGLE, or the Euler order such as XYZ.
func (o Orientation) ModeName() string {
	switch o.Mode {
	case RotationQuaternion:
		return "QUATERNION"
	case RotationAxisAngle:
		return "AXIS_ANGLE"
	default:
		return o.Euler.Order.String()
	}
}

// ParseRotationMode parses a host rotation mode name.
func ParseRotationMode(s string) (RotationMode, math.EulerOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "QUATERNION":
		return RotationQuaternion, math.EulerXYZ, nil
	case "AXIS_ANGLE":
		return RotationAxisAngle, math.EulerXYZ, nil
	}
	order, err := math.ParseEulerOrder(s)
	if err != nil {
		return RotationEuler, math.EulerXYZ, fmt.Errorf("unknown rotation mode %q", s)
	}
	return RotationEuler, order, nil
}
