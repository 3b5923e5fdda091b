package math

import (
	"fmt"
	"math"
	"strings"
)

// EulerOrder is the axis sequence of an Euler rotation. Order ABC rotates
// about A first, then B, then C (extrinsic), so the matrix is R_C * R_B * R_A.
type EulerOrder int

// Supported Euler orders.
const (
	EulerXYZ EulerOrder = iota
	EulerXZY
	EulerYXZ
	EulerYZX
	EulerZXY
	EulerZYX
)

var eulerOrderAxes = [...][3]int{
	EulerXYZ: {0, 1, 2},
	EulerXZY: {0, 2, 1},
	EulerYXZ: {1, 0, 2},
	EulerYZX: {1, 2, 0},
	EulerZXY: {2, 0, 1},
	EulerZYX: {2, 1, 0},
}

var eulerOrderNames = [...]string{"XYZ", "XZY", "YXZ", "YZX", "ZXY", "ZYX"}

// ParseEulerOrder parses an order name such as "XYZ" or "zxy".
func ParseEulerOrder(s string) (EulerOrder, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range eulerOrderNames {
		if n == name {
			return EulerOrder(i), nil
		}
	}
	return EulerXYZ, fmt.Errorf("unknown euler order %q", s)
}

// String returns the order name, e.g. "XYZ".
func (o EulerOrder) String() string {
	if o < 0 || int(o) >= len(eulerOrderNames) {
		return fmt.Sprintf("EulerOrder(%d)", int(o))
	}
	return eulerOrderNames[o]
}

// Axes returns the component indices in application order.
func (o EulerOrder) Axes() [3]int {
	return eulerOrderAxes[o]
}

// even reports whether the order is a cyclic permutation of XYZ.
func (o EulerOrder) even() bool {
	a := o.Axes()
	return (a[1]-a[0]+3)%3 == 1
}

// Euler holds rotation angles in radians about X, Y and Z, applied in Order.
type Euler struct {
	X, Y, Z float32
	Order   EulerOrder
}

// Angle returns the angle about component i.
func (e Euler) Angle(i int) float32 {
	return Vec3{e.X, e.Y, e.Z}.Component(i)
}

func (e *Euler) setAngle(i int, v float32) {
	switch i {
	case 0:
		e.X = v
	case 1:
		e.Y = v
	default:
		e.Z = v
	}
}

// QuatFromEuler converts Euler angles to a quaternion.
func QuatFromEuler(e Euler) Quat {
	q := QuatIdentity()
	for _, i := range e.Order.Axes() {
		var axis Vec3
		switch i {
		case 0:
			axis.X = 1
		case 1:
			axis.Y = 1
		default:
			axis.Z = 1
		}
		// Later axes multiply on the left.
		q = QuatFromAxisAngle(axis, e.Angle(i)).Mul(q)
	}
	return q
}

// eulerFromMat3 decomposes a rotation basis into angles for the given order.
// The middle angle is in [-pi/2, pi/2]; at gimbal lock the last angle is 0.
func eulerFromMat3(m Mat3, order EulerOrder) Euler {
	p := order.Axes()
	// Relabel the basis so the order reads as XYZ.
	r := func(row, col int) float64 {
		return float64(m.At(p[row], p[col]))
	}

	var a, b, c float64
	cy := math.Hypot(r(0, 0), r(1, 0))
	if cy > 16*float64(epsilon32) {
		a = math.Atan2(r(2, 1), r(2, 2))
		b = math.Atan2(-r(2, 0), cy)
		c = math.Atan2(r(1, 0), r(0, 0))
	} else {
		a = math.Atan2(-r(1, 2), r(1, 1))
		b = math.Atan2(-r(2, 0), cy)
		c = 0
	}

	// Odd orders relabel through a reflection, which flips every angle.
	if !order.even() {
		a, b, c = -a, -b, -c
	}

	e := Euler{Order: order}
	e.setAngle(p[0], float32(a))
	e.setAngle(p[1], float32(b))
	e.setAngle(p[2], float32(c))
	return e
}

// epsilon32 is the float32 machine epsilon.
const epsilon32 = float32(1.1920929e-07)
