package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	// Should have Y component and W = cos(45deg)
	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	// 90 degrees about Z takes X to Y.
	q := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	got := q.Rotate(Vec3{1, 0, 0})
	if got.Distance(Vec3{0, 1, 0}) > 1e-5 {
		t.Errorf("Rotate(X) = %v, want (0,1,0)", got)
	}

	// Mul applies the right operand first.
	qx := QuatFromAxisAngle(Vec3{X: 1}, float32(math.Pi/2))
	got = q.Mul(qx).Rotate(Vec3{0, 1, 0})
	// Y -> Z about X, then Z stays about Z.
	if got.Distance(Vec3{0, 0, 1}) > 1e-5 {
		t.Errorf("(qz*qx).Rotate(Y) = %v, want (0,0,1)", got)
	}
}

func TestQuatMat3RoundTrip(t *testing.T) {
	quats := []Quat{
		QuatIdentity(),
		QuatFromAxisAngle(Vec3{1, 0, 0}, 3.1),
		QuatFromAxisAngle(Vec3{0, 1, 0}, -2.0),
		QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi),
		QuatFromAxisAngle(Vec3{1, 2, 3}.Normalize(), 0.7),
		QuatFromAxisAngle(Vec3{-1, 0.5, 0.2}.Normalize(), 2.9),
	}
	for i, q := range quats {
		m := q.ToMat3()
		if d := m.Determinant(); abs(d-1) > 1e-4 {
			t.Errorf("quat %d: det = %v, want 1", i, d)
		}
		back := QuatFromMat3(m)
		if !back.ApproxEqual(q, 1e-5) {
			t.Errorf("quat %d: QuatFromMat3(ToMat3()) = %v, want %v", i, back, q)
		}
	}
}

func TestAxisAngleRoundTrip(t *testing.T) {
	aa := AxisAngle{Axis: Vec3{0, 3, 4}, Angle: 1.2}
	q := aa.Quat()
	back := q.ToAxisAngle()

	if back.Axis.Distance(Vec3{0, 0.6, 0.8}) > 1e-4 {
		t.Errorf("axis = %v, want (0,0.6,0.8)", back.Axis)
	}
	if abs(back.Angle-1.2) > 1e-4 {
		t.Errorf("angle = %v, want 1.2", back.Angle)
	}

	ident := QuatIdentity().ToAxisAngle()
	if ident.Angle != 0 || ident.Axis != (Vec3{Y: 1}) {
		t.Errorf("identity ToAxisAngle() = %+v, want 0 about +Y", ident)
	}
	if (AxisAngle{}).Quat() != QuatIdentity() {
		t.Error("zero axis should give identity")
	}
}

func TestEulerOrderMatters(t *testing.T) {
	half := float32(math.Pi / 2)
	v := Vec3{0, 1, 0}

	// X first: Y -> Z, then about Y: Z -> X.
	got := QuatFromEuler(Euler{X: half, Y: half, Order: EulerXYZ}).Rotate(v)
	if got.Distance(Vec3{1, 0, 0}) > 1e-5 {
		t.Errorf("XYZ rotate = %v, want (1,0,0)", got)
	}

	// Y first leaves Y alone, then about X: Y -> Z.
	got = QuatFromEuler(Euler{X: half, Y: half, Order: EulerYXZ}).Rotate(v)
	if got.Distance(Vec3{0, 0, 1}) > 1e-5 {
		t.Errorf("YXZ rotate = %v, want (0,0,1)", got)
	}
}

func TestEulerRoundTrip(t *testing.T) {
	angles := []Vec3{
		{0, 0, 0},
		{0.3, -0.7, 1.1},
		{-1.2, 0.4, -0.2},
		{1.0, 1.0, -1.0},
	}
	orders := []EulerOrder{EulerXYZ, EulerXZY, EulerYXZ, EulerYZX, EulerZXY, EulerZYX}

	for _, order := range orders {
		for _, a := range angles {
			t.Run(order.String(), func(t *testing.T) {
				e := Euler{X: a.X, Y: a.Y, Z: a.Z, Order: order}
				q := QuatFromEuler(e)
				back := q.ToEuler(order)

				if back.Order != order {
					t.Errorf("order = %v, want %v", back.Order, order)
				}
				got := Vec3{back.X, back.Y, back.Z}
				if got.Distance(a) > 1e-3 {
					t.Errorf("ToEuler(QuatFromEuler(%v)) = %v", a, got)
				}
				if !QuatFromEuler(back).ApproxEqual(q, 1e-5) {
					t.Errorf("round trip changed rotation for %v", a)
				}
			})
		}
	}
}

func TestEulerGimbalLock(t *testing.T) {
	// Middle angle at 90 degrees still reproduces the rotation.
	e := Euler{X: 0.5, Y: float32(math.Pi / 2), Z: 0.2, Order: EulerXYZ}
	q := QuatFromEuler(e)
	back := q.ToEuler(EulerXYZ)
	if back.Z != 0 {
		t.Errorf("gimbal lock should zero the last angle, got %v", back.Z)
	}
	if !QuatFromEuler(back).ApproxEqual(q, 1e-4) {
		t.Errorf("gimbal lock decomposition %+v does not reproduce rotation", back)
	}
}

func TestParseEulerOrder(t *testing.T) {
	o, err := ParseEulerOrder("zxy")
	if err != nil || o != EulerZXY {
		t.Errorf("ParseEulerOrder(zxy) = %v, %v", o, err)
	}
	if _, err := ParseEulerOrder("XXY"); err == nil {
		t.Error("expected error for XXY")
	}
}
