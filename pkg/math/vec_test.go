package math

import (
	"math"
	"testing"
)

func TestVec2ToNDC(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"top left", Vec2{0, 0}, Vec2{-1, 1}},
		{"center", Vec2{400, 300}, Vec2{0, 0}},
		{"bottom right", Vec2{800, 600}, Vec2{1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToNDC(800, 600)
			if got != tt.want {
				t.Errorf("Vec2.ToNDC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero", got)
	}
}

func TestReflectFlipsNormalComponent(t *testing.T) {
	normals := []Vec3{
		{0, 0, 1},
		{0, 1, 0},
		Vec3{1, 1, 0}.Normalize(),
		Vec3{-0.3, 0.5, 0.8}.Normalize(),
	}
	vectors := []Vec3{
		{0, 0, -1},
		{1, 2, 3},
		{-4, 0.5, 2},
		{0.1, -0.1, 0},
	}

	for _, n := range normals {
		for _, v := range vectors {
			r := Reflect(v, n)

			if d := r.Dot(n) + v.Dot(n); abs(d) > 1e-5 {
				t.Errorf("Reflect(%v, %v)·n = %v, want %v", v, n, r.Dot(n), -v.Dot(n))
			}

			tanV := v.Sub(n.Scale(v.Dot(n)))
			tanR := r.Sub(n.Scale(r.Dot(n)))
			if tanV.Distance(tanR) > 1e-5 {
				t.Errorf("Reflect(%v, %v) tangent = %v, want %v", v, n, tanR, tanV)
			}
		}
	}
}

func TestReflectTwiceIsIdentity(t *testing.T) {
	n := Vec3{0.2, -0.4, 0.9}.Normalize()
	v := Vec3{3, -1, 2}
	got := Reflect(Reflect(v, n), n)
	if got.Distance(v) > 1e-5 {
		t.Errorf("Reflect(Reflect(v)) = %v, want %v", got, v)
	}
}

func TestReflectDegenerate(t *testing.T) {
	n := Vec3{0, 0, 1}

	// Head-on reverses the ray.
	if got := Reflect(Vec3{0, 0, -1}, n); got != (Vec3{0, 0, 1}) {
		t.Errorf("head-on Reflect() = %v, want (0,0,1)", got)
	}

	// Grazing leaves the ray unchanged.
	if got := Reflect(Vec3{1, 0, 0}, n); got != (Vec3{1, 0, 0}) {
		t.Errorf("grazing Reflect() = %v, want (1,0,0)", got)
	}
}

func TestDistance(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 6, 3}

	if got := Distance(a, b); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Error("Distance should be symmetric")
	}
	if got := Distance(a, a); got != 0 {
		t.Errorf("Distance(a, a) = %v, want 0", got)
	}
	if got := Distance(Vec3{0, 0, 0}, Vec3{0, 0, -5}); math.Abs(float64(got-5)) > 1e-6 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"X", AxisPosX, false},
		{"+y", AxisPosY, false},
		{"-Z", AxisNegZ, false},
		{" -x ", AxisNegX, false},
		{"W", AxisPosX, true},
		{"", AxisPosX, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxis(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAxis(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAxisProperties(t *testing.T) {
	if AxisNegZ.Vec3() != (Vec3{0, 0, -1}) {
		t.Errorf("AxisNegZ.Vec3() = %v", AxisNegZ.Vec3())
	}
	if AxisPosY.Opposite() != AxisNegY || AxisNegX.Opposite() != AxisPosX {
		t.Error("Opposite should flip the sign")
	}
	if !AxisNegZ.IsZFamily() || !AxisPosZ.IsZFamily() || AxisPosY.IsZFamily() {
		t.Error("IsZFamily wrong")
	}
	if AxisNegY.Index() != 1 || !AxisNegY.Negative() || AxisPosY.Negative() {
		t.Error("Index/Negative wrong for Y axes")
	}
	if AxisNegX.String() != "-X" {
		t.Errorf("AxisNegX.String() = %q", AxisNegX.String())
	}
}
