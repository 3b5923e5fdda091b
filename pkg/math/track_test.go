package math

import "testing"

func TestTrackQuatIdentityFrame(t *testing.T) {
	q := TrackQuat(Vec3{0, 0, 1}, AxisPosZ, AxisPosY)
	if !q.ApproxEqual(QuatIdentity(), 1e-6) {
		t.Errorf("TrackQuat(+Z, Z, Y) = %v, want identity", q)
	}
}

func TestTrackQuatNegativeAim(t *testing.T) {
	// -Z aimed at +Z is a half turn about Y when Y is up.
	q := TrackQuat(Vec3{0, 0, 1}, AxisNegZ, AxisPosY)

	if got := q.Rotate(Vec3{0, 0, -1}); got.Distance(Vec3{0, 0, 1}) > 1e-5 {
		t.Errorf("local -Z -> %v, want (0,0,1)", got)
	}
	if got := q.Rotate(Vec3{0, 1, 0}); got.Distance(Vec3{0, 1, 0}) > 1e-5 {
		t.Errorf("local Y -> %v, want (0,1,0)", got)
	}
	if got := q.Rotate(Vec3{1, 0, 0}); got.Distance(Vec3{-1, 0, 0}) > 1e-5 {
		t.Errorf("local X -> %v, want (-1,0,0)", got)
	}
}

func TestTrackQuatFrames(t *testing.T) {
	forwards := []Vec3{
		{1, 0, 0},
		{0, -1, 0},
		{0.3, 0.4, 0.5},
		{-2, 1, -0.5},
		{0, 0, -3},
	}
	aims := []Axis{AxisPosX, AxisNegX, AxisPosY, AxisNegY, AxisPosZ, AxisNegZ}

	for _, aim := range aims {
		up := AxisPosZ
		if aim.IsZFamily() {
			up = AxisPosY
		}
		for _, f := range forwards {
			t.Run(aim.String(), func(t *testing.T) {
				q := TrackQuat(f, aim, up)
				fn := f.Normalize()

				if got := q.Rotate(aim.Vec3()); got.Distance(fn) > 1e-4 {
					t.Errorf("aim %v along %v: got %v", aim, fn, got)
				}

				// The local up axis stays perpendicular to forward and
				// never points away from the reference.
				upImg := q.Rotate(up.Vec3())
				if d := upImg.Dot(fn); abs(d) > 1e-4 {
					t.Errorf("up image %v not perpendicular to %v", upImg, fn)
				}
				if upImg.Dot(up.Vec3()) < -1e-4 {
					t.Errorf("up image %v points away from %v", upImg, up)
				}
			})
		}
	}
}

func TestTrackQuatDegenerate(t *testing.T) {
	// Forward parallel to the up reference falls back to another axis.
	q := TrackQuat(Vec3{0, 1, 0}, AxisPosZ, AxisPosY)
	if got := q.Rotate(Vec3{0, 0, 1}); got.Distance(Vec3{0, 1, 0}) > 1e-5 {
		t.Errorf("degenerate aim -> %v, want (0,1,0)", got)
	}

	if got := TrackQuat(Vec3{}, AxisPosZ, AxisPosY); got != QuatIdentity() {
		t.Errorf("zero forward = %v, want identity", got)
	}
}
