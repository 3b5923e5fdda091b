package placer

import (
	"testing"

	"github.com/Faultbox/ref-placer/pkg/math"
)

func TestUpAxisFor(t *testing.T) {
	tests := []struct {
		aim  math.Axis
		want math.Axis
	}{
		{math.AxisPosX, math.AxisPosZ},
		{math.AxisNegX, math.AxisPosZ},
		{math.AxisPosY, math.AxisPosZ},
		{math.AxisNegY, math.AxisPosZ},
		{math.AxisPosZ, math.AxisPosY},
		{math.AxisNegZ, math.AxisPosY},
	}
	for _, tt := range tests {
		if got := UpAxisFor(tt.aim); got != tt.want {
			t.Errorf("UpAxisFor(%v) = %v, want %v", tt.aim, got, tt.want)
		}
	}
}

func TestApplyNilPlacement(t *testing.T) {
	obj := newFakeObject(math.Vec3{X: 1})
	params := DefaultParams()
	ApplyPlacement(obj, nil, 3, &params)

	if obj.writes != 0 {
		t.Errorf("writes = %d, want 0", obj.writes)
	}
	if params.StoredDistance != 3 {
		t.Errorf("stored distance = %v, want 3", params.StoredDistance)
	}
}

func TestApplyPosition(t *testing.T) {
	obj := newFakeObject(math.Vec3{})
	p := &Placement{Point: math.Vec3{X: 1, Y: 2, Z: 3}, Reflection: math.Vec3{Y: -1}}
	ApplyPosition(obj, p, 4)

	if obj.pos != (math.Vec3{X: 1, Y: -2, Z: 3}) {
		t.Errorf("position = %v, want (1,-2,3)", obj.pos)
	}
}

func TestApplyRotationAimsAxis(t *testing.T) {
	reflection := math.Vec3{X: 0.6, Z: 0.8}
	p := &Placement{Reflection: reflection}

	for _, aim := range []math.Axis{math.AxisPosX, math.AxisNegY, math.AxisPosZ, math.AxisNegZ} {
		obj := newFakeObject(math.Vec3{})
		obj.orient = QuaternionOrientation(math.QuatIdentity())
		ApplyRotation(obj, p, aim)

		got := obj.orient.Rotation().Rotate(aim.Vec3())
		if got.Distance(reflection) > 1e-5 {
			t.Errorf("aim %v: local axis maps to %v, want %v", aim, got, reflection)
		}
	}
}

func TestApplyRotationNegativeZFacesUp(t *testing.T) {
	obj := newFakeObject(math.Vec3{})
	ApplyRotation(obj, &Placement{Reflection: math.Vec3{Z: 1}}, math.AxisNegZ)

	q := obj.orient.Rotation()
	if got := q.Rotate(math.Vec3{Z: -1}); got.Distance(math.Vec3{Z: 1}) > 1e-5 {
		t.Errorf("local -Z -> %v, want (0,0,1)", got)
	}
	if got := q.Rotate(math.Vec3{Y: 1}); got.Distance(math.Vec3{Y: 1}) > 1e-5 {
		t.Errorf("local Y -> %v, want (0,1,0)", got)
	}
}

func TestApplyRotationKeepsRepresentation(t *testing.T) {
	p := &Placement{Reflection: math.Vec3{X: 1}}

	t.Run("euler keeps order", func(t *testing.T) {
		obj := newFakeObject(math.Vec3{})
		obj.orient = EulerOrientation(math.Euler{X: 0.2, Order: math.EulerZYX})
		tilted := math.Vec3{Y: 0.6, Z: 0.8}
		ApplyRotation(obj, &Placement{Reflection: tilted}, math.AxisPosZ)

		if obj.orient.Mode != RotationEuler || obj.orient.Euler.Order != math.EulerZYX {
			t.Errorf("orientation = %+v, want Euler ZYX", obj.orient)
		}
		if got := obj.orient.Rotation().Rotate(math.Vec3{Z: 1}); got.Distance(tilted) > 1e-4 {
			t.Errorf("local Z -> %v, want %v", got, tilted)
		}
	})

	t.Run("quaternion", func(t *testing.T) {
		obj := newFakeObject(math.Vec3{})
		obj.orient = QuaternionOrientation(math.QuatIdentity())
		ApplyRotation(obj, p, math.AxisPosZ)

		if obj.orient.Mode != RotationQuaternion {
			t.Errorf("mode = %v, want quaternion", obj.orient.Mode)
		}
	})

	t.Run("axis angle upgrades to quaternion", func(t *testing.T) {
		obj := newFakeObject(math.Vec3{})
		obj.orient = Orientation{Mode: RotationAxisAngle, AxisAngle: math.AxisAngle{Axis: math.Vec3{Z: 1}, Angle: 1}}
		ApplyRotation(obj, p, math.AxisPosZ)

		if obj.orient.Mode != RotationQuaternion {
			t.Errorf("mode = %v, want quaternion", obj.orient.Mode)
		}
		if got := obj.orient.Rotation().Rotate(math.Vec3{Z: 1}); got.Distance(math.Vec3{X: 1}) > 1e-5 {
			t.Errorf("local Z -> %v, want (1,0,0)", got)
		}
	})
}

func TestApplyPlacementFlags(t *testing.T) {
	p := &Placement{Point: math.Vec3{Z: -5}, Reflection: math.Vec3{Z: 1}}

	tests := []struct {
		name        string
		position    bool
		rotation    bool
		wantMoved   bool
		wantRotated bool
	}{
		{"both", true, true, true, true},
		{"position only", true, false, true, false},
		{"rotation only", false, true, false, true},
		{"neither", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newFakeObject(math.Vec3{X: 9})
			obj.orient = QuaternionOrientation(math.QuatFromAxisAngle(math.Vec3{X: 1}, 1))
			before := obj.orient

			params := Params{AimAxis: math.AxisPosX, AffectsPosition: tt.position, AffectsRotation: tt.rotation}
			ApplyPlacement(obj, p, 2, &params)

			if moved := obj.pos != (math.Vec3{X: 9}); moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}
			if rotated := obj.orient != before; rotated != tt.wantRotated {
				t.Errorf("rotated = %v, want %v", rotated, tt.wantRotated)
			}
			if params.StoredDistance != 2 {
				t.Errorf("stored distance = %v, want 2", params.StoredDistance)
			}
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{"defaults", DefaultSettings(), false},
		{"zero step", Settings{WheelStep: 0, SlowFactor: 0.1, FastFactor: 10}, true},
		{"negative slow", Settings{WheelStep: 0.05, SlowFactor: -1, FastFactor: 10}, true},
		{"fast collapses", Settings{WheelStep: 0.2, SlowFactor: 0.1, FastFactor: 5}, true},
		{"step too large", Settings{WheelStep: 1, SlowFactor: 0.1, FastFactor: 0.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.settings.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFacingLabel(t *testing.T) {
	if got := FacingLabel(math.AxisPosZ); got != "-Z" {
		t.Errorf("FacingLabel(+Z) = %q, want -Z", got)
	}
	if got := FacingLabel(math.AxisNegX); got != "X" {
		t.Errorf("FacingLabel(-X) = %q, want X", got)
	}
}
