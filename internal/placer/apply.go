package placer

import "github.com/Faultbox/ref-placer/pkg/math"

// Placement is the last surface hit of a gesture and its reflection.
// The two are only ever set together.
type Placement struct {
	Point      math.Vec3 // Surface hit point
	Reflection math.Vec3 // Reflected view direction
}

// Target returns the placed position for a standoff distance.
func (p Placement) Target(distance float32) math.Vec3 {
	return p.Reflection.Scale(distance).Add(p.Point)
}

// UpAxisFor returns the up reference used to resolve roll: Y for the Z
// family, Z otherwise.
func UpAxisFor(aim math.Axis) math.Axis {
	if aim.IsZFamily() {
		return math.AxisPosY
	}
	return math.AxisPosZ
}

// ApplyPosition moves obj to reflection*distance + hit point.
// A nil placement leaves obj untouched.
func ApplyPosition(obj Object, p *Placement, distance float32) {
	if p == nil {
		return
	}
	obj.SetPosition(p.Target(distance))
}

// ApplyRotation aims the local aim axis along the reflection, keeping the
// object's rotation representation. A nil placement leaves obj untouched.
func ApplyRotation(obj Object, p *Placement, aim math.Axis) {
	if p == nil {
		return
	}
	q := math.TrackQuat(p.Reflection, aim, UpAxisFor(aim))
	obj.SetOrientation(obj.Orientation().WithRotation(q))
}

// ApplyPlacement applies position and rotation as params select and records
// distance as the replay distance.
func ApplyPlacement(obj Object, p *Placement, distance float32, params *Params) {
	if params.AffectsPosition {
		ApplyPosition(obj, p, distance)
	}
	if params.AffectsRotation {
		ApplyRotation(obj, p, params.AimAxis)
	}
	params.StoredDistance = distance
}
