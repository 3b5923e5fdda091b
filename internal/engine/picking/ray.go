// Package picking provides ray casting and surface intersection utilities.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/ref-placer/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screen is in pixels, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screen math.Vec2, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndc := screen.ToNDC(viewportW, viewportH)

	// Unproject near and far points
	nearWorld := invViewProj.MulVec4(math.Vec4{ndc.X, ndc.Y, -1.0, 1.0}).Homogenize()
	farWorld := invViewProj.MulVec4(math.Vec4{ndc.X, ndc.Y, 1.0, 1.0}).Homogenize()

	return Ray{
		Origin:    nearWorld,
		Direction: farWorld.Sub(nearWorld).Normalize(),
	}
}

// IntersectPlane intersects the ray with the front or back of a plane through
// point with the given unit normal. Returns the distance along the ray.
func (r Ray) IntersectPlane(point, normal math.Vec3) (t float32, ok bool) {
	denom := r.Direction.Dot(normal)
	if math32.Abs(denom) < 1e-6 {
		return 0, false // Ray parallel to plane
	}

	t = point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}

// IntersectSphere intersects the ray with a sphere and returns the nearest
// distance in front of the origin.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, ok bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	b := 2.0 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - 4*a*c
	if a == 0 || disc < 0 {
		return 0, false
	}

	sq := math32.Sqrt(disc)
	t = (-b - sq) / (2 * a)
	if t < 0 {
		// Origin inside the sphere: use the exit point.
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t), the outward normal of the face
// that was crossed, and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, normal math.Vec3, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	enterAxis, exitAxis := -1, -1
	var enterSign, exitSign float32

	for i := 0; i < 3; i++ {
		o := r.Origin.Component(i)
		d := r.Direction.Component(i)
		lo := box.Min.Component(i)
		hi := box.Max.Component(i)

		if d == 0 {
			if o < lo || o > hi {
				return 0, math.Vec3{}, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		// Entering through the min face means the normal points down the axis.
		s1, s2 := float32(-1), float32(1)
		if t1 > t2 {
			t1, t2 = t2, t1
			s1, s2 = s2, s1
		}
		if t1 > tmin {
			tmin = t1
			enterAxis, enterSign = i, s1
		}
		if t2 < tmax {
			tmax = t2
			exitAxis, exitSign = i, s2
		}
	}

	// Check if intersection is valid
	if tmax < tmin || tmax < 0 || enterAxis < 0 {
		return 0, math.Vec3{}, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, axisNormal(exitAxis, exitSign), true
	}
	return tmin, axisNormal(enterAxis, enterSign), true
}

func axisNormal(axis int, sign float32) math.Vec3 {
	var n math.Vec3
	switch axis {
	case 0:
		n.X = sign
	case 1:
		n.Y = sign
	default:
		n.Z = sign
	}
	return n
}

// NewAABB creates an AABB from two corners, handling negative scales.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: math.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// BoxAround returns the AABB of a box centred on center with the given
// full extents.
func BoxAround(center, size math.Vec3) AABB {
	half := size.Scale(0.5)
	return NewAABB(center.Sub(half), center.Add(half))
}
