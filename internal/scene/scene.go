// Package scene is a small file-backed scene graph. It hosts placement
// gestures: its objects are placer.Objects and it answers ray casts against
// their collision shapes.
package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/ref-placer/internal/engine/camera"
	"github.com/Faultbox/ref-placer/internal/engine/picking"
	"github.com/Faultbox/ref-placer/internal/logger"
	"github.com/Faultbox/ref-placer/internal/placer"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// ShapeKind is the type of an object's collision shape.
type ShapeKind int

// Collision shapes.
const (
	ShapeNone ShapeKind = iota
	ShapePlane
	ShapeBox
	ShapeSphere
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeNone:
		return "none"
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape is a collision shape in the object's local frame. Planes lie in
// local XY with normal +Z.
type Shape struct {
	Kind   ShapeKind
	Center math.Vec3 // Offset from the object origin
	Size   math.Vec3 // Box extents; plane X/Y extents, zero for unbounded
	Radius float32
}

// Object is a named scene object.
type Object struct {
	Name  string
	Shape Shape

	position    math.Vec3
	orientation placer.Orientation
}

// NewObject creates an object.
func NewObject(name string, position math.Vec3, orientation placer.Orientation, shape Shape) *Object {
	return &Object{
		Name:        name,
		Shape:       shape,
		position:    position,
		orientation: orientation,
	}
}

func (o *Object) Position() math.Vec3                 { return o.position }
func (o *Object) SetPosition(p math.Vec3)             { o.position = p }
func (o *Object) Orientation() placer.Orientation     { return o.orientation }
func (o *Object) SetOrientation(r placer.Orientation) { o.orientation = r }

// intersect casts ray against the object's shape. The ray is moved into the
// object frame; rotation keeps distances, so t is valid in world space.
func (o *Object) intersect(ray picking.Ray) (t float32, normal math.Vec3, ok bool) {
	if o.Shape.Kind == ShapeNone {
		return 0, math.Vec3{}, false
	}

	rot := o.orientation.Rotation()
	inv := rot.Conjugate()
	local := picking.Ray{
		Origin:    inv.Rotate(ray.Origin.Sub(o.position)),
		Direction: inv.Rotate(ray.Direction),
	}

	center := o.Shape.Center
	var n math.Vec3
	switch o.Shape.Kind {
	case ShapePlane:
		n = math.Vec3{Z: 1}
		t, ok = local.IntersectPlane(center, n)
		if ok && o.Shape.Size.X > 0 && o.Shape.Size.Y > 0 {
			p := local.At(t).Sub(center)
			if abs32(p.X) > o.Shape.Size.X/2 || abs32(p.Y) > o.Shape.Size.Y/2 {
				ok = false
			}
		}
	case ShapeBox:
		t, n, ok = local.IntersectAABB(picking.BoxAround(center, o.Shape.Size))
	case ShapeSphere:
		t, ok = local.IntersectSphere(center, o.Shape.Radius)
		if ok {
			n = local.At(t).Sub(center).Normalize()
		}
	}
	if !ok {
		return 0, math.Vec3{}, false
	}
	return t, rot.Rotate(n).Normalize(), true
}

// Bounds returns the world bounding box of the object's shape, or false
// for unbounded or missing shapes.
func (o *Object) Bounds() (picking.AABB, bool) {
	var r float32
	switch o.Shape.Kind {
	case ShapeBox:
		r = o.Shape.Size.Length() / 2
	case ShapeSphere:
		r = o.Shape.Radius
	case ShapePlane:
		if o.Shape.Size.X <= 0 || o.Shape.Size.Y <= 0 {
			return picking.AABB{}, false
		}
		r = math.Vec3{X: o.Shape.Size.X, Y: o.Shape.Size.Y}.Length() / 2
	default:
		return picking.AABB{}, false
	}
	c := o.position.Add(o.orientation.Rotation().Rotate(o.Shape.Center))
	ext := math.Vec3{X: r, Y: r, Z: r}
	return picking.NewAABB(c.Sub(ext), c.Add(ext)), true
}

// View is the scene's viewport camera placement.
type View struct {
	Position   math.Vec3
	Target     math.Vec3
	Up         math.Vec3
	FovDegrees float32
}

// Scene holds objects, the 3D cursor and the viewport camera.
type Scene struct {
	Objects []*Object
	Cursor  math.Vec3
	Active  string
	View    View

	log *zap.Logger
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		View: View{Position: math.Vec3{Y: -10, Z: 5}, Up: math.Vec3{Z: 1}},
		log:  logger.Named("scene"),
	}
}

// Add appends an object to the scene.
func (s *Scene) Add(obj *Object) {
	s.Objects = append(s.Objects, obj)
}

// Object looks up an object by name.
func (s *Scene) Object(name string) (*Object, bool) {
	for _, obj := range s.Objects {
		if obj.Name == name {
			return obj, true
		}
	}
	return nil, false
}

// Selected returns the active object.
func (s *Scene) Selected() (*Object, bool) {
	if s.Active == "" {
		return nil, false
	}
	return s.Object(s.Active)
}

// Target returns the active object as a placer.Object, or nil when nothing
// is selected.
func (s *Scene) Target() placer.Object {
	if obj, ok := s.Selected(); ok {
		return obj
	}
	return nil
}

// CursorLocation returns the 3D cursor.
func (s *Scene) CursorLocation() math.Vec3 {
	return s.Cursor
}

// RayCast returns the nearest shape hit along the ray.
func (s *Scene) RayCast(origin, direction math.Vec3) (placer.Hit, bool) {
	ray := picking.Ray{Origin: origin, Direction: direction.Normalize()}
	if ray.Direction == (math.Vec3{}) {
		return placer.Hit{}, false
	}

	best := float32(math32.MaxFloat32)
	var hit placer.Hit
	found := false
	for _, obj := range s.Objects {
		t, n, ok := obj.intersect(ray)
		if !ok || t >= best {
			continue
		}
		best = t
		hit = placer.Hit{Point: ray.At(t), Normal: n, Object: obj}
		found = true
	}

	if found {
		s.log.Debug("ray cast hit", zap.String("object", hit.Object.(*Object).Name), zap.Float32("t", best))
	}
	return hit, found
}

// Bounds returns the box around all bounded shapes, or false if there are none.
func (s *Scene) Bounds() (picking.AABB, bool) {
	var box picking.AABB
	found := false
	for _, obj := range s.Objects {
		b, ok := obj.Bounds()
		if !ok {
			continue
		}
		if !found {
			box, found = b, true
			continue
		}
		box = picking.NewAABB(
			math.Vec3{X: min(box.Min.X, b.Min.X), Y: min(box.Min.Y, b.Min.Y), Z: min(box.Min.Z, b.Min.Z)},
			math.Vec3{X: max(box.Max.X, b.Max.X), Y: max(box.Max.Y, b.Max.Y), Z: max(box.Max.Z, b.Max.Z)},
		)
	}
	return box, found
}

// Camera builds the viewport camera for the given size. fallbackFov (degrees)
// is used when the scene does not set one.
func (s *Scene) Camera(width, height int, fallbackFov float32) *camera.Camera {
	fov := s.View.FovDegrees
	if fov <= 0 {
		fov = fallbackFov
	}
	cam := camera.New(s.View.Position, s.View.Target, fov*math32.Pi/180, width, height)
	cam.Up = s.View.Up
	return cam
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
