package placer

import (
	"github.com/Faultbox/ref-placer/internal/engine/picking"
	"github.com/Faultbox/ref-placer/pkg/math"
)

type fakeObject struct {
	pos    math.Vec3
	orient Orientation
	writes int
}

func newFakeObject(pos math.Vec3) *fakeObject {
	return &fakeObject{pos: pos, orient: EulerOrientation(math.Euler{Order: math.EulerXYZ})}
}

func (o *fakeObject) Position() math.Vec3          { return o.pos }
func (o *fakeObject) SetPosition(p math.Vec3)      { o.pos = p; o.writes++ }
func (o *fakeObject) Orientation() Orientation     { return o.orient }
func (o *fakeObject) SetOrientation(r Orientation) { o.orient = r; o.writes++ }

// fakeScene answers every ray cast with hit, unless miss is set.
type fakeScene struct {
	hit    Hit
	miss   bool
	cursor math.Vec3
	casts  int
}

func (s *fakeScene) RayCast(origin, direction math.Vec3) (Hit, bool) {
	s.casts++
	if s.miss {
		return Hit{}, false
	}
	return s.hit, true
}

func (s *fakeScene) CursorLocation() math.Vec3 { return s.cursor }

// fakeView returns the same ray for every pointer position.
type fakeView struct {
	ray picking.Ray
}

func (v *fakeView) ScreenToRay(math.Vec2) picking.Ray { return v.ray }

type fakeStatus struct {
	text    string
	history []string
}

func (s *fakeStatus) SetStatus(text string) {
	s.text = text
	s.history = append(s.history, text)
}

// downwardRig is an object at the origin above a floor at z=-5, viewed
// straight down from the origin.
func downwardRig() (*fakeObject, *fakeScene, *fakeView, *fakeStatus) {
	obj := newFakeObject(math.Vec3{})
	floor := &fakeObject{}
	scene := &fakeScene{hit: Hit{
		Point:  math.Vec3{Z: -5},
		Normal: math.Vec3{Z: 1},
		Object: floor,
	}}
	view := &fakeView{ray: picking.Ray{Direction: math.Vec3{Z: -1}}}
	return obj, scene, view, &fakeStatus{}
}

func approx(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
