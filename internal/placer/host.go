// Package placer implements the reflection placement gesture: it casts the
// pointer ray into the scene, mirrors it off the surface that was hit, and
// moves and turns the controlled object along the reflected direction.
//
// The host (scene graph, viewport, event loop) is reached only through the
// interfaces in this file.
package placer

import (
	"github.com/Faultbox/ref-placer/internal/engine/picking"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// Object is the transform of the object being placed.
// Implementations must be comparable (use pointer receivers) so a ray hit
// on the object itself can be recognized.
type Object interface {
	Position() math.Vec3
	SetPosition(math.Vec3)
	Orientation() Orientation
	SetOrientation(Orientation)
}

// Hit is a successful ray cast against scene geometry.
type Hit struct {
	Point  math.Vec3
	Normal math.Vec3 // Unit surface normal
	Object Object
}

// Scene is the host's ray-cast oracle.
type Scene interface {
	// RayCast returns the nearest surface along the ray, or false on a miss.
	RayCast(origin, direction math.Vec3) (Hit, bool)
	// CursorLocation returns the scene's 3D cursor.
	CursorLocation() math.Vec3
}

// View projects pointer positions into world rays.
type View interface {
	ScreenToRay(screen math.Vec2) picking.Ray
}

// StatusBar shows a line of help text. Empty text clears it.
type StatusBar interface {
	SetStatus(text string)
}

// Context is what a gesture needs from the host.
type Context struct {
	Object Object
	Scene  Scene
	View   View
	Status StatusBar // Optional
}
