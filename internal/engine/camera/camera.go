// Package camera provides viewport cameras that project pointer positions
// into world-space rays.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/ref-placer/internal/engine/picking"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// Camera is a perspective viewport camera. The world is Z-up.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FovY float32 // Vertical field of view (radians)
	Near float32
	Far  float32

	// Viewport size in pixels
	Width  float32
	Height float32
}

// New creates a camera looking from position at target with Z up.
func New(position, target math.Vec3, fovY float32, width, height int) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       math.Vec3{Z: 1},
		FovY:     fovY,
		Near:     0.1,
		Far:      1000.0,
		Width:    float32(width),
		Height:   float32(height),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for the viewport.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	aspect := float32(1)
	if c.Height > 0 {
		aspect = c.Width / c.Height
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ScreenToRay projects a pointer position in viewport pixels to a world ray.
func (c *Camera) ScreenToRay(screen math.Vec2) picking.Ray {
	inv := c.ProjectionMatrix().Mul(c.ViewMatrix()).Inverse()
	return picking.ScreenToRay(screen, c.Width, c.Height, inv)
}

// Resize updates the viewport size.
func (c *Camera) Resize(width, height int) {
	c.Width = float32(width)
	c.Height = float32(height)
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Elevation above the XY plane (radians)
	Yaw      float32 // Rotation about Z (radians)

	// Constraints
	MinPitch float32
	MaxPitch float32

	// Sensitivity
	DragSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        10.0,
		Pitch:           0.6,
		Yaw:             0.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cosPitch := math32.Cos(c.Pitch)
	x := c.Distance * cosPitch * math32.Sin(c.Yaw)
	y := -c.Distance * cosPitch * math32.Cos(c.Yaw)
	z := c.Distance * math32.Sin(c.Pitch)

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// Apply points cam at the orbit center from the current orbit position.
func (c *OrbitCamera) Apply(cam *Camera) {
	cam.Position = c.Position()
	cam.Target = c.Center
	cam.Up = math.Vec3{Z: 1}
}

// Frame sets the orbit so the camera sits at position looking at target.
func (c *OrbitCamera) Frame(position, target math.Vec3) {
	d := position.Sub(target)
	c.Center = target
	c.Distance = d.Length()
	if c.Distance == 0 {
		c.Pitch, c.Yaw = 0, 0
		return
	}
	c.Pitch = math32.Asin(d.Z / c.Distance)
	c.Yaw = math32.Atan2(d.X, -d.Y)
	c.Pitch = min(max(c.Pitch, c.MinPitch), c.MaxPitch)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(delta math.Vec2) {
	c.Yaw -= delta.X * c.DragSensitivity
	c.Pitch += delta.Y * c.DragSensitivity

	// Clamp pitch
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// FitToBounds frames the given bounding box.
func (c *OrbitCamera) FitToBounds(box picking.AABB) {
	c.Center = box.Min.Add(box.Max).Scale(0.5)

	size := box.Max.Sub(box.Min).Length()
	c.Distance = size * 1.5
	if c.Distance < 5 {
		c.Distance = 5
	}

	c.Pitch = 0.6 // Look down at ~35 degrees
	c.Yaw = 0.0
}
