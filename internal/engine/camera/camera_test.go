package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/ref-placer/internal/engine/picking"
	"github.com/Faultbox/ref-placer/pkg/math"
)

func TestCameraCenterRay(t *testing.T) {
	cam := New(math.Vec3{Z: 10}, math.Vec3{}, float32(gomath.Pi/3), 640, 480)
	// Looking straight down needs an up vector that is not parallel.
	cam.Up = math.Vec3{Y: 1}

	ray := cam.ScreenToRay(math.Vec2{X: 320, Y: 240})
	if ray.Direction.Distance(math.Vec3{Z: -1}) > 1e-3 {
		t.Errorf("center ray direction = %v, want (0,0,-1)", ray.Direction)
	}
}

func TestCameraResize(t *testing.T) {
	cam := New(math.Vec3{Y: -10}, math.Vec3{}, 1, 100, 100)
	cam.Resize(200, 50)
	if cam.Width != 200 || cam.Height != 50 {
		t.Errorf("Resize: got %vx%v", cam.Width, cam.Height)
	}
	if p := cam.ProjectionMatrix(); p[0] == p[5] {
		t.Error("projection should reflect the new aspect ratio")
	}
}

func TestOrbitCameraPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch = 0
	c.Yaw = 0
	c.Distance = 4

	// Zero yaw and pitch sits on -Y looking at the center.
	if p := c.Position(); p.Distance(math.Vec3{Y: -4}) > 1e-5 {
		t.Errorf("Position() = %v, want (0,-4,0)", p)
	}

	var cam Camera
	c.Apply(&cam)
	if cam.Target != c.Center || cam.Up != (math.Vec3{Z: 1}) {
		t.Errorf("Apply() = %+v", cam)
	}
}

func TestOrbitCameraDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(math.Vec2{Y: 1e6})
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(math.Vec2{Y: -1e6})
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MinPitch)
	}
}

func TestOrbitCameraFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(picking.NewAABB(math.Vec3{X: -10, Y: -10, Z: 0}, math.Vec3{X: 10, Y: 10, Z: 2}))

	if c.Center != (math.Vec3{Z: 1}) {
		t.Errorf("Center = %v, want (0,0,1)", c.Center)
	}
	if c.Distance <= 20 {
		t.Errorf("Distance = %v, want > 20", c.Distance)
	}
}

func TestOrbitCameraFrame(t *testing.T) {
	c := NewOrbitCamera()
	from := math.Vec3{X: 3, Y: -4, Z: 2}
	target := math.Vec3{Z: 2}
	c.Frame(from, target)

	if c.Distance != 5 || c.Pitch != 0 {
		t.Errorf("Frame() distance=%v pitch=%v, want 5, 0", c.Distance, c.Pitch)
	}
	if p := c.Position(); p.Distance(from) > 1e-4 {
		t.Errorf("Position() = %v, want %v", p, from)
	}

	// Straight down is clamped to the pitch limit.
	c.Frame(math.Vec3{Z: 10}, math.Vec3{})
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
}
