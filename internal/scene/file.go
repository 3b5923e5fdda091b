package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/ref-placer/internal/placer"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// File is the on-disk scene layout.
type File struct {
	Camera  CameraFile   `yaml:"camera"`
	Cursor  [3]float32   `yaml:"cursor"`
	Active  string       `yaml:"active"` // Name of the selected object
	Objects []ObjectFile `yaml:"objects"`
}

// CameraFile holds the viewport camera. Width and height come from the
// viewport config.
type CameraFile struct {
	Position   [3]float32 `yaml:"position"`
	Target     [3]float32 `yaml:"target"`
	Up         [3]float32 `yaml:"up"`
	FovDegrees float32    `yaml:"fov_degrees"` // Zero uses the viewport default
}

// ObjectFile is one scene object. Quaternions are stored W, X, Y, Z and
// axis-angle as angle, X, Y, Z.
type ObjectFile struct {
	Name         string     `yaml:"name"`
	Location     [3]float32 `yaml:"location"`
	RotationMode string     `yaml:"rotation_mode"`
	Euler        [3]float32 `yaml:"euler"`
	Quaternion   [4]float32 `yaml:"quaternion"`
	AxisAngle    [4]float32 `yaml:"axis_angle"`
	Shape        *ShapeFile `yaml:"shape,omitempty"`
}

// ShapeFile is an object's collision shape.
type ShapeFile struct {
	Kind   string     `yaml:"kind"`   // plane, box or sphere
	Center [3]float32 `yaml:"center"` // Offset from the object origin
	Size   [3]float32 `yaml:"size"`   // Box extents, or plane X/Y extents (zero is unbounded)
	Radius float32    `yaml:"radius"` // Sphere radius
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading scene %s: %w", path, err)
	}
	s.log.Info("scene loaded", zap.String("path", path), zap.Int("objects", len(s.Objects)))
	return s, nil
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return FromFile(&f)
}

// FromFile builds a scene from its file form.
func FromFile(f *File) (*Scene, error) {
	s := New()
	s.Cursor = vec3(f.Cursor)
	s.Active = f.Active
	s.View = View{
		Position:   vec3(f.Camera.Position),
		Target:     vec3(f.Camera.Target),
		Up:         vec3(f.Camera.Up),
		FovDegrees: f.Camera.FovDegrees,
	}
	if s.View.Up == (math.Vec3{}) {
		s.View.Up = math.Vec3{Z: 1}
	}

	seen := make(map[string]bool, len(f.Objects))
	for i, of := range f.Objects {
		if of.Name == "" {
			return nil, fmt.Errorf("object %d has no name", i)
		}
		if seen[of.Name] {
			return nil, fmt.Errorf("duplicate object %q", of.Name)
		}
		seen[of.Name] = true

		obj, err := objectFromFile(of)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", of.Name, err)
		}
		s.Add(obj)
	}

	if s.Active != "" {
		if _, ok := s.Object(s.Active); !ok {
			return nil, fmt.Errorf("active object %q not found", s.Active)
		}
	}
	return s, nil
}

func objectFromFile(of ObjectFile) (*Object, error) {
	modeName := of.RotationMode
	if modeName == "" {
		modeName = "XYZ"
	}
	mode, order, err := placer.ParseRotationMode(modeName)
	if err != nil {
		return nil, err
	}

	orient := placer.Orientation{
		Mode:       mode,
		Euler:      math.Euler{X: of.Euler[0], Y: of.Euler[1], Z: of.Euler[2], Order: order},
		Quaternion: math.Quat{W: of.Quaternion[0], X: of.Quaternion[1], Y: of.Quaternion[2], Z: of.Quaternion[3]},
		AxisAngle: math.AxisAngle{
			Angle: of.AxisAngle[0],
			Axis:  math.Vec3{X: of.AxisAngle[1], Y: of.AxisAngle[2], Z: of.AxisAngle[3]},
		},
	}
	if orient.Quaternion == (math.Quat{}) {
		orient.Quaternion = math.QuatIdentity()
	}
	if orient.AxisAngle.Axis == (math.Vec3{}) {
		orient.AxisAngle.Axis = math.Vec3{Y: 1}
	}

	shape, err := shapeFromFile(of.Shape)
	if err != nil {
		return nil, err
	}
	return NewObject(of.Name, vec3(of.Location), orient, shape), nil
}

func shapeFromFile(sf *ShapeFile) (Shape, error) {
	if sf == nil {
		return Shape{}, nil
	}
	kind, err := ParseShapeKind(sf.Kind)
	if err != nil {
		return Shape{}, err
	}
	shape := Shape{Kind: kind, Center: vec3(sf.Center), Size: vec3(sf.Size), Radius: sf.Radius}
	switch kind {
	case ShapeBox:
		if shape.Size.X <= 0 || shape.Size.Y <= 0 || shape.Size.Z <= 0 {
			return Shape{}, fmt.Errorf("box size must be positive, got %v", sf.Size)
		}
	case ShapeSphere:
		if shape.Radius <= 0 {
			return Shape{}, fmt.Errorf("sphere radius must be positive, got %v", sf.Radius)
		}
	}
	return shape, nil
}

// ToFile returns the scene in its file form.
func (s *Scene) ToFile() *File {
	f := &File{
		Camera: CameraFile{
			Position:   array3(s.View.Position),
			Target:     array3(s.View.Target),
			Up:         array3(s.View.Up),
			FovDegrees: s.View.FovDegrees,
		},
		Cursor:  array3(s.Cursor),
		Active:  s.Active,
		Objects: make([]ObjectFile, 0, len(s.Objects)),
	}
	for _, obj := range s.Objects {
		f.Objects = append(f.Objects, obj.toFile())
	}
	return f
}

func (o *Object) toFile() ObjectFile {
	rot := o.orientation
	of := ObjectFile{
		Name:         o.Name,
		Location:     array3(o.position),
		RotationMode: rot.ModeName(),
		Euler:        [3]float32{rot.Euler.X, rot.Euler.Y, rot.Euler.Z},
		Quaternion:   [4]float32{rot.Quaternion.W, rot.Quaternion.X, rot.Quaternion.Y, rot.Quaternion.Z},
		AxisAngle:    [4]float32{rot.AxisAngle.Angle, rot.AxisAngle.Axis.X, rot.AxisAngle.Axis.Y, rot.AxisAngle.Axis.Z},
	}
	if o.Shape.Kind != ShapeNone {
		of.Shape = &ShapeFile{
			Kind:   o.Shape.Kind.String(),
			Center: array3(o.Shape.Center),
			Size:   array3(o.Shape.Size),
			Radius: o.Shape.Radius,
		}
	}
	return of
}

// Save writes the scene to path, creating parent directories as needed.
func (s *Scene) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s.ToFile())
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	s.log.Info("scene saved", zap.String("path", path))
	return nil
}

// ParseShapeKind parses "plane", "box" or "sphere".
func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ShapeNone, nil
	case "plane":
		return ShapePlane, nil
	case "box":
		return ShapeBox, nil
	case "sphere":
		return ShapeSphere, nil
	}
	return ShapeNone, fmt.Errorf("unknown shape %q", s)
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func array3(v math.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
