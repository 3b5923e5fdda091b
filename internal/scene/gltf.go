package scene

import (
	"bytes"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/ref-placer/internal/placer"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// glTF is Y-up. yUp turns glTF axes (x, y, z) into scene axes (x, -z, y).
var yUp = math.QuatFromAxisAngle(math.Vec3{X: 1}, math32.Pi/2)

// LoadGLTF imports a .gltf or .glb file. Mesh nodes become objects shaped by
// their POSITION bounds, other nodes become shapeless objects and the first
// camera node sets the view. active names the selected object and may be
// empty.
func LoadGLTF(path, active string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading glTF %s: %w", path, err)
	}
	s, err := FromGLTF(doc, active)
	if err != nil {
		return nil, fmt.Errorf("loading glTF %s: %w", path, err)
	}
	s.log.Info("glTF scene loaded", zap.String("path", path), zap.Int("objects", len(s.Objects)))
	return s, nil
}

// ParseGLTF decodes a glTF document from memory. Buffers are not read.
func ParseGLTF(data []byte, active string) (*Scene, error) {
	var doc gltf.Document
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, err
	}
	return FromGLTF(&doc, active)
}

// FromGLTF builds a scene from a decoded glTF document.
func FromGLTF(doc *gltf.Document, active string) (*Scene, error) {
	b := &gltfBuilder{
		doc:     doc,
		scene:   New(),
		visited: make(map[int]bool, len(doc.Nodes)),
		names:   make(map[string]bool, len(doc.Nodes)),
	}
	root := gltfTransform{rot: math.QuatIdentity(), scale: math.Vec3{X: 1, Y: 1, Z: 1}}
	for _, idx := range gltfRoots(doc) {
		if err := b.walk(idx, root); err != nil {
			return nil, err
		}
	}

	s := b.scene
	s.Active = active
	if s.Active != "" {
		if _, ok := s.Object(s.Active); !ok {
			return nil, fmt.Errorf("active object %q not found", s.Active)
		}
	}
	return s, nil
}

// gltfTransform is a node transform in glTF space.
type gltfTransform struct {
	pos   math.Vec3
	rot   math.Quat
	scale math.Vec3
}

func (p gltfTransform) child(c gltfTransform) gltfTransform {
	return gltfTransform{
		pos:   p.pos.Add(p.rot.Rotate(mul3(p.scale, c.pos))),
		rot:   p.rot.Mul(c.rot).Normalize(),
		scale: mul3(p.scale, c.scale),
	}
}

type gltfBuilder struct {
	doc      *gltf.Document
	scene    *Scene
	visited  map[int]bool
	names    map[string]bool
	haveView bool
}

func (b *gltfBuilder) walk(idx int, parent gltfTransform) error {
	if idx < 0 || idx >= len(b.doc.Nodes) {
		return fmt.Errorf("node index %d out of range", idx)
	}
	if b.visited[idx] {
		return fmt.Errorf("node %d is referenced more than once", idx)
	}
	b.visited[idx] = true

	n := b.doc.Nodes[idx]
	world := parent.child(nodeTransform(n))

	if n.Camera != nil && int(*n.Camera) < len(b.doc.Cameras) {
		if !b.haveView {
			b.setView(b.doc.Cameras[*n.Camera], world)
		}
	} else {
		name := n.Name
		if name == "" {
			name = fmt.Sprintf("node%d", idx)
		}
		if b.names[name] {
			return fmt.Errorf("duplicate object %q", name)
		}
		b.names[name] = true

		var shape Shape
		if n.Mesh != nil && int(*n.Mesh) < len(b.doc.Meshes) {
			shape = meshShape(b.doc, b.doc.Meshes[*n.Mesh], world.scale)
		}
		rot := yUp.Mul(world.rot).Mul(yUp.Conjugate()).Normalize()
		b.scene.Add(NewObject(name, yUp.Rotate(world.pos), placer.QuaternionOrientation(rot), shape))
	}

	for _, c := range n.Children {
		if err := b.walk(int(c), world); err != nil {
			return err
		}
	}
	return nil
}

// setView points the scene view along the camera's local -Z.
func (b *gltfBuilder) setView(cam *gltf.Camera, world gltfTransform) {
	pos := yUp.Rotate(world.pos)
	forward := yUp.Rotate(world.rot.Rotate(math.Vec3{Z: -1})).Normalize()
	dist := pos.Length()
	if dist < 1 {
		dist = 10
	}

	b.scene.View = View{
		Position: pos,
		Target:   pos.Add(forward.Scale(dist)),
		Up:       yUp.Rotate(world.rot.Rotate(math.Vec3{Y: 1})).Normalize(),
	}
	if cam.Perspective != nil {
		b.scene.View.FovDegrees = float32(cam.Perspective.Yfov) * 180 / math32.Pi
	}
	b.haveView = true
}

// meshShape sizes a shape from the POSITION bounds of a mesh. Meshes that
// are flat along scene Z become bounded planes, the rest become boxes.
func meshShape(doc *gltf.Document, mesh *gltf.Mesh, scale math.Vec3) Shape {
	lo, hi, ok := meshBounds(doc, mesh)
	if !ok {
		return Shape{}
	}
	lo, hi = mul3(lo, scale), mul3(hi, scale)
	center := lo.Add(hi).Scale(0.5)
	ext := math.Vec3{X: abs32(hi.X - lo.X), Y: abs32(hi.Y - lo.Y), Z: abs32(hi.Z - lo.Z)}

	shape := Shape{
		Center: yUp.Rotate(center),
		Size:   math.Vec3{X: ext.X, Y: ext.Z, Z: ext.Y},
	}
	switch {
	case shape.Size.X > 0 && shape.Size.Y > 0 && shape.Size.Z == 0:
		shape.Kind = ShapePlane
	default:
		shape.Kind = ShapeBox
		shape.Size = math.Vec3{X: max(shape.Size.X, minExtent), Y: max(shape.Size.Y, minExtent), Z: max(shape.Size.Z, minExtent)}
	}
	return shape
}

// minExtent is the thickness given to boxes that are flat along X or Y.
const minExtent = 1e-3

func meshBounds(doc *gltf.Document, mesh *gltf.Mesh) (lo, hi math.Vec3, ok bool) {
	for _, prim := range mesh.Primitives {
		idx, found := prim.Attributes[gltf.POSITION]
		if !found || int(idx) >= len(doc.Accessors) {
			continue
		}
		acc := doc.Accessors[idx]
		if len(acc.Min) < 3 || len(acc.Max) < 3 {
			continue
		}
		a, b := vecFrom(acc.Min), vecFrom(acc.Max)
		if !ok {
			lo, hi, ok = a, b, true
			continue
		}
		lo = math.Vec3{X: min(lo.X, a.X), Y: min(lo.Y, a.Y), Z: min(lo.Z, a.Z)}
		hi = math.Vec3{X: max(hi.X, b.X), Y: max(hi.Y, b.Y), Z: max(hi.Z, b.Z)}
	}
	return lo, hi, ok
}

// nodeTransform reads a node's local transform. A non-identity matrix wins
// over TRS; shear is dropped.
func nodeTransform(n *gltf.Node) gltfTransform {
	var m [16]float32
	for i, v := range n.Matrix {
		m[i] = float32(v)
	}
	if m != ([16]float32{}) && m != identity16 {
		x := math.Vec3{X: m[0], Y: m[1], Z: m[2]}
		y := math.Vec3{X: m[4], Y: m[5], Z: m[6]}
		z := math.Vec3{X: m[8], Y: m[9], Z: m[10]}
		scale := math.Vec3{X: x.Length(), Y: y.Length(), Z: z.Length()}
		return gltfTransform{
			pos:   math.Vec3{X: m[12], Y: m[13], Z: m[14]},
			rot:   math.QuatFromMat3(math.Mat3FromColumns(x.Normalize(), y.Normalize(), z.Normalize())).Normalize(),
			scale: scale,
		}
	}

	t := gltfTransform{
		pos:   math.Vec3{X: float32(n.Translation[0]), Y: float32(n.Translation[1]), Z: float32(n.Translation[2])},
		rot:   math.Quat{X: float32(n.Rotation[0]), Y: float32(n.Rotation[1]), Z: float32(n.Rotation[2]), W: float32(n.Rotation[3])},
		scale: math.Vec3{X: float32(n.Scale[0]), Y: float32(n.Scale[1]), Z: float32(n.Scale[2])},
	}
	if t.rot == (math.Quat{}) {
		t.rot = math.QuatIdentity()
	}
	t.rot = t.rot.Normalize()
	if t.scale == (math.Vec3{}) {
		t.scale = math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return t
}

var identity16 = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// gltfRoots returns the root nodes of the default scene. Documents without
// scenes use every node that is nobody's child.
func gltfRoots(doc *gltf.Document) []int {
	idx := 0
	if doc.Scene != nil {
		idx = int(*doc.Scene)
	}
	var roots []int
	if idx < len(doc.Scenes) {
		for _, n := range doc.Scenes[idx].Nodes {
			roots = append(roots, int(n))
		}
		return roots
	}

	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[int(c)] = true
		}
	}
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func vecFrom[T float32 | float64](v []T) math.Vec3 {
	return math.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

func mul3(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}
