// Package debug builds line geometry for the live viewport overlay.
package debug

import (
	"github.com/Faultbox/ref-placer/internal/engine/picking"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// Color is an RGB colour.
type Color [3]float32

// Overlay colours.
var (
	ColorGrid       = Color{0.3, 0.3, 0.3}
	ColorShape      = Color{0.7, 0.7, 0.7}
	ColorActive     = Color{1.0, 0.6, 0.1}
	ColorReflection = Color{1.0, 1.0, 0.2}
	ColorAxisX      = Color{0.9, 0.2, 0.2}
	ColorAxisY      = Color{0.2, 0.9, 0.2}
	ColorAxisZ      = Color{0.2, 0.4, 1.0}
)

// LineVertex is one line endpoint. The layout is six packed float32s
// (position, colour) so a slice can be uploaded as is.
type LineVertex struct {
	Pos   math.Vec3
	Color Color
}

// BoxVertexCount is the number of vertices of a box wireframe (12 edges × 2).
const BoxVertexCount = 24

// Segment returns one line from a to b.
func Segment(a, b math.Vec3, c Color) []LineVertex {
	return []LineVertex{{a, c}, {b, c}}
}

// BoxLines returns the wireframe of an axis-aligned box.
func BoxLines(box picking.AABB, c Color) []LineVertex {
	lo, hi := box.Min, box.Max
	corner := func(x, y, z bool) math.Vec3 {
		p := lo
		if x {
			p.X = hi.X
		}
		if y {
			p.Y = hi.Y
		}
		if z {
			p.Z = hi.Z
		}
		return p
	}

	out := make([]LineVertex, 0, BoxVertexCount)
	for _, z := range []bool{false, true} {
		// Bottom and top faces
		out = append(out, Segment(corner(false, false, z), corner(true, false, z), c)...)
		out = append(out, Segment(corner(true, false, z), corner(true, true, z), c)...)
		out = append(out, Segment(corner(true, true, z), corner(false, true, z), c)...)
		out = append(out, Segment(corner(false, true, z), corner(false, false, z), c)...)
	}
	// Vertical edges
	for _, xy := range [][2]bool{{false, false}, {true, false}, {true, true}, {false, true}} {
		out = append(out, Segment(corner(xy[0], xy[1], false), corner(xy[0], xy[1], true), c)...)
	}
	return out
}

// AxisLines draws the local X, Y and Z axes of a transform.
func AxisLines(pos math.Vec3, rot math.Quat, length float32) []LineVertex {
	var out []LineVertex
	axes := []struct {
		dir math.Vec3
		c   Color
	}{
		{math.Vec3{X: 1}, ColorAxisX},
		{math.Vec3{Y: 1}, ColorAxisY},
		{math.Vec3{Z: 1}, ColorAxisZ},
	}
	for _, a := range axes {
		tip := pos.Add(rot.Rotate(a.dir).Scale(length))
		out = append(out, Segment(pos, tip, a.c)...)
	}
	return out
}

// GridLines returns a square XY grid centred on center at its height,
// extending half in each direction with lines every step.
func GridLines(center math.Vec3, half, step float32, c Color) []LineVertex {
	if half <= 0 || step <= 0 {
		return nil
	}
	n := int(half / step)
	out := make([]LineVertex, 0, (2*n+1)*4)
	for i := -n; i <= n; i++ {
		o := float32(i) * step
		out = append(out, Segment(
			center.Add(math.Vec3{X: o, Y: -half}),
			center.Add(math.Vec3{X: o, Y: half}), c)...)
		out = append(out, Segment(
			center.Add(math.Vec3{X: -half, Y: o}),
			center.Add(math.Vec3{X: half, Y: o}), c)...)
	}
	return out
}
