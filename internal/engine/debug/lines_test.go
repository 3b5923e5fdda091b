package debug

import (
	"testing"
	"unsafe"

	"github.com/Faultbox/ref-placer/internal/engine/picking"
	"github.com/Faultbox/ref-placer/pkg/math"
)

func TestLineVertexLayout(t *testing.T) {
	if size := unsafe.Sizeof(LineVertex{}); size != 6*4 {
		t.Errorf("LineVertex size = %d, want 24", size)
	}
}

func TestBoxLines(t *testing.T) {
	box := picking.NewAABB(math.Vec3{X: -1, Y: -2, Z: 0}, math.Vec3{X: 1, Y: 2, Z: 3})
	lines := BoxLines(box, ColorShape)

	if len(lines) != BoxVertexCount {
		t.Fatalf("got %d vertices, want %d", len(lines), BoxVertexCount)
	}

	isCorner := func(p math.Vec3) bool {
		return (p.X == -1 || p.X == 1) && (p.Y == -2 || p.Y == 2) && (p.Z == 0 || p.Z == 3)
	}
	for i := 0; i < len(lines); i += 2 {
		a, b := lines[i].Pos, lines[i+1].Pos
		if !isCorner(a) || !isCorner(b) {
			t.Fatalf("edge %d has a non-corner endpoint: %v %v", i/2, a, b)
		}
		// Each edge runs along exactly one axis.
		diff := 0
		for c := 0; c < 3; c++ {
			if a.Component(c) != b.Component(c) {
				diff++
			}
		}
		if diff != 1 {
			t.Errorf("edge %d is not axis aligned: %v %v", i/2, a, b)
		}
		if lines[i].Color != ColorShape {
			t.Errorf("edge %d colour = %v", i/2, lines[i].Color)
		}
	}
}

func TestAxisLines(t *testing.T) {
	pos := math.Vec3{X: 1, Y: 1, Z: 1}
	lines := AxisLines(pos, math.QuatIdentity(), 2)
	if len(lines) != 6 {
		t.Fatalf("got %d vertices, want 6", len(lines))
	}

	want := []math.Vec3{{X: 3, Y: 1, Z: 1}, {X: 1, Y: 3, Z: 1}, {X: 1, Y: 1, Z: 3}}
	for i, tip := range want {
		if lines[2*i].Pos != pos {
			t.Errorf("axis %d starts at %v, want %v", i, lines[2*i].Pos, pos)
		}
		if lines[2*i+1].Pos.Distance(tip) > 1e-6 {
			t.Errorf("axis %d ends at %v, want %v", i, lines[2*i+1].Pos, tip)
		}
	}
}

func TestGridLines(t *testing.T) {
	lines := GridLines(math.Vec3{Z: -1}, 2, 1, ColorGrid)
	// Five lines per direction, two vertices each.
	if len(lines) != 20 {
		t.Fatalf("got %d vertices, want 20", len(lines))
	}
	for _, v := range lines {
		if v.Pos.Z != -1 {
			t.Fatalf("grid vertex off the plane: %v", v.Pos)
		}
	}

	if GridLines(math.Vec3{}, 0, 1, ColorGrid) != nil {
		t.Error("empty grid should return nil")
	}
}
