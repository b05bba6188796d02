package geom_test

import (
	"math"
	"testing"

	"github.com/ivalabs/broadphase2d/geom"
)

func unitSquare(cx, cy float64) geom.AABB {
	return geom.FromCenterHalfExtents(geom.Vec2{X: cx, Y: cy}, 0.5, 0.5)
}

func TestAABB_Overlaps(t *testing.T) {
	a := unitSquare(0, 0)
	b := unitSquare(0.5, 0)
	c := unitSquare(5, 5)

	if !a.Overlaps(b) {
		t.Fatalf("expected a to overlap b")
	}
	if a.Overlaps(c) {
		t.Fatalf("expected a not to overlap c")
	}
	// touching edges count as overlapping
	d := geom.NewAABB(1, 0, 2, 1)
	e := geom.NewAABB(0, 0, 1, 1)
	if !d.Overlaps(e) {
		t.Fatalf("expected touching boxes to overlap")
	}
}

func TestAABB_Union(t *testing.T) {
	a := geom.NewAABB(0, 0, 1, 1)
	b := geom.NewAABB(2, 2, 3, 3)
	u := a.Union(b)
	want := geom.NewAABB(0, 0, 3, 3)
	if u != want {
		t.Fatalf("Union = %+v, want %+v", u, want)
	}
}

func TestAABB_Contains(t *testing.T) {
	outer := geom.NewAABB(-1, -1, 1, 1)
	inner := geom.NewAABB(-0.5, -0.5, 0.5, 0.5)
	if !outer.Contains(inner) {
		t.Fatalf("expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Fatalf("expected inner not to contain outer")
	}
}

func TestAABB_Translate(t *testing.T) {
	a := geom.NewAABB(0, 0, 1, 1)
	shifted := a.Translate(geom.Vec2{X: 2, Y: -3})
	want := geom.NewAABB(2, -3, 3, -2)
	if shifted != want {
		t.Fatalf("Translate = %+v, want %+v", shifted, want)
	}
	back := shifted.Translate(geom.Vec2{X: -2, Y: 3})
	if math.Abs(back.MinX-a.MinX) > 1e-9 || math.Abs(back.MaxY-a.MaxY) > 1e-9 {
		t.Fatalf("shift idempotence violated: got %+v, want %+v", back, a)
	}
}

func TestAABB_Perimeter(t *testing.T) {
	a := geom.NewAABB(0, 0, 3, 4)
	if got := a.Perimeter(); got != 14 {
		t.Fatalf("Perimeter = %v, want 14", got)
	}
}

func TestAABB_Degenerate(t *testing.T) {
	if !(geom.NewAABB(0, 0, 0, 5)).Degenerate() {
		t.Fatalf("expected zero-width box to be degenerate")
	}
	if (geom.NewAABB(0, 0, 1, 1)).Degenerate() {
		t.Fatalf("expected well-formed box not to be degenerate")
	}
}

func TestWorldAABB_Polygon_Rotation(t *testing.T) {
	square := geom.Polygon{Vertices: []geom.Vec2{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	}}
	box := geom.WorldAABB(square, geom.Transform{Angle: math.Pi / 4})
	diag := math.Sqrt2
	if math.Abs(box.MaxX-diag) > 1e-9 || math.Abs(box.MaxY-diag) > 1e-9 {
		t.Fatalf("rotated square AABB = %+v, want extents ~%.4f", box, diag)
	}
}
