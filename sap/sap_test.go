package sap_test

import (
	"sort"
	"testing"

	"github.com/ivalabs/broadphase2d/broadphase"
	"github.com/ivalabs/broadphase2d/geom"
	"github.com/ivalabs/broadphase2d/sap"
)

type body struct {
	id  uint64
	pos geom.Vec2
}

func hashOf(b *body) uint64 { return b.id }

func square(pos geom.Vec2) geom.AABB {
	return geom.FromCenterHalfExtents(pos, 0.5, 0.5)
}

func producer() broadphase.FuncProducer[*body] {
	return func(b *body) geom.AABB { return square(b.pos) }
}

func pairNames(pairs []broadphase.Pair[*body], name func(*body) string) []string {
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		a, b := name(p.A), name(p.B)
		if a > b {
			a, b = b, a
		}
		out = append(out, a+"-"+b)
	}
	sort.Strings(out)
	return out
}

func TestSAP_S1(t *testing.T) {
	a := &body{id: 1, pos: geom.Vec2{X: 0, Y: 0}}
	b := &body{id: 2, pos: geom.Vec2{X: 0.5, Y: 0}}
	c := &body{id: 3, pos: geom.Vec2{X: 5, Y: 5}}
	names := map[*body]string{a: "a", b: "b", c: "c"}

	s := sap.New[*body](producer(), hashOf, broadphase.WithExpansion[*body](broadphase.NoExpansion[*body]{}))
	s.Add(a)
	s.Add(b)
	s.Add(c)

	got := pairNames(s.Detect(true), func(x *body) string { return names[x] })
	if len(got) != 1 || got[0] != "a-b" {
		t.Fatalf("Detect() = %v, want [a-b]", got)
	}
}

func TestSAP_S2(t *testing.T) {
	a := &body{id: 1, pos: geom.Vec2{X: 0, Y: 0}}
	b := &body{id: 2, pos: geom.Vec2{X: 0.5, Y: 0}}
	c := &body{id: 3, pos: geom.Vec2{X: 5, Y: 5}}
	names := map[*body]string{a: "a", b: "b", c: "c"}

	s := sap.New[*body](producer(), hashOf, broadphase.WithExpansion[*body](broadphase.NoExpansion[*body]{}))
	s.Add(a)
	s.Add(b)
	s.Add(c)

	c.pos = geom.Vec2{X: 0, Y: 0.5}
	s.UpdateOne(c)

	got := pairNames(s.Detect(true), func(x *body) string { return names[x] })
	want := []string{"a-b", "a-c", "b-c"}
	if len(got) != len(want) {
		t.Fatalf("Detect() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Detect() = %v, want %v", got, want)
		}
	}
}

func TestSAP_DetectAABB_S3(t *testing.T) {
	a := &body{id: 1, pos: geom.Vec2{X: 0, Y: 0}}
	b := &body{id: 2, pos: geom.Vec2{X: 3, Y: 0}}
	s := sap.New[*body](producer(), hashOf, broadphase.WithExpansion[*body](broadphase.NoExpansion[*body]{}))
	s.Add(a)
	s.Add(b)

	q := geom.NewAABB(-0.5, -0.5, 0.5, 0.5)
	got := s.DetectAABB(q)
	if len(got) != 1 || got[0] != a {
		t.Fatalf("DetectAABB() = %v, want [a]", got)
	}
}

func TestSAP_Raycast_S4(t *testing.T) {
	a := &body{id: 1, pos: geom.Vec2{}}
	s := sap.New[*body](broadphase.FuncProducer[*body](func(b *body) geom.AABB {
		return geom.FromCenterHalfExtents(b.pos, 1, 1)
	}), hashOf, broadphase.WithExpansion[*body](broadphase.NoExpansion[*body]{}))
	s.Add(a)

	hit := s.Raycast(geom.Ray{Start: geom.Vec2{X: -5, Y: 0}, Direction: geom.Vec2{X: 1, Y: 0}}, 10)
	if len(hit) != 1 {
		t.Fatalf("expected a hit, got %v", hit)
	}
	miss := s.Raycast(geom.Ray{Start: geom.Vec2{X: -10, Y: 0}, Direction: geom.Vec2{X: 1, Y: 0}}, 3)
	if len(miss) != 0 {
		t.Fatalf("expected a miss, got %v", miss)
	}
}

// TestSAP_ReductionPolicy checks that small perturbations within a
// contained, low-slack AABB do not rewrite the stored box.
func TestSAP_ReductionPolicy(t *testing.T) {
	a := &body{id: 1, pos: geom.Vec2{}}
	s := sap.New[*body](producer(), hashOf, broadphase.WithExpansion(broadphase.FixedMarginExpansion[*body]{Margin: 5}))
	s.Add(a)
	stored := s.GetAABB(a)

	a.pos = geom.Vec2{X: 0.01, Y: -0.01}
	s.UpdateOne(a)

	if got := s.GetAABB(a); got != stored {
		t.Fatalf("expected stored AABB unchanged by small perturbation: got %+v, want %+v", got, stored)
	}
}

func TestSAP_UpdateTracking(t *testing.T) {
	s := sap.New[*body](producer(), hashOf, broadphase.WithUpdateTracking[*body](true))
	bodies := make([]*body, 0, 10)
	for i := 0; i < 10; i++ {
		b := &body{id: uint64(i + 1), pos: geom.Vec2{X: float64(i) * 0.3, Y: 0}}
		bodies = append(bodies, b)
		s.Add(b)
	}

	full := s.Detect(true)
	partial := s.Detect(false)
	if len(partial) != len(full) {
		t.Fatalf("fresh adds: partial detect = %d pairs, want %d (full)", len(partial), len(full))
	}

	s.ClearUpdates()
	if got := s.Detect(false); len(got) != 0 {
		t.Fatalf("expected empty detect after ClearUpdates, got %v", got)
	}

	bodies[0].pos = geom.Vec2{X: 100, Y: 100}
	s.UpdateOne(bodies[0])
	got := s.Detect(false)
	for _, p := range got {
		if p.A != bodies[0] && p.B != bodies[0] {
			t.Fatalf("pair %+v does not involve the updated object", p)
		}
	}
}

// TestSAP_UpdateTracking_ReverseInsertionOrder covers two mutated,
// overlapping objects added in descending-x order, so the updated set's
// insertion order is the reverse of tree order. Detect(false) must still
// find the pair.
func TestSAP_UpdateTracking_ReverseInsertionOrder(t *testing.T) {
	s := sap.New[*body](producer(), hashOf, broadphase.WithUpdateTracking[*body](true), broadphase.WithExpansion[*body](broadphase.NoExpansion[*body]{}))
	a := &body{id: 1, pos: geom.Vec2{X: 0, Y: 0}}
	b := &body{id: 2, pos: geom.Vec2{X: 1, Y: 0}}

	s.Add(b) // inserted first: updated set order is [b, a], tree order is [a, b]
	s.Add(a)

	full := s.Detect(true)
	partial := s.Detect(false)
	if len(full) != 1 {
		t.Fatalf("Detect(true) = %d pairs, want 1", len(full))
	}
	if len(partial) != len(full) {
		t.Fatalf("Detect(false) = %d pairs, want %d (matching Detect(true))", len(partial), len(full))
	}
}

func TestSAP_Raycast_UnboundedLength(t *testing.T) {
	a := &body{id: 1, pos: geom.Vec2{X: 100, Y: 0}}
	s := sap.New[*body](broadphase.FuncProducer[*body](func(b *body) geom.AABB {
		return geom.FromCenterHalfExtents(b.pos, 1, 1)
	}), hashOf, broadphase.WithExpansion[*body](broadphase.NoExpansion[*body]{}))
	s.Add(a)

	ray := geom.Ray{Start: geom.Vec2{X: -5, Y: 0}, Direction: geom.Vec2{X: 1, Y: 0}}
	if hit := s.Raycast(ray, 0); len(hit) != 1 {
		t.Fatalf("length 0 (unbounded): expected a hit, got %v", hit)
	}
	if hit := s.Raycast(ray, -1); len(hit) != 1 {
		t.Fatalf("length -1 (unbounded): expected a hit, got %v", hit)
	}
}

func TestSAP_RemoveAndContains(t *testing.T) {
	a := &body{id: 1}
	s := sap.New[*body](producer(), hashOf)
	s.Add(a)
	if !s.Contains(a) {
		t.Fatalf("expected a to be present")
	}
	if !s.Remove(a) {
		t.Fatalf("expected Remove to report true")
	}
	if s.Remove(a) {
		t.Fatalf("expected second Remove to report false")
	}
}

func TestSAP_ShiftIdempotence(t *testing.T) {
	a := &body{id: 1, pos: geom.Vec2{X: 1, Y: 2}}
	b := &body{id: 2, pos: geom.Vec2{X: -3, Y: 4}}
	s := sap.New[*body](producer(), hashOf, broadphase.WithExpansion[*body](broadphase.NoExpansion[*body]{}))
	s.Add(a)
	s.Add(b)

	before := s.GetAABB(a)
	v := geom.Vec2{X: 7.5, Y: -2.25}
	s.Shift(v)
	s.Shift(geom.Vec2{X: -v.X, Y: -v.Y})
	after := s.GetAABB(a)
	if after != before {
		t.Fatalf("Shift idempotence violated: got %+v, want %+v", after, before)
	}
}

func TestSAP_DetectIter_MatchesDetect(t *testing.T) {
	a := &body{id: 1, pos: geom.Vec2{X: 0, Y: 0}}
	b := &body{id: 2, pos: geom.Vec2{X: 0.25, Y: 0}}
	c := &body{id: 3, pos: geom.Vec2{X: 10, Y: 10}}
	s := sap.New[*body](producer(), hashOf, broadphase.WithExpansion[*body](broadphase.NoExpansion[*body]{}))
	s.Add(a)
	s.Add(b)
	s.Add(c)

	want := s.Detect(true)
	it := s.DetectIter(true)
	var got []broadphase.Pair[*body]
	for it.HasNext() {
		p, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, p)
	}
	if _, err := it.Next(); err != broadphase.ErrIteratorExhausted {
		t.Fatalf("expected ErrIteratorExhausted, got %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("DetectIter produced %d pairs, want %d", len(got), len(want))
	}
}
