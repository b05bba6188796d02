package sap_test

import (
	"math/rand"
	"testing"

	"github.com/ivalabs/broadphase2d/broadphase"
	"github.com/ivalabs/broadphase2d/geom"
	"github.com/ivalabs/broadphase2d/sap"
)

// BenchmarkSAP_Detect measures full pairwise detection over N scattered
// unit squares.
func BenchmarkSAP_Detect(b *testing.B) {
	const N = 2000
	rnd := rand.New(rand.NewSource(42))
	s := sap.New[*body](producer(), hashOf)
	for i := 0; i < N; i++ {
		s.Add(&body{id: uint64(i + 1), pos: geom.Vec2{X: rnd.Float64() * 100, Y: rnd.Float64() * 100}})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Detect(true)
	}
}

// BenchmarkSAP_UpdateOne measures the per-call cost of updating a single
// proxy's AABB and repositioning it in the ordered tree.
func BenchmarkSAP_UpdateOne(b *testing.B) {
	const N = 2000
	rnd := rand.New(rand.NewSource(42))
	s := sap.New[*body](producer(), hashOf, broadphase.WithExpansion(broadphase.NewFixedMarginExpansion[*body]()))
	bodies := make([]*body, 0, N)
	for i := 0; i < N; i++ {
		bdy := &body{id: uint64(i + 1), pos: geom.Vec2{X: rnd.Float64() * 100, Y: rnd.Float64() * 100}}
		bodies = append(bodies, bdy)
		s.Add(bdy)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdy := bodies[i%N]
		bdy.pos.X += 0.01
		s.UpdateOne(bdy)
	}
}

// BenchmarkSAP_Raycast measures raycast cost over N scattered unit
// squares.
func BenchmarkSAP_Raycast(b *testing.B) {
	const N = 2000
	rnd := rand.New(rand.NewSource(42))
	s := sap.New[*body](producer(), hashOf)
	for i := 0; i < N; i++ {
		s.Add(&body{id: uint64(i + 1), pos: geom.Vec2{X: rnd.Float64() * 100, Y: rnd.Float64() * 100}})
	}
	ray := geom.Ray{Start: geom.Vec2{X: -5, Y: 50}, Direction: geom.Vec2{X: 1, Y: 0}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Raycast(ray, 100)
	}
}
