package bruteforce_test

import (
	"math/rand"
	"testing"

	"github.com/ivalabs/broadphase2d/broadphase"
	"github.com/ivalabs/broadphase2d/bruteforce"
	"github.com/ivalabs/broadphase2d/geom"
)

// BenchmarkBruteForce_Detect measures full pairwise detection over N
// scattered unit squares.
func BenchmarkBruteForce_Detect(b *testing.B) {
	const N = 2000
	rnd := rand.New(rand.NewSource(42))
	bp := bruteforce.New[*body](producer())
	for i := 0; i < N; i++ {
		bp.Add(&body{pos: geom.Vec2{X: rnd.Float64() * 100, Y: rnd.Float64() * 100}})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bp.Detect(true)
	}
}

// BenchmarkBruteForce_Raycast measures raycast cost over N scattered
// unit squares.
func BenchmarkBruteForce_Raycast(b *testing.B) {
	const N = 2000
	rnd := rand.New(rand.NewSource(42))
	bp := bruteforce.New[*body](producer())
	for i := 0; i < N; i++ {
		bp.Add(&body{pos: geom.Vec2{X: rnd.Float64() * 100, Y: rnd.Float64() * 100}})
	}
	ray := geom.Ray{Start: geom.Vec2{X: -5, Y: 50}, Direction: geom.Vec2{X: 1, Y: 0}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bp.Raycast(ray, 100)
	}
}

// BenchmarkBruteForce_UpdateOne measures the per-call cost of updating a
// single object's AABB.
func BenchmarkBruteForce_UpdateOne(b *testing.B) {
	const N = 2000
	rnd := rand.New(rand.NewSource(42))
	bp := bruteforce.New[*body](producer(), broadphase.WithExpansion[*body](broadphase.NewFixedMarginExpansion[*body]()))
	bodies := make([]*body, 0, N)
	for i := 0; i < N; i++ {
		bdy := &body{pos: geom.Vec2{X: rnd.Float64() * 100, Y: rnd.Float64() * 100}}
		bodies = append(bodies, bdy)
		bp.Add(bdy)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdy := bodies[i%N]
		bdy.pos.X += 0.01
		bp.UpdateOne(bdy)
	}
}
