package broadphase

import (
	"math"

	"github.com/ivalabs/broadphase2d/geom"
)

// RayAABBHit performs the branchless slab test of a ray against an AABB.
// length is the ray's segment length along its (expected unit) direction;
// a length <= 0 is treated as unbounded (substituted with +Inf so the
// tmin <= length check never excludes a hit). Division by zero in the
// inverse-direction terms is intentional: IEEE754 produces signed
// infinities that still clip tmin/tmax correctly for axis-aligned rays.
func RayAABBHit(ray geom.Ray, box geom.AABB, length float64) bool {
	if length <= 0 {
		length = math.Inf(1)
	}

	invDX := 1 / ray.Direction.X
	invDY := 1 / ray.Direction.Y

	tx1 := (box.MinX - ray.Start.X) * invDX
	tx2 := (box.MaxX - ray.Start.X) * invDX
	ty1 := (box.MinY - ray.Start.Y) * invDY
	ty2 := (box.MaxY - ray.Start.Y) * invDY

	tmin := math.Max(math.Min(tx1, tx2), math.Min(ty1, ty2))
	tmax := math.Min(math.Max(tx1, tx2), math.Max(ty1, ty2))

	return tmax >= 0 && tmin <= length && tmax >= tmin
}

// RayQueryLength resolves the length a caller should use to build a ray's
// own pre-filter AABB (via geom.Ray.AABB): length unchanged if positive,
// or math.MaxFloat64 for a length <= 0 ("unbounded"), so the pre-filter box
// spans the ray's full extent instead of collapsing to a single point at
// Start. RayAABBHit performs its own, separate +Inf substitution for the
// slab test itself; this is only for building the bounding box callers
// prune candidates against before that test runs.
func RayQueryLength(length float64) float64 {
	if length <= 0 {
		return math.MaxFloat64
	}
	return length
}
