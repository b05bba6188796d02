package geom

// Ray is a parameterized ray: points on the ray are Start + t*Direction
// for t in [0, length]. Direction is expected to be unit-length; callers
// are responsible for normalizing it (see Vec2.Normalized).
type Ray struct {
	Start     Vec2
	Direction Vec2
}

// AABB returns the bounding rectangle of the ray's segment of the given
// length, used by indices that pre-filter against a ray's own box before
// the per-object slab test.
func (r Ray) AABB(length float64) AABB {
	end := r.Start.Add(r.Direction.Scale(length))
	return AABB{
		MinX: min(r.Start.X, end.X),
		MinY: min(r.Start.Y, end.Y),
		MaxX: max(r.Start.X, end.X),
		MaxY: max(r.Start.Y, end.Y),
	}
}
