package geom

// AABB is an axis-aligned bounding rectangle in 2D, given by its min and
// max corners. On any stored box min should be <= max component-wise,
// unless a producer deliberately returns a degenerate box (a single point
// or a zero-width/zero-height slab); degenerate boxes are still storable
// and still participate in overlap tests.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewAABB builds an AABB from explicit min/max corners. The caller is
// responsible for min <= max; NewAABB does not validate or reorder.
func NewAABB(minX, minY, maxX, maxY float64) AABB {
	return AABB{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// FromCenterHalfExtents builds an AABB centered at c with the given
// half-width/half-height.
func FromCenterHalfExtents(c Vec2, halfX, halfY float64) AABB {
	return AABB{
		MinX: c.X - halfX, MinY: c.Y - halfY,
		MaxX: c.X + halfX, MaxY: c.Y + halfY,
	}
}
