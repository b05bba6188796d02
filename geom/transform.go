package geom

import "math"

// Transform is a 2D rigid transform: a rotation followed by a translation.
type Transform struct {
	Position Vec2
	Angle    float64 // radians
}

// Identity returns the zero transform (no rotation, no translation).
func Identity() Transform {
	return Transform{}
}

// Apply transforms a local-space point p into world space.
func (t Transform) Apply(p Vec2) Vec2 {
	s, c := math.Sincos(t.Angle)
	return Vec2{
		X: p.X*c - p.Y*s + t.Position.X,
		Y: p.X*s + p.Y*c + t.Position.Y,
	}
}

// Shape is anything with a local-space AABB that a Transform can place
// into world space. The canonical AABBProducer (see broadphase.ShapeProducer)
// uses this to compute a tight world AABB for a shape+pose pair.
type Shape interface {
	// LocalAABB returns the shape's axis-aligned bounds before any
	// transform is applied.
	LocalAABB() AABB
}

// Circle is a minimal Shape: a disc of the given radius centered at the
// local origin.
type Circle struct {
	Radius float64
}

// LocalAABB implements Shape.
func (c Circle) LocalAABB() AABB {
	return FromCenterHalfExtents(Vec2{}, c.Radius, c.Radius)
}

// Polygon is a minimal Shape: a convex polygon given by local-space
// vertices. LocalAABB is the tight bound of those vertices; it does not
// itself rotate with Transform.Angle — WorldAABB below applies the full
// transform per-vertex for a tight world box under rotation.
type Polygon struct {
	Vertices []Vec2
}

// LocalAABB implements Shape.
func (p Polygon) LocalAABB() AABB {
	if len(p.Vertices) == 0 {
		return AABB{}
	}
	box := AABB{
		MinX: p.Vertices[0].X, MinY: p.Vertices[0].Y,
		MaxX: p.Vertices[0].X, MaxY: p.Vertices[0].Y,
	}
	for _, v := range p.Vertices[1:] {
		box.MinX = min(box.MinX, v.X)
		box.MinY = min(box.MinY, v.Y)
		box.MaxX = max(box.MaxX, v.X)
		box.MaxY = max(box.MaxY, v.Y)
	}
	return box
}

// WorldAABB returns the tight AABB of shape under transform t. Circle uses
// its (rotation-invariant) local AABB translated to the transform's
// position; Polygon transforms every vertex and re-bounds, which is exact
// for rotation and avoids the looser "rotate the local box" approximation.
func WorldAABB(shape Shape, t Transform) AABB {
	switch s := shape.(type) {
	case Circle:
		return s.LocalAABB().Translate(t.Position)
	case Polygon:
		if len(s.Vertices) == 0 {
			return AABB{MinX: t.Position.X, MinY: t.Position.Y, MaxX: t.Position.X, MaxY: t.Position.Y}
		}
		first := t.Apply(s.Vertices[0])
		box := AABB{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
		for _, v := range s.Vertices[1:] {
			w := t.Apply(v)
			box.MinX = min(box.MinX, w.X)
			box.MinY = min(box.MinY, w.Y)
			box.MaxX = max(box.MaxX, w.X)
			box.MaxY = max(box.MaxY, w.Y)
		}
		return box
	default:
		local := shape.LocalAABB()
		return local.Translate(t.Position)
	}
}
