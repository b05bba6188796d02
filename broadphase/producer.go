package broadphase

import "github.com/ivalabs/broadphase2d/geom"

// AABBProducer computes a tight AABB for an object of type T.
//
// Compute allocates and returns a fresh AABB; ComputeInto writes into a
// caller-supplied AABB and must not allocate. sap and dynamictree use
// ComputeInto on their update path; Add in every index, bruteforce's
// update path, GetAABB's unstored fallback and the geometric convenience
// operations in index.go use Compute.
type AABBProducer[T any] interface {
	Compute(obj T) geom.AABB
	ComputeInto(obj T, out *geom.AABB)
}

// ShapeWithPose is the minimal object shape required by ShapeProducer: an
// object with a geometric shape and a current world transform.
type ShapeWithPose interface {
	Shape() geom.Shape
	Transform() geom.Transform
}

// ShapeProducer is the canonical AABBProducer for "object with shape and
// pose" objects: the AABB is the shape's bounding rectangle under the
// object's current transform.
type ShapeProducer[T ShapeWithPose] struct{}

// Compute implements AABBProducer.
func (ShapeProducer[T]) Compute(obj T) geom.AABB {
	return geom.WorldAABB(obj.Shape(), obj.Transform())
}

// ComputeInto implements AABBProducer without allocating beyond what
// geom.WorldAABB itself requires for non-trivial shapes.
func (p ShapeProducer[T]) ComputeInto(obj T, out *geom.AABB) {
	*out = p.Compute(obj)
}

// FuncProducer adapts a plain function into an AABBProducer, for objects
// that already know how to report their own tight AABB without the
// Shape/Transform split (e.g. objects that cache their world AABB
// internally).
type FuncProducer[T any] func(obj T) geom.AABB

// Compute implements AABBProducer.
func (f FuncProducer[T]) Compute(obj T) geom.AABB { return f(obj) }

// ComputeInto implements AABBProducer.
func (f FuncProducer[T]) ComputeInto(obj T, out *geom.AABB) { *out = f(obj) }
