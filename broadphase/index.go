package broadphase

import "github.com/ivalabs/broadphase2d/geom"

// Index is the capability set every broad-phase implementation
// (bruteforce.Broadphase, sap.SweepAndPrune, dynamictree.Tree) satisfies.
// Callers depend on Index[T] rather than a concrete type so the three
// variants are interchangeable behind a single interface.
type Index[T comparable] interface {
	// Population
	Add(obj T)
	Remove(obj T) bool
	Update()
	UpdateOne(obj T)
	Clear()
	Contains(obj T) bool
	Size() int

	// Update tracking
	SetUpdated(obj T)
	IsUpdated(obj T) bool
	ClearUpdates()
	IsUpdateTrackingSupported() bool
	IsUpdateTrackingEnabled() bool
	SetUpdateTrackingEnabled(enabled bool)

	// AABB
	GetAABB(obj T) geom.AABB

	// Detection
	Detect(forceFull bool) []Pair[T]
	DetectIter(forceFull bool) PairIterator[T]
	DetectAABB(q geom.AABB) []T
	DetectAABBIter(q geom.AABB) ItemIterator[T]
	Raycast(ray geom.Ray, length float64) []T
	RaycastIter(ray geom.Ray, length float64) ItemIterator[T]

	// Spatial transform and tuning
	Shift(v geom.Vec2)
	Optimize()

	// Capability flags not covered by update tracking
	SupportsAABBExpansion() bool
}

// DetectPair reports whether two objects' tight AABBs overlap, using
// producer to compute them on the fly; it performs no index state change
// and consults no filter (filters gate detect's pair enumeration, not this
// direct pairwise check).
func DetectPair[T any](producer AABBProducer[T], a, b T) bool {
	return producer.Compute(a).Overlaps(producer.Compute(b))
}

// DetectShapes reports whether two shapes under their respective
// transforms have overlapping world AABBs.
func DetectShapes(shape1 geom.Shape, xform1 geom.Transform, shape2 geom.Shape, xform2 geom.Transform) bool {
	return geom.WorldAABB(shape1, xform1).Overlaps(geom.WorldAABB(shape2, xform2))
}
