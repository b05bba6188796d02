package broadphase

import "github.com/ivalabs/broadphase2d/geom"

// AABBExpansionMethod enlarges an AABB in place, typically by a fixed
// margin, to reduce how often a slightly-moving object forces a tree/SAP
// rewrite. Indices that require tight boxes (BruteForceBroadphase) use
// NoExpansion.
type AABBExpansionMethod[T any] interface {
	Expand(obj T, aabb *geom.AABB)
}

// NoExpansion leaves the AABB unchanged. BruteForceBroadphase always uses
// this; sap and dynamictree default to it unless the caller supplies
// FixedMarginExpansion.
type NoExpansion[T any] struct{}

// Expand implements AABBExpansionMethod as a no-op.
func (NoExpansion[T]) Expand(T, *geom.AABB) {}

// FixedMarginExpansion widens an AABB by Margin on every side, the
// canonical expansion method for reducing update-driven tree churn.
type FixedMarginExpansion[T any] struct {
	Margin float64
}

// NewFixedMarginExpansion returns a FixedMarginExpansion using
// DefaultExpansionMargin.
func NewFixedMarginExpansion[T any]() FixedMarginExpansion[T] {
	return FixedMarginExpansion[T]{Margin: DefaultExpansionMargin}
}

// Expand implements AABBExpansionMethod.
func (m FixedMarginExpansion[T]) Expand(_ T, aabb *geom.AABB) {
	*aabb = aabb.Expand(m.Margin)
}
