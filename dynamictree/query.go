package dynamictree

import (
	"github.com/ivalabs/broadphase2d/broadphase"
	"github.com/ivalabs/broadphase2d/geom"
)

type outerLeaf[T comparable] struct {
	object T
	aabb   geom.AABB
	leaf   int32
}

// outerList returns the leaves to use as "current" in Detect: the updated
// set when tracking is enabled and forceFull is false, otherwise every
// stored leaf.
func (t *Tree[T]) outerList(forceFull bool) []outerLeaf[T] {
	if t.tracking && !forceFull {
		out := make([]outerLeaf[T], 0, t.updated.Len())
		t.updated.Each(func(obj T, idx int32) bool {
			out = append(out, outerLeaf[T]{object: obj, aabb: t.nodes[idx].aabb, leaf: idx})
			return true
		})
		return out
	}
	out := make([]outerLeaf[T], 0, t.leaves.Len())
	t.leaves.Each(func(obj T, idx int32) bool {
		out = append(out, outerLeaf[T]{object: obj, aabb: t.nodes[idx].aabb, leaf: idx})
		return true
	})
	return out
}

// Detect enumerates candidate pairs by running a stackless descent from
// the root for each outer leaf, pruning subtrees whose union AABB misses
// the outer's box and skipping any inner leaf already visited as an
// outer, so each overlapping pair is emitted exactly once.
func (t *Tree[T]) Detect(forceFull bool) []broadphase.Pair[T] {
	it := t.newPairIterator(forceFull)
	pairs := make([]broadphase.Pair[T], 0)
	for it.HasNext() {
		p, _ := it.Next()
		pairs = append(pairs, p)
	}
	return pairs
}

// DetectIter returns a cooperative pair iterator equivalent to Detect.
func (t *Tree[T]) DetectIter(forceFull bool) broadphase.PairIterator[T] {
	return t.newPairIterator(forceFull)
}

func (t *Tree[T]) newPairIterator(forceFull bool) *pairIterator[T] {
	outers := t.outerList(forceFull)
	it := &pairIterator[T]{
		t:           t,
		outers:      outers,
		testedOuter: make(map[T]bool, len(outers)),
		cur:         nullIdx,
	}
	if len(outers) > 0 {
		it.cur = t.root
	}
	return it
}

// pairIterator walks outers[outerIdx]'s stackless descent, resuming
// exactly where it left off between Next() calls: cur is the descent
// cursor for the current outer, persisted across calls.
type pairIterator[T comparable] struct {
	t           *Tree[T]
	outers      []outerLeaf[T]
	outerIdx    int
	cur         int32
	testedOuter map[T]bool
	current     broadphase.Pair[T]
	ready       bool
}

func (it *pairIterator[T]) HasNext() bool {
	if it.ready {
		return true
	}
	for it.outerIdx < len(it.outers) {
		O := it.outers[it.outerIdx]
		for it.cur != nullIdx {
			n := it.t.nodes[it.cur]
			if !n.aabb.Overlaps(O.aabb) {
				it.cur = it.t.next(it.cur)
				continue
			}
			if !it.t.isLeaf(it.cur) {
				it.cur = n.left
				continue
			}
			leafObj := n.object
			nxt := it.t.next(it.cur)
			if it.cur != O.leaf && !it.testedOuter[leafObj] && it.t.filter.IsAllowed(O.object, leafObj) {
				it.current = broadphase.Pair[T]{A: O.object, B: leafObj}
				it.ready = true
				it.cur = nxt
				return true
			}
			it.cur = nxt
		}
		it.testedOuter[O.object] = true
		it.outerIdx++
		if it.outerIdx < len(it.outers) {
			it.cur = it.t.root
		}
	}
	return false
}

func (it *pairIterator[T]) Next() (broadphase.Pair[T], error) {
	if !it.HasNext() {
		return broadphase.Pair[T]{}, broadphase.ErrIteratorExhausted
	}
	it.ready = false
	return it.current, nil
}

func (it *pairIterator[T]) Remove() error { return broadphase.ErrUnsupportedOperation }

// DetectAABB returns every stored object whose AABB overlaps q.
func (t *Tree[T]) DetectAABB(q geom.AABB) []T {
	it := t.DetectAABBIter(q)
	out := make([]T, 0)
	for it.HasNext() {
		obj, _ := it.Next()
		out = append(out, obj)
	}
	return out
}

// DetectAABBIter returns a cooperative item iterator equivalent to DetectAABB.
func (t *Tree[T]) DetectAABBIter(q geom.AABB) broadphase.ItemIterator[T] {
	return &aabbIterator[T]{t: t, cur: t.root, query: q}
}

type aabbIterator[T comparable] struct {
	t       *Tree[T]
	cur     int32
	query   geom.AABB
	current T
	ready   bool
}

func (it *aabbIterator[T]) HasNext() bool {
	if it.ready {
		return true
	}
	for it.cur != nullIdx {
		n := it.t.nodes[it.cur]
		if !n.aabb.Overlaps(it.query) {
			it.cur = it.t.next(it.cur)
			continue
		}
		if !it.t.isLeaf(it.cur) {
			it.cur = n.left
			continue
		}
		obj := n.object
		it.cur = it.t.next(it.cur)
		it.current = obj
		it.ready = true
		return true
	}
	return false
}

func (it *aabbIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, broadphase.ErrIteratorExhausted
	}
	it.ready = false
	return it.current, nil
}

func (it *aabbIterator[T]) Remove() error { return broadphase.ErrUnsupportedOperation }

// Raycast returns every stored object whose AABB the ray segment hits,
// using the same stackless descent pruned by overlap with the ray's own
// bounding box, then the exact slab test at each candidate leaf.
func (t *Tree[T]) Raycast(ray geom.Ray, length float64) []T {
	it := t.RaycastIter(ray, length)
	out := make([]T, 0)
	for it.HasNext() {
		obj, _ := it.Next()
		out = append(out, obj)
	}
	return out
}

// RaycastIter returns a cooperative item iterator equivalent to Raycast.
func (t *Tree[T]) RaycastIter(ray geom.Ray, length float64) broadphase.ItemIterator[T] {
	return &raycastIterator[T]{t: t, cur: t.root, ray: ray, rayBox: ray.AABB(broadphase.RayQueryLength(length)), length: length}
}

type raycastIterator[T comparable] struct {
	t       *Tree[T]
	cur     int32
	ray     geom.Ray
	rayBox  geom.AABB
	length  float64
	current T
	ready   bool
}

func (it *raycastIterator[T]) HasNext() bool {
	if it.ready {
		return true
	}
	for it.cur != nullIdx {
		n := it.t.nodes[it.cur]
		if !n.aabb.Overlaps(it.rayBox) {
			it.cur = it.t.next(it.cur)
			continue
		}
		if !it.t.isLeaf(it.cur) {
			it.cur = n.left
			continue
		}
		obj := n.object
		hit := broadphase.RayAABBHit(it.ray, n.aabb, it.length)
		it.cur = it.t.next(it.cur)
		if hit {
			it.current = obj
			it.ready = true
			return true
		}
	}
	return false
}

func (it *raycastIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, broadphase.ErrIteratorExhausted
	}
	it.ready = false
	return it.current, nil
}

func (it *raycastIterator[T]) Remove() error { return broadphase.ErrUnsupportedOperation }
