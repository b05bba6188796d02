package sap

import (
	"github.com/ivalabs/broadphase2d/avltree"
	"github.com/ivalabs/broadphase2d/broadphase"
	"github.com/ivalabs/broadphase2d/geom"
)

// outerList returns the proxies to use as "current" in Detect, in the
// order: the updated set when tracking is enabled and forceFull is
// false, otherwise every proxy in ascending tree order.
func (s *SweepAndPrune[T]) outerList(forceFull bool) []*proxy[T] {
	if s.tracking && !forceFull {
		out := make([]*proxy[T], 0, s.updated.Len())
		s.updated.Each(func(_ T, p *proxy[T]) bool {
			out = append(out, p)
			return true
		})
		return out
	}
	out := make([]*proxy[T], 0, len(s.nodes))
	for n := s.tree.First(); n != nil; n = n.Next() {
		out = append(out, n.Value())
	}
	return out
}

// Detect enumerates candidate pairs. See outerList and the sweep in
// DetectIter for the algorithm; Detect simply drains that iterator.
func (s *SweepAndPrune[T]) Detect(forceFull bool) []broadphase.Pair[T] {
	it := s.newPairIterator(forceFull)
	pairs := make([]broadphase.Pair[T], 0)
	for it.HasNext() {
		p, _ := it.Next()
		pairs = append(pairs, p)
	}
	return pairs
}

// DetectIter returns a cooperative pair iterator equivalent to Detect.
func (s *SweepAndPrune[T]) DetectIter(forceFull bool) broadphase.PairIterator[T] {
	return s.newPairIterator(forceFull)
}

func (s *SweepAndPrune[T]) newPairIterator(forceFull bool) *pairIterator[T] {
	outers := s.outerList(forceFull)
	it := &pairIterator[T]{
		s:      s,
		outers: outers,
	}
	if len(outers) > 0 {
		it.inner = outers[0].handle
	}
	return it
}

// pairIterator walks outers[outerIdx], sweeping its tail in the tree
// (proxies with key >= current) until the x-sorted early-exit condition
// fires, then advances to the next outer — resuming exactly where it left
// off between Next() calls.
//
// Because the inner sweep only ever walks forward from an outer's own tree
// position, a pair (X, Y) with X tree-before Y is only ever reachable while
// X is outer and the sweep reaches Y — never the reverse. That makes
// duplicate suppression unnecessary on its own, independent of what order
// outers are visited in: there is no "already tested" set to consult, since
// no pair can be found twice. A dedup flag keyed on "has this object already
// served as an outer" is actively wrong here, since outers in tracking mode
// are visited in insertion order, not tree order — an object can be tree-
// before the current outer yet still be unvisited as an outer so far.
type pairIterator[T comparable] struct {
	s        *SweepAndPrune[T]
	outers   []*proxy[T]
	outerIdx int
	inner    *avltree.Node[*proxy[T]]
	current  broadphase.Pair[T]
	ready    bool
}

func (it *pairIterator[T]) HasNext() bool {
	if it.ready {
		return true
	}
	for it.outerIdx < len(it.outers) {
		cur := it.outers[it.outerIdx]
		for it.inner != nil {
			n := it.inner
			it.inner = n.Next()
			test := n.Value()
			if test == cur {
				continue // the tail iterator's first element is current itself
			}
			if !it.s.filter.IsAllowed(cur.object, test.object) {
				continue
			}
			if cur.aabb.MaxX < test.aabb.MinX {
				it.inner = nil // break: no later proxy can overlap along x
				break
			}
			if cur.aabb.Overlaps(test.aabb) {
				it.current = broadphase.Pair[T]{A: cur.object, B: test.object}
				it.ready = true
				return true
			}
		}
		it.outerIdx++
		if it.outerIdx < len(it.outers) {
			it.inner = it.outers[it.outerIdx].handle
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

// DetectAABB returns every stored object whose AABB overlaps q, using an
// in-order tree walk that stops once keys can no longer overlap q along x.
func (s *SweepAndPrune[T]) DetectAABB(q geom.AABB) []T {
	out := make([]T, 0)
	for n := s.tree.First(); n != nil; n = n.Next() {
		p := n.Value()
		if p.aabb.MinX > q.MaxX {
			break
		}
		if p.aabb.Overlaps(q) {
			out = append(out, p.object)
		}
	}
	return out
}

// DetectAABBIter returns a cooperative item iterator equivalent to DetectAABB.
func (s *SweepAndPrune[T]) DetectAABBIter(q geom.AABB) broadphase.ItemIterator[T] {
	return &aabbIterator[T]{node: s.tree.First(), query: q}
}

type aabbIterator[T comparable] struct {
	node    *avltree.Node[*proxy[T]]
	query   geom.AABB
	current T
	ready   bool
	done    bool
}

func (it *aabbIterator[T]) HasNext() bool {
	if it.ready {
		return true
	}
	if it.done {
		return false
	}
	for it.node != nil {
		p := it.node.Value()
		it.node = it.node.Next()
		if p.aabb.MinX > it.query.MaxX {
			it.done = true
			return false
		}
		if p.aabb.Overlaps(it.query) {
			it.current = p.object
			it.ready = true
			return true
		}
	}
	it.done = true
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

// Raycast falls back to a brute-force scan with the shared slab test: sap
// has no ray acceleration structure. The x-sorted early exit
// still applies, since the ray's own bounding box limits which proxies can
// possibly be hit.
func (s *SweepAndPrune[T]) Raycast(ray geom.Ray, length float64) []T {
	rayBox := ray.AABB(broadphase.RayQueryLength(length))
	out := make([]T, 0)
	for n := s.tree.First(); n != nil; n = n.Next() {
		p := n.Value()
		if p.aabb.MinX > rayBox.MaxX {
			break
		}
		if p.aabb.Overlaps(rayBox) && broadphase.RayAABBHit(ray, p.aabb, length) {
			out = append(out, p.object)
		}
	}
	return out
}

// RaycastIter returns a cooperative item iterator equivalent to Raycast.
func (s *SweepAndPrune[T]) RaycastIter(ray geom.Ray, length float64) broadphase.ItemIterator[T] {
	return &raycastIterator[T]{node: s.tree.First(), ray: ray, rayBox: ray.AABB(broadphase.RayQueryLength(length)), length: length}
}

type raycastIterator[T comparable] struct {
	node    *avltree.Node[*proxy[T]]
	ray     geom.Ray
	rayBox  geom.AABB
	length  float64
	current T
	ready   bool
	done    bool
}

func (it *raycastIterator[T]) HasNext() bool {
	if it.ready {
		return true
	}
	if it.done {
		return false
	}
	for it.node != nil {
		p := it.node.Value()
		it.node = it.node.Next()
		if p.aabb.MinX > it.rayBox.MaxX {
			it.done = true
			return false
		}
		if p.aabb.Overlaps(it.rayBox) && broadphase.RayAABBHit(it.ray, p.aabb, it.length) {
			it.current = p.object
			it.ready = true
			return true
		}
	}
	it.done = true
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
