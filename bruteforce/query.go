package bruteforce

import (
	"github.com/ivalabs/broadphase2d/broadphase"
	"github.com/ivalabs/broadphase2d/geom"
)

// Detect enumerates every admissible overlapping unordered pair, each
// exactly once. forceFull is accepted for Index[T] compatibility but has
// no effect: brute force always performs a full O(n^2) scan.
func (b *Broadphase[T]) Detect(forceFull bool) []broadphase.Pair[T] {
	keys := b.objects.Keys()
	pairs := make([]broadphase.Pair[T], 0)
	for i := 0; i < len(keys); i++ {
		ai, _ := b.objects.Get(keys[i])
		for j := i + 1; j < len(keys); j++ {
			bj, _ := b.objects.Get(keys[j])
			if !b.filter.IsAllowed(keys[i], keys[j]) {
				continue
			}
			if ai.Overlaps(bj) {
				pairs = append(pairs, broadphase.Pair[T]{A: keys[i], B: keys[j]})
			}
		}
	}
	return pairs
}

// DetectIter returns a cooperative pair iterator equivalent to Detect.
// The (i, j) indices into an insertion-order snapshot of keys play the
// role of a "tested" set: once j has scanned past i, pair (i,j)
// can never be revisited, which is what suppresses duplicates.
func (b *Broadphase[T]) DetectIter(forceFull bool) broadphase.PairIterator[T] {
	return &pairIterator[T]{bf: b, keys: b.objects.Keys(), i: 0, j: 1}
}

type pairIterator[T comparable] struct {
	bf      *Broadphase[T]
	keys    []T
	i, j    int
	current broadphase.Pair[T]
	ready   bool
}

func (it *pairIterator[T]) HasNext() bool {
	if it.ready {
		return true
	}
	for it.i < len(it.keys) {
		if it.j >= len(it.keys) {
			it.i++
			it.j = it.i + 1
			continue
		}
		a, b := it.keys[it.i], it.keys[it.j]
		it.j++
		if !it.bf.filter.IsAllowed(a, b) {
			continue
		}
		aabbA, _ := it.bf.objects.Get(a)
		aabbB, _ := it.bf.objects.Get(b)
		if aabbA.Overlaps(aabbB) {
			it.current = broadphase.Pair[T]{A: a, B: b}
			it.ready = true
			return true
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
func (b *Broadphase[T]) DetectAABB(q geom.AABB) []T {
	out := make([]T, 0)
	b.objects.Each(func(k T, aabb geom.AABB) bool {
		if aabb.Overlaps(q) {
			out = append(out, k)
		}
		return true
	})
	return out
}

// DetectAABBIter returns a cooperative item iterator equivalent to DetectAABB.
func (b *Broadphase[T]) DetectAABBIter(q geom.AABB) broadphase.ItemIterator[T] {
	return &aabbIterator[T]{bf: b, keys: b.objects.Keys(), query: q}
}

type aabbIterator[T comparable] struct {
	bf      *Broadphase[T]
	keys    []T
	query   geom.AABB
	idx     int
	current T
	ready   bool
}

func (it *aabbIterator[T]) HasNext() bool {
	if it.ready {
		return true
	}
	for it.idx < len(it.keys) {
		k := it.keys[it.idx]
		it.idx++
		aabb, _ := it.bf.objects.Get(k)
		if aabb.Overlaps(it.query) {
			it.current = k
			it.ready = true
			return true
		}
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

// Raycast returns every object whose AABB overlaps the ray's bounding box
// and passes the slab test.
func (b *Broadphase[T]) Raycast(ray geom.Ray, length float64) []T {
	rayBox := ray.AABB(broadphase.RayQueryLength(length))
	out := make([]T, 0)
	b.objects.Each(func(k T, aabb geom.AABB) bool {
		if aabb.Overlaps(rayBox) && broadphase.RayAABBHit(ray, aabb, length) {
			out = append(out, k)
		}
		return true
	})
	return out
}

// RaycastIter returns a cooperative item iterator equivalent to Raycast.
func (b *Broadphase[T]) RaycastIter(ray geom.Ray, length float64) broadphase.ItemIterator[T] {
	return &raycastIterator[T]{bf: b, keys: b.objects.Keys(), ray: ray, rayBox: ray.AABB(broadphase.RayQueryLength(length)), length: length}
}

type raycastIterator[T comparable] struct {
	bf      *Broadphase[T]
	keys    []T
	ray     geom.Ray
	rayBox  geom.AABB
	length  float64
	idx     int
	current T
	ready   bool
}

func (it *raycastIterator[T]) HasNext() bool {
	if it.ready {
		return true
	}
	for it.idx < len(it.keys) {
		k := it.keys[it.idx]
		it.idx++
		aabb, _ := it.bf.objects.Get(k)
		if aabb.Overlaps(it.rayBox) && broadphase.RayAABBHit(it.ray, aabb, it.length) {
			it.current = k
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
