package dynamictree

import "github.com/ivalabs/broadphase2d/geom"

// nullIdx marks an absent child/parent/root reference.
const nullIdx int32 = -1

// node is an arena entry: either a leaf (left == nullIdx, object valid) or
// an internal node (both children set, object is the zero value). Storing
// child/parent links as arena indices rather than pointers avoids the
// cyclic-ownership problem a parent<->child pointer graph of live
// pointers would create for the garbage collector.
//
// A freed slot is tombstoned by setting height to -1 (see isFree) and its
// index is pushed on the arena's free list, which allocate pops to reuse
// holes.
type node[T comparable] struct {
	aabb        geom.AABB
	parent      int32
	left, right int32
	height      int32
	object      T
}

func (n *node[T]) isFree() bool { return n.height < 0 }

// arena is the node storage shared by every method in this package.
type arena[T comparable] struct {
	nodes    []node[T]
	freeList []int32
}

func (a *arena[T]) isLeaf(idx int32) bool {
	return a.nodes[idx].left == nullIdx
}

// allocate returns the index of a fresh or reused node slot.
func (a *arena[T]) allocate() int32 {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		return idx
	}
	a.nodes = append(a.nodes, node[T]{})
	return int32(len(a.nodes) - 1)
}

// free tombstones idx and returns it to the free list; the object
// reference (if T is a pointer type) is cleared so it does not keep
// garbage alive.
func (a *arena[T]) free(idx int32) {
	var zero T
	a.nodes[idx] = node[T]{parent: nullIdx, left: nullIdx, right: nullIdx, height: -1, object: zero}
	a.freeList = append(a.freeList, idx)
}

func (a *arena[T]) reset() {
	a.nodes = a.nodes[:0]
	a.freeList = a.freeList[:0]
}
