package dynamictree

import (
	"sort"

	"github.com/ivalabs/broadphase2d/broadphase"
	"github.com/ivalabs/broadphase2d/geom"
)

// Tree is the dynamic AABB tree broad-phase index: a binary tree whose
// internal nodes carry the union AABB of their descendants, kept balanced
// by height (like an AVL tree) and grown by a perimeter-cost (surface area
// heuristic) insertion rule. Unlike sap, a dynamic tree has no natural
// total order on its leaves, so detect and the AABB/ray queries are all
// driven by stackless descents from the root (see traversal.go): one per
// outer leaf for detect, one per AABB or ray query.
type Tree[T comparable] struct {
	arena[T]

	producer  broadphase.AABBProducer[T]
	expansion broadphase.AABBExpansionMethod[T]
	filter    broadphase.BroadphaseFilter[T]

	root int32

	leaves   *broadphase.OrderedMap[T, int32]
	updated  *broadphase.OrderedMap[T, int32]
	tracking bool
}

// New creates a Tree using producer to compute tight AABBs. By default
// leaves are stored at their tight AABB (no expansion) and update tracking
// is disabled; override with broadphase.WithExpansion /
// broadphase.WithUpdateTracking.
func New[T comparable](producer broadphase.AABBProducer[T], opts ...broadphase.Option[T]) *Tree[T] {
	cfg := broadphase.NewConfig(opts...)
	t := &Tree[T]{
		producer:  producer,
		expansion: cfg.Expansion,
		filter:    cfg.Filter,
		root:      nullIdx,
		leaves:    broadphase.NewOrderedMap[T, int32](cfg.InitialCapacity),
		updated:   broadphase.NewOrderedMap[T, int32](cfg.InitialCapacity),
		tracking:  cfg.UpdateTrackingEnabled,
	}
	return t
}

func (t *Tree[T]) allocateLeaf(obj T, aabb geom.AABB) int32 {
	idx := t.allocate()
	t.nodes[idx] = node[T]{aabb: aabb, parent: nullIdx, left: nullIdx, right: nullIdx, height: 0, object: obj}
	return idx
}

// Add inserts obj, or routes to UpdateOne if it is already present.
func (t *Tree[T]) Add(obj T) {
	if idx, ok := t.leaves.Get(obj); ok {
		t.refresh(idx)
		return
	}
	tight := t.producer.Compute(obj)
	expanded := tight
	t.expansion.Expand(obj, &expanded)
	idx := t.allocateLeaf(obj, expanded)
	t.insertLeaf(idx)
	t.leaves.Set(obj, idx)
	if t.tracking {
		t.updated.Set(obj, idx)
	}
}

// refresh recomputes obj's tight AABB at idx and applies the reduction
// policy shared with sap: a leaf is only detached and reinserted when its
// current (expanded) box no longer contains the fresh tight box, or when
// containment holds but slack has grown past AABBReductionRatio.
func (t *Tree[T]) refresh(idx int32) {
	n := &t.nodes[idx]
	var tight geom.AABB
	t.producer.ComputeInto(n.object, &tight)
	old := n.aabb

	if old.Contains(tight) {
		candidate := tight
		t.expansion.Expand(n.object, &candidate)
		cp := candidate.Perimeter()
		if cp > 0 && old.Perimeter()/cp <= broadphase.AABBReductionRatio {
			return
		}
		t.reinsert(idx, candidate)
		return
	}

	expanded := tight
	t.expansion.Expand(n.object, &expanded)
	t.reinsert(idx, expanded)
}

// reinsert detaches idx from the tree, overwrites its AABB and reinserts
// it at a freshly chosen position, recording the change if tracking is on.
func (t *Tree[T]) reinsert(idx int32, newAABB geom.AABB) {
	t.detachLeaf(idx)
	n := &t.nodes[idx]
	n.aabb = newAABB
	n.parent, n.left, n.right = nullIdx, nullIdx, nullIdx
	t.insertLeaf(idx)
	if t.tracking {
		t.updated.Set(n.object, idx)
	}
}

// UpdateOne recomputes obj's AABB under the reduction policy. If obj is
// not present, it is added.
func (t *Tree[T]) UpdateOne(obj T) {
	idx, ok := t.leaves.Get(obj)
	if !ok {
		t.Add(obj)
		return
	}
	t.refresh(idx)
}

// Update recomputes every stored object's AABB.
func (t *Tree[T]) Update() {
	t.leaves.Each(func(obj T, _ int32) bool {
		t.UpdateOne(obj)
		return true
	})
}

// Remove deletes obj, reporting whether it was present.
func (t *Tree[T]) Remove(obj T) bool {
	idx, ok := t.leaves.Get(obj)
	if !ok {
		return false
	}
	t.detachLeaf(idx)
	t.free(idx)
	t.leaves.Delete(obj)
	t.updated.Delete(obj)
	return true
}

// Clear empties the index.
func (t *Tree[T]) Clear() {
	t.root = nullIdx
	t.reset()
	t.leaves.Clear()
	t.updated.Clear()
}

// Contains reports whether obj is currently stored.
func (t *Tree[T]) Contains(obj T) bool {
	return t.leaves.Has(obj)
}

// Size returns the number of stored objects.
func (t *Tree[T]) Size() int {
	return t.leaves.Len()
}

// GetAABB returns obj's stored (expanded) AABB, or a freshly computed
// tight+expanded AABB (unstored) if obj is absent.
func (t *Tree[T]) GetAABB(obj T) geom.AABB {
	if idx, ok := t.leaves.Get(obj); ok {
		return t.nodes[idx].aabb
	}
	fresh := t.producer.Compute(obj)
	t.expansion.Expand(obj, &fresh)
	return fresh
}

// SupportsAABBExpansion reports true: the tree honors the injected
// AABBExpansionMethod.
func (t *Tree[T]) SupportsAABBExpansion() bool { return true }

// IsUpdateTrackingSupported reports true.
func (t *Tree[T]) IsUpdateTrackingSupported() bool { return true }

// IsUpdateTrackingEnabled reports whether tracking is currently on.
func (t *Tree[T]) IsUpdateTrackingEnabled() bool { return t.tracking }

// SetUpdateTrackingEnabled toggles tracking. Disabling clears the updated
// set; re-enabling starts accumulation fresh.
func (t *Tree[T]) SetUpdateTrackingEnabled(enabled bool) {
	t.tracking = enabled
	t.updated.Clear()
}

// SetUpdated marks obj as updated without recomputing its AABB.
func (t *Tree[T]) SetUpdated(obj T) {
	idx, ok := t.leaves.Get(obj)
	if !ok {
		return
	}
	if t.tracking {
		t.updated.Set(obj, idx)
	}
}

// IsUpdated reports whether obj is present and currently flagged as
// updated. If tracking is disabled, every stored object is conservatively
// reported as updated.
func (t *Tree[T]) IsUpdated(obj T) bool {
	if !t.Contains(obj) {
		return false
	}
	if !t.tracking {
		return true
	}
	return t.updated.Has(obj)
}

// ClearUpdates empties the updated set without changing the tracking flag.
func (t *Tree[T]) ClearUpdates() {
	t.updated.Clear()
}

// Shift translates every stored AABB, leaf and internal alike, by v. A
// flat scan of the arena touches every live node exactly once without
// recursion or an explicit stack, which is a simpler way to get the same
// "no stack" property a parent-pointer walk would give, since the arena
// is already a contiguous slice.
func (t *Tree[T]) Shift(v geom.Vec2) {
	for i := range t.nodes {
		if t.nodes[i].isFree() {
			continue
		}
		t.nodes[i].aabb = t.nodes[i].aabb.Translate(v)
	}
}

// Optimize rebuilds the tree from scratch, reinserting every leaf in
// descending-perimeter order into an empty tree. Repeated incremental
// insertion and removal can leave internal nodes with looser-than-ideal
// unions; a full rebuild restores tight bounds.
func (t *Tree[T]) Optimize() {
	if t.leaves.Len() == 0 {
		return
	}
	type item struct {
		idx   int32
		perim float64
	}
	items := make([]item, 0, t.leaves.Len())
	t.leaves.Each(func(_ T, idx int32) bool {
		items = append(items, item{idx: idx, perim: t.nodes[idx].aabb.Perimeter()})
		return true
	})
	sort.Slice(items, func(i, j int) bool { return items[i].perim > items[j].perim })

	for i := range t.nodes {
		if t.nodes[i].isFree() || t.isLeaf(int32(i)) {
			continue
		}
		t.free(int32(i))
	}
	t.root = nullIdx
	for _, it := range items {
		n := &t.nodes[it.idx]
		n.parent, n.left, n.right, n.height = nullIdx, nullIdx, nullIdx, 0
		t.insertLeaf(it.idx)
	}
}
