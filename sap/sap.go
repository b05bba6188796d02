package sap

import (
	"github.com/ivalabs/broadphase2d/avltree"
	"github.com/ivalabs/broadphase2d/broadphase"
	"github.com/ivalabs/broadphase2d/geom"
)

// Hash computes a stable hash for an object, used as the primary
// tie-breaker in proxy ordering: proxies are ordered by
// (aabb.MinX, aabb.MinY, aabb.MaxX, aabb.MaxY, hash(object)).
// Hash must be stable for the lifetime an object resides in the index.
type Hash[T any] func(obj T) uint64

// SweepAndPrune is the sweep-and-prune broad-phase index.
type SweepAndPrune[T comparable] struct {
	producer  broadphase.AABBProducer[T]
	expansion broadphase.AABBExpansionMethod[T]
	filter    broadphase.BroadphaseFilter[T]
	hash      Hash[T]

	tree     *avltree.Tree[*proxy[T]]
	nodes    map[T]*proxy[T]
	updated  *broadphase.OrderedMap[T, *proxy[T]]
	tracking bool
	nextSeq  uint64
}

// New creates a SweepAndPrune using producer to compute tight AABBs and
// hash to break ties in proxy ordering. By default proxies are stored at
// their tight AABB (no expansion) and update tracking is disabled;
// override with broadphase.WithExpansion / broadphase.WithUpdateTracking.
func New[T comparable](producer broadphase.AABBProducer[T], hash Hash[T], opts ...broadphase.Option[T]) *SweepAndPrune[T] {
	cfg := broadphase.NewConfig(opts...)
	s := &SweepAndPrune[T]{
		producer:  producer,
		expansion: cfg.Expansion,
		filter:    cfg.Filter,
		hash:      hash,
		nodes:     make(map[T]*proxy[T], cfg.InitialCapacity),
		updated:   broadphase.NewOrderedMap[T, *proxy[T]](cfg.InitialCapacity),
		tracking:  cfg.UpdateTrackingEnabled,
	}
	s.tree = avltree.New(s.less)
	return s
}

// less orders proxies by (MinX, MinY, MaxX, MaxY, hash(object), seq). seq
// is an insertion-sequence tie-breaker beyond the hash tie-break, so a
// hash collision between two distinct live objects can never make Insert
// silently reject the second proxy as a "duplicate" key.
func (s *SweepAndPrune[T]) less(a, b *proxy[T]) bool {
	if a.aabb.MinX != b.aabb.MinX {
		return a.aabb.MinX < b.aabb.MinX
	}
	if a.aabb.MinY != b.aabb.MinY {
		return a.aabb.MinY < b.aabb.MinY
	}
	if a.aabb.MaxX != b.aabb.MaxX {
		return a.aabb.MaxX < b.aabb.MaxX
	}
	if a.aabb.MaxY != b.aabb.MaxY {
		return a.aabb.MaxY < b.aabb.MaxY
	}
	ha, hb := s.hash(a.object), s.hash(b.object)
	if ha != hb {
		return ha < hb
	}
	return a.seq < b.seq
}

// Add inserts obj, or routes to UpdateOne if it is already present.
func (s *SweepAndPrune[T]) Add(obj T) {
	if p, ok := s.nodes[obj]; ok {
		s.refresh(p)
		return
	}
	tight := s.producer.Compute(obj)
	expanded := tight
	s.expansion.Expand(obj, &expanded)
	p := &proxy[T]{object: obj, aabb: expanded, seq: s.nextSeq}
	s.nextSeq++
	p.handle = s.tree.Insert(p)
	s.nodes[obj] = p
	if s.tracking {
		s.updated.Set(obj, p)
	}
}

// refresh recomputes obj's tight AABB and applies the reduction policy,
// used by both Add (when obj is already present) and UpdateOne.
func (s *SweepAndPrune[T]) refresh(p *proxy[T]) {
	var tight geom.AABB
	s.producer.ComputeInto(p.object, &tight)
	old := p.aabb

	if old.Contains(tight) {
		candidate := tight
		s.expansion.Expand(p.object, &candidate)
		cp := candidate.Perimeter()
		if cp > 0 && old.Perimeter()/cp <= broadphase.AABBReductionRatio {
			return
		}
		s.reinsert(p, candidate)
		return
	}

	expanded := tight
	s.expansion.Expand(p.object, &expanded)
	s.reinsert(p, expanded)
}

// reinsert removes p from the tree, overwrites its AABB, and reinserts it
// at its new ordering position, recording the change if tracking is on.
func (s *SweepAndPrune[T]) reinsert(p *proxy[T], newAABB geom.AABB) {
	s.tree.Remove(p.handle)
	p.aabb = newAABB
	p.handle = s.tree.Insert(p)
	if s.tracking {
		s.updated.Set(p.object, p)
	}
}

// UpdateOne recomputes obj's AABB under the reduction policy.
// If obj is not present, it is added.
func (s *SweepAndPrune[T]) UpdateOne(obj T) {
	p, ok := s.nodes[obj]
	if !ok {
		s.Add(obj)
		return
	}
	s.refresh(p)
}

// Update recomputes every stored object's AABB.
func (s *SweepAndPrune[T]) Update() {
	for obj := range s.nodes {
		s.UpdateOne(obj)
	}
}

// Remove deletes obj, reporting whether it was present.
func (s *SweepAndPrune[T]) Remove(obj T) bool {
	p, ok := s.nodes[obj]
	if !ok {
		return false
	}
	delete(s.nodes, obj)
	s.updated.Delete(obj)
	s.tree.Remove(p.handle)
	return true
}

// Clear empties the index.
func (s *SweepAndPrune[T]) Clear() {
	s.tree.Clear()
	s.nodes = make(map[T]*proxy[T], len(s.nodes))
	s.updated.Clear()
}

// Contains reports whether obj is currently stored.
func (s *SweepAndPrune[T]) Contains(obj T) bool {
	_, ok := s.nodes[obj]
	return ok
}

// Size returns the number of stored objects.
func (s *SweepAndPrune[T]) Size() int {
	return len(s.nodes)
}

// GetAABB returns obj's stored (expanded) AABB, or a freshly computed
// tight+expanded AABB (unstored) if obj is absent.
func (s *SweepAndPrune[T]) GetAABB(obj T) geom.AABB {
	if p, ok := s.nodes[obj]; ok {
		return p.aabb
	}
	fresh := s.producer.Compute(obj)
	s.expansion.Expand(obj, &fresh)
	return fresh
}

// SupportsAABBExpansion reports true: sap honors the injected
// AABBExpansionMethod.
func (s *SweepAndPrune[T]) SupportsAABBExpansion() bool { return true }

// IsUpdateTrackingSupported reports true.
func (s *SweepAndPrune[T]) IsUpdateTrackingSupported() bool { return true }

// IsUpdateTrackingEnabled reports whether tracking is currently on.
func (s *SweepAndPrune[T]) IsUpdateTrackingEnabled() bool { return s.tracking }

// SetUpdateTrackingEnabled toggles tracking. Disabling clears the updated
// set; re-enabling starts accumulation fresh.
func (s *SweepAndPrune[T]) SetUpdateTrackingEnabled(enabled bool) {
	s.tracking = enabled
	s.updated.Clear()
}

// SetUpdated marks obj as updated without recomputing its AABB.
func (s *SweepAndPrune[T]) SetUpdated(obj T) {
	p, ok := s.nodes[obj]
	if !ok {
		return
	}
	if s.tracking {
		s.updated.Set(obj, p)
	}
}

// IsUpdated reports whether obj is present and currently flagged as
// updated. If tracking is disabled, every stored object is conservatively
// reported as updated.
func (s *SweepAndPrune[T]) IsUpdated(obj T) bool {
	if !s.Contains(obj) {
		return false
	}
	if !s.tracking {
		return true
	}
	return s.updated.Has(obj)
}

// ClearUpdates empties the updated set without changing the tracking flag.
func (s *SweepAndPrune[T]) ClearUpdates() {
	s.updated.Clear()
}

// Shift translates every proxy's AABB by v. Because every key changes by
// the same vector, relative tree order is preserved and no restructuring
// is needed.
func (s *SweepAndPrune[T]) Shift(v geom.Vec2) {
	for _, p := range s.nodes {
		p.aabb = p.aabb.Translate(v)
	}
}

// Optimize is a no-op: an AVL tree stays balanced incrementally, so sap
// has no batch rebuild to perform.
func (s *SweepAndPrune[T]) Optimize() {}
