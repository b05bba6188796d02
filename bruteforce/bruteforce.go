package bruteforce

import (
	"github.com/ivalabs/broadphase2d/broadphase"
	"github.com/ivalabs/broadphase2d/geom"
)

// Broadphase is the brute-force reference index. It always stores tight
// AABBs (no expansion support) and treats every detect call as a full
// scan (no update-tracking support): is_updated is always true.
type Broadphase[T comparable] struct {
	producer broadphase.AABBProducer[T]
	filter   broadphase.BroadphaseFilter[T]
	objects  *broadphase.OrderedMap[T, geom.AABB]
}

// New creates a Broadphase using producer to compute tight AABBs. Only
// broadphase.WithCapacity and broadphase.WithFilter have any effect here;
// expansion and update-tracking options are accepted (for Index[T]
// interchangeability with sap/dynamictree construction call sites) but
// ignored, since BruteForceBroadphase never expands boxes or tracks
// updates.
func New[T comparable](producer broadphase.AABBProducer[T], opts ...broadphase.Option[T]) *Broadphase[T] {
	cfg := broadphase.NewConfig(opts...)
	return &Broadphase[T]{
		producer: producer,
		filter:   cfg.Filter,
		objects:  broadphase.NewOrderedMap[T, geom.AABB](cfg.InitialCapacity),
	}
}

// Add computes and stores obj's tight AABB, overwriting any prior entry.
func (b *Broadphase[T]) Add(obj T) {
	b.objects.Set(obj, b.producer.Compute(obj))
}

// UpdateOne recomputes and stores obj's tight AABB. It is a synonym for
// Add: brute force has nothing to reuse from the previous box.
func (b *Broadphase[T]) UpdateOne(obj T) {
	b.Add(obj)
}

// Update recomputes every stored object's AABB from the producer.
func (b *Broadphase[T]) Update() {
	for _, k := range b.objects.Keys() {
		b.objects.Set(k, b.producer.Compute(k))
	}
}

// Remove deletes obj, reporting whether it was present.
func (b *Broadphase[T]) Remove(obj T) bool {
	return b.objects.Delete(obj)
}

// Clear empties the index.
func (b *Broadphase[T]) Clear() {
	b.objects.Clear()
}

// Contains reports whether obj is currently stored.
func (b *Broadphase[T]) Contains(obj T) bool {
	return b.objects.Has(obj)
}

// Size returns the number of stored objects.
func (b *Broadphase[T]) Size() int {
	return b.objects.Len()
}

// GetAABB returns obj's stored AABB, or a freshly computed one (unstored)
// if obj is absent.
func (b *Broadphase[T]) GetAABB(obj T) geom.AABB {
	if aabb, ok := b.objects.Get(obj); ok {
		return aabb
	}
	return b.producer.Compute(obj)
}

// SupportsAABBExpansion reports false: brute force never expands boxes.
func (b *Broadphase[T]) SupportsAABBExpansion() bool { return false }

// IsUpdateTrackingSupported reports false: every detect is a full scan.
func (b *Broadphase[T]) IsUpdateTrackingSupported() bool { return false }

// IsUpdateTrackingEnabled always reports false.
func (b *Broadphase[T]) IsUpdateTrackingEnabled() bool { return false }

// SetUpdateTrackingEnabled is a no-op: brute force cannot track updates.
func (b *Broadphase[T]) SetUpdateTrackingEnabled(bool) {}

// SetUpdated is a no-op for the same reason.
func (b *Broadphase[T]) SetUpdated(T) {}

// IsUpdated always reports true: brute force has no memory of past
// updates, so every stored object is conservatively "updated".
func (b *Broadphase[T]) IsUpdated(T) bool { return true }

// ClearUpdates is a no-op: there is no update set to clear.
func (b *Broadphase[T]) ClearUpdates() {}

// Shift translates every stored AABB by v.
func (b *Broadphase[T]) Shift(v geom.Vec2) {
	for _, k := range b.objects.Keys() {
		aabb, _ := b.objects.Get(k)
		b.objects.Set(k, aabb.Translate(v))
	}
}

// Optimize is a no-op: there is no tree shape to improve.
func (b *Broadphase[T]) Optimize() {}
