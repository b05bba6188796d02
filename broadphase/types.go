package broadphase

// Tuning constants shared by every index implementation.
const (
	// DefaultInitialCapacity sizes the backing maps/arenas of a freshly
	// constructed index when the caller does not supply a capacity hint.
	DefaultInitialCapacity = 64

	// AABBReductionRatio bounds how much slack an oversized stored AABB
	// may retain before Update rewrites it. If the old stored (expanded)
	// AABB's perimeter is no more than this many times the freshly
	// expanded tight AABB's perimeter, Update leaves the stored box
	// untouched. Used by sap and dynamictree.
	AABBReductionRatio = 2.0

	// DefaultExpansionMargin is the fixed margin used by the canonical
	// FixedMarginExpansion.
	DefaultExpansionMargin = 0.2
)

// Pair is an unordered candidate pair of objects emitted by detect. A and B
// are mutable and reused across iterator steps; callers that retain a Pair
// beyond one step must copy it.
type Pair[T any] struct {
	A, B T
}

// Option configures an index at construction time.
type Option[T any] struct {
	apply func(*Config[T])
}

// Config holds the resolved construction-time settings for an index. Index
// constructors obtain it from NewConfig, which starts from the defaults
// (NoExpansion, RejectIdentity, DefaultInitialCapacity) and then folds in
// the caller's Options.
type Config[T any] struct {
	InitialCapacity       int
	Expansion             AABBExpansionMethod[T]
	Filter                BroadphaseFilter[T]
	UpdateTrackingEnabled bool
}

// WithCapacity hints the initial size of the index's backing storage.
func WithCapacity[T any](n int) Option[T] {
	return Option[T]{apply: func(c *Config[T]) { c.InitialCapacity = n }}
}

// WithExpansion overrides the default AABB expansion method.
func WithExpansion[T any](m AABBExpansionMethod[T]) Option[T] {
	return Option[T]{apply: func(c *Config[T]) { c.Expansion = m }}
}

// WithFilter overrides the default pair filter.
func WithFilter[T any](f BroadphaseFilter[T]) Option[T] {
	return Option[T]{apply: func(c *Config[T]) { c.Filter = f }}
}

// WithUpdateTracking sets the initial update-tracking flag.
func WithUpdateTracking[T any](enabled bool) Option[T] {
	return Option[T]{apply: func(c *Config[T]) { c.UpdateTrackingEnabled = enabled }}
}

// NewConfig resolves opts against sane defaults: no expansion, an
// identity-rejecting filter, DefaultInitialCapacity, tracking disabled.
func NewConfig[T comparable](opts ...Option[T]) Config[T] {
	cfg := Config[T]{
		InitialCapacity: DefaultInitialCapacity,
		Expansion:       NoExpansion[T]{},
		Filter:          RejectIdentity[T]{},
	}
	for _, o := range opts {
		o.apply(&cfg)
	}
	return cfg
}
