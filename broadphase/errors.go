package broadphase

import "errors"

// Sentinel errors for broad-phase operations. See doc.go for the three
// kinds this package surfaces; everything else is total (see the Remove
// and GetAABB doc comments of each index package for the "absent key"
// behaviors).
var (
	// ErrInvalidArgument indicates a null/absent object handle where one
	// is prohibited, or a negative capacity hint.
	ErrInvalidArgument = errors.New("broadphase: invalid argument")

	// ErrUnsupportedOperation indicates a capability the index advertises
	// as unsupported. It is returned by Remove on every detection
	// iterator. BruteForceBroadphase does not return it: it reports its
	// missing expansion and update-tracking support through
	// SupportsAABBExpansion and IsUpdateTrackingSupported, ignores
	// expansion and update-tracking options, and treats the tracking
	// setters as no-ops.
	ErrUnsupportedOperation = errors.New("broadphase: unsupported operation")

	// ErrIteratorExhausted indicates Next was called past the end of an
	// iterator.
	ErrIteratorExhausted = errors.New("broadphase: iterator exhausted")
)
