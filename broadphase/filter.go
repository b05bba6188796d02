package broadphase

// BroadphaseFilter reports whether a candidate pair (a,b) is allowed to be
// reported by detect. Every generic index (bruteforce, sap, dynamictree)
// consults the injected filter universally; none hard-codes
// same-body/composite-object logic, so that policy is entirely pluggable;
// that logic lives in BodyFilter below, supplied by callers whose T
// happens to be a composite (body + fixture) type.
type BroadphaseFilter[T any] interface {
	IsAllowed(a, b T) bool
}

// RejectIdentity is the minimal filter: reject a pair only when a and b
// are literally the same object. Suitable for any comparable T.
type RejectIdentity[T comparable] struct{}

// IsAllowed implements BroadphaseFilter.
func (RejectIdentity[T]) IsAllowed(a, b T) bool {
	return a != b
}

// BodiedObject is satisfied by composite objects (e.g. a fixture attached
// to a rigid body) that can report the identity of their owning body.
type BodiedObject[B comparable] interface {
	BodyID() B
}

// BodyFilter rejects identity pairs and pairs whose objects share the same
// owning body, the canonical filter for "body with fixtures" broad-phase
// objects.
type BodyFilter[T BodiedObject[B], B comparable] struct{}

// IsAllowed implements BroadphaseFilter.
func (BodyFilter[T, B]) IsAllowed(a, b T) bool {
	return a.BodyID() != b.BodyID()
}

// FuncFilter adapts a plain function into a BroadphaseFilter.
type FuncFilter[T any] func(a, b T) bool

// IsAllowed implements BroadphaseFilter.
func (f FuncFilter[T]) IsAllowed(a, b T) bool { return f(a, b) }
