// Package broadphase defines the contracts shared by every broad-phase
// spatial index in this module: AABB production, AABB expansion, pair
// filtering, update tracking, and the ray/AABB slab test.
//
// A broad-phase index enumerates candidate pairs of objects whose AABBs
// may overlap, cheaply enough that an expensive narrow-phase only ever
// examines plausible pairs. This package holds the capability set
// (AABBProducer, AABBExpansionMethod, BroadphaseFilter) and the Index[T]
// interface that bruteforce.Broadphase, sap.SweepAndPrune, and
// dynamictree.Tree all implement, so callers can swap the underlying
// index without changing call sites.
//
// Errors:
//
//	ErrInvalidArgument     - a precondition on an argument was violated.
//	ErrUnsupportedOperation - the index does not support the requested capability.
//	ErrIteratorExhausted   - Next was called after the iterator was drained.
package broadphase
