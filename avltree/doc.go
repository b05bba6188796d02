// Package avltree implements a generic, self-balancing AVL tree ordered by
// an injected Less function. It backs sap.SweepAndPrune's proxy ordering,
// but has no broad-phase-specific knowledge of its own: it is a standalone
// ordered container, tested independently of the algorithm that drives
// it.
//
// Duplicate keys (by Less) are rejected by Insert; callers that need
// uniqueness under a partial order (as sap does) tie-break their key so no
// two stored values compare equal in both directions.
package avltree
