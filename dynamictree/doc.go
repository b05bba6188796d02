// Package dynamictree implements the dynamic AABB tree broad-phase index:
// an incremental, self-balancing binary tree whose internal nodes hold the
// union AABB of their descendants, built with a perimeter-based surface
// area heuristic. It is the most intricate component of this module:
// insertion descent, single-step balancing, arena-backed node storage
// with parent/child links as integer indices, stackless traversal for
// detect/raycast, and the AABB-reduction update policy shared with sap.
package dynamictree
