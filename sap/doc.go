// Package sap implements the sweep-and-prune broad-phase index: proxies
// ordered in an avltree.Tree by (aabb.MinX, aabb.MinY, aabb.MaxX, aabb.MaxY,
// hash(object)), with an auxiliary map for O(1) object-to-proxy lookup and
// an insertion-ordered update-tracking set.
package sap
