// Package geom provides the minimal 2D geometric primitives consumed by
// the broadphase packages: vectors, axis-aligned bounding rectangles,
// rays, and rigid transforms.
//
// These are pure data types with pure functions; nothing here knows about
// broad-phase indices, proxies, or trees.
package geom
