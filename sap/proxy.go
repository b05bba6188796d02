package sap

import (
	"github.com/ivalabs/broadphase2d/avltree"
	"github.com/ivalabs/broadphase2d/geom"
)

// proxy pairs an object with its own mutable, owned AABB and the handle
// into the ordering tree that the proxy currently occupies.
type proxy[T comparable] struct {
	object T
	aabb   geom.AABB
	seq    uint64 // tie-breaker of last resort, see less in sap.go
	handle *avltree.Node[*proxy[T]]
}
