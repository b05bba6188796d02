package dynamictree

// next implements the stackless "ascend while a right child, then step
// from the first left child reached to its right sibling" move used by
// every descent in this package:
// once the subtree rooted at cur is fully processed (pruned by a failed
// overlap test, or a leaf already visited), this returns the next node to
// examine in a pre-order walk, or nullIdx once the whole tree is
// exhausted. No explicit stack or recursion is needed because the arena
// stores parent links alongside child links.
func (t *Tree[T]) next(cur int32) int32 {
	p := t.nodes[cur].parent
	for p != nullIdx {
		if t.nodes[p].left == cur {
			return t.nodes[p].right
		}
		cur = p
		p = t.nodes[cur].parent
	}
	return nullIdx
}
