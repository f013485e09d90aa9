package ptrie

// node is one unit of a trie: a branch table keyed by a single byte,
// plus an optional value payload. A node that has become reachable from
// a published Trie is never modified again; all mutation happens on
// fresh clones before they are linked into a new root.
type node struct {
	children map[byte]*node

	// value is an erased *T, set iff hasValue. The dynamic type of the
	// pointer is the runtime tag that Get[T] checks before returning it.
	hasValue bool
	value    interface{}
}

// clone returns a shallow copy of the node: the branch table is copied,
// the child nodes themselves stay shared with the original.
func (n *node) clone() *node {
	c := node{hasValue: n.hasValue, value: n.value}
	if len(n.children) > 0 {
		c.children = make(map[byte]*node, len(n.children))
		for b, child := range n.children {
			c.children[b] = child
		}
	}
	return &c
}

// setChild links a child into a node that is still private to the
// writer building it.
func (n *node) setChild(b byte, child *node) {
	if n.children == nil {
		n.children = map[byte]*node{}
	}
	n.children[b] = child
}

// empty reports whether the node holds neither a value nor any
// children, i.e. is prunable.
func (n *node) empty() bool {
	return len(n.children) == 0 && !n.hasValue
}
