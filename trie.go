package ptrie

// Trie is an immutable map from string keys to typed values, one byte
// per edge. The zero Trie is the canonical empty trie. Get never
// mutates; Put and Remove return a new Trie built by cloning only the
// nodes along the affected key path, sharing every other subtree with
// the input. Tries are safe for concurrent use without synchronization.
type Trie struct {
	root *node
}

// pathEntry records a cloned parent and the edge taken out of it, so
// the path can be relinked bottom-up after the landing node is rebuilt.
type pathEntry struct {
	parent *node
	edge   byte
}

// New returns an empty trie. The zero value is equivalent.
func New() Trie {
	return Trie{}
}

// Same reports whether two tries share the same root node. Mutating
// operations return a Trie for which Same(input) holds iff the
// operation was a no-op; deep structural equality is never computed.
func (t Trie) Same(other Trie) bool {
	return t.root == other.root
}

// Get returns the value stored for key, if key is present and was
// stored as a T. An absent key, a key that only exists as a prefix of
// other keys, and a stored value of a different type all report
// (nil, false); none of them is an error. The returned pointer refers
// into the trie and must not be written through.
func Get[T any](t Trie, key string) (*T, bool) {
	cur := t.root
	if cur == nil {
		return nil, false
	}
	for i := 0; i < len(key); i++ {
		next, ok := cur.children[key[i]]
		if !ok {
			return nil, false
		}
		cur = next
	}
	if !cur.hasValue {
		return nil, false
	}
	v, ok := cur.value.(*T)
	if !ok {
		// stored under a different type; indistinguishable from absent
		return nil, false
	}
	return v, true
}

// Put returns a new trie in which key maps to value, overwriting any
// previous value at that exact key. Nodes along the key path are fresh
// clones; everything off the path is shared with t. Keys for which key
// is a strict prefix are preserved, since the new value node carries
// the landing node's children.
func Put[T any](t Trie, key string, value T) Trie {
	var cur *node
	if t.root != nil {
		cur = t.root.clone()
	} else {
		cur = &node{}
	}
	path := make([]pathEntry, 0, len(key))
	for i := 0; i < len(key); i++ {
		edge := key[i]
		path = append(path, pathEntry{cur, edge})
		if child, ok := cur.children[edge]; ok {
			cur = child.clone()
		} else {
			cur = &node{}
		}
	}
	cur = &node{children: cur.children, hasValue: true, value: &value}
	for i := len(path) - 1; i >= 0; i-- {
		entry := path[i]
		entry.parent.setChild(entry.edge, cur)
		cur = entry.parent
	}
	return Trie{root: cur}
}

// Remove returns a trie without key. If key is not present, the input
// trie is returned unchanged (Same(t) holds), which is how callers
// detect the no-op. Nodes left with no value and no children are pruned
// on the way back up; a node whose value is removed but that still
// branches to longer keys is kept.
func (t Trie) Remove(key string) Trie {
	if t.root == nil {
		return t
	}
	newRoot := t.root.clone()
	cur := newRoot
	path := make([]pathEntry, 0, len(key))
	for i := 0; i < len(key); i++ {
		edge := key[i]
		child, ok := cur.children[edge]
		if !ok {
			return t
		}
		cloned := child.clone()
		cur.children[edge] = cloned
		path = append(path, pathEntry{cur, edge})
		cur = cloned
	}
	if !cur.hasValue {
		return t
	}
	cur.hasValue = false
	cur.value = nil
	// Parents already point at their clones; unwinding only prunes.
	for i := len(path) - 1; i >= 0; i-- {
		entry := path[i]
		if cur.empty() {
			delete(entry.parent.children, entry.edge)
		}
		cur = entry.parent
	}
	if newRoot.empty() {
		return Trie{}
	}
	return Trie{root: newRoot}
}
