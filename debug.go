package ptrie

import (
	"fmt"
	"reflect"
	"sort"
)

// The helpers in this file render a trie for testing and debugging.
// They traverse a snapshot read-only and are not part of the lookup
// contract; in particular Walk's enumeration order is an artifact of
// the rendering, not an API for range scans.

// String renders the trie as nested braces, one child edge per line,
// with value nodes labeled. Edges are emitted in sorted order so the
// output is deterministic.
func (t Trie) String() string {
	if t.root == nil {
		return "{}\n"
	}
	return "{\n" + t.root.string("   ") + "}\n"
}

// Dump prints the trie to stdout.
func (t Trie) Dump() {
	fmt.Print(t.String())
}

func (n *node) string(indent string) string {
	res := ""
	if n.hasValue {
		res += fmt.Sprintf("%s= %v\n", indent, deref(n.value))
	}
	for _, edge := range n.sortedEdges() {
		child := n.children[edge]
		res += fmt.Sprintf("%s%q {", indent, edge)
		body := child.string(indent + "   ")
		if body == "" {
			res += "}\n"
			continue
		}
		res += "\n" + body + indent + "}\n"
	}
	return res
}

func (n *node) sortedEdges() []byte {
	edges := make([]byte, 0, len(n.children))
	for edge := range n.children {
		edges = append(edges, edge)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return edges
}

// Walk invokes f for every stored key and value, keys in byte order,
// for diagnostic traversal. The value passed to f is the stored value
// itself, not the erased pointer.
func (t Trie) Walk(f func(key string, value interface{})) {
	if t.root == nil {
		return
	}
	t.root.walk(nil, f)
}

func (n *node) walk(prefix []byte, f func(string, interface{})) {
	if n.hasValue {
		f(string(prefix), deref(n.value))
	}
	for _, edge := range n.sortedEdges() {
		n.children[edge].walk(append(prefix, edge), f)
	}
}

// deref unwraps the erased *T a value node carries.
func deref(value interface{}) interface{} {
	return reflect.ValueOf(value).Elem().Interface()
}
