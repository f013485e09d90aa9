/*
Package ptrie provides an immutable, versioned character trie mapping
string keys to typed values, together with a multi-version store (MVCC)
that lets any number of readers traverse old snapshots while a single
writer builds the next one.

Uses

- Point lookups against a consistent snapshot, unaffected by concurrent
writers

- Cheap copy-on-write alternative to guarding a Go builtin map with a
mutex

- Keeping every historical version addressable by number


Tries and structural sharing

A Trie is a value: Put and Remove never modify the trie they are called
on, they return a new Trie whose nodes along the affected key path are
fresh clones while every unaffected subtree is shared, by reference,
with the input. Two tries built from a common ancestor therefore share
almost all of their nodes, and comparing roots for identity (Same) is
enough to detect that a mutation was a no-op.

Values are stored with their runtime type: Get[T] finds a value only if
the key is present and was stored as a T. A mismatched type is
indistinguishable from an absent key; neither is an error.


Concurrency

Published trie nodes are never mutated, so any number of goroutines may
traverse the same Trie, or different versions of it, without
synchronization. A Store serializes writers and keeps an append-only
sequence of snapshots, one per committed write, addressable by version
number. Readers take a shared lock only long enough to copy a snapshot
handle; all traversal happens lock-free afterward. A ValueGuard returned
from a lookup keeps its whole snapshot reachable, so the value reference
stays valid however many versions are committed afterward.


Inspiration

The persistent data structures of Clojure and Haskell, and the
copy-on-write tries storage engines use for snapshot isolation: the same
handful of tricks (path copying, shared subtrees, append-only version
lists) keep showing up because they make concurrent systems easy to
reason about.
*/
package ptrie
