package ptrie

import "sync"

// Store is a thread-safe, multi-version wrapper around Trie. Every
// committed write appends a snapshot to an append-only sequence whose
// index is the version number; version 0 is the empty trie. Snapshots
// are never replaced or removed, so a version number stays valid for
// the life of the store. Any number of readers may run concurrently
// with each other and with the single in-flight writer.
type Store struct {
	// writeMu serializes Put/Remove end to end, so concurrent writers
	// commit in some total order with no lost updates.
	writeMu sync.Mutex

	// mu guards only the snapshot sequence: shared to copy a handle or
	// read the length, exclusive for the O(1) append. Path cloning and
	// key traversal run with no lock held.
	mu        sync.RWMutex
	snapshots []Trie

	cache LookupCache
}

// ValueGuard couples a value reference with the snapshot it was found
// in. The guard's hold on the snapshot keeps the whole node chain, and
// therefore the referenced value, reachable for the guard's lifetime,
// independent of any versions committed afterward and of the store
// itself.
type ValueGuard[T any] struct {
	snapshot Trie
	value    *T
}

// Value returns the guarded value reference. It stays valid as long as
// the guard is reachable.
func (g ValueGuard[T]) Value() *T {
	return g.value
}

// Snapshot returns the trie version the value was found in.
func (g ValueGuard[T]) Snapshot() Trie {
	return g.snapshot
}

// NewStore returns a store holding the empty trie as version 0.
func NewStore() *Store {
	return &Store{snapshots: []Trie{{}}}
}

// NewStoreWithCache is NewStore with a cache consulted by StoreGetAt.
// The cache only ever holds results for pinned versions, which are
// immutable, so hits can never be stale.
func NewStoreWithCache(cache LookupCache) *Store {
	s := NewStore()
	s.cache = cache
	return s
}

// Version returns the newest version number.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.snapshots) - 1)
}

// latest copies out the newest snapshot handle and its version.
func (s *Store) latest() (Trie, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	version := uint64(len(s.snapshots) - 1)
	return s.snapshots[version], version
}

// snapshotAt copies out the handle for version, reporting false if the
// version has not been committed.
func (s *Store) snapshotAt(version uint64) (Trie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if version >= uint64(len(s.snapshots)) {
		return Trie{}, false
	}
	return s.snapshots[version], true
}

// append publishes a new snapshot and returns its version. New versions
// become visible to readers only once the append completes.
func (s *Store) append(t Trie) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, t)
	return uint64(len(s.snapshots) - 1)
}

// StoreGet finds key in the newest snapshot. The snapshot is chosen at
// the moment the handle is copied; a write committing afterward does
// not affect the result. Absence and a stored type other than T both
// report false.
func StoreGet[T any](s *Store, key string) (ValueGuard[T], bool) {
	snapshot, _ := s.latest()
	return guardFor[T](snapshot, key)
}

// StoreGetAt finds key in the snapshot numbered version. A version that
// has not been committed reports false, same as an absent key.
func StoreGetAt[T any](s *Store, key string, version uint64) (ValueGuard[T], bool) {
	snapshot, ok := s.snapshotAt(version)
	if !ok {
		return ValueGuard[T]{}, false
	}
	if s.cache != nil {
		if cached, ok := s.cache.Get(lookupKey{version, key}); ok {
			value, ok := cached.(*T)
			if !ok {
				return ValueGuard[T]{}, false
			}
			return ValueGuard[T]{snapshot: snapshot, value: value}, true
		}
	}
	guard, ok := guardFor[T](snapshot, key)
	if ok && s.cache != nil {
		s.cache.Add(lookupKey{version, key}, guard.value)
	}
	return guard, ok
}

// StorePut inserts or overwrites key in a new snapshot and returns the
// new version number. At most one StorePut/Remove executes at a time
// across the store; the expensive path cloning happens outside the
// snapshot lock.
func StorePut[T any](s *Store, key string, value T) uint64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	// Safe without the shared lock: only the writer token holder can
	// grow the sequence, and existing entries never change.
	current := s.snapshots[len(s.snapshots)-1]
	return s.append(Put(current, key, value))
}

// Remove deletes key in a new snapshot and returns the new version
// number. Removing an absent key is a no-op and returns the current
// version unchanged; no version number is spent on it.
func (s *Store) Remove(key string) uint64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	current := s.snapshots[len(s.snapshots)-1]
	next := current.Remove(key)
	if next.Same(current) {
		return uint64(len(s.snapshots) - 1)
	}
	return s.append(next)
}

func guardFor[T any](snapshot Trie, key string) (ValueGuard[T], bool) {
	value, ok := Get[T](snapshot, key)
	if !ok {
		return ValueGuard[T]{}, false
	}
	return ValueGuard[T]{snapshot: snapshot, value: value}, true
}
