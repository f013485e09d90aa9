package ptrie

import lru "github.com/hashicorp/golang-lru"

// LookupCache caches the results of pinned-version lookups. Committed
// versions are immutable, so an entry keyed by (version, key) can never
// go stale; the cache only short-circuits repeated traversals of the
// same snapshot. One cache should serve a single Store, since versions
// from different stores would collide.
type LookupCache interface {
	// Add records the value found for a (version, key) pair.
	Add(key, value interface{})
	// Get retrieves a previously recorded value, if cached.
	Get(key interface{}) (value interface{}, ok bool)
}

type lookupKey struct {
	version uint64
	key     string
}

// NewLookupCache creates a new LRU-based lookup cache of the given
// size.
func NewLookupCache(size int) LookupCache {
	cache, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return cache
}
