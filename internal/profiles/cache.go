package profiles

import "sync"

// CacheKey identifies one cached profile list.
type CacheKey struct {
	Path  string
	Order Order
}

// LoaderFunc produces a fresh profile list for a cache miss.
type LoaderFunc func() ([]Profile, error)

// Cache remembers the last successful load per key for the lifetime of the
// process. It has no TTL; entries go away only through Invalidate.
type Cache struct {
	mu      sync.RWMutex
	entries map[CacheKey][]Profile
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[CacheKey][]Profile)}
}

// Get returns the cached list for key.
func (c *Cache) Get(key CacheKey) ([]Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list, ok := c.entries[key]
	return list, ok
}

// GetOrLoad returns the cached list for key, calling loader only on a miss.
// A failed load returns an empty list plus the loader's error and leaves the
// cache untouched.
func (c *Cache) GetOrLoad(key CacheKey, loader LoaderFunc) ([]Profile, bool, error) {
	if list, ok := c.Get(key); ok {
		return list, true, nil
	}
	list, err := loader()
	if err != nil {
		return []Profile{}, false, err
	}
	if list == nil {
		list = []Profile{}
	}
	c.mu.Lock()
	c.entries[key] = list
	c.mu.Unlock()
	return list, false, nil
}

// Invalidate drops the entry for key.
func (c *Cache) Invalidate(key CacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
