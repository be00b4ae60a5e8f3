package cache

import (
	"sync"
	"time"

	"github.com/pkgview/pkgview/registry"
)

// DefaultPackumentTTL bounds how long a cached packument is served before
// the registry is consulted again for new publishes.
const DefaultPackumentTTL = 5 * time.Minute

// DefaultTarballCacheBytes is the byte budget for the in-memory tarball
// cache. npm tarballs run to low tens of megabytes, so this holds a
// handful of packages.
const DefaultTarballCacheBytes = 256 << 20

type packumentEntry struct {
	doc     *registry.Packument
	expires time.Time
}

// MemoryPackumentCache is an in-memory TTL cache for packuments.
// It is safe for concurrent use.
type MemoryPackumentCache struct {
	mu      sync.RWMutex
	entries map[string]packumentEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryPackumentCache creates a packument cache with the given TTL.
// A non-positive ttl falls back to [DefaultPackumentTTL].
func NewMemoryPackumentCache(ttl time.Duration) *MemoryPackumentCache {
	if ttl <= 0 {
		ttl = DefaultPackumentTTL
	}
	return &MemoryPackumentCache{
		entries: make(map[string]packumentEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached packument for name if it has not expired.
func (c *MemoryPackumentCache) Get(name string) (*registry.Packument, bool) {
	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return nil, false
	}
	return entry.doc, true
}

// Put caches doc under name for the configured TTL.
func (c *MemoryPackumentCache) Put(name string, doc *registry.Packument) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = packumentEntry{doc: doc, expires: c.now().Add(c.ttl)}
}

// Delete removes a cached packument.
func (c *MemoryPackumentCache) Delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
}

type tarballEntry struct {
	data []byte
	used time.Time
}

// MemoryTarballCache is an in-memory tarball cache bounded by total bytes.
// When the budget is exceeded, least recently used entries are evicted.
// It is safe for concurrent use.
type MemoryTarballCache struct {
	mu       sync.Mutex
	entries  map[string]tarballEntry
	size     int64
	maxBytes int64
	now      func() time.Time
}

// NewMemoryTarballCache creates a tarball cache holding at most maxBytes.
// A non-positive maxBytes falls back to [DefaultTarballCacheBytes].
func NewMemoryTarballCache(maxBytes int64) *MemoryTarballCache {
	if maxBytes <= 0 {
		maxBytes = DefaultTarballCacheBytes
	}
	return &MemoryTarballCache{
		entries:  make(map[string]tarballEntry),
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// Get returns the cached bytes for url and marks the entry as used.
func (c *MemoryTarballCache) Get(url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[url]
	if !ok {
		return nil, false
	}
	entry.used = c.now()
	c.entries[url] = entry
	return entry.data, true
}

// Put caches data by URL, evicting least recently used entries until the
// cache fits its byte budget. Entries larger than the whole budget are
// not cached.
func (c *MemoryTarballCache) Put(url string, data []byte) {
	if int64(len(data)) > c.maxBytes {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[url]; ok {
		c.size -= int64(len(old.data))
	}
	c.entries[url] = tarballEntry{data: data, used: c.now()}
	c.size += int64(len(data))

	for c.size > c.maxBytes {
		c.evictOldestLocked()
	}
}

// SizeBytes returns the current cache size in bytes.
func (c *MemoryTarballCache) SizeBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *MemoryTarballCache) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, entry := range c.entries {
		if !found || entry.used.Before(oldest) {
			oldestKey, oldest, found = key, entry.used, true
		}
	}
	if !found {
		return
	}
	c.size -= int64(len(c.entries[oldestKey].data))
	delete(c.entries, oldestKey)
}
