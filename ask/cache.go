package ask

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// DefaultCacheSize is the number of answers kept by NewCache.
const DefaultCacheSize = 50

// Cache is a bounded, concurrency-safe map from question to answer.
// The least recently used entry is evicted once the capacity is reached.
// Entries belong to one catalog; binding a different catalog drops them.
type Cache struct {
	mu        sync.Mutex
	lru       *lru.Cache
	catalogID string

	// OnEvicted, if set, is called with the question of every evicted entry.
	OnEvicted func(question string)
}

// NewCache creates a Cache holding at most size answers.
// A size below 1 uses DefaultCacheSize.
func NewCache(size int) *Cache {
	if size < 1 {
		size = DefaultCacheSize
	}
	c := &Cache{lru: lru.New(size)}
	c.lru.OnEvicted = func(key lru.Key, _ interface{}) {
		if c.OnEvicted != nil {
			c.OnEvicted(key.(string))
		}
	}
	return c
}

// Get returns the cached answer for question.
func (c *Cache) Get(question string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Get(question)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Add stores answer for question, evicting the oldest entry when full.
func (c *Cache) Add(question, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(question, answer)
}

// Bind ties the cache to the catalog with the given ID. If the cache held
// answers for another catalog they are evicted and Bind returns true.
func (c *Cache) Bind(catalogID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.catalogID == catalogID {
		return false
	}
	c.catalogID = catalogID
	c.lru.Clear()
	return true
}

// AddIfBound stores answer only if the cache is still bound to catalogID,
// so an answer computed from a replaced catalog is discarded.
func (c *Cache) AddIfBound(catalogID, question, answer string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.catalogID != catalogID {
		return false
	}
	c.lru.Add(question, answer)
	return true
}

// Len returns the number of cached answers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Cap returns the maximum number of cached answers.
func (c *Cache) Cap() int {
	return c.lru.MaxEntries
}
