// File path: internal/recommend/cache.go
package recommend

import (
	"fmt"
	"sync"
	"time"

	"github.com/dkoushik/prepwell/internal/question"
)

// DefaultCacheTTL bounds how long a generated batch is reused before the
// external generator is consulted again.
const DefaultCacheTTL = time.Hour

type cacheEntry struct {
	questions []question.Question
	createdAt time.Time
}

// Cache is a TTL keyed store of generated question batches, keyed by
// (source id, requested count). Entries are evicted lazily on lookup; there
// is no background sweep. The cache is process-local by design: it exists to
// absorb repeat external calls inside a session window, not to be a source of
// truth.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCache constructs a cache with the given TTL; non-positive values fall
// back to DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func cacheKey(sourceID string, count int) string {
	return fmt.Sprintf("%s:%d", sourceID, count)
}

// Get returns the cached batch for (sourceID, count) if it has not expired.
// Expired entries are removed on the way out.
func (c *Cache) Get(sourceID string, count int) ([]question.Question, bool) {
	if c == nil {
		return nil, false
	}
	key := cacheKey(sourceID, count)
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.createdAt) >= c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	out := make([]question.Question, len(entry.questions))
	copy(out, entry.questions)
	return out, true
}

// Put stores a batch under (sourceID, count), overwriting any existing entry.
func (c *Cache) Put(sourceID string, count int, questions []question.Question) {
	if c == nil {
		return
	}
	stored := make([]question.Question, len(questions))
	copy(stored, questions)
	c.mu.Lock()
	c.entries[cacheKey(sourceID, count)] = cacheEntry{questions: stored, createdAt: c.now()}
	c.mu.Unlock()
}

// Len reports the number of live entries, counting expired ones until their
// next lookup.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
