package postclient

import (
	"sync"
	"time"

	"github.com/bazarche/bazarche-backend/models"
)

// responseCache holds listing responses keyed by their encoded query
// parameters, each valid for a fixed staleness window. The resolvers stay
// cache-agnostic; only the client layer knows entries can be stale.
type responseCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	posts   []models.BlogPost
	total   int
	fetched time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *responseCache) get(key string) ([]models.BlogPost, int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || time.Since(entry.fetched) >= c.ttl {
		return nil, 0, false
	}
	// Hand out a copy so callers mutating the result cannot poison the
	// entry for later hits.
	posts := make([]models.BlogPost, len(entry.posts))
	copy(posts, entry.posts)
	return posts, entry.total, true
}

// put stores its own copy of posts; the caller keeps the slice it fetched.
func (c *responseCache) put(key string, posts []models.BlogPost, total int) {
	owned := make([]models.BlogPost, len(posts))
	copy(owned, posts)
	c.mu.Lock()
	c.entries[key] = cacheEntry{posts: owned, total: total, fetched: time.Now()}
	c.mu.Unlock()
}

func (c *responseCache) invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
