package progression

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// characterCache is a read-through LRU of committed characters.
// Entries are cloned on the way in and out. Writers only invalidate; reads
// fill the cache, and a fill is dropped when any invalidation happened after
// the read began.
type characterCache struct {
	mu  sync.Mutex
	gen uint64
	lru *expirable.LRU[string, *domain.Character]
}

func newCharacterCache(size int, ttl time.Duration) *characterCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &characterCache{
		lru: expirable.NewLRU[string, *domain.Character](size, nil, ttl),
	}
}

func (c *characterCache) Get(id string) (*domain.Character, bool) {
	cached, ok := c.lru.Get(id)
	if !ok {
		return nil, false
	}
	return cached.Clone(), true
}

// Generation returns the token a reader takes before loading from storage
func (c *characterCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Fill stores ch unless the cache was invalidated since gen was taken
func (c *characterCache) Fill(ch *domain.Character, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.lru.Add(ch.ID, ch.Clone())
	return true
}

func (c *characterCache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.lru.Remove(id)
}

func (c *characterCache) Len() int {
	return c.lru.Len()
}
