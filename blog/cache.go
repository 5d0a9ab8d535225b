package blog

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type cacheRecord struct {
	value   any
	fetched time.Time
}

// Cache is an in-memory response cache with TTL-based expiry. Entries are
// served until they are ttl old; a background loop drops stale ones.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheRecord
	ttl     time.Duration
	now     func() time.Time
	stopCh  chan struct{}
	stop    sync.Once
}

// NewCache creates a cache and starts its cleanup loop
func NewCache(ttl time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]*cacheRecord),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Stop ends the cleanup loop
func (c *Cache) Stop() {
	c.stop.Do(func() { close(c.stopCh) })
}

// Get returns a fresh entry
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.entries[key]
	if !ok || c.now().Sub(rec.fetched) >= c.ttl {
		return nil, false
	}
	return rec.value, true
}

// Put stores value under key
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	c.entries[key] = &cacheRecord{value: value, fetched: c.now()}
	c.mu.Unlock()
}

// Len returns the number of stored entries, stale ones included
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, rec := range c.entries {
		if age := now.Sub(rec.fetched); age >= c.ttl {
			log.Debug().Str("component", "blog").Str("key", key).Dur("age", age.Round(time.Second)).Msg("expired cache entry")
			delete(c.entries, key)
		}
	}
}

func (c *Cache) cleanupLoop() {
	interval := c.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}
