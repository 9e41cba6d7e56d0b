package client

import (
	"strings"
	"sync"
)

// cache keeps raw response bodies by request path. Every invalidation bumps
// the version, a fetch started before it is not stored.
type cache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ver     uint64
}

func newCache() *cache {
	return &cache{entries: make(map[string][]byte)}
}

func (c *cache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.entries[key]

	return raw, ok
}

func (c *cache) version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ver
}

func (c *cache) set(key string, raw []byte, version uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if version != c.ver {
		return
	}

	c.entries[key] = raw
}

// put stores raw unconditionally.
func (c *cache) put(key string, raw []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ver++
	c.entries[key] = raw
}

// invalidate drops key and every query variant of it, e.g. /api/games?published=true.
func (c *cache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ver++

	for k := range c.entries {
		if k == key || strings.HasPrefix(k, key+"?") {
			delete(c.entries, k)
		}
	}
}
