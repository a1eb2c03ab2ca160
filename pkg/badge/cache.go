package badge

import (
	"fmt"
	"sync"
)

// Cache stores rendered icons so theme flips and repeated counts don't
// re-rasterize the same badge.
type Cache struct {
	icons map[string][]byte
	mu    sync.RWMutex
}

// NewCache creates an icon cache.
func NewCache() *Cache {
	return &Cache{icons: make(map[string][]byte)}
}

// Key derives the cache key for a badge text and its rendering options.
func Key(text string, opts Options) string {
	return fmt.Sprintf("%s|%d|%v|%v", text, opts.FontSize, opts.Text, opts.Fill)
}

// Lookup retrieves a cached icon or returns false if not found.
func (c *Cache) Lookup(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.icons[key]
	return data, ok
}

// Put stores an icon in the cache.
func (c *Cache) Put(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Simple size limit
	if len(c.icons) > 100 {
		clear(c.icons)
	}

	c.icons[key] = data
}
