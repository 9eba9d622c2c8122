// Package assets handles asset lookup and caching for the globe client.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known texture base names looked up in the asset directory.
const (
	TexEarthDay   = "earth_day"
	TexEarthNight = "earth_night"
	TexClouds     = "clouds"
)

// extensions tried for each texture name, in order.
var extensions = []string{".png", ".jpg", ".jpeg"}

// Manager resolves assets from a directory on disk.
type Manager struct {
	dir   string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a manager rooted at the given directory. The directory
// does not have to exist; lookups then simply miss and callers fall back to
// procedural placeholders.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:   dir,
		cache: NewCache(),
	}
}

// LoadTexture reads the image file for a texture base name, trying the known
// extensions in order.
func (m *Manager) LoadTexture(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	dir := m.dir
	m.mu.RUnlock()

	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		data, err := os.ReadFile(path)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
	}

	return nil, fmt.Errorf("texture not found: %s", name)
}

// Close clears cached data.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
