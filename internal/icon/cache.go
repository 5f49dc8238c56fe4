package icon

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"fyne.io/fyne/v2"
	"superlauncher/internal/models"
)

// Cache holds rendered icon resources keyed by "path|size". Entries are
// never invalidated; the only bound is capacity, with least-recently-used
// eviction.
type Cache struct {
	lru      *lru.Cache[string, fyne.Resource]
	capacity int
}

// NewCache clamps capacity to the supported range before allocating.
func NewCache(capacity int) *Cache {
	capacity = clampCapacity(capacity)

	// Error is only possible for a non-positive size, which clamping
	// rules out.
	c, _ := lru.New[string, fyne.Resource](capacity)
	return &Cache{lru: c, capacity: capacity}
}

func clampCapacity(capacity int) int {
	if capacity < models.MinIconCacheSize {
		return models.MinIconCacheSize
	}
	if capacity > models.MaxIconCacheSize {
		return models.MaxIconCacheSize
	}
	return capacity
}

// Resize rebounds the cache, evicting oldest entries when it shrinks
// below its current length.
func (c *Cache) Resize(capacity int) {
	capacity = clampCapacity(capacity)
	c.lru.Resize(capacity)
	c.capacity = capacity
}

func (c *Cache) Get(key string) (fyne.Resource, bool) {
	return c.lru.Get(key)
}

func (c *Cache) Add(key string, res fyne.Resource) {
	c.lru.Add(key, res)
}

func (c *Cache) Len() int {
	return c.lru.Len()
}

func (c *Cache) Capacity() int {
	return c.capacity
}

func (c *Cache) Purge() {
	c.lru.Purge()
}
