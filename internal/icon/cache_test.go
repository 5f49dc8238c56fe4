package icon

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyne.io/fyne/v2"
	"superlauncher/internal/models"
)

func TestCacheClampsCapacity(t *testing.T) {
	assert.Equal(t, models.MinIconCacheSize, NewCache(0).Capacity())
	assert.Equal(t, models.MinIconCacheSize, NewCache(-5).Capacity())
	assert.Equal(t, models.MaxIconCacheSize, NewCache(100_000).Capacity())
	assert.Equal(t, 120, NewCache(120).Capacity())
}

func TestCacheResize(t *testing.T) {
	c := NewCache(200)
	res := fyne.NewStaticResource("x.png", []byte{1})

	for i := 0; i < 200; i++ {
		c.Add(fmt.Sprintf("/app%d|48", i), res)
	}

	c.Resize(models.MinIconCacheSize)
	assert.Equal(t, models.MinIconCacheSize, c.Capacity())
	assert.Equal(t, models.MinIconCacheSize, c.Len())

	// Shrinking evicts oldest-first; the most recent additions survive.
	_, ok := c.Get("/app199|48")
	assert.True(t, ok)
	_, ok = c.Get("/app0|48")
	assert.False(t, ok)

	// Resize clamps like construction does.
	c.Resize(0)
	assert.Equal(t, models.MinIconCacheSize, c.Capacity())
	c.Resize(100_000)
	assert.Equal(t, models.MaxIconCacheSize, c.Capacity())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(models.MinIconCacheSize)
	res := fyne.NewStaticResource("x.png", []byte{1})

	for i := 0; i < models.MinIconCacheSize; i++ {
		c.Add(fmt.Sprintf("/app%d|48", i), res)
	}
	require.Equal(t, models.MinIconCacheSize, c.Len())

	// Touch the oldest entry so it survives the next eviction.
	_, ok := c.Get("/app0|48")
	require.True(t, ok)

	c.Add("/overflow|48", res)
	assert.Equal(t, models.MinIconCacheSize, c.Len())

	_, ok = c.Get("/app0|48")
	assert.True(t, ok)
	_, ok = c.Get("/app1|48")
	assert.False(t, ok)
}
