package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superlauncher/internal/models"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "config.json"), nil)
}

func TestLoadAbsentFile(t *testing.T) {
	s := tempStore(t)
	items, settings := s.Load()
	assert.Empty(t, items)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestSaveLoadRoundTripPreservesOrder(t *testing.T) {
	s := tempStore(t)

	var items []models.PinnedItem
	for _, p := range []string{"/apps/zeta", "/apps/alpha", "/apps/mid"} {
		items, _ = models.Pin(items, p)
	}
	items[1].Title = "Alpha"
	items[2].Kind = models.LaunchAdmin

	require.NoError(t, s.Save(items, models.DefaultSettings()))

	loaded, settings := s.Load()
	require.Len(t, loaded, 3)
	assert.Equal(t, items, loaded)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestLoadCorruptFileStartsEmpty(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	items, settings := s.Load()
	assert.Empty(t, items)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestLoadSkipsItemsWithoutPath(t *testing.T) {
	s := tempStore(t)
	raw := `{"apps":[{"id":"a","path":"/bin/sh"},{"id":"b","path":""},{"path":"/bin/ls"}]}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	items, _ := s.Load()
	require.Len(t, items, 2)
	assert.Equal(t, "/bin/sh", items[0].Path)
	assert.Equal(t, "/bin/ls", items[1].Path)
	// A hand-added entry without an id gets one assigned.
	assert.NotEmpty(t, items[1].ID)
}

func TestLoadNormalizesSettings(t *testing.T) {
	s := tempStore(t)
	raw := `{"apps":[],"settings":{"window_width":10,"view":"spiral","icon_cache_size":99999}}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	_, settings := s.Load()
	assert.Equal(t, models.DefaultSettings().WindowWidth, settings.WindowWidth)
	assert.Equal(t, models.ViewGrid, settings.View)
	assert.Equal(t, models.MaxIconCacheSize, settings.IconCacheSize)
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	s := tempStore(t)

	items, _ := models.Pin(nil, "/apps/one")
	require.NoError(t, s.Save(items, models.DefaultSettings()))
	require.NoError(t, s.Save(nil, models.DefaultSettings()))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var f File
	require.NoError(t, json.Unmarshal(data, &f))
	assert.Empty(t, f.Apps)
}
