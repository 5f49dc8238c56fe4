package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNameFallsBackToStem(t *testing.T) {
	it := NewPinnedItem("/opt/tools/Image Viewer.exe")
	assert.Equal(t, "Image Viewer", it.DisplayName())

	it.Title = "Viewer"
	assert.Equal(t, "Viewer", it.DisplayName())

	it.Title = "   "
	assert.Equal(t, "Image Viewer", it.DisplayName())
}

func TestNewPinnedItemDefaults(t *testing.T) {
	it := NewPinnedItem("/bin/sh")
	assert.NotEmpty(t, it.ID)
	assert.Equal(t, LaunchNormal, it.Kind)

	other := NewPinnedItem("/bin/sh")
	assert.NotEqual(t, it.ID, other.ID)
}

func TestLaunchKindOrDefault(t *testing.T) {
	it := PinnedItem{Path: "/bin/sh", Kind: "garbage"}
	assert.Equal(t, LaunchNormal, it.LaunchKindOrDefault())

	it.Kind = LaunchAdmin
	assert.Equal(t, LaunchAdmin, it.LaunchKindOrDefault())
}

func TestPinRejectsDuplicatePath(t *testing.T) {
	items, changed := Pin(nil, "/usr/bin/gimp")
	require.True(t, changed)
	require.Len(t, items, 1)

	items, changed = Pin(items, "/usr/bin/gimp")
	assert.False(t, changed)
	assert.Len(t, items, 1)

	items, changed = Pin(items, "/usr/bin/inkscape")
	assert.True(t, changed)
	assert.Len(t, items, 2)
}

func TestUnpinPreservesOrder(t *testing.T) {
	var items []PinnedItem
	for _, p := range []string{"/a", "/b", "/c"} {
		items, _ = Pin(items, p)
	}

	items = Unpin(items, items[1].ID)
	require.Len(t, items, 2)
	assert.Equal(t, "/a", items[0].Path)
	assert.Equal(t, "/c", items[1].Path)
}

func TestMove(t *testing.T) {
	paths := func(items []PinnedItem) []string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.Path
		}
		return out
	}

	var items []PinnedItem
	for _, p := range []string{"/a", "/b", "/c", "/d"} {
		items, _ = Pin(items, p)
	}

	items = Move(items, 0, 2)
	assert.Equal(t, []string{"/b", "/c", "/a", "/d"}, paths(items))

	items = Move(items, 3, 0)
	assert.Equal(t, []string{"/d", "/b", "/c", "/a"}, paths(items))

	// Out-of-range indexes leave the list untouched.
	items = Move(items, -1, 2)
	assert.Equal(t, []string{"/d", "/b", "/c", "/a"}, paths(items))
	items = Move(items, 1, 9)
	assert.Equal(t, []string{"/d", "/b", "/c", "/a"}, paths(items))
}

func TestRename(t *testing.T) {
	items, _ := Pin(nil, "/a")
	items = Rename(items, items[0].ID, "Alpha")
	assert.Equal(t, "Alpha", items[0].Title)

	items = Rename(items, "no-such-id", "Beta")
	assert.Equal(t, "Alpha", items[0].Title)
}

func TestSettingsNormalized(t *testing.T) {
	def := DefaultSettings()
	s := Settings{}.Normalized()
	assert.Equal(t, def.WindowWidth, s.WindowWidth)
	assert.Equal(t, def.View, s.View)
	assert.Equal(t, def.GridColumns, s.GridColumns)
	assert.Equal(t, def.IconQuality, s.IconQuality)
	assert.Equal(t, MinIconCacheSize, s.IconCacheSize)

	s = Settings{
		WindowWidth:   1024,
		WindowHeight:  768,
		View:          ViewList,
		GridColumns:   4,
		IconQuality:   QualityLow,
		IconCacheSize: 7,
	}.Normalized()
	assert.Equal(t, MinIconCacheSize, s.IconCacheSize)
	assert.Equal(t, ViewList, s.View)

	s = Settings{IconCacheSize: 10_000}.Normalized()
	assert.Equal(t, MaxIconCacheSize, s.IconCacheSize)
}
