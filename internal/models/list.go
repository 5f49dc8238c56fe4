package models

// Pin appends a new item for path unless an item with the same path is
// already pinned. The second return reports whether the list changed.
func Pin(items []PinnedItem, path string) ([]PinnedItem, bool) {
	for _, it := range items {
		if it.Path == path {
			return items, false
		}
	}
	return append(items, NewPinnedItem(path)), true
}

// Unpin removes the item with the given ID, preserving the order of the
// remaining items.
func Unpin(items []PinnedItem, id string) []PinnedItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Move relocates the item at from so it ends up at index to. Indices
// outside the list leave it untouched.
func Move(items []PinnedItem, from, to int) []PinnedItem {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return items
	}
	it := items[from]
	items = append(items[:from], items[from+1:]...)

	out := make([]PinnedItem, 0, len(items)+1)
	out = append(out, items[:to]...)
	out = append(out, it)
	out = append(out, items[to:]...)
	return out
}

// Rename sets the title of the item with the given ID. An empty or
// blank title clears it so DisplayName falls back to the file stem.
func Rename(items []PinnedItem, id, title string) []PinnedItem {
	for i := range items {
		if items[i].ID == id {
			items[i].Title = title
			return items
		}
	}
	return items
}
