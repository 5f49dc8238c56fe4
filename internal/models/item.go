package models

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LaunchKind selects how a pinned item is started when activated.
type LaunchKind string

const (
	LaunchNormal       LaunchKind = "normal"
	LaunchAdmin        LaunchKind = "admin"
	LaunchOpenLocation LaunchKind = "open-location"
)

// PinnedItem is a user-added shortcut to an application, document or file.
// Items are persisted as an ordered list; order is user-controlled via
// drag-and-drop.
type PinnedItem struct {
	ID    string     `json:"id"`
	Path  string     `json:"path"`
	Title string     `json:"title,omitempty"`
	Kind  LaunchKind `json:"kind,omitempty"`
}

func NewPinnedItem(path string) PinnedItem {
	return PinnedItem{
		ID:   uuid.New().String(),
		Path: path,
		Kind: LaunchNormal,
	}
}

// DisplayName returns the user-assigned title, or the file stem when no
// title has been set.
func (p PinnedItem) DisplayName() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	base := filepath.Base(p.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IconKey identifies a rendered icon for this item at a given pixel size.
func (p PinnedItem) IconKey(size int) string {
	return fmt.Sprintf("%s|%d", p.Path, size)
}

// LaunchKindOrDefault normalizes the persisted kind; unknown values from
// hand-edited config files fall back to a normal launch.
func (p PinnedItem) LaunchKindOrDefault() LaunchKind {
	switch p.Kind {
	case LaunchAdmin, LaunchOpenLocation:
		return p.Kind
	default:
		return LaunchNormal
	}
}
