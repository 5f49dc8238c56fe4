package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"superlauncher/internal/icon"
	"superlauncher/internal/logger"
	"superlauncher/internal/models"
)

const (
	gridIconSize = 48
	listIconSize = 24
	tileWidth    = 96
	tileHeight   = 104
	rowHeight    = 36
)

// Callbacks are the event hooks the application wires into the GUI.
// The GUI never mutates the pinned list itself; it reports intent and
// is refreshed with the new state.
type Callbacks struct {
	OnLaunch  func(item models.PinnedItem, kind models.LaunchKind)
	OnPin     func(paths []string)
	OnUnpin   func(item models.PinnedItem)
	OnRename  func(item models.PinnedItem, title string)
	OnReorder func(from, to int)
	OnView    func(mode models.ViewMode)
	OnQuit    func()
}

// Manager owns the launcher window content: toolbar with filter and
// actions, the grid or list of pinned items, and a status line.
type Manager struct {
	window fyne.Window
	icons  *icon.Extractor
	log    logger.Logger
	cb     Callbacks

	items   []models.PinnedItem
	visible []int // indexes into items after filtering
	filter  string
	view    models.ViewMode
	columns int

	filterEntry *widget.Entry
	viewButton  *widget.Button
	status      *widget.Label
	content     *fyne.Container
	scroll      *container.Scroll
}

func NewManager(window fyne.Window, icons *icon.Extractor, log logger.Logger, settings models.Settings, cb Callbacks) *Manager {
	if log == nil {
		log = logger.Nop{}
	}
	m := &Manager{
		window:  window,
		icons:   icons,
		log:     log,
		cb:      cb,
		view:    settings.View,
		columns: settings.GridColumns,
	}
	m.build()
	return m
}

func (m *Manager) build() {
	m.filterEntry = widget.NewEntry()
	m.filterEntry.SetPlaceHolder("Search apps…")
	m.filterEntry.OnChanged = m.applyFilter

	addButton := widget.NewButtonWithIcon("Add Apps", theme.ContentAddIcon(), func() {
		m.showAddDialog()
	})

	m.viewButton = widget.NewButtonWithIcon("", theme.ListIcon(), m.toggleView)
	m.updateViewButton()

	toolbar := container.NewBorder(nil, nil, nil,
		container.NewHBox(addButton, m.viewButton),
		m.filterEntry,
	)

	m.status = widget.NewLabel("")
	m.content = container.NewStack()
	m.scroll = container.NewScroll(m.content)

	root := container.NewBorder(toolbar, m.status, nil, nil, m.scroll)
	m.window.SetContent(root)

	// Files dropped from the OS onto the window get pinned.
	m.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		paths := make([]string, 0, len(uris))
		for _, u := range uris {
			if u.Scheme() == "file" {
				paths = append(paths, u.Path())
			}
		}
		if len(paths) > 0 && m.cb.OnPin != nil {
			m.cb.OnPin(paths)
		}
	})
}

// SetItems replaces the displayed list and re-renders.
func (m *Manager) SetItems(items []models.PinnedItem) {
	m.items = items
	m.rebuild()
}

func (m *Manager) applyFilter(text string) {
	m.filter = text
	m.rebuild()
}

// Matches reports whether an item stays visible under the filter text:
// case-insensitive substring over the display name.
func Matches(name, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

func (m *Manager) rebuild() {
	m.visible = m.visible[:0]
	for i, it := range m.items {
		if Matches(it.DisplayName(), m.filter) {
			m.visible = append(m.visible, i)
		}
	}

	objects := make([]fyne.CanvasObject, 0, len(m.visible))
	horizontal := m.view == models.ViewList
	size := gridIconSize
	if horizontal {
		size = listIconSize
	}
	for pos, idx := range m.visible {
		it := m.items[idx]
		res := m.icons.Icon(it.Path, size)
		objects = append(objects, newItemTile(m, it, pos, horizontal, res))
	}

	m.content.Objects = nil
	if horizontal {
		m.content.Objects = append(m.content.Objects, container.NewVBox(objects...))
	} else {
		cols := m.columns
		if cols < 1 {
			cols = 1
		}
		m.content.Objects = append(m.content.Objects,
			container.NewGridWithColumns(cols, objects...))
	}
	m.content.Refresh()

	m.updateStatus()
}

func (m *Manager) updateStatus() {
	if len(m.visible) == len(m.items) {
		m.status.SetText(fmt.Sprintf("%d pinned", len(m.items)))
		return
	}
	m.status.SetText(fmt.Sprintf("%d of %d pinned", len(m.visible), len(m.items)))
}

// UpdateStatus shows a transient message in the status line.
func (m *Manager) UpdateStatus(msg string) {
	m.status.SetText(msg)
}

func (m *Manager) toggleView() {
	if m.view == models.ViewGrid {
		m.view = models.ViewList
	} else {
		m.view = models.ViewGrid
	}
	m.updateViewButton()
	m.rebuild()
	if m.cb.OnView != nil {
		m.cb.OnView(m.view)
	}
}

func (m *Manager) updateViewButton() {
	if m.view == models.ViewGrid {
		m.viewButton.SetIcon(theme.ListIcon())
	} else {
		m.viewButton.SetIcon(theme.GridIcon())
	}
}

// dragTarget translates a drag offset of the tile at visible position
// pos into the visible position it was dropped on. Cell dimensions come
// from the rendered grid, which lays out m.columns equal cells per row.
func (m *Manager) dragTarget(pos int, delta fyne.Position) int {
	var target int
	if m.view == models.ViewList {
		target = pos + int(roundHalf(delta.Y/rowHeight))
	} else {
		cols := m.columns
		if cols < 1 {
			cols = 1
		}
		cellW := float32(tileWidth)
		if m.scroll != nil {
			if w := m.scroll.Size().Width; w > 0 {
				cellW = w / float32(cols)
			}
		}
		dx := int(roundHalf(delta.X / cellW))
		dy := int(roundHalf(delta.Y / tileHeight))
		target = pos + dy*cols + dx
	}
	if target < 0 {
		target = 0
	}
	if target >= len(m.visible) {
		target = len(m.visible) - 1
	}
	return target
}

func roundHalf(v float32) float32 {
	if v >= 0 {
		return float32(int(v + 0.5))
	}
	return float32(int(v - 0.5))
}

// handleDrag maps visible positions back to backing-list indexes and
// reports the reorder. Reordering is disabled while a filter is
// active; dropped positions would not map cleanly onto the stored
// order.
func (m *Manager) handleDrag(fromPos int, delta fyne.Position) {
	if m.filter != "" || len(m.visible) == 0 {
		return
	}
	toPos := m.dragTarget(fromPos, delta)
	if toPos == fromPos {
		return
	}
	if m.cb.OnReorder != nil {
		m.cb.OnReorder(m.visible[fromPos], m.visible[toPos])
	}
}

func (m *Manager) Window() fyne.Window {
	return m.window
}
