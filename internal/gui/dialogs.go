package gui

import (
	"fmt"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"superlauncher/internal/models"
)

// showAddDialog opens a file picker rooted at the usual application
// directory and pins the chosen file.
func (m *Manager) showAddDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, m.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		if m.cb.OnPin != nil {
			m.cb.OnPin([]string{path})
		}
	}, m.window)

	if uri := storage.NewFileURI(defaultAddDir()); uri != nil {
		if lister, err := storage.ListerForURI(uri); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Resize(fyne.NewSize(700, 500))
	fd.Show()
}

// defaultAddDir starts the picker where launchable things usually live.
func defaultAddDir() string {
	if runtime.GOOS == "windows" {
		start := os.ExpandEnv(`${ProgramData}\Microsoft\Windows\Start Menu\Programs`)
		if _, err := os.Stat(start); err == nil {
			return start
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// showItemMenu pops the per-item context menu at the given screen
// position.
func (m *Manager) showItemMenu(item models.PinnedItem, at fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Run", func() {
			m.launch(item, models.LaunchNormal)
		}),
		fyne.NewMenuItem("Run as administrator", func() {
			m.launch(item, models.LaunchAdmin)
		}),
		fyne.NewMenuItem("Open location", func() {
			m.launch(item, models.LaunchOpenLocation)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Rename", func() {
			m.showRenameDialog(item)
		}),
		fyne.NewMenuItem("Unpin", func() {
			m.confirmUnpin(item)
		}),
	)
	widget.ShowPopUpMenuAtPosition(menu, m.window.Canvas(), at)
}

func (m *Manager) launch(item models.PinnedItem, kind models.LaunchKind) {
	if m.cb.OnLaunch != nil {
		m.cb.OnLaunch(item, kind)
	}
}

func (m *Manager) showRenameDialog(item models.PinnedItem) {
	entry := widget.NewEntry()
	entry.SetText(item.DisplayName())

	form := widget.NewForm(widget.NewFormItem("Title", entry))
	dialog.ShowCustomConfirm("Rename", "Rename", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		if m.cb.OnRename != nil {
			m.cb.OnRename(item, entry.Text)
		}
	}, m.window)
}

func (m *Manager) confirmUnpin(item models.PinnedItem) {
	msg := fmt.Sprintf("Are you sure you want to unpin %q?", item.DisplayName())
	dialog.ShowConfirm("Confirm Removal", msg, func(ok bool) {
		if !ok {
			return
		}
		if m.cb.OnUnpin != nil {
			m.cb.OnUnpin(item)
		}
	}, m.window)
}

// ShowLaunchError surfaces a failed launch without crashing anything.
func (m *Manager) ShowLaunchError(err error) {
	dialog.ShowError(err, m.window)
}
