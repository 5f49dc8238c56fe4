// Package tray puts the launcher in the system tray so closing the
// window hides it instead of quitting.
package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"superlauncher/internal/logger"
)

// Setup installs the tray icon and menu. It returns false when the
// platform has no tray support, in which case the caller should let
// the close button quit normally.
func Setup(a fyne.App, w fyne.Window, log logger.Logger, onQuit func()) bool {
	desk, ok := a.(desktop.App)
	if !ok {
		log.Info("Tray", "no system tray on this platform", nil)
		return false
	}

	menu := fyne.NewMenu("SuperLauncher",
		fyne.NewMenuItem("Open", func() {
			w.Show()
			w.RequestFocus()
		}),
		fyne.NewMenuItem("Hide", func() {
			w.Hide()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", func() {
			onQuit()
		}),
	)

	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.ComputerIcon())

	log.Info("Tray", "system tray installed", nil)
	return true
}
