package app

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"superlauncher/internal/config"
	"superlauncher/internal/gui"
	"superlauncher/internal/icon"
	"superlauncher/internal/launch"
	"superlauncher/internal/logger"
	"superlauncher/internal/models"
	"superlauncher/internal/shutdown"
	"superlauncher/internal/tray"
)

const (
	AppName    = "SuperLauncher"
	AppID      = "com.superlauncher.app"
	AppVersion = "1.0.0"
)

// Application wires the launcher together: config store, icon
// extractor, process launcher, GUI manager, tray, and shutdown
// ordering.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	log     logger.Logger

	store    *config.Store
	watcher  *config.Watcher
	icons    *icon.Extractor
	launcher *launch.Launcher
	guiMgr   *gui.Manager
	shutdown *shutdown.Manager

	items    []models.PinnedItem
	settings models.Settings

	trayed bool
}

func NewApplication() (*Application, error) {
	log := newLogger()

	store, err := config.NewStore(log)
	if err != nil {
		return nil, err
	}
	items, settings := store.Load()

	log.Info("Application", "starting", map[string]interface{}{
		"version": AppVersion,
		"items":   len(items),
		"config":  store.Path(),
	})

	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(settings.WindowWidth), float32(settings.WindowHeight)))
	window.CenterOnScreen()
	window.SetMaster()

	a := &Application{
		fyneApp:  fyneApp,
		window:   window,
		log:      log,
		store:    store,
		icons:    icon.NewExtractor(log, settings.IconCacheSize, settings.IconQuality),
		launcher: launch.New(log),
		shutdown: shutdown.NewManager(log),
		items:    items,
		settings: settings,
	}

	a.guiMgr = gui.NewManager(window, a.icons, log, settings, gui.Callbacks{
		OnLaunch:  a.handleLaunch,
		OnPin:     a.handlePin,
		OnUnpin:   a.handleUnpin,
		OnRename:  a.handleRename,
		OnReorder: a.handleReorder,
		OnView:    a.handleViewChange,
		OnQuit:    a.Quit,
	})
	a.guiMgr.SetItems(items)

	a.trayed = tray.Setup(fyneApp, window, log, a.Quit)

	watcher, err := store.Watch(func() {
		fyne.Do(a.reloadFromDisk)
	})
	if err != nil {
		log.Warning("Application", "config watcher unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		a.watcher = watcher
	}

	a.registerShutdown()
	a.setupWindowEvents()

	return a, nil
}

// newLogger combines readable console output with a JSON log file under
// the user config directory. Console-only when the file cannot be
// opened.
func newLogger() logger.Logger {
	level := logger.LevelFromEnv()

	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return logger.NewConsoleLogger(level)
	}
	logDir := filepath.Join(dir, "SuperLauncher", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return logger.NewConsoleLogger(level)
	}
	f, err := os.OpenFile(filepath.Join(logDir, "superlauncher.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return logger.NewConsoleLogger(level)
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout}
	return logger.NewZerolog(zerolog.MultiLevelWriter(console, f), level)
}

func (a *Application) registerShutdown() {
	a.shutdown.Register("config store", func() {
		if err := a.store.Save(a.items, a.settings); err != nil {
			a.log.Error("Application", err, map[string]interface{}{
				"stage": "final config save",
			})
		}
	})
	a.shutdown.Register("icon cache", a.icons.ClearCache)
	a.shutdown.Register("config watcher", func() {
		if a.watcher != nil {
			a.watcher.Close()
		}
	})
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		if a.trayed {
			// Closing hides to tray; Exit lives in the tray menu.
			a.window.Hide()
			return
		}
		a.Quit()
	})
}
