package app

import (
	"strings"

	"superlauncher/internal/models"
)

func (a *Application) handleLaunch(item models.PinnedItem, kind models.LaunchKind) {
	if err := a.launcher.RunAs(item, kind); err != nil {
		a.guiMgr.ShowLaunchError(err)
	}
}

func (a *Application) handlePin(paths []string) {
	added := 0
	for _, p := range paths {
		var changed bool
		a.items, changed = models.Pin(a.items, p)
		if changed {
			added++
		}
	}
	if added == 0 {
		a.guiMgr.UpdateStatus("Already pinned")
		return
	}
	a.persist()
	a.guiMgr.SetItems(a.items)
}

func (a *Application) handleUnpin(item models.PinnedItem) {
	a.items = models.Unpin(a.items, item.ID)
	a.persist()
	a.guiMgr.SetItems(a.items)
}

func (a *Application) handleRename(item models.PinnedItem, title string) {
	a.items = models.Rename(a.items, item.ID, strings.TrimSpace(title))
	a.persist()
	a.guiMgr.SetItems(a.items)
}

func (a *Application) handleReorder(from, to int) {
	a.items = models.Move(a.items, from, to)
	a.persist()
	a.guiMgr.SetItems(a.items)
}

func (a *Application) handleViewChange(mode models.ViewMode) {
	a.settings.View = mode
	a.persist()
}

func (a *Application) persist() {
	if err := a.store.Save(a.items, a.settings); err != nil {
		a.log.Error("Application", err, map[string]interface{}{
			"stage": "config save",
		})
	}
}

// reloadFromDisk picks up external edits to the config file. Runs on
// the GUI thread.
func (a *Application) reloadFromDisk() {
	items, settings := a.store.Load()
	a.items = items

	if settings.IconQuality != a.settings.IconQuality {
		a.icons.SetQuality(settings.IconQuality)
	}
	if settings.IconCacheSize != a.settings.IconCacheSize {
		a.icons.SetCacheSize(settings.IconCacheSize)
	}
	a.settings = settings

	a.guiMgr.SetItems(a.items)
	a.guiMgr.UpdateStatus("Reloaded configuration")
}
