// Package launch spawns pinned targets as OS processes and exposes the
// related shell actions: elevated launch and reveal-in-file-manager.
package launch

import (
	"fmt"
	"os"

	"superlauncher/internal/logger"
	"superlauncher/internal/models"
)

type Launcher struct {
	log logger.Logger
}

func New(log logger.Logger) *Launcher {
	if log == nil {
		log = logger.Nop{}
	}
	return &Launcher{log: log}
}

// Run dispatches on the item's launch kind. A missing target is
// reported as an error before anything is spawned, so the caller can
// show a dialog instead of surfacing a cryptic spawn failure.
func (l *Launcher) Run(item models.PinnedItem) error {
	return l.RunAs(item, item.LaunchKindOrDefault())
}

// RunAs launches item with an explicit kind, overriding the persisted
// one. Context menu actions use this.
func (l *Launcher) RunAs(item models.PinnedItem, kind models.LaunchKind) error {
	if _, err := os.Stat(item.Path); err != nil {
		l.log.Warning("Launcher", "launch target missing", map[string]interface{}{
			"path": item.Path,
		})
		return fmt.Errorf("cannot launch %q: %w", item.DisplayName(), err)
	}

	l.log.Info("Launcher", "launching item", map[string]interface{}{
		"path": item.Path,
		"kind": string(kind),
	})

	var err error
	switch kind {
	case models.LaunchAdmin:
		err = runElevated(item.Path)
	case models.LaunchOpenLocation:
		err = reveal(item.Path)
	default:
		err = runNormal(item.Path)
	}
	if err != nil {
		l.log.Error("Launcher", err, map[string]interface{}{
			"path": item.Path,
			"kind": string(kind),
		})
		return fmt.Errorf("failed to launch %q: %w", item.DisplayName(), err)
	}
	return nil
}

// Reveal opens the file manager with the item's location.
func (l *Launcher) Reveal(item models.PinnedItem) error {
	return l.RunAs(item, models.LaunchOpenLocation)
}
