package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"superlauncher/internal/logger"
	"superlauncher/internal/models"
)

const (
	appDirName = "SuperLauncher"
	fileName   = "config.json"
)

// File is the on-disk shape: an ordered array of pinned items plus
// scalar settings.
type File struct {
	Apps     []models.PinnedItem `json:"apps"`
	Settings models.Settings     `json:"settings"`
}

// Store reads and writes the launcher configuration as a single JSON
// file. Save is a full-file overwrite; there is no journaling or
// atomic-rename step, so a crash mid-write can corrupt the file and
// Load will then fall back to an empty list.
type Store struct {
	path string
	log  logger.Logger

	mu        sync.Mutex
	lastWrite time.Time
}

// NewStore places the config under the user config directory, creating
// the application directory if needed.
func NewStore(log logger.Logger) (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return nil, herr
		}
		dir = filepath.Join(home, ".config")
	}

	appDir := filepath.Join(dir, appDirName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		return nil, err
	}

	return NewStoreAt(filepath.Join(appDir, fileName), log), nil
}

// NewStoreAt uses an explicit file path. Tests use this with a temp dir.
func NewStoreAt(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop{}
	}
	return &Store{path: path, log: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the last-saved list and settings. An absent or
// unparseable file yields an empty list and default settings; it is
// never an error the caller has to handle.
func (s *Store) Load() ([]models.PinnedItem, models.Settings) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warning("ConfigStore", "config file unreadable", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return nil, models.DefaultSettings()
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		s.log.Warning("ConfigStore", "config file corrupt, starting empty", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return nil, models.DefaultSettings()
	}

	items := make([]models.PinnedItem, 0, len(f.Apps))
	for _, it := range f.Apps {
		if it.Path == "" {
			continue
		}
		if it.ID == "" {
			it = withFreshID(it)
		}
		items = append(items, it)
	}

	return items, f.Settings.Normalized()
}

func withFreshID(it models.PinnedItem) models.PinnedItem {
	fresh := models.NewPinnedItem(it.Path)
	fresh.Title = it.Title
	fresh.Kind = it.Kind
	return fresh
}

// Save overwrites the whole file with the given list and settings.
func (s *Store) Save(items []models.PinnedItem, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := File{Apps: items, Settings: settings}
	data, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}
	s.lastWrite = time.Now()

	s.log.Debug("ConfigStore", "config saved", map[string]interface{}{
		"path":  s.path,
		"items": len(items),
	})
	return nil
}

// wroteRecently reports whether a write from this process happened close
// enough to now that a filesystem event for it should be ignored.
func (s *Store) wroteRecently() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastWrite) < time.Second
}
