package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"superlauncher/internal/logger"
)

// Watcher notifies when the config file changes on disk outside this
// process, so external edits show up without a restart. Writes made by
// the Store itself are filtered out.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching the store's directory. onChange runs on the
// watcher goroutine; callers wanting to touch widgets must hop onto the
// GUI thread themselves.
func (s *Store) Watch(onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors replace files by
	// rename, which drops a direct file watch.
	if err := fw.Add(filepath.Dir(s.path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{fs: fw, done: make(chan struct{})}
	go w.loop(s, onChange, s.log)
	return w, nil
}

func (w *Watcher) loop(s *Store, onChange func(), log logger.Logger) {
	target := filepath.Base(s.path)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if s.wroteRecently() {
				continue
			}
			log.Info("ConfigStore", "config changed on disk, reloading", map[string]interface{}{
				"path": ev.Name,
			})
			onChange()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Warning("ConfigStore", "config watcher error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func (w *Watcher) Close() {
	close(w.done)
	w.fs.Close()
}
