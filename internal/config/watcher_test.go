package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"superlauncher/internal/models"
)

func TestWatchExternalEdit(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"apps":[]}`), 0o644))

	changed := make(chan struct{}, 1)
	w, err := s.Watch(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	// An edit from another process, not via Save.
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"apps":[{"id":"a","path":"/bin/sh"}]}`), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification for external edit")
	}
}

func TestWatchIgnoresOwnSaves(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save(nil, models.DefaultSettings()))

	changed := make(chan struct{}, 1)
	w, err := s.Watch(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, s.Save(nil, models.DefaultSettings()))

	select {
	case <-changed:
		t.Fatal("notified for a write made by this store")
	case <-time.After(500 * time.Millisecond):
	}
}
