//go:build !windows && !darwin

package launch

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/godbus/dbus/v5"
)

// normalArgv builds the spawn command. Desktop entries are metadata,
// not executables, so they go through the desktop's opener.
func normalArgv(path string) []string {
	if strings.EqualFold(filepath.Ext(path), ".desktop") {
		return []string{"xdg-open", path}
	}
	return []string{path}
}

func runNormal(path string) error {
	argv := normalArgv(path)
	cmd := exec.Command(argv[0], argv[1:]...)
	if len(argv) == 1 {
		cmd.Dir = filepath.Dir(path)
	}
	return cmd.Start()
}

func runElevated(path string) error {
	cmd := exec.Command("pkexec", path)
	cmd.Dir = filepath.Dir(path)
	return cmd.Start()
}

// reveal asks the desktop file manager to highlight the file via the
// org.freedesktop.FileManager1 interface, falling back to xdg-open on
// the containing directory when no file manager is on the bus.
func reveal(path string) error {
	if err := revealOverDBus(path); err == nil {
		return nil
	}
	return exec.Command("xdg-open", filepath.Dir(path)).Start()
}

func revealOverDBus(path string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	obj := conn.Object("org.freedesktop.FileManager1", "/org/freedesktop/FileManager1")
	uri := fmt.Sprintf("file://%s", path)
	call := obj.Call("org.freedesktop.FileManager1.ShowItems", 0, []string{uri}, "")
	return call.Err
}
