//go:build windows

package launch

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

// Launches go through powershell Start-Process so the target gets its
// own directory as working dir and file associations are honoured.

func runNormal(path string) error {
	return startProcess(path, false)
}

func runElevated(path string) error {
	return startProcess(path, true)
}

func startProcess(path string, elevated bool) error {
	dir := filepath.Dir(path)
	cmdLine := fmt.Sprintf("Start-Process -FilePath '%s' -WorkingDirectory '%s'",
		psQuote(path), psQuote(dir))
	if elevated {
		cmdLine += " -Verb RunAs"
	}

	cmd := exec.Command("powershell", "-NoProfile", "-WindowStyle", "Hidden", "-Command", cmdLine)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return cmd.Start()
}

func reveal(path string) error {
	// explorer /select highlights the file rather than opening it.
	cmd := exec.Command("explorer", "/select,", path)
	return cmd.Start()
}

// psQuote doubles single quotes for inclusion in a powershell
// single-quoted string.
func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
