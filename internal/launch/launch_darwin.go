//go:build darwin

package launch

import (
	"fmt"
	"os/exec"
	"strings"
)

func runNormal(path string) error {
	return exec.Command("open", path).Start()
}

func runElevated(path string) error {
	script := fmt.Sprintf("do shell script %q with administrator privileges", shQuote(path))
	return exec.Command("osascript", "-e", script).Start()
}

func reveal(path string) error {
	return exec.Command("open", "-R", path).Start()
}

func shQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
