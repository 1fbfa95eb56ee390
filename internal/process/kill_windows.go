//go:build windows

// Package process terminates the headless browser's process tree.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup kills a browser and its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; the launcher's own Kill runs afterwards.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
