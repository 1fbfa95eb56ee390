//go:build !windows

// Package process terminates the headless browser's process tree.
package process

import "syscall"

// KillProcessGroup kills a browser and its renderer/GPU children by sending
// SIGKILL to the process group (negative PID).
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; the launcher's own Kill runs afterwards.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
