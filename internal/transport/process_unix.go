//go:build !windows

package transport

import (
	"os"
	"syscall"
)

// processAlive reports whether pid can still be signaled — the standard
// "kill -0" liveness probe.
func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
