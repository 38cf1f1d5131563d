//go:build windows

package transport

import "os"

// processAlive reports whether pid can still be found. os.FindProcess on
// Windows already opens a handle to the process and fails if it no longer
// exists, unlike its always-succeeds Unix behavior, so there is no
// separate signal step needed here.
func processAlive(pid int) bool {
	_, err := os.FindProcess(pid)
	return err == nil
}
