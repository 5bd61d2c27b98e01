//go:build windows

package process

import "os"

// probe relies on os.FindProcess, which on Windows opens a handle to the
// target and fails when no such process exists.
func probe(pid int) bool {
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	p.Release()
	return true
}
