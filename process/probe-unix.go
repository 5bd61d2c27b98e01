//go:build unix

package process

import (
	"errors"
	"syscall"
)

// probe sends signal 0, which performs the permission and existence checks
// without delivering anything. EPERM means the process exists but belongs
// to another user, so it still counts as alive.
func probe(pid int) bool {
	err := syscall.Kill(pid, 0)
	if err == nil {
		return true
	}
	return errors.Is(err, syscall.EPERM)
}
