//go:build linux

package power

import (
	"fmt"
	"os/exec"
	"sync"
	"syscall"
)

// linuxInhibitor holds a systemd-inhibit lease for as long as its helper
// process lives.
type linuxInhibitor struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

func newInhibitor() Inhibitor {
	return &linuxInhibitor{}
}

func (l *linuxInhibitor) Acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cmd != nil {
		return nil
	}

	path, err := exec.LookPath("systemd-inhibit")
	if err != nil {
		return fmt.Errorf("systemd-inhibit not found: %w", err)
	}

	cmd := exec.Command(path,
		"--what=sleep:idle",
		"--who=jigglercli",
		"--why=Keeping session active",
		"sleep", "infinity",
	)
	// If the worker dies without Release, the kernel reaps the helper.
	cmd.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: syscall.SIGTERM}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start systemd-inhibit: %w", err)
	}
	go cmd.Wait()

	l.cmd = cmd
	return nil
}

func (l *linuxInhibitor) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cmd != nil && l.cmd.Process != nil {
		l.cmd.Process.Kill()
	}
	l.cmd = nil
}
