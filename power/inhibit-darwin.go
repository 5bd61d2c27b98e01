//go:build darwin

package power

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"sync"
)

// darwinInhibitor runs caffeinate for the lifetime of the worker.
type darwinInhibitor struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

func newInhibitor() Inhibitor {
	return &darwinInhibitor{}
}

func (d *darwinInhibitor) Acquire() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cmd != nil {
		return nil
	}

	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return fmt.Errorf("caffeinate not found: %w", err)
	}

	// -i prevents idle sleep, -s prevents system sleep on AC power, and
	// -w makes caffeinate exit on its own when the worker dies.
	cmd := exec.Command(path, "-is", "-w", strconv.Itoa(os.Getpid()))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start caffeinate: %w", err)
	}
	go cmd.Wait()

	d.cmd = cmd
	return nil
}

func (d *darwinInhibitor) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cmd != nil && d.cmd.Process != nil {
		d.cmd.Process.Kill()
	}
	d.cmd = nil
}
