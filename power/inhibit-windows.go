//go:build windows

package power

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/windows"
)

// SetThreadExecutionState flags.
const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

var (
	kernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = kernel32.NewProc("SetThreadExecutionState")
)

// windowsInhibitor keeps the machine and display awake through
// SetThreadExecutionState.
type windowsInhibitor struct {
	mu     sync.Mutex
	active bool
}

func newInhibitor() Inhibitor {
	return &windowsInhibitor{}
}

func (w *windowsInhibitor) Acquire() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.active {
		return nil
	}

	// The execution state is tied to the calling thread, so pin the
	// goroutine to it until Release.
	runtime.LockOSThread()
	r, _, err := procSetThreadExecutionState.Call(esContinuous | esSystemRequired | esDisplayRequired)
	if r == 0 {
		runtime.UnlockOSThread()
		return fmt.Errorf("SetThreadExecutionState failed: %w", err)
	}

	w.active = true
	return nil
}

func (w *windowsInhibitor) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.active {
		return
	}
	procSetThreadExecutionState.Call(esContinuous)
	runtime.UnlockOSThread()
	w.active = false
}
