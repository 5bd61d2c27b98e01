package state

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const (
	pidFileName  = "jiggler.pid"
	stopFileName = "STOP"
)

// Store is the filesystem-backed record shared between the foreground CLI
// and the detached worker: a PID file naming the active worker and a STOP
// marker requesting shutdown. The two files are independent; readers may
// observe them in any interleaving, which the service protocol tolerates.
type Store struct {
	dir      string
	pidPath  string
	stopPath string
}

// New opens the store rooted at dir, or at the per-user default location
// when dir is empty, creating the directory if needed.
func New(dir string) (*Store, error) {
	var err error
	if dir == "" {
		dir, err = defaultDir()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	return &Store{
		dir:      dir,
		pidPath:  filepath.Join(dir, pidFileName),
		stopPath: filepath.Join(dir, stopFileName),
	}, nil
}

func defaultDir() (string, error) {
	if runtime.GOOS == "windows" {
		if root := os.Getenv("LOCALAPPDATA"); root != "" {
			return filepath.Join(root, "jigglercli"), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".jigglercli"), nil
}

// Dir returns the resolved state directory.
func (s *Store) Dir() string {
	return s.dir
}

// ReadPID returns the recorded worker PID. Absent, unreadable or garbage
// records all report "no PID"; this never fails.
func (s *Store) ReadPID() (int, bool) {
	data, err := os.ReadFile(s.pidPath)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// WritePID records pid as the active worker, replacing any prior record.
func (s *Store) WritePID(pid int) error {
	if err := os.WriteFile(s.pidPath, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("failed to write pid file: %w", err)
	}
	return nil
}

// ClearPID removes the PID record. Already absent is fine.
func (s *Store) ClearPID() error {
	return removeIfPresent(s.pidPath)
}

// HasStop reports whether a stop has been requested.
func (s *Store) HasStop() bool {
	_, err := os.Stat(s.stopPath)
	return err == nil
}

// SetStop requests a graceful stop. Idempotent.
func (s *Store) SetStop() error {
	if err := os.WriteFile(s.stopPath, nil, 0o644); err != nil {
		return fmt.Errorf("failed to create stop marker: %w", err)
	}
	return nil
}

// ClearStop removes the stop marker. Already absent is fine.
func (s *Store) ClearStop() error {
	return removeIfPresent(s.stopPath)
}

func removeIfPresent(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
