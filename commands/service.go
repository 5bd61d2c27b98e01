package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/mouse-next/jigglercli/config"
	"github.com/mouse-next/jigglercli/daemon"
	"github.com/mouse-next/jigglercli/mouse"
	"github.com/mouse-next/jigglercli/patterns"
	"github.com/mouse-next/jigglercli/power"
	"github.com/mouse-next/jigglercli/process"
	"github.com/mouse-next/jigglercli/state"
	"github.com/mouse-next/jigglercli/utils"
)

// ErrAlreadyRunning is returned by Start when a live worker is recorded
// and --force was not given.
var ErrAlreadyRunning = errors.New("already running")

const (
	// confirmAttempts x pollInterval bounds how long start waits for the
	// spawned worker to confirm itself via the PID file (~2s).
	confirmAttempts = 20

	// stopAttempts x pollInterval bounds how long stop waits for the
	// worker to disappear (~5s).
	stopAttempts = 50

	pollInterval = 100 * time.Millisecond

	// quantum is the longest single sleep inside the worker loop, so a
	// stop request or deadline is honored within one quantum.
	quantum = 200 * time.Millisecond
)

// Service coordinates the foreground commands and the background worker
// through the shared state store. All platform concerns arrive as ports,
// keeping the protocol itself free of OS code.
type Service struct {
	Store   *state.Store
	Probe   func(pid int) bool
	Spawn   func(args []string) (int, error)
	Mouse   mouse.Mover
	Inhibit power.Inhibitor

	// Sleep and Now default to the real clock; tests inject fakes.
	Sleep func(time.Duration)
	Now   func() time.Time
}

// NewService wires a Service with the real platform ports.
func NewService(store *state.Store) *Service {
	return &Service{
		Store:   store,
		Probe:   process.IsAlive,
		Spawn:   daemon.Spawn,
		Mouse:   mouse.NewSystemMover(),
		Inhibit: power.New(),
	}
}

func (s *Service) sleep(d time.Duration) {
	if s.Sleep != nil {
		s.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// StartStatus reports the outcome of Start.
type StartStatus struct {
	PID       int  `json:"pid,omitempty"`
	Confirmed bool `json:"confirmed"`
}

// Start spawns a detached worker unless one is already alive, then polls
// the store until the worker has confirmed itself by writing its PID.
// An unconfirmed launch is a soft failure, not an error.
func (s *Service) Start(cfg config.Config, force bool) (StartStatus, error) {
	if pid, ok := s.Store.ReadPID(); ok {
		switch {
		case s.Probe(pid) && !force:
			return StartStatus{}, fmt.Errorf("%w (pid=%d), use --force to override", ErrAlreadyRunning, pid)
		case s.Probe(pid):
			utils.Verbose("force start: discarding record for pid %d", pid)
			s.Store.ClearPID()
		default:
			// Stale record from a worker that died uncleanly.
			utils.Verbose("clearing stale pid record %d", pid)
			s.Store.ClearPID()
		}
	}

	hint, err := s.Spawn(s.runArgs(cfg))
	if err != nil {
		return StartStatus{}, err
	}
	utils.Verbose("spawned worker, pid hint %d", hint)

	for i := 0; i < confirmAttempts; i++ {
		s.sleep(pollInterval)
		if pid, ok := s.Store.ReadPID(); ok && s.Probe(pid) {
			return StartStatus{PID: pid, Confirmed: true}, nil
		}
	}
	return StartStatus{PID: hint, Confirmed: false}, nil
}

// runArgs rebuilds the worker invocation from the resolved config, using
// the canonical spec forms so the worker parses back identical values.
func (s *Service) runArgs(cfg config.Config) []string {
	args := []string{
		os.Args[0], "run",
		"--interval", cfg.Interval.Spec(),
		"--amplitude", strconv.Itoa(cfg.Amplitude.Pixels()),
		"--state-dir", s.Store.Dir(),
	}
	if !cfg.Duration.IsInfinite() {
		args = append(args, "--duration", cfg.Duration.Spec())
	}
	if cfg.Pattern != "" {
		args = append(args, "--pattern", cfg.Pattern)
	}
	return args
}

// Run executes the movement loop in the foreground of the worker process.
// It registers its own PID before the first movement, honors the stop
// marker and the optional deadline within one quantum, and clears both
// state files on every exit path, including signals.
func (s *Service) Run(cfg config.Config) error {
	pat, err := patterns.ForName(cfg.Pattern)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidSpec, err)
	}

	pid := os.Getpid()
	if err := s.Store.WritePID(pid); err != nil {
		return err
	}
	s.Store.ClearStop()

	// Signals feed the same cancellation token the loop already polls,
	// so there is a single cleanup path regardless of trigger.
	var cancelled atomic.Bool
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancelled.Store(true)
	}()

	defer func() {
		s.Store.ClearPID()
		s.Store.ClearStop()
	}()

	if s.Inhibit != nil {
		if err := s.Inhibit.Acquire(); err != nil {
			utils.Warn("sleep inhibition unavailable: %v", err)
		}
		defer s.Inhibit.Release()
	}

	runID := uuid.NewString()
	utils.Info("worker %s started: pid=%d interval=%s amplitude=%s duration=%s pattern=%s",
		runID, pid, cfg.Interval, cfg.Amplitude, cfg.Duration, cfg.Pattern)

	var deadline time.Time
	if !cfg.Duration.IsInfinite() {
		deadline = s.now().Add(cfg.Duration.Duration())
	}

	interval := cfg.Interval.Duration()
	amplitude := cfg.Amplitude.Pixels()

	for step := 0; ; step++ {
		switch {
		case cancelled.Load():
			utils.Info("worker %s exiting on signal", runID)
			return nil
		case s.Store.HasStop():
			utils.Info("worker %s exiting on stop request", runID)
			return nil
		case !deadline.IsZero() && !s.now().Before(deadline):
			utils.Info("worker %s exiting on deadline", runID)
			return nil
		}

		dx, dy := pat.NextDelta(step, amplitude)
		if err := s.Mouse.Move(dx, dy); err != nil {
			// Transient: a single failed injection never ends the session.
			utils.Verbose("move failed at step %d: %v", step, err)
		}

		s.sleepInterruptible(interval, &cancelled, deadline)
	}
}

// sleepInterruptible sleeps for total, sliced into quanta, returning
// early when a stop request, signal or the deadline arrives.
func (s *Service) sleepInterruptible(total time.Duration, cancelled *atomic.Bool, deadline time.Time) {
	for remaining := total; remaining > 0; remaining -= quantum {
		slice := remaining
		if slice > quantum {
			slice = quantum
		}
		s.sleep(slice)

		if cancelled.Load() || s.Store.HasStop() {
			return
		}
		if !deadline.IsZero() && !s.now().Before(deadline) {
			return
		}
	}
}

// StopStatus reports the outcome of Stop.
type StopStatus struct {
	WasRunning bool `json:"wasRunning"`
	Stopped    bool `json:"stopped"`
	PID        int  `json:"pid,omitempty"`
}

// Stop requests a graceful shutdown via the stop marker and waits for the
// recorded worker to disappear. Nothing running is success; a worker that
// outlives the polling window is a soft failure with no forced kill.
func (s *Service) Stop() (StopStatus, error) {
	pid, ok := s.Store.ReadPID()
	if !ok || !s.Probe(pid) {
		s.Store.ClearPID()
		s.Store.ClearStop()
		return StopStatus{WasRunning: false, Stopped: true}, nil
	}

	if err := s.Store.SetStop(); err != nil {
		return StopStatus{WasRunning: true, PID: pid}, err
	}
	for i := 0; i < stopAttempts; i++ {
		if !s.Probe(pid) {
			s.Store.ClearPID()
			s.Store.ClearStop()
			return StopStatus{WasRunning: true, Stopped: true, PID: pid}, nil
		}
		s.sleep(pollInterval)
	}
	return StopStatus{WasRunning: true, Stopped: false, PID: pid}, nil
}

// StatusInfo reports the externally observable worker state.
type StatusInfo struct {
	Running  bool   `json:"running"`
	PID      int    `json:"pid,omitempty"`
	StateDir string `json:"stateDir"`
}

// Status is read-only: it reports Running only when the recorded PID
// probes alive, and mutates nothing even when the record is stale.
func (s *Service) Status() StatusInfo {
	info := StatusInfo{StateDir: s.Store.Dir()}
	if pid, ok := s.Store.ReadPID(); ok && s.Probe(pid) {
		info.Running = true
		info.PID = pid
	}
	return info
}
