package daemon

import (
	"fmt"
	"os"

	godaemon "github.com/sevlyar/go-daemon"
)

// ChildEnvVar marks a process spawned by Spawn. The worker argv points the
// child straight at the internal "run" subcommand, so the marker is only a
// guard against accidental re-spawning.
const ChildEnvVar = "JIGGLERCLI_DAEMON_CHILD"

// Spawn launches args as a fully detached process: new session, stdio
// redirected away from the terminal, working directory moved off the
// caller's cwd. It does not wait for the child; the returned pid is a
// hint, the PID file written by the worker itself is authoritative.
func Spawn(args []string) (int, error) {
	ctx := &godaemon.Context{
		WorkDir: "/",
		Umask:   027,
		Args:    args,
		Env:     append(os.Environ(), ChildEnvVar+"=1"),
	}

	child, err := ctx.Reborn()
	if err != nil {
		return 0, fmt.Errorf("failed to spawn worker: %w", err)
	}
	if child == nil {
		// Reborn was called inside an already-detached child.
		return os.Getpid(), nil
	}
	return child.Pid, nil
}

// IsChild returns true inside a process created by Spawn.
func IsChild() bool {
	return os.Getenv(ChildEnvVar) == "1"
}
