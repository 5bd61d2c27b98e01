package process

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAlive_Self(t *testing.T) {
	assert.True(t, IsAlive(os.Getpid()))
}

func TestIsAlive_InvalidPID(t *testing.T) {
	assert.False(t, IsAlive(0))
	assert.False(t, IsAlive(-1))
}

func TestIsAlive_ExitedProcess(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=TestNothingMatchesThis")
	require.NoError(t, cmd.Start())
	pid := cmd.Process.Pid
	require.NoError(t, cmd.Wait())

	assert.False(t, IsAlive(pid))
}
