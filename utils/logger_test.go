package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVerbose_TogglesLevel(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)

	SetVerbose(true)
	assert.True(t, IsVerbose())
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	SetVerbose(false)
	assert.False(t, IsVerbose())
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestLogToFile(t *testing.T) {
	defer logger.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "jigglercli.log")
	LogToFile(path)

	Info("worker started pid=%d", 1234)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "worker started pid=1234")
}

func TestLogHelpers_DoNotPanic(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)

	SetVerbose(true)
	Verbose("verbose %s %d", "arg", 42)
	Info("info %s", "message")
	Warn("warn %v", struct{}{})
}
