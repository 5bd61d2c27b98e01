package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults_MissingFile(t *testing.T) {
	defaults, err := LoadDefaults(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Defaults{}, defaults)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	contents := `[jiggler]
interval  = 45s
amplitude = 2
duration  = 2h
pattern   = random
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte(contents), 0o644))

	defaults, err := LoadDefaults(dir)
	require.NoError(t, err)
	assert.Equal(t, Defaults{
		Interval:  "45s",
		Amplitude: 2,
		Duration:  "2h",
		Pattern:   "random",
	}, defaults)
}

func TestLoadDefaults_PartialFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte("[jiggler]\ninterval = 1m\n"), 0o644))

	defaults, err := LoadDefaults(dir)
	require.NoError(t, err)
	assert.Equal(t, "1m", defaults.Interval)
	assert.Zero(t, defaults.Amplitude)
	assert.Empty(t, defaults.Duration)
}
