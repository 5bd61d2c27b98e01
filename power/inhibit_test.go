package power

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsPlatformInhibitor(t *testing.T) {
	inhibitor := New()
	require.NotNil(t, inhibitor)
}

func TestRelease_SafeWithoutAcquire(t *testing.T) {
	// The worker releases unconditionally on exit, including paths where
	// Acquire failed, so Release must tolerate both cases.
	inhibitor := New()
	inhibitor.Release()
	inhibitor.Release()
}
