package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquare_ZeroNetDisplacement(t *testing.T) {
	// Any window of 4 consecutive steps must sum to (0, 0), regardless of
	// where it starts.
	for _, amplitude := range []int{1, 2, 5, 17} {
		for start := 0; start < 8; start++ {
			var sumX, sumY int
			for step := start; step < start+4; step++ {
				dx, dy := Square{}.NextDelta(step, amplitude)
				sumX += dx
				sumY += dy
			}
			assert.Zero(t, sumX, "amplitude=%d start=%d", amplitude, start)
			assert.Zero(t, sumY, "amplitude=%d start=%d", amplitude, start)
		}
	}
}

func TestSquare_Cycle(t *testing.T) {
	want := [4][2]int{{3, 0}, {0, 3}, {-3, 0}, {0, -3}}
	for step, expected := range want {
		dx, dy := Square{}.NextDelta(step, 3)
		assert.Equal(t, expected[0], dx, "step %d", step)
		assert.Equal(t, expected[1], dy, "step %d", step)
	}
}

func TestSquare_ClampsAmplitude(t *testing.T) {
	dx, dy := Square{}.NextDelta(0, 0)
	assert.Equal(t, 1, dx)
	assert.Zero(t, dy)

	dx, _ = Square{}.NextDelta(0, -5)
	assert.Equal(t, 1, dx)
}

func TestRandomCompensated_Deterministic(t *testing.T) {
	pat := RandomCompensated{MaxDrift: 5, CompensateProb: 0.6}
	for step := 0; step < 200; step++ {
		dx1, dy1 := pat.NextDelta(step, 4)
		dx2, dy2 := pat.NextDelta(step, 4)
		assert.Equal(t, dx1, dx2, "step %d", step)
		assert.Equal(t, dy1, dy2, "step %d", step)
	}
}

func TestRandomCompensated_MagnitudeBound(t *testing.T) {
	pat := RandomCompensated{MaxDrift: 5, CompensateProb: 0.6}
	for _, amplitude := range []int{1, 2, 7} {
		for step := 0; step < 500; step++ {
			dx, dy := pat.NextDelta(step, amplitude)
			assert.LessOrEqual(t, abs(dx), amplitude, "step %d amplitude %d", step, amplitude)
			assert.LessOrEqual(t, abs(dy), amplitude, "step %d amplitude %d", step, amplitude)
			assert.False(t, dx == 0 && dy == 0, "step %d produced no movement", step)
		}
	}
}

func TestRandomCompensated_ClampsAmplitude(t *testing.T) {
	pat := RandomCompensated{MaxDrift: 5, CompensateProb: 0.6}
	dx, dy := pat.NextDelta(3, 0)
	assert.LessOrEqual(t, abs(dx), 1)
	assert.LessOrEqual(t, abs(dy), 1)
}

func TestNewRandomCompensated_Validation(t *testing.T) {
	_, err := NewRandomCompensated(0, 0.6)
	assert.Error(t, err)

	_, err = NewRandomCompensated(5, 1.5)
	assert.Error(t, err)

	_, err = NewRandomCompensated(5, -0.1)
	assert.Error(t, err)

	pat, err := NewRandomCompensated(5, 0.6)
	require.NoError(t, err)
	assert.Equal(t, 5, pat.MaxDrift)
}

func TestForName(t *testing.T) {
	pat, err := ForName("square")
	require.NoError(t, err)
	assert.IsType(t, Square{}, pat)

	pat, err = ForName("random")
	require.NoError(t, err)
	assert.IsType(t, RandomCompensated{}, pat)

	// Empty defaults to square so the internal run command stays lenient.
	pat, err = ForName("")
	require.NoError(t, err)
	assert.IsType(t, Square{}, pat)

	_, err = ForName("zigzag")
	assert.Error(t, err)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
