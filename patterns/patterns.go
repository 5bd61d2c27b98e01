package patterns

import "fmt"

// Pattern generates the relative movement for a given step. Implementations
// are pure functions of (step, amplitude): no hidden state, identical output
// for identical input, safe to call without synchronization.
type Pattern interface {
	// NextDelta returns the (dx, dy) offset for the given iteration.
	// Amplitude values below 1 are clamped to 1 rather than rejected.
	NextDelta(step, amplitude int) (dx, dy int)
}

// Square walks a small square so the pointer returns to its origin every
// four steps, bounding drift to a single cycle's offset at any time.
type Square struct{}

func (Square) NextDelta(step, amplitude int) (int, int) {
	if amplitude < 1 {
		amplitude = 1
	}
	switch step % 4 {
	case 0:
		return amplitude, 0
	case 1:
		return 0, amplitude
	case 2:
		return -amplitude, 0
	default:
		return 0, -amplitude
	}
}

// RandomCompensated perturbs the pointer along the 8-point compass with a
// magnitude derived from the step counter. Direction comes from a fixed
// multiplicative hash of the step rather than a global generator, so the
// sequence is reproducible regardless of call order. Every 17th step a
// second hash decides, with probability CompensateProb, to negate the
// delta, nudging cumulative drift back towards zero.
type RandomCompensated struct {
	// MaxDrift is the tolerated drift in pixels before compensation bias
	// applies. Must be >= 1.
	MaxDrift int

	// CompensateProb is the probability of flipping the delta on a
	// compensation step. Must be within [0, 1].
	CompensateProb float64
}

// NewRandomCompensated validates the tuning parameters.
func NewRandomCompensated(maxDrift int, compensateProb float64) (RandomCompensated, error) {
	if maxDrift < 1 {
		return RandomCompensated{}, fmt.Errorf("maxDrift must be >= 1, got %d", maxDrift)
	}
	if compensateProb < 0 || compensateProb > 1 {
		return RandomCompensated{}, fmt.Errorf("compensateProb must be in [0, 1], got %v", compensateProb)
	}
	return RandomCompensated{MaxDrift: maxDrift, CompensateProb: compensateProb}, nil
}

var compass = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func (r RandomCompensated) NextDelta(step, amplitude int) (int, int) {
	if amplitude < 1 {
		amplitude = 1
	}

	// Magnitude cycles 1..amplitude so no axis ever exceeds the amplitude.
	mag := 1 + step%amplitude

	idx := (step*1103515245 + 12345) & 0x7fffffff
	dir := compass[idx%len(compass)]
	dx, dy := dir[0]*mag, dir[1]*mag

	if step%17 == 0 {
		// Deterministic pseudo-probability in [0, 1) from a second hash.
		h := (uint64(step) * 2654435761) & 0xffffffff
		if float64(h)/(1<<32) < r.CompensateProb {
			dx, dy = -dx, -dy
		}
	}

	return dx, dy
}

// Names of the built-in strategies, accepted by the --pattern flag.
const (
	NameSquare = "square"
	NameRandom = "random"
)

// ForName resolves a strategy name to its implementation.
func ForName(name string) (Pattern, error) {
	switch name {
	case NameSquare, "":
		return Square{}, nil
	case NameRandom:
		return RandomCompensated{MaxDrift: 5, CompensateProb: 0.6}, nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
}
