package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidSpec is returned when a user-supplied interval, duration,
// amplitude or pattern spec cannot be parsed or violates its bounds.
var ErrInvalidSpec = errors.New("invalid spec")

// ParseTimeSpec converts a human-readable time spec into seconds.
// Recognized suffixes are "ms", "s", "m" and "h"; a bare number is seconds.
//
//	"500ms" -> 0.5
//	"2s"    -> 2.0
//	"3m"    -> 180.0
//	"1h"    -> 3600.0
//	"5"     -> 5.0
func ParseTimeSpec(spec string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return 0, fmt.Errorf("%w: time spec is empty", ErrInvalidSpec)
	}

	scale := 1.0
	switch {
	case strings.HasSuffix(s, "ms"):
		s, scale = s[:len(s)-2], 1.0/1000.0
	case strings.HasSuffix(s, "s"):
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "m"):
		s, scale = s[:len(s)-1], 60.0
	case strings.HasSuffix(s, "h"):
		s, scale = s[:len(s)-1], 3600.0
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad time spec %q", ErrInvalidSpec, spec)
	}
	return value * scale, nil
}

// Interval is the time between movement steps, always positive.
type Interval struct {
	seconds float64
}

// NewInterval parses a time spec into an Interval. Zero or negative
// values are rejected.
func NewInterval(spec string) (Interval, error) {
	secs, err := ParseTimeSpec(spec)
	if err != nil {
		return Interval{}, err
	}
	if secs <= 0 {
		return Interval{}, fmt.Errorf("%w: interval must be > 0 seconds, got %v", ErrInvalidSpec, secs)
	}
	return Interval{seconds: secs}, nil
}

func (i Interval) Seconds() float64 {
	return i.seconds
}

// Duration returns the interval as a time.Duration for sleeping.
func (i Interval) Duration() time.Duration {
	return time.Duration(i.seconds * float64(time.Second))
}

// String renders a rounded human-friendly form for display.
func (i Interval) String() string {
	return fmt.Sprintf("%.3fs", i.seconds)
}

// Spec renders the lossless canonical form. This is what gets embedded
// into the worker argv, so it must parse back to the exact value;
// rounding here would corrupt sub-millisecond intervals in transit.
func (i Interval) Spec() string {
	return strconv.FormatFloat(i.seconds, 'g', -1, 64) + "s"
}

// Duration is the total running time of a session. The zero-duration
// sentinel (no spec supplied) means "run until stopped".
type Duration struct {
	seconds  float64
	infinite bool
}

// NewDuration parses a time spec into a Duration. An empty spec maps to
// the infinite sentinel; an explicit zero or negative value is an error.
func NewDuration(spec string) (Duration, error) {
	if strings.TrimSpace(spec) == "" {
		return InfiniteDuration(), nil
	}
	secs, err := ParseTimeSpec(spec)
	if err != nil {
		return Duration{}, err
	}
	if secs <= 0 {
		return Duration{}, fmt.Errorf("%w: duration must be > 0 seconds, got %v", ErrInvalidSpec, secs)
	}
	return Duration{seconds: secs}, nil
}

// InfiniteDuration returns the "run until stopped" sentinel.
func InfiniteDuration() Duration {
	return Duration{infinite: true}
}

func (d Duration) IsInfinite() bool {
	return d.infinite
}

func (d Duration) Seconds() float64 {
	return d.seconds
}

// Duration returns the finite value as a time.Duration. Callers must
// check IsInfinite first; the sentinel maps to zero.
func (d Duration) Duration() time.Duration {
	return time.Duration(d.seconds * float64(time.Second))
}

func (d Duration) String() string {
	if d.infinite {
		return "infinite"
	}
	return fmt.Sprintf("%.3fs", d.seconds)
}

// Spec renders the lossless canonical form of a finite duration for the
// worker argv. The infinite sentinel is never embedded.
func (d Duration) Spec() string {
	if d.infinite {
		return "infinite"
	}
	return strconv.FormatFloat(d.seconds, 'g', -1, 64) + "s"
}

// Amplitude is the pixel magnitude of a single movement, at least 1.
type Amplitude struct {
	pixels int
}

// NewAmplitude validates a pixel count.
func NewAmplitude(pixels int) (Amplitude, error) {
	if pixels <= 0 {
		return Amplitude{}, fmt.Errorf("%w: amplitude must be >= 1, got %d", ErrInvalidSpec, pixels)
	}
	return Amplitude{pixels: pixels}, nil
}

func (a Amplitude) Pixels() int {
	return a.pixels
}

func (a Amplitude) String() string {
	return fmt.Sprintf("%dpx", a.pixels)
}

// Config is the immutable per-invocation configuration, built once from
// parsed specs and passed by value into the service. Pattern is the
// canonical strategy name resolved by the patterns package.
type Config struct {
	Interval  Interval
	Amplitude Amplitude
	Duration  Duration
	Pattern   string
}
