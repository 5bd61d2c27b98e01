package cli

import (
	"fmt"

	"github.com/mouse-next/jigglercli/config"
	"github.com/mouse-next/jigglercli/patterns"
)

// parseConfig validates the spec flags into an immutable Config. Any
// failure here maps to exit code 2.
func parseConfig(intervalSpec string, amplitude int, durationSpec, patternName string) (config.Config, error) {
	interval, err := config.NewInterval(intervalSpec)
	if err != nil {
		return config.Config{}, err
	}
	amp, err := config.NewAmplitude(amplitude)
	if err != nil {
		return config.Config{}, err
	}
	duration, err := config.NewDuration(durationSpec)
	if err != nil {
		return config.Config{}, err
	}
	if _, err := patterns.ForName(patternName); err != nil {
		return config.Config{}, fmt.Errorf("%w: %v", config.ErrInvalidSpec, err)
	}

	return config.Config{
		Interval:  interval,
		Amplitude: amp,
		Duration:  duration,
		Pattern:   patternName,
	}, nil
}
