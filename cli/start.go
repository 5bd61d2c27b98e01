package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-next/jigglercli/config"
	"github.com/mouse-next/jigglercli/patterns"
	"github.com/mouse-next/jigglercli/utils"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the background jiggler worker",
	Long:  `Spawns a detached worker process that periodically moves the mouse, then waits for it to confirm itself.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		// Flags win; config.ini in the state directory fills in the rest.
		defaults, err := config.LoadDefaults(svc.Store.Dir())
		if err != nil {
			utils.Warn("ignoring unreadable config.ini: %v", err)
		}
		applyStartDefaults(cmd, defaults)

		cfg, err := parseConfig(intervalSpec, amplitude, durationSpec, patternName)
		if err != nil {
			return err
		}

		status, err := svc.Start(cfg, startForce)
		if err != nil {
			return err
		}

		if status.Confirmed {
			fmt.Printf("Started mouse jiggler (pid=%d).\n", status.PID)
		} else {
			fmt.Fprintln(os.Stderr, "Launched, but PID not confirmed. Use `status` to check.")
		}
		return nil
	},
}

// applyStartDefaults fills the shared flag vars from config.ini values
// for any flag the user did not set explicitly.
func applyStartDefaults(cmd *cobra.Command, defaults config.Defaults) {
	if !cmd.Flags().Changed("interval") && defaults.Interval != "" {
		intervalSpec = defaults.Interval
	}
	if !cmd.Flags().Changed("amplitude") && defaults.Amplitude > 0 {
		amplitude = defaults.Amplitude
	}
	if !cmd.Flags().Changed("duration") && defaults.Duration != "" {
		durationSpec = defaults.Duration
	}
	if !cmd.Flags().Changed("pattern") && defaults.Pattern != "" {
		patternName = defaults.Pattern
	}
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVar(&intervalSpec, "interval", "30s", "time between movements, e.g. 500ms, 2s, 1m")
	startCmd.Flags().IntVar(&amplitude, "amplitude", 1, "movement size in pixels")
	startCmd.Flags().StringVar(&durationSpec, "duration", "", "total running time, e.g. 15m, 2h (default: until stopped)")
	startCmd.Flags().StringVar(&patternName, "pattern", patterns.NameSquare, "movement pattern: square or random")
	startCmd.Flags().BoolVar(&startForce, "force", false, "start even if a running worker is recorded")
}
