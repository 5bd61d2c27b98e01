package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-next/jigglercli/daemon"
	"github.com/mouse-next/jigglercli/utils"
)

var runCmd = &cobra.Command{
	Use:    "run",
	Short:  "Run the movement loop in the foreground (internal)",
	Long:   `Executes the movement loop in the current process. Invoked by the launcher; not intended for direct use.`,
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		// A spawned worker has no terminal, so its logs go to a rotated
		// file next to the state it manages. A manual foreground `run`
		// keeps stderr for debugging.
		if daemon.IsChild() {
			utils.LogToFile(filepath.Join(svc.Store.Dir(), "jigglercli.log"))
		}

		cfg, err := parseConfig(intervalSpec, amplitude, durationSpec, patternName)
		if err != nil {
			return err
		}
		return svc.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Defaults match the start command: these vars are shared, and pflag
	// writes the default into the bound var at registration time.
	runCmd.Flags().StringVar(&intervalSpec, "interval", "30s", "time between movements")
	runCmd.Flags().IntVar(&amplitude, "amplitude", 1, "movement size in pixels")
	runCmd.Flags().StringVar(&durationSpec, "duration", "", "total running time")
	runCmd.Flags().StringVar(&patternName, "pattern", "square", "movement pattern")

	_ = runCmd.MarkFlagRequired("interval")
	_ = runCmd.MarkFlagRequired("amplitude")
}
