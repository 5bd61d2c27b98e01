package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Signal the jiggler worker to stop",
	Long:  `Sets the stop marker and waits for the recorded worker process to exit.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		status, err := svc.Stop()
		if err != nil {
			return err
		}

		switch {
		case !status.WasRunning:
			fmt.Println("Not running.")
		case status.Stopped:
			fmt.Println("Stopped.")
		default:
			fmt.Fprintf(os.Stderr, "Stop requested but process %d is still alive. Kill manually if needed.\n", status.PID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
