package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-next/jigglercli/commands"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the jiggler worker status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			if statusJson {
				printJson(commands.NewErrorResponse(err))
			}
			return err
		}

		info := svc.Status()
		if statusJson {
			printJson(commands.NewSuccessResponse(info))
			return nil
		}

		if info.Running {
			fmt.Printf("Running (pid=%d) in %s\n", info.PID, info.StateDir)
		} else {
			fmt.Println("Not running.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusJson, "json", false, "print status as JSON")
}
