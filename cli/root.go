package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mouse-next/jigglercli/commands"
	"github.com/mouse-next/jigglercli/config"
	"github.com/mouse-next/jigglercli/state"
	"github.com/mouse-next/jigglercli/utils"
)

const version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jigglercli",
	Short: "A terminal-controlled mouse jiggler",
	Long:  `Keeps a desktop session active by emitting small mouse movements from a detached background worker.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func initConfig() {
	utils.SetVerbose(verbose)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "override the state directory")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error from Execute to the process exit code: 2 for an
// invalid spec, 1 for a refused start or any other failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalidSpec):
		return 2
	default:
		return 1
	}
}

// newService builds the service with real ports, honoring --state-dir.
func newService() (*commands.Service, error) {
	store, err := state.New(stateDir)
	if err != nil {
		return nil, err
	}
	return commands.NewService(store), nil
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(jsonData))
}
