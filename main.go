package main

import (
	"fmt"
	"os"

	"github.com/mouse-next/jigglercli/cli"
)

func main() {
	// The worker's own signal handling lives inside the run command, so
	// that SIGINT/SIGTERM funnel into the same cleanup path as a stop
	// request. Nothing to intercept here.
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
