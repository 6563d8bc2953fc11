// Command linegraph serves the line graph lesson to browsers and drives it from a clicker or a script.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"linegraph/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags, serialFlags, replayFlags := config.DefaultFlags()

	cmd := &cobra.Command{
		Use:          "linegraph",
		Short:        "Line Graph Masterclass: step-by-step scientific graphing lessons",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "text or json")

	cmd.AddCommand(
		serveCmd(flags, serialFlags, replayFlags),
		datasetsCmd(),
		renderCmd(),
	)
	return cmd
}
