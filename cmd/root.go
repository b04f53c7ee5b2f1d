package cmd

import (
	"fmt"
	"os"

	"devserve/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Running it with no arguments serves the working directory on port 8000.
var RootCmd = NewRootCmd()

// NewRootCmd builds the devserve command with its flags.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devserve",
		Short: "Serve the current directory over HTTP",
		Long: `devserve starts a static file server for the current working directory
and opens the default web browser at it. Press Ctrl+C to stop.`,
		Args:          cobra.NoArgs,
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.IntP("port", "p", 0, "port to listen on (default 8000, env SERVER_PORT)")
	flags.Bool("no-browser", false, "do not open the default browser")
	flags.String("log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.String("log-format", "", "log format: console or json (env LOG_FORMAT)")

	return cmd
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 timestamps on stderr
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
