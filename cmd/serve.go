package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"devserve/core/browser"
	"devserve/core/config"
	"devserve/core/launcher"
	"devserve/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Document root is the working directory at launch
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	// 4. Serve until interrupted
	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := launcher.New(launcher.Config{
		Server:      cfg.Server,
		Root:        root,
		OpenBrowser: cfg.Browser.Enabled,
	}, browser.NewSystem(), cmd.OutOrStdout(), logg)

	return l.Run(ctx)
}

// applyFlags overrides configuration with flags set explicitly on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("no-browser") {
		noBrowser, _ := flags.GetBool("no-browser")
		cfg.Browser.Enabled = !noBrowser
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
}

// contextOrBackground returns a background context when the command has none.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
