package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"go-trade-dashboard/internal/config"
	"go-trade-dashboard/internal/logging"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type rootOptions struct {
	ConfigPath string
	LogLevel   string
	Dataset    string
}

type cliContextKey struct{}

// cliContext carries the loaded configuration and logger to subcommands
type cliContext struct {
	Config *config.Config
	Logger logging.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Bilateral trade-flow dashboard",
		Long:    "Serves a trade-flow dashboard: pick a year and an exporting country to see\nits trade partners on a flow map and a ranked bar chart.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c, err := getCLIContext(cmd); err == nil {
				_ = c.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (yaml, json or toml)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	pf.StringVar(&opts.Dataset, "dataset", "", "override dataset.path (file or http(s) URL)")

	cmd.AddCommand(
		newServeCommand(),
		newReportCommand(),
		newOptionsCommand(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.Dataset != "" {
		cfg.Dataset.Path = opts.Dataset
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, &cliContext{Config: cfg, Logger: log}))
	return nil
}

func getCLIContext(cmd *cobra.Command) (*cliContext, error) {
	if ctx := cmd.Context(); ctx != nil {
		if c, ok := ctx.Value(cliContextKey{}).(*cliContext); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("cli context not initialized")
}
