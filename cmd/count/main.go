package main

import (
	"fmt"
	"os"

	"count/internal/config"
	"count/internal/driver"
	"count/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the global flags.
type rootOptions struct {
	configPath string
	verbose    bool
}

// newRootCmd builds the count command.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "count [n ...]",
		Short: "Print ascending counting lines",
		Long: `Prints one line per argument, each counting from 1 up to that argument:

  $ count
  1 2 3 4 5
  1 2 3 4
  1 2 3
  1 2
  1

Without arguments the sequence comes from the config file (args), which
defaults to 5 4 3 2 1. Positional arguments replace that sequence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Config file (YAML); a missing file uses defaults")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

func runCount(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if len(args) > 0 {
		if cfg.Args, err = config.ParseArgs(args); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logging.WithRun(logger)

	logging.For(logger, logging.CategoryBoot).Debug("Starting count",
		zap.String("config", opts.configPath),
		zap.Ints("args", cfg.Args),
		zap.Int("max_n", cfg.MaxN),
	)

	d := driver.New(logging.For(logger, logging.CategoryDriver), driver.WithMaxN(cfg.MaxN))
	return d.Run(cmd.OutOrStdout(), cfg.Args)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
