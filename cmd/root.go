package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kievzenit/amp/internal/config"
	"github.com/kievzenit/amp/internal/logs"
	"github.com/spf13/cobra"
)

// errReported means the failure was already written through an ErrorHandler.
var errReported = errors.New("errors reported")

var (
	cfgFile  string
	logLevel string
	verbose  bool

	cfg      *config.Config
	logger   logs.Logger
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "amp",
	Short: "amp language front end",
	Long: `amp scans and parses programs written in a small expression language
with let bindings, integers, booleans, if/else, first-class functions
and calls.

Without a subcommand amp starts an interactive session.`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			return closeLog()
		}
		return nil
	},
	RunE: runRepl,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $AMP_CONFIG, ./amp.toml or ~/.config/amp/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace the parser (same as --log-level debug)")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadFrom(cfgFile)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}
	if err := logs.SetLevel(level); err != nil {
		return err
	}

	logger, closeLog, err = logs.New(cmd.ErrOrStderr(), cfg.Log.File)
	if err != nil {
		return err
	}

	logger.Debug("configured", "config", config.Resolve(cfgFile), "level", level, "style", cfg.Output.Style)
	return nil
}

// readSource reads the named file, or stdin for "" and "-".
func readSource(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, err
	}
	return args[0], data, nil
}
