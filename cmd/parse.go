package main

import (
	"fmt"

	"github.com/kievzenit/amp/internal/compiler_errors"
	"github.com/kievzenit/amp/internal/config"
	"github.com/kievzenit/amp/internal/parser"
	"github.com/kievzenit/amp/internal/repl"
	"github.com/spf13/cobra"
)

var parseStyle string

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a program and print its syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, src, err := readSource(cmd, args)
		if err != nil {
			return err
		}

		style := cfg.Output.Style
		if parseStyle != "" {
			style = parseStyle
		}
		if style != config.StyleLitter && style != config.StyleCompact {
			return fmt.Errorf("unknown style %q", style)
		}

		stmts, err := parser.Parse(string(src), parser.WithLogger(logger.With("file", name)))
		if err != nil {
			eh := compiler_errors.NewErrorHandler(cmd.ErrOrStderr())
			eh.AddError(err)
			eh.Report()
			return errReported
		}

		logger.Debug("parsed", "file", name, "stmts", len(stmts))
		fmt.Fprintln(cmd.OutOrStdout(), repl.Format(stmts, style))
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseStyle, "style", "s", "", "output style: litter or compact (default from config)")
	rootCmd.AddCommand(parseCmd)
}
