package main

import (
	"github.com/kievzenit/amp/internal/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	session := repl.New(cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return session.Run(cmd.Context(), Version)
}

func init() {
	rootCmd.AddCommand(replCmd)
}
