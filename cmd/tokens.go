package main

import (
	"fmt"

	"github.com/kievzenit/amp/internal/compiler_errors"
	"github.com/kievzenit/amp/internal/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Print the token stream of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, src, err := readSource(cmd, args)
		if err != nil {
			return err
		}

		eh := compiler_errors.NewErrorHandler(cmd.ErrOrStderr())

		tokens, err := lexer.NewLexer(src).Tokenize()
		for _, token := range tokens {
			fmt.Fprintln(cmd.OutOrStdout(), token.String())
			if token.Kind == lexer.INVALID {
				eh.AddError(&lexer.InvalidCharacterError{Char: token.Value[0]})
			}
		}
		eh.AddError(err)

		if !eh.HasErrors() {
			return nil
		}

		eh.Report()
		return errReported
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
