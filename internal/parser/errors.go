package parser

import (
	"fmt"

	"github.com/kievzenit/amp/internal/lexer"
)

// UnexpectedTokenError is returned when a required terminal is missing at a
// fixed grammar position.
type UnexpectedTokenError struct {
	Expected lexer.TokenKind
	Found    lexer.Token
}

func (e *UnexpectedTokenError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s', expected: '%s'", e.Found.Literal(), e.Expected.Symbol())
}

func (e *UnexpectedTokenError) Error() string {
	return e.GetMessage()
}

// MissingExpressionError is returned when a position that must hold an
// expression holds a token that cannot start one.
type MissingExpressionError struct {
	Context string
	Found   lexer.Token
}

func (e *MissingExpressionError) GetMessage() string {
	return fmt.Sprintf("missing expression for %s, got: '%s'", e.Context, e.Found.Literal())
}

func (e *MissingExpressionError) Error() string {
	return e.GetMessage()
}
