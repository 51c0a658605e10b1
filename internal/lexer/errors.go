package lexer

import (
	"fmt"
)

type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) GetMessage() string {
	return fmt.Sprintf("invalid character: '%s'", escapeByte(e.Char))
}

func (e *InvalidCharacterError) Error() string {
	return e.GetMessage()
}

type IntegerOverflowError struct {
	Literal string
}

func (e *IntegerOverflowError) GetMessage() string {
	return fmt.Sprintf("integer literal overflows u64: %s", e.Literal)
}

func (e *IntegerOverflowError) Error() string {
	return e.GetMessage()
}
