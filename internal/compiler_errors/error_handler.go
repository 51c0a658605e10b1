package compiler_errors

import (
	"errors"
	"fmt"
	"io"
)

type CompilerError interface {
	error
	GetMessage() string
}

// ErrorHandler collects errors and reports them. It never terminates the process;
// the caller decides what a failed parse means.
type ErrorHandler interface {
	AddError(err error)
	HasErrors() bool
	Report() int
}

type CompilerErrorHandler struct {
	errors []error
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]error, 0),
		writer: outputWriter,
	}
}

func (eh *CompilerErrorHandler) AddError(err error) {
	if err == nil {
		return
	}

	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

// Report writes every collected error and returns how many there were.
func (eh *CompilerErrorHandler) Report() int {
	if len(eh.errors) == 0 {
		return 0
	}

	fmt.Fprintln(eh.writer, "Build failed with errors:")

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", Message(err))
	}

	return len(eh.errors)
}

// Message prefers the CompilerError text found anywhere in err's chain.
func Message(err error) string {
	var ce CompilerError
	if errors.As(err, &ce) {
		return ce.GetMessage()
	}

	return err.Error()
}
