package cli

import (
	"errors"
	"fmt"
)

// Argument errors reported before any unit parsing happens.
var (
	ErrWrongArgCount  = errors.New("wrong number of arguments")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrDivisionByZero = errors.New("division by zero")
)

// ExitError carries a process exit code out of a command. main resolves it
// with errors.As; any other error exits with code 1.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code: 0 for nil, the embedded code for
// an *ExitError anywhere in the chain, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
