package cmd

import "fmt"

// ExitCodeError carries a child process exit code up through cobra's error
// return so main can propagate it to the operating system.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError creates an ExitCodeError with the given code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

// Error implements the error interface.
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
