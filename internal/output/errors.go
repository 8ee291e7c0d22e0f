package output

import "errors"

// Exit codes. Every failure exits 1; exec passes the child's own code through.
const (
	ExitOK      = 0 // Success
	ExitGeneral = 1 // Any failure
)

// CLIError represents a structured error with exit code and optional hint
type CLIError struct {
	ExitCode int
	Message  string
	Hint     string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a new CLIError
func NewCLIError(code int, msg string) *CLIError {
	return &CLIError{
		ExitCode: code,
		Message:  msg,
	}
}

// WithHint adds a user-facing hint to the error
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// Silent reports whether there is nothing to print, as when exec only
// passes on a child's exit code.
func (e *CLIError) Silent() bool {
	return e.Message == "" && e.Hint == ""
}

// Report prints err through the formatter and returns the exit code to use.
func Report(formatter Formatter, err error) int {
	if err == nil {
		return ExitOK
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if !cliErr.Silent() {
			formatter.PrintError(cliErr)
			if cliErr.Hint != "" {
				formatter.PrintHint(cliErr.Hint)
			}
		}
		return cliErr.ExitCode
	}

	formatter.PrintError(err)
	return ExitGeneral
}
