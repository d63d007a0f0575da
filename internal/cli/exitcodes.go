package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, failed saves, or any error that doesn't fit
	// the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, missing required flags, or invalid flag
	// combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Column or task ids that are not on the board.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Negative positions or any input that fails validation rules.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// The message has already been printed when Reported is set.
type ExitCodeError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to the exit code of the process
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// ExactArgs is cobra.ExactArgs reporting ExitUsage
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &ExitCodeError{Code: ExitUsage, Err: err}
		}
		return nil
	}
}

// NoArgs is cobra.NoArgs reporting ExitUsage
func NoArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &ExitCodeError{Code: ExitUsage, Err: err}
	}
	return nil
}

// Fail prints the error through the formatter and returns it with its exit code
func Fail(f *OutputFormatter, exitCode int, code string, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: exitCode, Err: err, Reported: true}
}

func failWithSuggestion(f *OutputFormatter, exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: exitCode, Err: err, Reported: true}
}
