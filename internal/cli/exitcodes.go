package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, priority not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparseable deadlines, unreadable stdin.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, unknown priorities,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code out of a command's RunE
type ExitCodeError struct {
	Code int
	Err  error

	// reported is set once the formatter has shown the error to the user
	reported bool
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so ExitCode reports code for it
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to the process exit code
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

// Reported tells whether err was already shown to the user by an OutputFormatter
func Reported(err error) bool {
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr) && exitErr.reported
}
