package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes shared across commands. Analysis outcomes map to
// ExitMatch (count mode found matches, summary saw mapped levels);
// bad patterns, levels, flags, and time bounds map to ExitUsage.
const (
	ExitOK    = 0
	ExitMatch = 1
	ExitUsage = 2
)

// ExitError carries a process exit code out of a command. Err may be
// nil when the code reflects an analysis outcome rather than a
// failure; main prints nothing in that case.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// usageErrorf wraps a message as an exit-2 error
func usageErrorf(format string, args ...interface{}) *ExitError {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// usageArgs wraps a positional-args validator so misuse exits 2
func usageArgs(validator cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validator(cmd, args); err != nil {
			return &ExitError{Code: ExitUsage, Err: err}
		}
		return nil
	}
}

// exitCode returns the code reflecting an analysis outcome
func exitCode(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}
