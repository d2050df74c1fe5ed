// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/invowk/sigcli/internal/issue"
)

const (
	// ExitSuccess is returned when the command completed.
	ExitSuccess = 0
	// ExitFailure covers handler, registration and configuration failures.
	ExitFailure = 1
	// ExitUsage is returned when the command line could not be understood.
	ExitUsage = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// classify picks the exit code for an error returned by the dispatcher.
func classify(err error) int {
	id, ok := issue.ForError(err)
	if !ok {
		return ExitFailure
	}
	switch id {
	case issue.ParseFailedId, issue.MissingSubcommandId, issue.UnknownSubcommandId:
		return ExitUsage
	default:
		return ExitFailure
	}
}

// exitCode maps the result of run to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
