// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/imgurl/imgurl/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// usageError marks err as rejected input.
func usageError(err error) *ExitError {
	return &ExitError{Code: types.ExitUsage, Err: err}
}

// failureError marks err as a runtime failure.
func failureError(err error) *ExitError {
	return &ExitError{Code: types.ExitFailure, Err: err}
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
