// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is the sentinel error wrapped by InvalidOptionError.
var ErrInvalidOption = errors.New("invalid option")

// InvalidOptionError is returned by OptionSet methods that reject an argument.
// The OptionSet is left untouched when this error is returned.
//
// When an enum value caused the failure, Cause holds the enum's own error
// (e.g. *InvalidGravityTypeError), so both errors.Is(err, ErrInvalidOption)
// and errors.Is(err, ErrInvalidGravityType) hold.
type InvalidOptionError struct {
	Code   Code
	Reason string
	Cause  error
}

// Error implements the error interface.
func (e *InvalidOptionError) Error() string {
	msg := fmt.Sprintf("invalid %s option (%s)", e.Code.Name(), e.Code)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns ErrInvalidOption and, if present, the underlying cause.
func (e *InvalidOptionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidOption}
	}
	return []error{ErrInvalidOption, e.Cause}
}

func optionError(code Code, format string, args ...any) error {
	return &InvalidOptionError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

func wrapOptionError(code Code, cause error) error {
	if cause == nil {
		return nil
	}
	return &InvalidOptionError{Code: code, Cause: cause}
}
