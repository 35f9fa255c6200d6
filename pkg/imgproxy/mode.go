// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"errors"
	"fmt"
)

const (
	// ModeLegacy renders /{rt}/{w}/{h}/{g}/{el}/{source}.
	ModeLegacy Mode = "legacy"
	// ModeAdvanced renders /{code:args}/.../{source}.
	ModeAdvanced Mode = "advanced"
)

// ErrInvalidMode is returned when a Mode value is not recognized.
var ErrInvalidMode = errors.New("invalid rendering mode")

type (
	// Mode selects the path grammar of a URL.
	Mode string

	// InvalidModeError is returned when a Mode value is not recognized.
	// It wraps ErrInvalidMode for errors.Is() compatibility.
	InvalidModeError struct {
		Value Mode
	}
)

// Error implements the error interface for InvalidModeError.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid rendering mode %q (valid: legacy, advanced)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

// String returns the string representation of the Mode.
func (m Mode) String() string { return string(m) }

// Validate returns nil if the Mode is one of the defined modes.
func (m Mode) Validate() error {
	switch m {
	case ModeLegacy, ModeAdvanced:
		return nil
	default:
		return &InvalidModeError{Value: m}
	}
}
