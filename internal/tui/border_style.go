// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	// BorderNone disables the border (zero value).
	BorderNone BorderStyle = ""
	// BorderNormal renders a standard single-line border.
	BorderNormal BorderStyle = "normal"
	// BorderRounded renders a single-line border with rounded corners.
	BorderRounded BorderStyle = "rounded"
	// BorderThick renders a thick border.
	BorderThick BorderStyle = "thick"
	// BorderASCII renders the border with plain ASCII characters.
	BorderASCII BorderStyle = "ascii"
)

// ErrInvalidBorderStyle is the sentinel error wrapped by InvalidBorderStyleError.
var ErrInvalidBorderStyle = errors.New("invalid border style")

type (
	// BorderStyle selects how table borders are drawn.
	// The zero value ("") means no border.
	BorderStyle string

	// InvalidBorderStyleError is returned when a BorderStyle value is not recognized.
	// It wraps ErrInvalidBorderStyle for errors.Is() compatibility.
	InvalidBorderStyleError struct {
		Value BorderStyle
	}
)

// String returns the string representation of the BorderStyle.
func (b BorderStyle) String() string { return string(b) }

// Validate returns nil if the BorderStyle is one of the defined styles,
// or a validation error if it is not.
func (b BorderStyle) Validate() error {
	switch b {
	case BorderNone, BorderNormal, BorderRounded, BorderThick, BorderASCII:
		return nil
	default:
		return &InvalidBorderStyleError{Value: b}
	}
}

// lipglossBorder maps the style to a lipgloss border. BorderNone and
// unknown values map to the hidden border.
func (b BorderStyle) lipglossBorder() lipgloss.Border {
	switch b {
	case BorderNormal:
		return lipgloss.NormalBorder()
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderASCII:
		return lipgloss.ASCIIBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

// Error implements the error interface for InvalidBorderStyleError.
func (e *InvalidBorderStyleError) Error() string {
	return fmt.Sprintf("invalid border style %q (valid: none, normal, rounded, thick, ascii)", e.Value)
}

// Unwrap returns ErrInvalidBorderStyle for errors.Is() compatibility.
func (e *InvalidBorderStyleError) Unwrap() error { return ErrInvalidBorderStyle }
