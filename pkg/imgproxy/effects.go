// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"errors"
	"fmt"
)

const (
	// RotateNone keeps the orientation
	RotateNone Rotation = 0
	// RotateClockwise rotates by 90 degrees
	RotateClockwise Rotation = 90
	// RotateUpsideDown rotates by 180 degrees
	RotateUpsideDown Rotation = 180
	// RotateCounterClockwise rotates by 270 degrees
	RotateCounterClockwise Rotation = 270

	// UnsharpeningAuto sharpens only when the image was downscaled
	UnsharpeningAuto UnsharpeningMode = "auto"
	// UnsharpeningNone never sharpens
	UnsharpeningNone UnsharpeningMode = "none"
	// UnsharpeningAlways always sharpens
	UnsharpeningAlways UnsharpeningMode = "always"

	// DefaultUnsharpeningWeight is used when no weight is given.
	DefaultUnsharpeningWeight = 1.0
	// DefaultUnsharpeningDivisor matches the service's IMGPROXY_UNSHARPENING_WEIGHT_DIVIDER default.
	DefaultUnsharpeningDivisor = 24.0
)

var (
	// ErrInvalidRotation is returned when a Rotation value is not a right angle.
	ErrInvalidRotation = errors.New("invalid rotation")
	// ErrInvalidUnsharpeningMode is returned when an UnsharpeningMode value is not recognized.
	ErrInvalidUnsharpeningMode = errors.New("invalid unsharpening mode")
)

type (
	// Rotation is a clockwise rotation angle in degrees.
	Rotation int

	// UnsharpeningMode controls when the service sharpens downscaled images.
	UnsharpeningMode string

	// InvalidRotationError is returned when a Rotation is not 0, 90, 180 or 270.
	InvalidRotationError struct {
		Value Rotation
	}

	// InvalidUnsharpeningModeError is returned when an UnsharpeningMode value is not recognized.
	// It wraps ErrInvalidUnsharpeningMode for errors.Is() compatibility.
	InvalidUnsharpeningModeError struct {
		Value UnsharpeningMode
	}

	// PaddingOption is the pd option.
	PaddingOption struct {
		top, right, bottom, left int
	}

	// TrimOption is the t option.
	TrimOption struct {
		threshold                      float64
		color                          string
		equalHorizontal, equalVertical bool
	}

	// AdjustOption is the a option, a shortcut for brightness, contrast and saturation.
	AdjustOption struct {
		brightness           int
		contrast, saturation float64
	}

	// UnsharpeningOption is the ush option.
	UnsharpeningOption struct {
		mode            UnsharpeningMode
		weight, divisor float64
	}
)

// Error implements the error interface for InvalidRotationError.
func (e *InvalidRotationError) Error() string {
	return fmt.Sprintf("invalid rotation %d (valid: 0, 90, 180, 270)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidRotationError) Unwrap() error { return ErrInvalidRotation }

// Error implements the error interface for InvalidUnsharpeningModeError.
func (e *InvalidUnsharpeningModeError) Error() string {
	return fmt.Sprintf("invalid unsharpening mode %q (valid: auto, none, always)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidUnsharpeningModeError) Unwrap() error { return ErrInvalidUnsharpeningMode }

// Validate returns nil for right angles.
func (r Rotation) Validate() error {
	switch r {
	case RotateNone, RotateClockwise, RotateUpsideDown, RotateCounterClockwise:
		return nil
	default:
		return &InvalidRotationError{Value: r}
	}
}

// String returns the string representation of the UnsharpeningMode.
func (m UnsharpeningMode) String() string { return string(m) }

// Validate returns nil if the UnsharpeningMode is one of the defined modes.
func (m UnsharpeningMode) Validate() error {
	switch m {
	case UnsharpeningAuto, UnsharpeningNone, UnsharpeningAlways:
		return nil
	default:
		return &InvalidUnsharpeningModeError{Value: m}
	}
}

// Code implements Option.
func (o PaddingOption) Code() Code { return CodePadding }

// Args implements Option.
func (o PaddingOption) Args() []string {
	return []string{formatInt(o.top), formatInt(o.right), formatInt(o.bottom), formatInt(o.left)}
}

// Sides returns the padding in CSS order.
func (o PaddingOption) Sides() (top, right, bottom, left int) {
	return o.top, o.right, o.bottom, o.left
}

// Code implements Option.
func (o TrimOption) Code() Code { return CodeTrim }

// Args implements Option. Trailing arguments left at their defaults are
// omitted, so a bare threshold renders as t:32.
func (o TrimOption) Args() []string {
	args := []string{formatFloat(o.threshold)}
	if o.color == "" && !o.equalHorizontal && !o.equalVertical {
		return args
	}
	args = append(args, o.color)
	if !o.equalHorizontal && !o.equalVertical {
		return args
	}
	args = append(args, formatBool(o.equalHorizontal))
	if !o.equalVertical {
		return args
	}
	return append(args, formatBool(o.equalVertical))
}

// Threshold returns the color similarity tolerance.
func (o TrimOption) Threshold() float64 { return o.threshold }

// Color returns the hex color to trim, or "" to detect it.
func (o TrimOption) Color() string { return o.color }

// Equal reports whether horizontal and vertical trimming are equalized.
func (o TrimOption) Equal() (horizontal, vertical bool) {
	return o.equalHorizontal, o.equalVertical
}

// Code implements Option.
func (o AdjustOption) Code() Code { return CodeAdjust }

// Args implements Option.
func (o AdjustOption) Args() []string {
	return []string{formatInt(o.brightness), formatFloat(o.contrast), formatFloat(o.saturation)}
}

// Brightness returns the brightness component.
func (o AdjustOption) Brightness() int { return o.brightness }

// Contrast returns the contrast component.
func (o AdjustOption) Contrast() float64 { return o.contrast }

// Saturation returns the saturation component.
func (o AdjustOption) Saturation() float64 { return o.saturation }

// Code implements Option.
func (o UnsharpeningOption) Code() Code { return CodeUnsharpening }

// Args implements Option.
func (o UnsharpeningOption) Args() []string {
	return []string{string(o.mode), formatFloat(o.weight), formatFloat(o.divisor)}
}

// Mode returns the unsharpening mode.
func (o UnsharpeningOption) Mode() UnsharpeningMode { return o.mode }

// Weight returns the unsharpening weight.
func (o UnsharpeningOption) Weight() float64 { return o.weight }

// Divisor returns the unsharpening weight divisor.
func (o UnsharpeningOption) Divisor() float64 { return o.divisor }
