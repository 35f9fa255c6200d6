// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"errors"
	"fmt"
)

const (
	// WatermarkCenter places the watermark at the center
	WatermarkCenter WatermarkPosition = "ce"
	// WatermarkNorth places the watermark at the top edge
	WatermarkNorth WatermarkPosition = "no"
	// WatermarkSouth places the watermark at the bottom edge
	WatermarkSouth WatermarkPosition = "so"
	// WatermarkEast places the watermark at the right edge
	WatermarkEast WatermarkPosition = "ea"
	// WatermarkWest places the watermark at the left edge
	WatermarkWest WatermarkPosition = "we"
	// WatermarkNorthEast places the watermark at the top right corner
	WatermarkNorthEast WatermarkPosition = "noea"
	// WatermarkNorthWest places the watermark at the top left corner
	WatermarkNorthWest WatermarkPosition = "nowe"
	// WatermarkSouthEast places the watermark at the bottom right corner
	WatermarkSouthEast WatermarkPosition = "soea"
	// WatermarkSouthWest places the watermark at the bottom left corner
	WatermarkSouthWest WatermarkPosition = "sowe"
	// WatermarkReplicate tiles the watermark over the whole image.
	WatermarkReplicate WatermarkPosition = "re"
)

// ErrInvalidWatermarkPosition is returned when a WatermarkPosition value is not recognized.
var ErrInvalidWatermarkPosition = errors.New("invalid watermark position")

type (
	// WatermarkPosition places the watermark on the image.
	WatermarkPosition string

	// InvalidWatermarkPositionError is returned when a WatermarkPosition value is not recognized.
	// It wraps ErrInvalidWatermarkPosition for errors.Is() compatibility.
	InvalidWatermarkPositionError struct {
		Value WatermarkPosition
	}

	// WatermarkOption is the wm option.
	WatermarkOption struct {
		opacity          float64
		position         WatermarkPosition
		xOffset, yOffset int
		scale            float64
	}
)

// Error implements the error interface for InvalidWatermarkPositionError.
func (e *InvalidWatermarkPositionError) Error() string {
	return fmt.Sprintf("invalid watermark position %q (valid: ce, no, so, ea, we, noea, nowe, soea, sowe, re)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidWatermarkPositionError) Unwrap() error { return ErrInvalidWatermarkPosition }

// String returns the string representation of the WatermarkPosition.
func (p WatermarkPosition) String() string { return string(p) }

// Validate returns nil if the WatermarkPosition is one of the defined positions.
func (p WatermarkPosition) Validate() error {
	switch p {
	case WatermarkCenter, WatermarkNorth, WatermarkSouth, WatermarkEast, WatermarkWest,
		WatermarkNorthEast, WatermarkNorthWest, WatermarkSouthEast, WatermarkSouthWest,
		WatermarkReplicate:
		return nil
	default:
		return &InvalidWatermarkPositionError{Value: p}
	}
}

// Code implements Option.
func (o WatermarkOption) Code() Code { return CodeWatermark }

// Args implements Option.
func (o WatermarkOption) Args() []string {
	return []string{
		formatFloat(o.opacity),
		string(o.position),
		formatInt(o.xOffset),
		formatInt(o.yOffset),
		formatFloat(o.scale),
	}
}

// Opacity returns the watermark opacity in [0, 1].
func (o WatermarkOption) Opacity() float64 { return o.opacity }

// Position returns the watermark position.
func (o WatermarkOption) Position() WatermarkPosition { return o.position }

// Offset returns the X and Y offsets in pixels.
func (o WatermarkOption) Offset() (x, y int) { return o.xOffset, o.yOffset }

// Scale returns the watermark scale relative to the image; 0 keeps its size.
func (o WatermarkOption) Scale() float64 { return o.scale }
