// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"errors"
	"fmt"
)

const (
	// ResizeFit resizes keeping the aspect ratio to fit the given size.
	ResizeFit ResizingType = "fit"
	// ResizeFill resizes keeping the aspect ratio to fill the given size and crops the rest.
	ResizeFill ResizingType = "fill"
	// ResizeFillDown is fill that never enlarges the result past the source.
	ResizeFillDown ResizingType = "fill-down"
	// ResizeForce resizes without keeping the aspect ratio.
	ResizeForce ResizingType = "force"
	// ResizeAuto picks fill or fit depending on image and target orientation.
	ResizeAuto ResizingType = "auto"

	// AlgorithmNearest uses nearest neighbour sampling
	AlgorithmNearest ResizingAlgorithm = "nearest"
	// AlgorithmLinear uses bilinear interpolation
	AlgorithmLinear ResizingAlgorithm = "linear"
	// AlgorithmCubic uses bicubic interpolation
	AlgorithmCubic ResizingAlgorithm = "cubic"
	// AlgorithmLanczos2 uses a Lanczos filter with a = 2
	AlgorithmLanczos2 ResizingAlgorithm = "lanczos2"
	// AlgorithmLanczos3 uses a Lanczos filter with a = 3, the service default
	AlgorithmLanczos3 ResizingAlgorithm = "lanczos3"
)

var (
	// ErrInvalidResizingType is returned when a ResizingType value is not recognized.
	ErrInvalidResizingType = errors.New("invalid resizing type")
	// ErrInvalidResizingAlgorithm is returned when a ResizingAlgorithm value is not recognized.
	ErrInvalidResizingAlgorithm = errors.New("invalid resizing algorithm")
)

type (
	// ResizingType selects how the source is fitted into width x height.
	ResizingType string

	// ResizingAlgorithm selects the resampling filter.
	ResizingAlgorithm string

	// InvalidResizingTypeError is returned when a ResizingType value is not recognized.
	// It wraps ErrInvalidResizingType for errors.Is() compatibility.
	InvalidResizingTypeError struct {
		Value ResizingType
	}

	// InvalidResizingAlgorithmError is returned when a ResizingAlgorithm value is not recognized.
	// It wraps ErrInvalidResizingAlgorithm for errors.Is() compatibility.
	InvalidResizingAlgorithmError struct {
		Value ResizingAlgorithm
	}
)

// Error implements the error interface for InvalidResizingTypeError.
func (e *InvalidResizingTypeError) Error() string {
	return fmt.Sprintf("invalid resizing type %q (valid: fit, fill, fill-down, force, auto)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidResizingTypeError) Unwrap() error { return ErrInvalidResizingType }

// Error implements the error interface for InvalidResizingAlgorithmError.
func (e *InvalidResizingAlgorithmError) Error() string {
	return fmt.Sprintf("invalid resizing algorithm %q (valid: nearest, linear, cubic, lanczos2, lanczos3)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidResizingAlgorithmError) Unwrap() error { return ErrInvalidResizingAlgorithm }

// String returns the string representation of the ResizingType.
func (t ResizingType) String() string { return string(t) }

// Validate returns nil if the ResizingType is one of the defined types.
func (t ResizingType) Validate() error {
	switch t {
	case ResizeFit, ResizeFill, ResizeFillDown, ResizeForce, ResizeAuto:
		return nil
	default:
		return &InvalidResizingTypeError{Value: t}
	}
}

// String returns the string representation of the ResizingAlgorithm.
func (a ResizingAlgorithm) String() string { return string(a) }

// Validate returns nil if the ResizingAlgorithm is one of the defined algorithms.
func (a ResizingAlgorithm) Validate() error {
	switch a {
	case AlgorithmNearest, AlgorithmLinear, AlgorithmCubic, AlgorithmLanczos2, AlgorithmLanczos3:
		return nil
	default:
		return &InvalidResizingAlgorithmError{Value: a}
	}
}
