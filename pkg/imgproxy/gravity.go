// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"errors"
	"fmt"
	"math"
)

const (
	// GravityNorth anchors at the top edge
	GravityNorth GravityType = "no"
	// GravitySouth anchors at the bottom edge
	GravitySouth GravityType = "so"
	// GravityEast anchors at the right edge
	GravityEast GravityType = "ea"
	// GravityWest anchors at the left edge
	GravityWest GravityType = "we"
	// GravityNorthEast anchors at the top right corner
	GravityNorthEast GravityType = "noea"
	// GravityNorthWest anchors at the top left corner
	GravityNorthWest GravityType = "nowe"
	// GravitySouthEast anchors at the bottom right corner
	GravitySouthEast GravityType = "soea"
	// GravitySouthWest anchors at the bottom left corner
	GravitySouthWest GravityType = "sowe"
	// GravityCenter anchors at the center
	GravityCenter GravityType = "ce"
	// GravitySmart lets the service detect the most interesting area.
	GravitySmart GravityType = "sm"
	// GravityFocusPoint anchors at relative coordinates in [0, 1].
	GravityFocusPoint GravityType = "fp"
)

var (
	// ErrInvalidGravityType is returned when a GravityType value is not recognized.
	ErrInvalidGravityType = errors.New("invalid gravity type")
	// ErrInvalidGravity is the sentinel error wrapped by InvalidGravityError.
	ErrInvalidGravity = errors.New("invalid gravity")
)

type (
	// GravityType is the anchor used for cropping, extending and resizing.
	GravityType string

	// InvalidGravityTypeError is returned when a GravityType value is not recognized.
	// It wraps ErrInvalidGravityType for errors.Is() compatibility.
	InvalidGravityTypeError struct {
		Value GravityType
	}

	// InvalidGravityError is returned when gravity coordinates do not fit the type.
	InvalidGravityError struct {
		Type   GravityType
		Reason string
	}

	// Gravity is a validated gravity type with its coordinates. Compass
	// coordinates are whole pixel offsets; focus point coordinates are in [0, 1].
	Gravity struct {
		typ  GravityType
		x, y float64
	}

	// GravityOption is the g option.
	GravityOption struct {
		gravity Gravity
	}

	// ExtendOption is the ex option.
	ExtendOption struct {
		gravity    Gravity
		hasGravity bool
	}

	// CropOption is the c option.
	CropOption struct {
		width, height float64
		gravity       Gravity
		hasGravity    bool
	}
)

// Error implements the error interface for InvalidGravityTypeError.
func (e *InvalidGravityTypeError) Error() string {
	return fmt.Sprintf("invalid gravity type %q (valid: no, so, ea, we, noea, nowe, soea, sowe, ce, sm, fp)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidGravityTypeError) Unwrap() error { return ErrInvalidGravityType }

// Error implements the error interface for InvalidGravityError.
func (e *InvalidGravityError) Error() string {
	return fmt.Sprintf("invalid %q gravity: %s", e.Type, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidGravityError) Unwrap() error { return ErrInvalidGravity }

// String returns the string representation of the GravityType.
func (t GravityType) String() string { return string(t) }

// Validate returns nil if the GravityType is one of the defined types.
func (t GravityType) Validate() error {
	switch {
	case t.isCompass(), t == GravitySmart, t == GravityFocusPoint:
		return nil
	default:
		return &InvalidGravityTypeError{Value: t}
	}
}

func (t GravityType) isCompass() bool {
	switch t {
	case GravityNorth, GravitySouth, GravityEast, GravityWest,
		GravityNorthEast, GravityNorthWest, GravitySouthEast, GravitySouthWest,
		GravityCenter:
		return true
	}
	return false
}

// NewGravity validates a gravity type and its coordinates.
//
// Coordinates are given as zero or two values; missing coordinates are 0.
// Smart gravity takes none. Focus point coordinates must be in [0, 1]. Compass
// coordinates are truncated to integers and are not range-checked.
func NewGravity(t GravityType, coords ...float64) (Gravity, error) {
	if err := t.Validate(); err != nil {
		return Gravity{}, err
	}
	if len(coords) != 0 && len(coords) != 2 {
		return Gravity{}, &InvalidGravityError{Type: t, Reason: fmt.Sprintf("expected 0 or 2 coordinates, got %d", len(coords))}
	}
	g := Gravity{typ: t}
	if len(coords) == 2 {
		g.x, g.y = coords[0], coords[1]
	}

	switch {
	case t == GravitySmart:
		if len(coords) != 0 {
			return Gravity{}, &InvalidGravityError{Type: t, Reason: "smart gravity takes no coordinates"}
		}
	case t == GravityFocusPoint:
		for _, v := range []float64{g.x, g.y} {
			if math.IsNaN(v) || v < 0 || v > 1 {
				return Gravity{}, &InvalidGravityError{Type: t, Reason: fmt.Sprintf("focus point coordinates must be between 0 and 1, got %v", v)}
			}
		}
	default:
		for _, v := range []float64{g.x, g.y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Gravity{}, &InvalidGravityError{Type: t, Reason: fmt.Sprintf("offset %v is not a number", v)}
			}
		}
		g.x, g.y = math.Trunc(g.x), math.Trunc(g.y)
	}
	return g, nil
}

// Type returns the gravity type.
func (g Gravity) Type() GravityType { return g.typ }

// X returns the horizontal offset or focus point coordinate.
func (g Gravity) X() float64 { return g.x }

// Y returns the vertical offset or focus point coordinate.
func (g Gravity) Y() float64 { return g.y }

// IsZero reports whether g was never built by NewGravity.
func (g Gravity) IsZero() bool { return g.typ == "" }

func (g Gravity) args() []string {
	if g.typ == GravitySmart {
		return []string{string(g.typ)}
	}
	return []string{string(g.typ), formatFloat(g.x), formatFloat(g.y)}
}

// Code implements Option.
func (o GravityOption) Code() Code { return CodeGravity }

// Args implements Option.
func (o GravityOption) Args() []string { return o.gravity.args() }

// Gravity returns the configured gravity.
func (o GravityOption) Gravity() Gravity { return o.gravity }

// Code implements Option.
func (o ExtendOption) Code() Code { return CodeExtend }

// Args implements Option.
func (o ExtendOption) Args() []string {
	args := []string{"1"}
	if o.hasGravity {
		args = append(args, o.gravity.args()...)
	}
	return args
}

// Gravity returns the extend gravity, if one was given.
func (o ExtendOption) Gravity() (Gravity, bool) { return o.gravity, o.hasGravity }

// Code implements Option.
func (o CropOption) Code() Code { return CodeCrop }

// Args implements Option.
func (o CropOption) Args() []string {
	args := []string{formatFloat(o.width), formatFloat(o.height)}
	if o.hasGravity {
		args = append(args, o.gravity.args()...)
	}
	return args
}

// Width returns the crop width. Values below 1 are relative to the source.
func (o CropOption) Width() float64 { return o.width }

// Height returns the crop height. Values below 1 are relative to the source.
func (o CropOption) Height() float64 { return o.height }

// Gravity returns the crop gravity, if one was given.
func (o CropOption) Gravity() (Gravity, bool) { return o.gravity, o.hasGravity }

// optionalGravity validates the at-most-one gravity accepted by extend and crop.
func optionalGravity(code Code, gravity []Gravity) (Gravity, bool, error) {
	switch len(gravity) {
	case 0:
		return Gravity{}, false, nil
	case 1:
		if gravity[0].IsZero() {
			return Gravity{}, false, optionError(code, "gravity must be built with NewGravity")
		}
		return gravity[0], true, nil
	default:
		return Gravity{}, false, optionError(code, "expected at most one gravity, got %d", len(gravity))
	}
}
