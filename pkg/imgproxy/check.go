// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"math"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func checkBetween[T number](code Code, name string, v, lo, hi T) error {
	if !isFinite(v) || v < lo || v > hi {
		return optionError(code, "%s must be between %v and %v, got %v", name, lo, hi, v)
	}
	return nil
}

func checkAtLeast[T number](code Code, name string, v, lo T) error {
	if !isFinite(v) || v < lo {
		return optionError(code, "%s must be >= %v, got %v", name, lo, v)
	}
	return nil
}

func checkPositive[T number](code Code, name string, v T) error {
	if !isFinite(v) || v <= 0 {
		return optionError(code, "%s must be greater than 0, got %v", name, v)
	}
	return nil
}

// NaN fails every comparison and infinities have no path rendering, so the
// checks above reject both first.
func isFinite[T number](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
