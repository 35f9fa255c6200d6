// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Option is a single processing directive. Implementations are fixed-shape
// records built by the OptionSet With methods; their arguments are validated
// once, at construction.
type Option interface {
	Code() Code
	Args() []string
}

type (
	// IntOption carries one integer argument.
	IntOption struct {
		code  Code
		value int
	}

	// FloatOption carries one floating point argument.
	FloatOption struct {
		code  Code
		value float64
	}

	// StringOption carries one string argument.
	StringOption struct {
		code  Code
		value string
	}

	// FlagOption is an enabled boolean switch, rendered as code:1.
	FlagOption struct {
		code Code
	}

	// ListOption carries one or more string arguments.
	ListOption struct {
		code   Code
		values []string
	}
)

// FormatOption renders o as its code followed by each argument, colon-joined.
func FormatOption(o Option) string {
	args := o.Args()
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, string(o.Code()))
	parts = append(parts, args...)
	return strings.Join(parts, ":")
}

func formatInt(v int) string { return strconv.Itoa(v) }

// formatFloat yields the shortest decimal form: 0.5, 2.5, 1.
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Code implements Option.
func (o IntOption) Code() Code { return o.code }

// Args implements Option.
func (o IntOption) Args() []string { return []string{formatInt(o.value)} }

// Value returns the integer argument.
func (o IntOption) Value() int { return o.value }

// Code implements Option.
func (o FloatOption) Code() Code { return o.code }

// Args implements Option.
func (o FloatOption) Args() []string { return []string{formatFloat(o.value)} }

// Value returns the floating point argument.
func (o FloatOption) Value() float64 { return o.value }

// Code implements Option.
func (o StringOption) Code() Code { return o.code }

// Args implements Option.
func (o StringOption) Args() []string { return []string{o.value} }

// Value returns the string argument.
func (o StringOption) Value() string { return o.value }

// Code implements Option.
func (o FlagOption) Code() Code { return o.code }

// Args implements Option.
func (o FlagOption) Args() []string { return []string{"1"} }

// Code implements Option.
func (o ListOption) Code() Code { return o.code }

// Args implements Option.
func (o ListOption) Args() []string { return slices.Clone(o.values) }

// Values returns a copy of the arguments.
func (o ListOption) Values() []string { return slices.Clone(o.values) }
