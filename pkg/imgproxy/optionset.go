// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// OptionSet is an ordered collection of options keyed by Code.
//
// A code appears at most once. Setting a code that is already present
// replaces its arguments in place; setting a code after it was unset appends
// it at the end. Every With method validates its arguments first and leaves
// the set untouched on error. The zero value is an empty set ready to use.
type OptionSet struct {
	order   []Code
	options map[Code]Option
}

// NewOptionSet returns an empty OptionSet.
func NewOptionSet() *OptionSet {
	return &OptionSet{options: make(map[Code]Option)}
}

func (s *OptionSet) set(o Option) {
	if s.options == nil {
		s.options = make(map[Code]Option)
	}
	c := o.Code()
	if _, ok := s.options[c]; !ok {
		s.order = append(s.order, c)
	}
	s.options[c] = o
}

// Unset removes the option with the given code, if present.
func (s *OptionSet) Unset(c Code) {
	if _, ok := s.options[c]; !ok {
		return
	}
	delete(s.options, c)
	s.order = slices.DeleteFunc(s.order, func(x Code) bool { return x == c })
}

// Get returns the option stored under c.
func (s *OptionSet) Get(c Code) (Option, bool) {
	o, ok := s.options[c]
	return o, ok
}

// Has reports whether an option with code c is present.
func (s *OptionSet) Has(c Code) bool {
	_, ok := s.options[c]
	return ok
}

// Len returns the number of options present.
func (s *OptionSet) Len() int { return len(s.order) }

// Codes returns the present codes in serialization order.
func (s *OptionSet) Codes() []Code { return slices.Clone(s.order) }

// Options returns the present options in serialization order.
func (s *OptionSet) Options() []Option {
	out := make([]Option, 0, len(s.order))
	for _, c := range s.order {
		out = append(out, s.options[c])
	}
	return out
}

// Clone returns an independent copy of the set.
func (s *OptionSet) Clone() *OptionSet {
	return &OptionSet{
		order:   slices.Clone(s.order),
		options: maps.Clone(s.options),
	}
}

// String renders the options as /-joined code:args segments in slot order.
// An empty set renders as "".
func (s *OptionSet) String() string {
	parts := make([]string, 0, len(s.order))
	for _, c := range s.order {
		parts = append(parts, FormatOption(s.options[c]))
	}
	return strings.Join(parts, "/")
}

func lookup[T Option](s *OptionSet, c Code) (T, bool) {
	var zero T
	o, ok := s.options[c]
	if !ok {
		return zero, false
	}
	v, ok := o.(T)
	return v, ok
}

func (s *OptionSet) intValue(c Code) (int, bool) {
	o, ok := lookup[IntOption](s, c)
	return o.value, ok
}

func (s *OptionSet) floatValue(c Code) (float64, bool) {
	o, ok := lookup[FloatOption](s, c)
	return o.value, ok
}

func (s *OptionSet) stringValue(c Code) (string, bool) {
	o, ok := lookup[StringOption](s, c)
	return o.value, ok
}

func (s *OptionSet) setInt(c Code, v int) { s.set(IntOption{code: c, value: v}) }
func (s *OptionSet) setFloat(c Code, v float64) { s.set(FloatOption{code: c, value: v}) }
func (s *OptionSet) setString(c Code, v string) { s.set(StringOption{code: c, value: v}) }
func (s *OptionSet) setFlag(c Code) { s.set(FlagOption{code: c}) }
func (s *OptionSet) setList(c Code, v []string) { s.set(ListOption{code: c, values: slices.Clone(v)}) }
