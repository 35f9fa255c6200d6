// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/imgurl/imgurl/pkg/imgproxy"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load config"},
			expected: "failed to load config",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load config",
				Resource:  "./config.cue",
			},
			expected: "failed to load config: ./config.cue",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "parse option",
				Cause:     errors.New("unknown option code \"zoom\""),
			},
			expected: "failed to parse option: unknown option code \"zoom\"",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "parse option",
				Resource:  "q:150",
				Cause:     errors.New("out of range"),
			},
			expected: "failed to parse option: q:150: out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying error")
	err := &ActionableError{Operation: "test", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	if (&ActionableError{Operation: "test"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name:     "simple error non-verbose",
			err:      &ActionableError{Operation: "load config"},
			contains: []string{"failed to load config"},
		},
		{
			name: "error with suggestions",
			err: &ActionableError{
				Operation:   "sign URL",
				Resource:    "http://example.com/cat.jpg",
				Suggestions: []string{"Set IMGPROXY_KEY", "Set IMGPROXY_SALT"},
			},
			contains: []string{
				"failed to sign URL",
				"http://example.com/cat.jpg",
				"• Set IMGPROXY_KEY",
				"• Set IMGPROXY_SALT",
			},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "parse config",
				Cause:     errors.New("syntax error"),
			},
			contains: []string{"failed to parse config: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "generate URL",
				Cause: &ActionableError{
					Operation: "decode key",
					Cause:     errors.New("odd length"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to decode key: odd length",
				"2. odd length",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.err.Format(tt.verbose)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestActionableError_Issue(t *testing.T) {
	t.Parallel()

	s := imgproxy.NewOptionSet()
	cause := s.Apply("zoom:2")
	err := WrapWithContext(cause, "parse option", "zoom:2")
	if got := err.Issue(); got == nil || got.Id() != UnknownOptionCodeId {
		t.Errorf("Issue() = %v, want UnknownOptionCodeId", got)
	}

	plain := WrapWithOperation(errors.New("boom"), "sign URL")
	if got := plain.Issue(); got != nil {
		t.Errorf("Issue() = %v for an unrelated cause, want nil", got.Id())
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("load config").
		WithResource("/home/user/.config/imgurl/config.cue").
		WithSuggestion("Check syntax").
		WithSuggestions("Verify permissions", "Run 'imgurl config show'").
		Wrap(errors.New("parse error")).
		Build()
	if err == nil {
		t.Fatal("Build() returned nil")
	}
	if err.Operation != "load config" || err.Resource != "/home/user/.config/imgurl/config.cue" {
		t.Errorf("Build() = %+v", err)
	}
	if len(err.Suggestions) != 3 {
		t.Errorf("Suggestions count = %d, want 3", len(err.Suggestions))
	}
	if err.Cause == nil || err.Cause.Error() != "parse error" {
		t.Errorf("Cause = %v", err.Cause)
	}

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
}

func TestErrorContext_BuildError(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().WithOperation("test").BuildError()
	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() = %T, want *ActionableError", err)
	}

	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapHelpers(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "x") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
	if WrapWithContext(nil, "x", "y") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}

	cause := fmt.Errorf("key: %w", errors.New("odd length"))
	err := WrapWithContext(cause, "create builder", "IMGPROXY_KEY")
	if got, want := err.Error(), "failed to create builder: IMGPROXY_KEY: key: odd length"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if NewActionableError("x").HasSuggestions() {
		t.Error("HasSuggestions() = true without suggestions")
	}
}
