// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/imgurl/imgurl/internal/issue"
	"github.com/imgurl/imgurl/pkg/types"
)

func TestExitError(t *testing.T) {
	t.Parallel()

	underlying := errors.New("underlying error")

	tests := []struct {
		name     string
		err      *ExitError
		wantMsg  string
		wantCode types.ExitCode
	}{
		{"usage", usageError(underlying), "underlying error", types.ExitUsage},
		{"failure", failureError(underlying), "underlying error", types.ExitFailure},
		{"no cause", &ExitError{Code: 3}, "exit status 3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Err != nil && !errors.Is(tt.err, underlying) {
				t.Error("errors.Is should find the underlying error via Unwrap")
			}
		})
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := issue.NewErrorContext().
		WithOperation("sign path").
		WithSuggestion("try again").
		Wrap(cause).
		Build()

	got := formatErrorForDisplay(usageError(ae), false)
	if !strings.Contains(got, "failed to sign path: boom") || !strings.Contains(got, "try again") {
		t.Errorf("formatErrorForDisplay() = %q", got)
	}
	if strings.Contains(got, "Error chain") {
		t.Errorf("error chain should only be shown in verbose mode, got %q", got)
	}
	if got := formatErrorForDisplay(usageError(ae), true); !strings.Contains(got, "Error chain") {
		t.Errorf("verbose formatErrorForDisplay() = %q, want the error chain", got)
	}
	if got := formatErrorForDisplay(cause, true); got != "boom" {
		t.Errorf("plain error = %q, want %q", got, "boom")
	}
}
