// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"
	"testing"
)

func TestFormat_Markdown(t *testing.T) {
	t.Parallel()

	result, err := Format(FormatOptions{
		Content:      "# Hello World",
		Type:         FormatMarkdown,
		GlamourTheme: ThemeNoTTY,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "Hello World") {
		t.Errorf("expected result to contain 'Hello World', got %q", result)
	}
}

func TestFormat_Code(t *testing.T) {
	t.Parallel()

	result, err := Format(FormatOptions{
		Content:      "imgurl generate local:///cat.jpg\n",
		Type:         FormatCode,
		Language:     "sh",
		GlamourTheme: ThemeNoTTY,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "local:///cat.jpg") {
		t.Errorf("expected result to contain the code, got %q", result)
	}
	if strings.Contains(result, "```") {
		t.Errorf("code fence should be rendered, got %q", result)
	}
}

func TestFormat_Plain(t *testing.T) {
	t.Parallel()

	opts := FormatOptions{Content: "**not rendered**", Type: FormatPlain}
	result, err := Format(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != opts.Content {
		t.Errorf("expected unchanged content %q, got %q", opts.Content, result)
	}
}

func TestFormat_UnknownTheme(t *testing.T) {
	t.Parallel()

	_, err := Format(FormatOptions{
		Content:      "text",
		Type:         FormatMarkdown,
		GlamourTheme: "no-such-theme",
	})
	if err == nil {
		t.Error("expected an error for an unknown glamour theme")
	}
}

func TestThemeFor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"auto":  ThemeAuto,
		"dark":  "dark",
		"light": "light",
		"":      ThemeAuto,
		"blue":  ThemeAuto,
	}
	for in, want := range tests {
		if got := ThemeFor(in); got != want {
			t.Errorf("ThemeFor(%q) = %q, want %q", in, got, want)
		}
	}
}
