// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// FormatType specifies the type of content to format.
type FormatType string

const (
	// FormatMarkdown formats content as Markdown.
	FormatMarkdown FormatType = "markdown"
	// FormatCode formats content as a fenced code block.
	FormatCode FormatType = "code"
	// FormatPlain returns content unchanged.
	FormatPlain FormatType = "plain"

	// ThemeAuto picks the glamour style from the terminal background.
	ThemeAuto = "auto"
	// ThemeNoTTY renders without colors, for pipes and tests.
	ThemeNoTTY = "notty"
)

// FormatOptions configures Format.
type FormatOptions struct {
	// Content is the text content to format.
	Content string
	// Type specifies how to format the content.
	Type FormatType
	// Language is the info string of the code fence for FormatCode.
	Language string
	// GlamourTheme is a glamour standard style ("dark", "light", "notty")
	// or ThemeAuto. Empty means ThemeAuto.
	GlamourTheme string
	// Width is the word wrap width (0 for glamour's default).
	Width int
}

// Format formats content according to the specified type.
func Format(opts FormatOptions) (string, error) {
	switch opts.Type {
	case FormatMarkdown:
		return formatMarkdown(opts)
	case FormatCode:
		return formatCode(opts)
	default:
		return opts.Content, nil
	}
}

// ThemeFor maps a color scheme setting (auto, dark, light) to a glamour theme.
func ThemeFor(colorScheme string) string {
	switch colorScheme {
	case "dark", "light":
		return colorScheme
	default:
		return ThemeAuto
	}
}

func formatMarkdown(opts FormatOptions) (string, error) {
	var rendererOpts []glamour.TermRendererOption
	if theme := opts.GlamourTheme; theme == "" || theme == ThemeAuto {
		rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	} else {
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(theme))
	}
	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(opts.Content)
}

func formatCode(opts FormatOptions) (string, error) {
	content := "```" + opts.Language + "\n" + strings.TrimRight(opts.Content, "\n") + "\n```"
	opts.Content = content
	return formatMarkdown(opts)
}
