// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type (
	// TableOptions configures RenderTable.
	TableOptions struct {
		// Title is rendered above the table when set.
		Title string
		// Headers are the column titles.
		Headers []string
		// Rows contains the table data. Short rows are padded with blanks.
		Rows [][]string
		// Border selects the border style. BorderNone draws no border.
		Border BorderStyle
		// Width limits the table width (0 for auto).
		Width int
		// HeaderStyle styles the header row.
		HeaderStyle lipgloss.Style
		// FirstColumnStyle styles the first cell of every data row.
		FirstColumnStyle lipgloss.Style
	}

	// TableBuilder provides a fluent API for building tables.
	TableBuilder struct {
		opts TableOptions
	}
)

// RenderTable renders a static table.
func RenderTable(opts TableOptions) (string, error) {
	if err := opts.Border.Validate(); err != nil {
		return "", err
	}

	t := table.New().
		Headers(opts.Headers...).
		Rows(padRows(opts.Rows, len(opts.Headers))...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return opts.HeaderStyle.PaddingRight(2)
			case col == 0:
				return opts.FirstColumnStyle.PaddingRight(2)
			default:
				return lipgloss.NewStyle().PaddingRight(2)
			}
		})

	if opts.Border == BorderNone {
		t = t.BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderColumn(false).
			BorderHeader(false)
	} else {
		t = t.Border(opts.Border.lipglossBorder())
	}
	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}

	var sb strings.Builder
	if opts.Title != "" {
		sb.WriteString(opts.Title)
		sb.WriteString("\n\n")
	}
	sb.WriteString(t.String())
	return sb.String(), nil
}

func padRows(rows [][]string, width int) [][]string {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) >= width {
			padded[i] = row
			continue
		}
		r := make([]string, width)
		copy(r, row)
		padded[i] = r
	}
	return padded
}

// NewTable creates a new TableBuilder with no border.
func NewTable() *TableBuilder {
	return &TableBuilder{}
}

// Title sets the title.
func (b *TableBuilder) Title(title string) *TableBuilder {
	b.opts.Title = title
	return b
}

// Headers sets the column titles.
func (b *TableBuilder) Headers(headers ...string) *TableBuilder {
	b.opts.Headers = headers
	return b
}

// Row appends a data row.
func (b *TableBuilder) Row(cells ...string) *TableBuilder {
	b.opts.Rows = append(b.opts.Rows, cells)
	return b
}

// Border sets the border style.
func (b *TableBuilder) Border(style BorderStyle) *TableBuilder {
	b.opts.Border = style
	return b
}

// Width limits the table width.
func (b *TableBuilder) Width(width int) *TableBuilder {
	b.opts.Width = width
	return b
}

// HeaderStyle sets the style of the header row.
func (b *TableBuilder) HeaderStyle(style lipgloss.Style) *TableBuilder {
	b.opts.HeaderStyle = style
	return b
}

// FirstColumnStyle sets the style of the first column.
func (b *TableBuilder) FirstColumnStyle(style lipgloss.Style) *TableBuilder {
	b.opts.FirstColumnStyle = style
	return b
}

// Render renders the table.
func (b *TableBuilder) Render() (string, error) {
	return RenderTable(b.opts)
}
