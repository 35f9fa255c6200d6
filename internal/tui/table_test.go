// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	out, err := RenderTable(TableOptions{
		Title:   "Options",
		Headers: []string{"CODE", "NAME"},
		Rows: [][]string{
			{"w", "width"},
			{"q", "quality"},
		},
	})
	if err != nil {
		t.Fatalf("RenderTable() error = %v", err)
	}

	for _, want := range []string{"Options", "CODE", "NAME", "width", "quality"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "width") > strings.Index(out, "quality") {
		t.Errorf("rows rendered out of order:\n%s", out)
	}
}

func TestRenderTable_Border(t *testing.T) {
	t.Parallel()

	out, err := NewTable().
		Headers("CODE").
		Row("w").
		Border(BorderASCII).
		Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "+") {
		t.Errorf("ascii border not drawn:\n%s", out)
	}
}

func TestRenderTable_ShortRowsArePadded(t *testing.T) {
	t.Parallel()

	out, err := NewTable().
		Headers("CODE", "NAME", "ARGS").
		Row("sm").
		Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "sm") {
		t.Errorf("short row not rendered:\n%s", out)
	}
}

func TestRenderTable_InvalidBorder(t *testing.T) {
	t.Parallel()

	_, err := NewTable().Headers("A").Border("double").Render()
	if !errors.Is(err, ErrInvalidBorderStyle) {
		t.Errorf("Render() error = %v, want ErrInvalidBorderStyle", err)
	}
}

func TestPadRows(t *testing.T) {
	t.Parallel()

	rows := padRows([][]string{{"a"}, {"b", "c", "d"}}, 2)
	if len(rows[0]) != 2 || rows[0][0] != "a" || rows[0][1] != "" {
		t.Errorf("rows[0] = %q, want [a \"\"]", rows[0])
	}
	if len(rows[1]) != 3 {
		t.Errorf("rows[1] = %q, long rows must be kept", rows[1])
	}
}
