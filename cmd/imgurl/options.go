// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/imgurl/imgurl/internal/issue"
	"github.com/imgurl/imgurl/internal/tui"
	"github.com/imgurl/imgurl/pkg/imgproxy"

	"github.com/spf13/cobra"
)

// newOptionsCommand creates the `imgurl options` command.
func newOptionsCommand(app *App, root *rootFlags) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:     "options [code|name]",
		Aliases: []string{"opts"},
		Short:   "List the supported processing options",
		Long: `List the processing options imgurl can render, with their argument
synopsis and the validation applied to them. Pass a short code or a full
option name to show a single option.`,
		Example: `  imgurl options
  imgurl options q
  imgurl options "max bytes"
  imgurl options --markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.startSession(cmd.Context(), root)
			if err != nil {
				return err
			}

			entries := imgproxy.Catalog()
			if len(args) == 1 {
				code, err := imgproxy.ResolveCode(args[0])
				if err != nil {
					s.renderIssue(err)
					return usageError(issue.WrapWithOperation(err, "look up option"))
				}
				entry, _ := imgproxy.LookupCode(code)
				entries = []imgproxy.CatalogEntry{entry}
			}

			var out string
			if markdown {
				out, err = tui.Format(tui.FormatOptions{
					Content:      catalogMarkdown(entries),
					Type:         tui.FormatMarkdown,
					GlamourTheme: s.theme(),
				})
			} else {
				out, err = catalogTable(entries)
			}
			if err != nil {
				return failureError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "render the catalog as a markdown document")
	return cmd
}

func catalogTable(entries []imgproxy.CatalogEntry) (string, error) {
	t := tui.NewTable().
		Headers("CODE", "NAME", "ARGUMENTS", "RULE").
		HeaderStyle(TitleStyle).
		FirstColumnStyle(CodeStyle)
	for _, e := range entries {
		t.Row(string(e.Code), e.Name, e.Args, e.Rule)
	}
	return t.Render()
}

func catalogMarkdown(entries []imgproxy.CatalogEntry) string {
	var sb strings.Builder
	sb.WriteString("# Processing options\n\n")
	sb.WriteString("| Code | Name | Arguments | Rule |\n")
	sb.WriteString("|------|------|-----------|------|\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "| `%s` | %s | `%s` | %s |\n", e.Code, e.Name, escapeCell(e.Args), escapeCell(e.Rule))
	}
	return sb.String()
}

// escapeCell escapes the pipes that would split a markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
