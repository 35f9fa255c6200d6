// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imgurl/imgurl/internal/issue"

	"github.com/spf13/cobra"
)

// errRelativePath is returned when a path to sign does not start with "/".
var errRelativePath = errors.New("path must start with /")

// newSignCommand creates the `imgurl sign` command.
func newSignCommand(app *App, root *rootFlags) *cobra.Command {
	f := &signingFlags{}
	var pathOnly bool

	cmd := &cobra.Command{
		Use:   "sign <path>",
		Short: "Sign an existing imgproxy path",
		Long: `Sign an unsigned imgproxy path, such as one copied from documentation or
produced by another tool. The path is signed verbatim and must start with "/".`,
		Example: `  imgurl sign /rs:fit:300:300/plain/local:///cat.jpg
  imgurl sign --path-only /w:300/bG9jYWw6Ly8vY2F0LmpwZw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.startSession(cmd.Context(), root)
			if err != nil {
				return err
			}

			path := args[0]
			if !strings.HasPrefix(path, "/") {
				return usageError(issue.NewErrorContext().
					WithOperation("sign path").
					WithResource(path).
					WithSuggestion("Drop the base URL and the signature segment, keep the leading slash").
					Wrap(errRelativePath).
					Build())
			}

			f.apply(cmd, s.cfg)
			b, err := s.builder()
			if err != nil {
				return err
			}

			out := b.SignPath(path)
			if !pathOnly {
				out = b.BaseURL() + out
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pathOnly, "path-only", false, "print the signed path without the base URL")
	f.register(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("base", "base-url")
	return cmd
}
