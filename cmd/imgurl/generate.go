// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imgurl/imgurl/internal/issue"
	"github.com/imgurl/imgurl/pkg/imgproxy"

	"github.com/spf13/cobra"
)

// errMissingSource is returned when the source argument is blank.
var errMissingSource = errors.New("source is empty")

// generateFlags holds the generate command's flags.
type generateFlags struct {
	signingFlags

	source    string
	width     int
	height    int
	options   []string
	mode      string
	advanced  bool
	plain     bool
	extension string
	pathOnly  bool
}

// newGenerateCommand creates the `imgurl generate` command.
func newGenerateCommand(app *App, root *rootFlags) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:     "generate [source] [option...]",
		Aliases: []string{"gen", "url"},
		Short:   "Generate a signed imgproxy URL",
		Long: `Generate a signed imgproxy URL for a source image.

The source is the first argument, or --source. URLs use the legacy layout
(/rt/w/h/gravity/enlarge/source) unless --advanced, --mode or the mode setting
selects the advanced one; other options are only rendered in advanced mode.

Processing options are written the way imgproxy renders them, with either the
short code or the full option name: "q:80", "quality:80", "g:fp:0.5:0.5".
They are applied in order after --width and --height: the configured
default_options first, then --option flags, then positional options. A later
option with the same code replaces an earlier one.`,
		Example: `  imgurl generate -W 300 -H 200 local:///cat.jpg
  imgurl generate --advanced --plain --ext webp s3://bucket/cat.jpg rt:fill q:80
  imgurl generate --base http://imgproxy --source https://example.com/cat.jpg --width 300 --height 300`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, directives := f.source, args
			if !cmd.Flags().Changed("source") && len(args) > 0 {
				source, directives = args[0], args[1:]
			}
			return runGenerate(cmd, app, root, f, source, directives)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.source, "source", "", "source image URL (instead of the first argument)")
	fs.IntVarP(&f.width, "width", "W", 0, "target width in pixels (0 keeps the source width)")
	fs.IntVarP(&f.height, "height", "H", 0, "target height in pixels (0 keeps the source height)")
	fs.StringArrayVarP(&f.options, "option", "o", nil, "processing option such as q:80 (repeatable)")
	fs.StringVar(&f.mode, "mode", "", "path layout: legacy or advanced (overrides mode)")
	fs.BoolVar(&f.advanced, "advanced", false, "use the advanced path layout (same as --mode advanced)")
	fs.BoolVar(&f.plain, "plain", false, "embed the source URL as plain text instead of base64")
	fs.StringVarP(&f.extension, "ext", "e", "", "output extension, e.g. webp (default: the source's extension)")
	fs.BoolVar(&f.pathOnly, "path-only", false, "print the signed path without the base URL")
	f.register(fs)
	cmd.MarkFlagsMutuallyExclusive("advanced", "mode")
	cmd.MarkFlagsMutuallyExclusive("base", "base-url")

	return cmd
}

func runGenerate(cmd *cobra.Command, app *App, root *rootFlags, f *generateFlags, source string, directives []string) error {
	s, err := app.startSession(cmd.Context(), root)
	if err != nil {
		return err
	}

	if strings.TrimSpace(source) == "" {
		if s.verbose {
			s.renderIssueEntry(issue.Get(issue.MissingSourceId))
		}
		return usageError(issue.NewErrorContext().
			WithOperation("generate URL").
			WithSuggestion("Pass the source image as the first argument or with --source, e.g. local:///cat.jpg").
			Wrap(errMissingSource).
			Build())
	}

	f.apply(cmd, s.cfg)
	if cmd.Flags().Changed("mode") {
		s.cfg.Mode = imgproxy.Mode(f.mode)
	}
	if f.advanced {
		s.cfg.Mode = imgproxy.ModeAdvanced
	}
	if f.plain {
		s.cfg.SourceEncoding = imgproxy.SourcePlain
	}

	b, err := s.builder()
	if err != nil {
		return err
	}

	u, err := b.Build(source, f.width, f.height)
	if err != nil {
		s.renderIssue(err)
		return usageError(issue.WrapWithContext(err, "set size", source))
	}

	all := make([]string, 0, len(s.cfg.DefaultOptions)+len(f.options)+len(directives))
	all = append(all, s.cfg.DefaultOptions...)
	all = append(all, f.options...)
	all = append(all, directives...)
	for _, d := range all {
		if err := u.Options().Apply(d); err != nil {
			s.renderIssue(err)
			return usageError(issue.NewErrorContext().
				WithOperation("apply option").
				WithResource(d).
				WithSuggestion("Run 'imgurl options' to list the supported options").
				Wrap(err).
				Build())
		}
	}

	if codes := u.UnrenderedCodes(); len(codes) > 0 {
		s.logger.Warn("options are not rendered in the legacy layout, use --advanced", "codes", codes)
	}

	if f.extension != "" {
		u.SetExtension(f.extension)
	}

	s.logger.Debug("rendered path", "mode", u.Mode(), "encoding", u.SourceEncoding(), "path", u.UnsignedPath())

	out := u.String()
	if f.pathOnly {
		out = u.SignedPath()
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
