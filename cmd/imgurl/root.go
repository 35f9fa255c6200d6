// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	// verbose enables debug logging and issue help pages on errors
	verbose bool
	// configFile allows specifying a custom config file
	configFile string
}

// NewRootCommand builds the imgurl command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "imgurl",
		Short: "Build and sign imgproxy URLs",
		Long: TitleStyle.Render("imgurl") + SubtitleStyle.Render(" - Build and sign imgproxy URLs") + `

imgurl renders imgproxy processing URLs from a source image and a list of
processing options, and signs them with the same key and salt as the
imgproxy server (IMGPROXY_KEY, IMGPROXY_SALT).

` + SubtitleStyle.Render("Examples:") + `
  imgurl generate -W 300 -H 200 local:///cat.jpg                Resize to 300x200
  imgurl generate --advanced s3://bucket/cat.jpg rt:fill q:80   Add processing options
  imgurl sign /rs:fit:300:300/plain/local:///cat.jpg            Sign an existing path
  imgurl options                                                List processing options
  imgurl config show                                            Show current configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default is $HOME/.config/imgurl/config.cue)")

	rootCmd.AddCommand(newGenerateCommand(app, flags))
	rootCmd.AddCommand(newSignCommand(app, flags))
	rootCmd.AddCommand(newOptionsCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd := NewRootCommand(app)

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler(app, rootCmd)),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// errorHandler prints command errors with their suggestions. Verbosity is
// read at error time: the --verbose flag covers errors raised before a
// session started, the session covers ui.verbose from the configuration.
func errorHandler(app *App, rootCmd *cobra.Command) fang.ErrorHandler {
	return func(w io.Writer, _ fang.Styles, err error) {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		verbose = verbose || app.verbose
		fmt.Fprintln(w, WarningStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	}
}
