// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/imgurl/imgurl/internal/config"
	"github.com/imgurl/imgurl/internal/issue"
	"github.com/imgurl/imgurl/internal/tui"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives an App and reads configuration and output streams through it.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		// verbose is the effective verbosity of the last session, including
		// ui.verbose from the configuration.
		verbose bool
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// session is the per-invocation state shared by a command handler: the
	// loaded configuration, the effective verbosity and the logger.
	session struct {
		cfg     *config.Config
		verbose bool
		logger  *log.Logger
		stderr  io.Writer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

// newLogger returns the CLI logger. Debug messages are shown only in verbose mode.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "imgurl",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// startSession loads the configuration for one command invocation.
func (a *App) startSession(ctx context.Context, flags *rootFlags) (*session, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configFile})
	if err != nil {
		s := &session{verbose: flags.verbose, stderr: a.stderr}
		a.verbose = s.verbose
		s.logger = newLogger(a.stderr, s.verbose)
		s.renderIssue(err)
		return nil, failureError(err)
	}

	s := &session{
		cfg:     cfg,
		verbose: flags.verbose || cfg.UI.Verbose,
		stderr:  a.stderr,
	}
	a.verbose = s.verbose
	s.logger = newLogger(a.stderr, s.verbose)
	if cfg.Path() != "" {
		s.logger.Debug("loaded configuration", "path", cfg.Path())
	} else {
		s.logger.Debug("no configuration file found, using defaults and environment")
	}
	return s, nil
}

// theme returns the glamour theme for the configured color scheme.
func (s *session) theme() string {
	if s.cfg == nil {
		return tui.ThemeAuto
	}
	return tui.ThemeFor(s.cfg.UI.ColorScheme.String())
}

// renderIssue prints the help page explaining err in verbose mode.
func (s *session) renderIssue(err error) {
	if !s.verbose {
		return
	}
	if entry := issue.ForError(err); entry != nil {
		s.renderIssueEntry(entry)
	}
}

func (s *session) renderIssueEntry(entry *issue.Issue) {
	rendered, err := entry.Render(s.theme())
	if err != nil {
		s.logger.Warn("failed to render issue catalog entry", "issueID", entry.Id(), "error", err)
		return
	}
	fmt.Fprint(s.stderr, rendered)
}

// formatErrorForDisplay formats an error for user display. An ActionableError
// is shown with its suggestions, and in verbose mode with the full error chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
