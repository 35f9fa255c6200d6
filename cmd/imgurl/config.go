// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/imgurl/imgurl/internal/config"
	"github.com/imgurl/imgurl/internal/issue"
	"github.com/imgurl/imgurl/internal/tui"
	"github.com/imgurl/imgurl/pkg/types"

	"github.com/spf13/cobra"
)

// errUnknownFormat is returned for an unsupported `config show --format`.
var errUnknownFormat = errors.New("unknown format")

// newConfigCommand creates the `imgurl config` command tree.
func newConfigCommand(app *App, root *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage imgurl configuration",
		Long: `Manage imgurl configuration.

Configuration is stored in:
  - Linux: ~/.config/imgurl/config.cue
  - macOS: ~/Library/Application Support/imgurl/config.cue
  - Windows: %APPDATA%\imgurl\config.cue

Environment variables override the file: IMGURL_BASE_URL, IMGURL_KEY,
IMGURL_SALT, IMGURL_SIGNATURE_SIZE, IMGURL_MODE and IMGURL_SOURCE_ENCODING.
IMGPROXY_KEY, IMGPROXY_SALT and IMGPROXY_SIGNATURE_SIZE are read as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration, with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.startSession(cmd.Context(), root)
			if err != nil {
				return err
			}
			return showConfig(cmd.OutOrStdout(), s.cfg, format, s.theme())
		},
	}
	showCmd.Flags().StringVar(&format, "format", "text", "output format: text, toml or cue")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE, secrets included",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.startSession(cmd.Context(), root)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(s.cfg))
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Long: `Create the default configuration file. An existing file is kept unless
--force is given, in which case it is replaced by the defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfgPath string
			var err error
			if force {
				if err = config.Save(config.DefaultConfig()); err == nil {
					cfgPath, err = config.FilePath()
				}
			} else {
				cfgPath, err = config.CreateDefaultConfig()
			}
			if err != nil {
				return failureError(issue.WrapWithOperation(err, "create config"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file with the defaults")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := config.FilePath()
			if err != nil {
				return failureError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfgPath)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, cfg *config.Config, format, theme string) error {
	switch format {
	case "toml":
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return failureError(err)
		}
		fmt.Fprint(w, out)
		return nil
	case "cue":
		masked := *cfg
		masked.Key = types.HexSecret(cfg.Key.String())
		masked.Salt = types.HexSecret(cfg.Salt.String())
		out, err := tui.Format(tui.FormatOptions{
			Content:      config.GenerateCUE(&masked),
			Type:         tui.FormatCode,
			Language:     "cue",
			GlamourTheme: theme,
		})
		if err != nil {
			return failureError(issue.WrapWithOperation(err, "render configuration"))
		}
		fmt.Fprint(w, out)
		return nil
	case "text", "":
	default:
		return usageError(issue.NewErrorContext().
			WithOperation("show configuration").
			WithResource(format).
			WithSuggestion("Use --format text, --format toml or --format cue").
			Wrap(errUnknownFormat).
			Build())
	}

	keyStyle := CodeStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if cfg.Path() != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfg.Path())
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("base_url"), valueStyle.Render(cfg.BaseURL))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("key"), secretValue(cfg.Key.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("salt"), secretValue(cfg.Salt.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("signature_size"), valueStyle.Render(fmt.Sprintf("%d", cfg.SignatureSize)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("mode"), valueStyle.Render(cfg.Mode.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("source_encoding"), valueStyle.Render(cfg.SourceEncoding.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:", keyStyle.Render("default_options"))
	if len(cfg.DefaultOptions) == 0 {
		fmt.Fprintf(w, " %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		fmt.Fprintf(w, " %s\n", valueStyle.Render(strings.Join(cfg.DefaultOptions, "/")))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func secretValue(masked string) string {
	if masked == "" {
		return SubtitleStyle.Render("(not set)")
	}
	return SuccessStyle.Render(masked)
}
