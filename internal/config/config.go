// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/imgurl/imgurl/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "imgurl"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes every imgurl environment variable.
	EnvPrefix = "IMGURL"
)

//go:embed config_schema.cue
var configSchema string

// envBindings lists the variables read for each key, highest precedence first.
var envBindings = map[string][]string{
	"base_url":        {"IMGURL_BASE_URL"},
	"key":             {"IMGURL_KEY", "IMGPROXY_KEY"},
	"salt":            {"IMGURL_SALT", "IMGPROXY_SALT"},
	"signature_size":  {"IMGURL_SIGNATURE_SIZE", "IMGPROXY_SIGNATURE_SIZE"},
	"mode":            {"IMGURL_MODE"},
	"source_encoding": {"IMGURL_SOURCE_ENCODING"},
	"ui.color_scheme": {"IMGURL_UI_COLOR_SCHEME"},
	"ui.verbose":      {"IMGURL_UI_VERBOSE"},
}

// ConfigDir returns the imgurl configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// newViper returns a Viper instance with defaults and environment bindings.
func newViper() (*viper.Viper, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("key", defaults.Key)
	v.SetDefault("salt", defaults.Salt)
	v.SetDefault("signature_size", defaults.SignatureSize)
	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("source_encoding", defaults.SourceEncoding)
	v.SetDefault("default_options", defaults.DefaultOptions)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return v, nil
}

// loadWithOptions reads defaults, then the config file, then the environment.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v, err := newViper()
	if err != nil {
		return nil, err
	}

	resolvedPath := ""

	// If a custom config file path is set via --config flag, use it exclusively.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'imgurl config show' to see the effective configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, err
		}
		for _, candidate := range []string{
			filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt),
			ConfigFileName + "." + ConfigFileExt,
		} {
			if fileExists(candidate) {
				resolvedPath = candidate
				break
			}
		}
		// If no config file found, use defaults (no error)
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("See 'imgurl config --help' for configuration options").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.path = resolvedPath

	// The environment bypasses the CUE schema, so everything is checked again.
	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Check the IMGURL_* and IMGPROXY_* environment variables").
			WithSuggestion("Run 'imgurl options' to list valid default_options directives").
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := checkFileSize(data, path); err != nil {
		return err
	}

	configMap, err := decodeCUE(data, path)
	if err != nil {
		return err
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// decodeCUE unifies data with #Config and decodes it to a map. Fields are
// optional, so the value is not required to be concrete.
func decodeCUE(data []byte, path string) (map[string]any, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return nil, formatCUEError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return nil, formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return nil, formatCUEError(err, path)
	}
	return configMap, nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// FilePath returns the path of the config file in the config directory.
func FilePath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// CreateDefaultConfig writes the default config file unless one exists.
// It returns the file path.
func CreateDefaultConfig() (string, error) {
	cfgPath, err := FilePath()
	if err != nil {
		return "", err
	}
	if fileExists(cfgPath) {
		return cfgPath, nil
	}
	return cfgPath, write(cfgPath, DefaultConfig())
}

// Save writes cfg to the config file in the config directory.
func Save(cfg *Config) error {
	cfgPath, err := FilePath()
	if err != nil {
		return err
	}
	return write(cfgPath, cfg)
}

func write(cfgPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	// Secrets may be stored here.
	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(cfg)), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// imgurl configuration file\n")
	sb.WriteString("// Secrets may also come from IMGPROXY_KEY and IMGPROXY_SALT.\n\n")

	fmt.Fprintf(&sb, "base_url: %q\n", cfg.BaseURL)
	if !cfg.Key.IsEmpty() {
		fmt.Fprintf(&sb, "key: %q\n", string(cfg.Key))
	}
	if !cfg.Salt.IsEmpty() {
		fmt.Fprintf(&sb, "salt: %q\n", string(cfg.Salt))
	}
	fmt.Fprintf(&sb, "signature_size: %d\n", cfg.SignatureSize)
	fmt.Fprintf(&sb, "mode: %q\n", cfg.Mode)
	fmt.Fprintf(&sb, "source_encoding: %q\n", cfg.SourceEncoding)

	if len(cfg.DefaultOptions) > 0 {
		sb.WriteString("\ndefault_options: [\n")
		for _, d := range cfg.DefaultOptions {
			fmt.Fprintf(&sb, "\t%q,\n", d)
		}
		sb.WriteString("]\n")
	}

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

// tomlConfig mirrors Config for TOML output, with the secrets masked.
type tomlConfig struct {
	BaseURL        string   `toml:"base_url"`
	Key            string   `toml:"key,omitempty"`
	Salt           string   `toml:"salt,omitempty"`
	SignatureSize  int      `toml:"signature_size"`
	Mode           string   `toml:"mode"`
	SourceEncoding string   `toml:"source_encoding"`
	DefaultOptions []string `toml:"default_options"`
	UI             struct {
		ColorScheme string `toml:"color_scheme"`
		Verbose     bool   `toml:"verbose"`
	} `toml:"ui"`
}

// GenerateTOML renders the effective configuration as TOML with the secrets
// masked, for display.
func GenerateTOML(cfg *Config) (string, error) {
	out := tomlConfig{
		BaseURL:        cfg.BaseURL,
		SignatureSize:  cfg.SignatureSize,
		Mode:           string(cfg.Mode),
		SourceEncoding: string(cfg.SourceEncoding),
		DefaultOptions: cfg.DefaultOptions,
	}
	if !cfg.Key.IsEmpty() {
		out.Key = cfg.Key.String()
	}
	if !cfg.Salt.IsEmpty() {
		out.Salt = cfg.Salt.String()
	}
	out.UI.ColorScheme = string(cfg.UI.ColorScheme)
	out.UI.Verbose = cfg.UI.Verbose

	b, err := toml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode toml: %w", err)
	}
	return string(b), nil
}
