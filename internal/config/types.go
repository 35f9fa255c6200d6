// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/imgurl/imgurl/pkg/imgproxy"
	"github.com/imgurl/imgurl/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8080"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// BaseURL is prepended to every generated path.
		BaseURL string `json:"base_url" mapstructure:"base_url"`
		// Key is the hex-encoded HMAC key, as in IMGPROXY_KEY.
		Key types.HexSecret `json:"key" mapstructure:"key"`
		// Salt is the hex-encoded salt, as in IMGPROXY_SALT.
		Salt types.HexSecret `json:"salt" mapstructure:"salt"`
		// SignatureSize truncates signatures, as in IMGPROXY_SIGNATURE_SIZE. 0 keeps 32 bytes.
		SignatureSize int `json:"signature_size" mapstructure:"signature_size"`
		// Mode selects the legacy or advanced path layout.
		Mode imgproxy.Mode `json:"mode" mapstructure:"mode"`
		// SourceEncoding selects base64 or plain source URLs.
		SourceEncoding imgproxy.SourceEncoding `json:"source_encoding" mapstructure:"source_encoding"`
		// DefaultOptions are directives such as "q:80" applied to every URL
		// before the ones given on the command line.
		DefaultOptions []string `json:"default_options" mapstructure:"default_options"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`

		path string
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		Mode:           imgproxy.ModeLegacy,
		SourceEncoding: imgproxy.SourceEncoded,
		DefaultOptions: []string{},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Path returns the config file the configuration was read from, or "" when
// only defaults and the environment were used.
func (c *Config) Path() string { return c.path }

// Validate checks every field, collecting all failures.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Key.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("key: %w", err))
	}
	if err := c.Salt.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("salt: %w", err))
	}
	if err := imgproxy.SignatureSize(c.SignatureSize).Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Mode.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.SourceEncoding.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := imgproxy.NewOptionSet().ApplyAll(c.DefaultOptions...); err != nil {
		errs = append(errs, fmt.Errorf("default_options: %w", err))
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Builder returns an imgproxy.Builder for the configured server and secrets.
func (c *Config) Builder() (*imgproxy.Builder, error) {
	return imgproxy.NewBuilder(c.BaseURL, string(c.Key), string(c.Salt),
		imgproxy.WithSignatureSize(c.SignatureSize),
		imgproxy.WithDefaultMode(c.Mode),
		imgproxy.WithDefaultSourceEncoding(c.SourceEncoding),
	)
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// String returns the string representation of the ColorScheme.
func (s ColorScheme) String() string { return string(s) }

// Validate returns nil if the ColorScheme is one of the defined schemes.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: s}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }
