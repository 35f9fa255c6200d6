// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

const (
	// SourceEncoded renders the source as URL-safe base64 without padding.
	SourceEncoded SourceEncoding = "encoded"
	// SourcePlain renders the source verbatim after a plain/ prefix.
	SourcePlain SourceEncoding = "plain"

	// LocalScheme prefixes sources served from the service's local filesystem.
	LocalScheme = "local://"

	plainPrefix = "plain/"
)

// ErrInvalidSourceEncoding is returned when a SourceEncoding value is not recognized.
var ErrInvalidSourceEncoding = errors.New("invalid source encoding")

type (
	// SourceEncoding selects how the source reference appears in the path.
	SourceEncoding string

	// InvalidSourceEncodingError is returned when a SourceEncoding value is not recognized.
	// It wraps ErrInvalidSourceEncoding for errors.Is() compatibility.
	InvalidSourceEncodingError struct {
		Value SourceEncoding
	}
)

// Error implements the error interface for InvalidSourceEncodingError.
func (e *InvalidSourceEncodingError) Error() string {
	return fmt.Sprintf("invalid source encoding %q (valid: encoded, plain)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidSourceEncodingError) Unwrap() error { return ErrInvalidSourceEncoding }

// String returns the string representation of the SourceEncoding.
func (e SourceEncoding) String() string { return string(e) }

// Validate returns nil if the SourceEncoding is one of the defined encodings.
func (e SourceEncoding) Validate() error {
	switch e {
	case SourceEncoded, SourcePlain:
		return nil
	default:
		return &InvalidSourceEncodingError{Value: e}
	}
}

// renderSource returns the source path segment followed by its extension.
// Plain sources carrying a query use @ext, since .ext would end up inside
// the query string.
func renderSource(source string, encoding SourceEncoding, ext string) string {
	if encoding == SourcePlain {
		seg := plainPrefix + source
		switch {
		case ext == "":
			return seg
		case strings.Contains(source, "?"):
			return seg + "@" + ext
		default:
			return seg + "." + ext
		}
	}
	seg := encodeBase64URL(source)
	if ext != "" {
		seg += "." + ext
	}
	return seg
}

// SourceExtension returns the lower-cased file extension of source, without
// the dot. local:// sources are read as paths; anything else is parsed as a
// URL and only its path is considered. It returns "" when there is none.
func SourceExtension(source string) string {
	var p string
	if rest, ok := strings.CutPrefix(source, LocalScheme); ok {
		p = rest
	} else {
		u, err := url.Parse(source)
		if err != nil {
			return ""
		}
		p = u.Path
	}
	return strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
}

func encodeBase64URL(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

// decodeBase64URL accepts URL-safe base64 with or without padding.
func decodeBase64URL(s string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
