// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"fmt"

	"github.com/imgurl/imgurl/pkg/types"

	"github.com/lestrrat-go/option"
)

type (
	// BuilderOption configures a Builder.
	BuilderOption interface {
		option.Interface
		builderOption()
	}

	builderOption struct {
		option.Interface
	}

	identSignatureSize   struct{}
	identDefaultMode     struct{}
	identDefaultEncoding struct{}

	// Builder holds the service location and signing secrets shared by every
	// URL it creates. It is immutable and safe for concurrent use.
	Builder struct {
		baseURL       string
		key, salt     []byte
		secure        bool
		signatureSize SignatureSize
		mode          Mode
		encoding      SourceEncoding
	}
)

func (builderOption) builderOption() {}

func (identSignatureSize) String() string { return "WithSignatureSize" }
func (identDefaultMode) String() string { return "WithDefaultMode" }
func (identDefaultEncoding) String() string { return "WithDefaultSourceEncoding" }

// WithSignatureSize truncates signatures to n digest bytes. Zero, the
// default, keeps all 32 bytes.
func WithSignatureSize(n int) BuilderOption {
	return builderOption{option.New(identSignatureSize{}, SignatureSize(n))}
}

// WithDefaultMode sets the rendering mode of URLs created by Build.
func WithDefaultMode(m Mode) BuilderOption {
	return builderOption{option.New(identDefaultMode{}, m)}
}

// WithDefaultSourceEncoding sets the source encoding of URLs created by Build.
func WithDefaultSourceEncoding(e SourceEncoding) BuilderOption {
	return builderOption{option.New(identDefaultEncoding{}, e)}
}

// NewBuilder returns a Builder for the service at baseURL. The base URL is
// used verbatim, so it should not end with a slash.
//
// key and salt are hex encoded. URLs are signed only when both are set;
// otherwise they carry the insecure marker. A secret that is set but is not
// valid hex is an error.
func NewBuilder(baseURL, key, salt string, opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		baseURL:  baseURL,
		mode:     ModeLegacy,
		encoding: SourceEncoded,
	}

	for _, o := range opts {
		switch o.Ident() {
		case identSignatureSize{}:
			b.signatureSize = o.Value().(SignatureSize)
		case identDefaultMode{}:
			b.mode = o.Value().(Mode)
		case identDefaultEncoding{}:
			b.encoding = o.Value().(SourceEncoding)
		}
	}
	if err := b.signatureSize.Validate(); err != nil {
		return nil, err
	}
	if err := b.mode.Validate(); err != nil {
		return nil, err
	}
	if err := b.encoding.Validate(); err != nil {
		return nil, err
	}

	var err error
	if b.key, err = types.HexSecret(key).Decode(); err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	if b.salt, err = types.HexSecret(salt).Decode(); err != nil {
		return nil, fmt.Errorf("salt: %w", err)
	}
	b.secure = len(b.key) > 0 && len(b.salt) > 0
	return b, nil
}

// BaseURL returns the service base URL.
func (b *Builder) BaseURL() string { return b.baseURL }

// IsSecure reports whether URLs are signed.
func (b *Builder) IsSecure() bool { return b.secure }

// SignatureSize returns the number of digest bytes kept; 0 means all.
func (b *Builder) SignatureSize() SignatureSize { return b.signatureSize }

// Signature returns the signature segment for an unsigned path, or
// "insecure" when the builder has no secrets.
func (b *Builder) Signature(unsignedPath string) string {
	if !b.secure {
		return insecureSignature
	}
	return Sign(b.key, b.salt, int(b.signatureSize), unsignedPath)
}

// SignPath prefixes an unsigned path with its signature segment.
func (b *Builder) SignPath(unsignedPath string) string {
	return "/" + b.Signature(unsignedPath) + unsignedPath
}

// Build returns a URL for source resized to width x height, using the
// builder's default mode and source encoding.
func (b *Builder) Build(source string, width, height int) (*URL, error) {
	return NewURL(b, source, width, height)
}
