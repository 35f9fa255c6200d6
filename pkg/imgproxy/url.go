// SPDX-License-Identifier: MPL-2.0

package imgproxy

import "strings"

const (
	legacyDefaultResizingType = ResizeFit
	legacyDefaultGravity      = GravitySmart
)

// URL is a source reference plus the options to apply to it.
//
// Width and height are mirrored into the OptionSet as w and h. Rendering
// never changes the URL, so rendering the same URL twice yields the same
// string.
type URL struct {
	builder       *Builder
	source        string
	width, height int
	options       *OptionSet
	mode          Mode
	encoding      SourceEncoding
	extension     string
}

// NewURL returns a URL for source resized to width x height. A nil builder
// yields insecure URLs without a base.
func NewURL(b *Builder, source string, width, height int) (*URL, error) {
	if b == nil {
		b = &Builder{mode: ModeLegacy, encoding: SourceEncoded}
	}
	u := &URL{
		builder:  b,
		source:   source,
		options:  NewOptionSet(),
		mode:     b.mode,
		encoding: b.encoding,
	}
	if err := u.SetWidth(width); err != nil {
		return nil, err
	}
	if err := u.SetHeight(height); err != nil {
		return nil, err
	}
	return u, nil
}

// Source returns the source reference.
func (u *URL) Source() string { return u.source }

// Options returns the URL's option set. Changes to it are reflected in the
// rendered path.
func (u *URL) Options() *OptionSet { return u.options }

// Width returns the target width.
func (u *URL) Width() int {
	if w, ok := u.options.Width(); ok {
		return w
	}
	return u.width
}

// Height returns the target height.
func (u *URL) Height() int {
	if h, ok := u.options.Height(); ok {
		return h
	}
	return u.height
}

// SetWidth sets the target width.
func (u *URL) SetWidth(w int) error {
	if err := u.options.WithWidth(w); err != nil {
		return err
	}
	u.width = w
	return nil
}

// SetHeight sets the target height.
func (u *URL) SetHeight(h int) error {
	if err := u.options.WithHeight(h); err != nil {
		return err
	}
	u.height = h
	return nil
}

// SetFit sets the resizing type.
func (u *URL) SetFit(t ResizingType) error { return u.options.WithResizingType(t) }

// SetGravity sets the gravity.
func (u *URL) SetGravity(t GravityType, coords ...float64) error {
	return u.options.WithGravity(t, coords...)
}

// SetEnlarge toggles the enlarge flag.
func (u *URL) SetEnlarge(enlarge bool) {
	if enlarge {
		u.options.WithEnlarge()
		return
	}
	u.options.WithoutEnlarge()
}

// Mode returns the rendering mode.
func (u *URL) Mode() Mode { return u.mode }

// SetMode selects the rendering mode.
func (u *URL) SetMode(m Mode) error {
	if err := m.Validate(); err != nil {
		return err
	}
	u.mode = m
	return nil
}

// UseAdvancedMode renders the path as code:args segments.
func (u *URL) UseAdvancedMode() { u.mode = ModeAdvanced }

// UseLegacyMode renders the path as positional fields.
func (u *URL) UseLegacyMode() { u.mode = ModeLegacy }

// SourceEncoding returns the source encoding.
func (u *URL) SourceEncoding() SourceEncoding { return u.encoding }

// SetSourceEncoding selects how the source appears in the path.
func (u *URL) SetSourceEncoding(e SourceEncoding) error {
	if err := e.Validate(); err != nil {
		return err
	}
	u.encoding = e
	return nil
}

// UsePlainSource renders the source verbatim.
func (u *URL) UsePlainSource() { u.encoding = SourcePlain }

// UseEncodedSource renders the source as base64.
func (u *URL) UseEncodedSource() { u.encoding = SourceEncoded }

// SetExtension sets the output extension; "" derives it from the source.
func (u *URL) SetExtension(ext string) { u.extension = strings.TrimPrefix(ext, ".") }

// Extension returns the output extension: the explicit one if set, else the
// one derived from the source.
func (u *URL) Extension() string {
	if u.extension != "" {
		return u.extension
	}
	return SourceExtension(u.source)
}

// Clone returns a copy of u with an independent option set.
func (u *URL) Clone() *URL {
	c := *u
	c.options = u.options.Clone()
	return &c
}

// UnsignedPath renders the path without the signature segment.
func (u *URL) UnsignedPath() string {
	src := renderSource(u.source, u.encoding, u.Extension())
	if u.mode == ModeAdvanced {
		if opts := u.options.String(); opts != "" {
			return "/" + opts + "/" + src
		}
		return "/" + src
	}
	return "/" + strings.Join(append(u.legacyFields(), src), "/")
}

func (u *URL) legacyFields() []string {
	rt, ok := u.options.ResizingType()
	if !ok {
		rt = legacyDefaultResizingType
	}
	gravity := string(legacyDefaultGravity)
	if g, ok := u.options.Gravity(); ok {
		gravity = string(g.Type())
		if g.Type() == GravityFocusPoint {
			gravity = strings.Join(g.args(), ":")
		}
	}
	return []string{
		string(rt),
		formatInt(u.Width()),
		formatInt(u.Height()),
		gravity,
		formatBool(u.options.Enlarge()),
	}
}

// UnrenderedCodes returns the codes in the option set that the current mode
// leaves out of the path. The legacy layout only carries resizing type,
// width, height, gravity and enlarge, so every other option is listed. It is
// nil in advanced mode.
func (u *URL) UnrenderedCodes() []Code {
	if u.mode == ModeAdvanced {
		return nil
	}
	var codes []Code
	for _, c := range u.options.Codes() {
		switch c {
		case CodeResizingType, CodeWidth, CodeHeight, CodeGravity, CodeEnlarge:
		default:
			codes = append(codes, c)
		}
	}
	return codes
}

// SignedPath renders the path prefixed with its signature segment.
func (u *URL) SignedPath() string { return u.builder.SignPath(u.UnsignedPath()) }

// String renders the full URL: base URL followed by the signed path.
func (u *URL) String() string { return u.builder.BaseURL() + u.SignedPath() }
