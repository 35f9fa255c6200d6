// SPDX-License-Identifier: MPL-2.0

package imgproxy

import "strings"

// WithWatermark places the configured watermark image on the result.
func (s *OptionSet) WithWatermark(opacity float64, position WatermarkPosition, xOffset, yOffset int, scale float64) error {
	if err := checkBetween(CodeWatermark, "opacity", opacity, 0, 1); err != nil {
		return err
	}
	if err := position.Validate(); err != nil {
		return wrapOptionError(CodeWatermark, err)
	}
	if err := checkAtLeast(CodeWatermark, "scale", scale, 0); err != nil {
		return err
	}
	s.set(WatermarkOption{
		opacity:  opacity,
		position: position,
		xOffset:  xOffset,
		yOffset:  yOffset,
		scale:    scale,
	})
	return nil
}

// WithoutWatermark removes the watermark placement.
func (s *OptionSet) WithoutWatermark() { s.Unset(CodeWatermark) }

// Watermark returns the watermark placement, if set.
func (s *OptionSet) Watermark() (WatermarkOption, bool) {
	return lookup[WatermarkOption](s, CodeWatermark)
}

// WithWatermarkURL uses the image at rawURL as the watermark.
func (s *OptionSet) WithWatermarkURL(rawURL string) error {
	if rawURL == "" {
		return optionError(CodeWatermarkURL, "url is empty")
	}
	s.setString(CodeWatermarkURL, encodeBase64URL(rawURL))
	return nil
}

// WithWatermarkEncodedURL is WithWatermarkURL for an already base64 encoded URL.
func (s *OptionSet) WithWatermarkEncodedURL(encoded string) error {
	if err := checkEncodedArg(CodeWatermarkURL, encoded); err != nil {
		return err
	}
	s.setString(CodeWatermarkURL, encoded)
	return nil
}

// WithoutWatermarkURL removes the custom watermark image.
func (s *OptionSet) WithoutWatermarkURL() { s.Unset(CodeWatermarkURL) }

// WatermarkURL returns the decoded watermark URL, if set.
func (s *OptionSet) WatermarkURL() (string, bool) { return s.decodedValue(CodeWatermarkURL) }

// WithStyle prepends a CSS style to SVG sources.
func (s *OptionSet) WithStyle(css string) error {
	if css == "" {
		return optionError(CodeStyle, "style is empty")
	}
	s.setString(CodeStyle, encodeBase64URL(css))
	return nil
}

// WithEncodedStyle is WithStyle for an already base64 encoded style.
func (s *OptionSet) WithEncodedStyle(encoded string) error {
	if err := checkEncodedArg(CodeStyle, encoded); err != nil {
		return err
	}
	s.setString(CodeStyle, encoded)
	return nil
}

// WithoutStyle removes the SVG style.
func (s *OptionSet) WithoutStyle() { s.Unset(CodeStyle) }

// Style returns the decoded SVG style, if set.
func (s *OptionSet) Style() (string, bool) { return s.decodedValue(CodeStyle) }

// WithJPEGOptions sets the JPEG encoder options.
func (s *OptionSet) WithJPEGOptions(o JPEGOptions) error {
	if err := o.Validate(); err != nil {
		return err
	}
	s.set(o)
	return nil
}

// WithoutJPEGOptions removes the JPEG encoder options.
func (s *OptionSet) WithoutJPEGOptions() { s.Unset(CodeJPEGOptions) }

// JPEGOptions returns the JPEG encoder options, if set.
func (s *OptionSet) JPEGOptions() (JPEGOptions, bool) {
	return lookup[JPEGOptions](s, CodeJPEGOptions)
}

// WithPNGOptions sets the PNG encoder options.
func (s *OptionSet) WithPNGOptions(o PNGOptions) error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.QuantizationColors = o.colors()
	s.set(o)
	return nil
}

// WithoutPNGOptions removes the PNG encoder options.
func (s *OptionSet) WithoutPNGOptions() { s.Unset(CodePNGOptions) }

// PNGOptions returns the PNG encoder options, if set.
func (s *OptionSet) PNGOptions() (PNGOptions, bool) {
	return lookup[PNGOptions](s, CodePNGOptions)
}

// WithGIFOptions sets the GIF encoder options.
func (s *OptionSet) WithGIFOptions(o GIFOptions) { s.set(o) }

// WithoutGIFOptions removes the GIF encoder options.
func (s *OptionSet) WithoutGIFOptions() { s.Unset(CodeGIFOptions) }

// GIFOptions returns the GIF encoder options, if set.
func (s *OptionSet) GIFOptions() (GIFOptions, bool) {
	return lookup[GIFOptions](s, CodeGIFOptions)
}

// WithPage selects the page of a multi-page source, starting at 1.
func (s *OptionSet) WithPage(n int) error {
	if err := checkPositive(CodePage, "page", n); err != nil {
		return err
	}
	s.setInt(CodePage, n)
	return nil
}

// WithoutPage removes the page.
func (s *OptionSet) WithoutPage() { s.Unset(CodePage) }

// Page returns the page, if set.
func (s *OptionSet) Page() (int, bool) { return s.intValue(CodePage) }

// WithVideoThumbnailSecond selects the video frame used as the source.
func (s *OptionSet) WithVideoThumbnailSecond(n int) error {
	if err := checkPositive(CodeVideoThumbnailSecond, "second", n); err != nil {
		return err
	}
	s.setInt(CodeVideoThumbnailSecond, n)
	return nil
}

// WithoutVideoThumbnailSecond removes the video thumbnail second.
func (s *OptionSet) WithoutVideoThumbnailSecond() { s.Unset(CodeVideoThumbnailSecond) }

// VideoThumbnailSecond returns the video thumbnail second, if set.
func (s *OptionSet) VideoThumbnailSecond() (int, bool) {
	return s.intValue(CodeVideoThumbnailSecond)
}

// WithPresets applies server-side presets, in order.
func (s *OptionSet) WithPresets(first string, more ...string) error {
	names := append([]string{first}, more...)
	for _, name := range names {
		if err := checkPathArg(CodePreset, "preset name", name); err != nil {
			return err
		}
	}
	s.setList(CodePreset, names)
	return nil
}

// WithoutPresets removes the presets.
func (s *OptionSet) WithoutPresets() { s.Unset(CodePreset) }

// Presets returns the preset names, if set.
func (s *OptionSet) Presets() ([]string, bool) {
	o, ok := lookup[ListOption](s, CodePreset)
	return o.Values(), ok
}

// WithCacheBuster adds an id that changes the URL without changing the result.
func (s *OptionSet) WithCacheBuster(id string) error {
	if err := checkPathArg(CodeCacheBuster, "cachebuster", id); err != nil {
		return err
	}
	s.setString(CodeCacheBuster, id)
	return nil
}

// WithoutCacheBuster removes the cachebuster.
func (s *OptionSet) WithoutCacheBuster() { s.Unset(CodeCacheBuster) }

// CacheBuster returns the cachebuster, if set.
func (s *OptionSet) CacheBuster() (string, bool) { return s.stringValue(CodeCacheBuster) }

// WithStripMetadata strips metadata from the result.
func (s *OptionSet) WithStripMetadata() { s.setFlag(CodeStripMetadata) }

// WithoutStripMetadata removes the strip metadata flag.
func (s *OptionSet) WithoutStripMetadata() { s.Unset(CodeStripMetadata) }

// StripMetadata reports whether the strip metadata flag is set.
func (s *OptionSet) StripMetadata() bool { return s.Has(CodeStripMetadata) }

// WithStripColorProfile strips the ICC profile from the result.
func (s *OptionSet) WithStripColorProfile() { s.setFlag(CodeStripColorProfile) }

// WithoutStripColorProfile removes the strip color profile flag.
func (s *OptionSet) WithoutStripColorProfile() { s.Unset(CodeStripColorProfile) }

// StripColorProfile reports whether the strip color profile flag is set.
func (s *OptionSet) StripColorProfile() bool { return s.Has(CodeStripColorProfile) }

// WithAutoRotate rotates the image according to its EXIF orientation.
func (s *OptionSet) WithAutoRotate() { s.setFlag(CodeAutoRotate) }

// WithoutAutoRotate removes the auto rotate flag.
func (s *OptionSet) WithoutAutoRotate() { s.Unset(CodeAutoRotate) }

// AutoRotate reports whether the auto rotate flag is set.
func (s *OptionSet) AutoRotate() bool { return s.Has(CodeAutoRotate) }

// WithFilename sets the filename of the Content-Disposition header.
func (s *OptionSet) WithFilename(name string) error {
	if err := checkPathArg(CodeFilename, "filename", name); err != nil {
		return err
	}
	s.setString(CodeFilename, name)
	return nil
}

// WithoutFilename removes the filename.
func (s *OptionSet) WithoutFilename() { s.Unset(CodeFilename) }

// Filename returns the filename, if set.
func (s *OptionSet) Filename() (string, bool) { return s.stringValue(CodeFilename) }

// WithFormat sets the output format, e.g. "png" or "webp".
func (s *OptionSet) WithFormat(ext string) error {
	ext = strings.TrimPrefix(ext, ".")
	if err := checkPathArg(CodeFormat, "format", ext); err != nil {
		return err
	}
	s.setString(CodeFormat, ext)
	return nil
}

// WithoutFormat removes the output format.
func (s *OptionSet) WithoutFormat() { s.Unset(CodeFormat) }

// Format returns the output format, if set.
func (s *OptionSet) Format() (string, bool) { return s.stringValue(CodeFormat) }

func (s *OptionSet) decodedValue(c Code) (string, bool) {
	v, ok := s.stringValue(c)
	if !ok {
		return "", false
	}
	decoded, err := decodeBase64URL(v)
	if err != nil {
		return "", false
	}
	return decoded, true
}

// checkPathArg rejects values that would change the path structure.
func checkPathArg(code Code, name, v string) error {
	if v == "" {
		return optionError(code, "%s is empty", name)
	}
	if strings.ContainsAny(v, "/:") {
		return optionError(code, "%s %q must not contain '/' or ':'", name, v)
	}
	return nil
}

func checkEncodedArg(code Code, encoded string) error {
	if encoded == "" {
		return optionError(code, "encoded value is empty")
	}
	if _, err := decodeBase64URL(encoded); err != nil {
		return &InvalidOptionError{Code: code, Reason: "not base64", Cause: err}
	}
	return nil
}
