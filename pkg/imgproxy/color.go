// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// BackgroundOption is the bg option: either an RGB triple or a hex color.
type BackgroundOption struct {
	r, g, b uint8
	hex     string
	isHex   bool
}

// Code implements Option.
func (o BackgroundOption) Code() Code { return CodeBackground }

// Args implements Option.
func (o BackgroundOption) Args() []string {
	if o.isHex {
		return []string{o.hex}
	}
	return []string{formatInt(int(o.r)), formatInt(int(o.g)), formatInt(int(o.b))}
}

// RGB returns the color components when the background was set as a triple.
func (o BackgroundOption) RGB() (r, g, b uint8, ok bool) {
	return o.r, o.g, o.b, !o.isHex
}

// Hex returns the hex color, without '#', when the background was set as hex.
func (o BackgroundOption) Hex() (string, bool) {
	return o.hex, o.isHex
}

// checkHexColor accepts exactly six hex digits without a leading '#'.
func checkHexColor(code Code, s string) error {
	if len(s) != 6 {
		return optionError(code, "hex color must be 6 characters, got %q", s)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil || !strings.EqualFold(c.Hex(), "#"+s) {
		return optionError(code, "%q is not a hex color", s)
	}
	return nil
}
