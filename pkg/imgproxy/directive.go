// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"fmt"
	"strconv"
	"strings"
)

type directiveFunc func(s *OptionSet, code Code, args []string) error

var directives = map[Code]directiveFunc{
	CodeWidth:                intArg((*OptionSet).WithWidth),
	CodeHeight:               intArg((*OptionSet).WithHeight),
	CodeResizingType:         stringArg(withResizingType),
	CodeResizingAlgorithm:    stringArg(withResizingAlgorithm),
	CodeDpr:                  intArg((*OptionSet).WithDpr),
	CodeEnlarge:              flagArg((*OptionSet).WithEnlarge),
	CodeExtend:               applyExtend,
	CodeGravity:              applyGravity,
	CodeCrop:                 applyCrop,
	CodePadding:              applyPadding,
	CodeTrim:                 applyTrim,
	CodeRotate:               intArg(withRotate),
	CodeQuality:              intArg((*OptionSet).WithQuality),
	CodeMaxBytes:             intArg((*OptionSet).WithMaxBytes),
	CodeBackground:           applyBackground,
	CodeBackgroundAlpha:      floatArg((*OptionSet).WithBackgroundAlpha),
	CodeAdjust:               applyAdjust,
	CodeBrightness:           intArg((*OptionSet).WithBrightness),
	CodeContrast:             floatArg((*OptionSet).WithContrast),
	CodeSaturation:           floatArg((*OptionSet).WithSaturation),
	CodeBlur:                 floatArg((*OptionSet).WithBlur),
	CodeSharpen:              floatArg((*OptionSet).WithSharpen),
	CodePixelate:             intArg((*OptionSet).WithPixelate),
	CodeUnsharpening:         applyUnsharpening,
	CodeWatermark:            applyWatermark,
	CodeWatermarkURL:         stringArg((*OptionSet).WithWatermarkEncodedURL),
	CodeStyle:                stringArg((*OptionSet).WithEncodedStyle),
	CodeJPEGOptions:          applyJPEGOptions,
	CodePNGOptions:           applyPNGOptions,
	CodeGIFOptions:           applyGIFOptions,
	CodePage:                 intArg((*OptionSet).WithPage),
	CodeVideoThumbnailSecond: intArg((*OptionSet).WithVideoThumbnailSecond),
	CodePreset:               applyPresets,
	CodeCacheBuster:          stringArg((*OptionSet).WithCacheBuster),
	CodeStripMetadata:        flagArg((*OptionSet).WithStripMetadata),
	CodeStripColorProfile:    flagArg((*OptionSet).WithStripColorProfile),
	CodeAutoRotate:           flagArg((*OptionSet).WithAutoRotate),
	CodeFilename:             stringArg((*OptionSet).WithFilename),
	CodeFormat:               stringArg((*OptionSet).WithFormat),
}

func withResizingType(s *OptionSet, v string) error { return s.WithResizingType(ResizingType(v)) }

func withResizingAlgorithm(s *OptionSet, v string) error {
	return s.WithResizingAlgorithm(ResizingAlgorithm(v))
}

func withRotate(s *OptionSet, v int) error { return s.WithRotate(Rotation(v)) }

// Apply parses a rendered directive such as "q:80" or "g:fp:0.5:0.25" and
// sets it through the matching With method. The option name may be given in
// full instead of the short code, e.g. "quality:80". A flag directive with a
// false argument ("sm:0") unsets the flag.
func (s *OptionSet) Apply(directive string) error {
	name, rest, hasArgs := strings.Cut(directive, ":")
	code, err := ResolveCode(name)
	if err != nil {
		return err
	}
	var args []string
	if hasArgs {
		args = strings.Split(rest, ":")
	}
	return directives[code](s, code, args)
}

// ApplyAll applies directives in order and stops at the first error.
func (s *OptionSet) ApplyAll(list ...string) error {
	for _, d := range list {
		if err := s.Apply(d); err != nil {
			return err
		}
	}
	return nil
}

// ResolveCode maps a short code or a full option name ("max_bytes",
// "max bytes") to its Code.
func ResolveCode(name string) (Code, error) {
	if c := Code(name); c.Validate() == nil {
		return c, nil
	}
	normalized := strings.ReplaceAll(strings.ToLower(name), "_", " ")
	for _, e := range catalog {
		if e.Name == normalized {
			return e.Code, nil
		}
	}
	return "", &InvalidCodeError{Value: Code(name)}
}

func checkArity(code Code, args []string, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			return optionError(code, "expected %d argument(s), got %d", lo, len(args))
		}
		return optionError(code, "expected %d to %d arguments, got %d", lo, hi, len(args))
	}
	return nil
}

func parseInt(code Code, name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, optionError(code, "%s %q is not an integer", name, v)
	}
	return n, nil
}

func parseFloat(code Code, name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, optionError(code, "%s %q is not a number", name, v)
	}
	return f, nil
}

func parseBool(code Code, name, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, optionError(code, "%s %q is not a boolean", name, v)
	}
	return b, nil
}

// argAt returns args[i], or "" past the end.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func optionalBool(code Code, name string, args []string, i int) (bool, error) {
	if v := argAt(args, i); v != "" {
		return parseBool(code, name, v)
	}
	return false, nil
}

func optionalInt(code Code, name string, args []string, i int) (int, error) {
	if v := argAt(args, i); v != "" {
		return parseInt(code, name, v)
	}
	return 0, nil
}

func optionalFloat(code Code, name string, args []string, i int) (float64, error) {
	if v := argAt(args, i); v != "" {
		return parseFloat(code, name, v)
	}
	return 0, nil
}

func intArg(fn func(*OptionSet, int) error) directiveFunc {
	return func(s *OptionSet, code Code, args []string) error {
		if err := checkArity(code, args, 1, 1); err != nil {
			return err
		}
		v, err := parseInt(code, "value", args[0])
		if err != nil {
			return err
		}
		return fn(s, v)
	}
}

func floatArg(fn func(*OptionSet, float64) error) directiveFunc {
	return func(s *OptionSet, code Code, args []string) error {
		if err := checkArity(code, args, 1, 1); err != nil {
			return err
		}
		v, err := parseFloat(code, "value", args[0])
		if err != nil {
			return err
		}
		return fn(s, v)
	}
}

func stringArg(fn func(*OptionSet, string) error) directiveFunc {
	return func(s *OptionSet, code Code, args []string) error {
		if err := checkArity(code, args, 1, 1); err != nil {
			return err
		}
		return fn(s, args[0])
	}
}

func flagArg(on func(*OptionSet)) directiveFunc {
	return func(s *OptionSet, code Code, args []string) error {
		if err := checkArity(code, args, 0, 1); err != nil {
			return err
		}
		enabled := true
		if len(args) == 1 {
			var err error
			if enabled, err = parseBool(code, "flag", args[0]); err != nil {
				return err
			}
		}
		if enabled {
			on(s)
		} else {
			s.Unset(code)
		}
		return nil
	}
}

// parseGravityArgs reads type[:x:y].
func parseGravityArgs(code Code, args []string) (Gravity, error) {
	if err := checkArity(code, args, 1, 3); err != nil {
		return Gravity{}, err
	}
	coords := make([]float64, 0, 2)
	for _, v := range args[1:] {
		f, err := parseFloat(code, "gravity offset", v)
		if err != nil {
			return Gravity{}, err
		}
		coords = append(coords, f)
	}
	g, err := NewGravity(GravityType(args[0]), coords...)
	if err != nil {
		return Gravity{}, wrapOptionError(code, err)
	}
	return g, nil
}

func applyGravity(s *OptionSet, code Code, args []string) error {
	g, err := parseGravityArgs(code, args)
	if err != nil {
		return err
	}
	if g.Type() == GravitySmart {
		return s.WithGravity(g.Type())
	}
	return s.WithGravity(g.Type(), g.X(), g.Y())
}

func applyExtend(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 0, 4); err != nil {
		return err
	}
	if len(args) == 0 {
		return s.WithExtend()
	}
	enabled, err := parseBool(code, "extend", args[0])
	if err != nil {
		return err
	}
	if !enabled {
		s.WithoutExtend()
		return nil
	}
	if len(args) == 1 {
		return s.WithExtend()
	}
	g, err := parseGravityArgs(code, args[1:])
	if err != nil {
		return err
	}
	return s.WithExtend(g)
}

func applyCrop(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 2, 5); err != nil {
		return err
	}
	w, err := parseFloat(code, "width", args[0])
	if err != nil {
		return err
	}
	h, err := parseFloat(code, "height", args[1])
	if err != nil {
		return err
	}
	if len(args) == 2 {
		return s.WithCrop(w, h)
	}
	g, err := parseGravityArgs(code, args[2:])
	if err != nil {
		return err
	}
	return s.WithCrop(w, h, g)
}

// applyPadding accepts one to four values with CSS shorthand semantics.
func applyPadding(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 1, 4); err != nil {
		return err
	}
	v := make([]int, len(args))
	for i, a := range args {
		n, err := parseInt(code, "padding", a)
		if err != nil {
			return err
		}
		v[i] = n
	}
	switch len(v) {
	case 1:
		return s.WithPadding(v[0], v[0], v[0], v[0])
	case 2:
		return s.WithPadding(v[0], v[1], v[0], v[1])
	case 3:
		return s.WithPadding(v[0], v[1], v[2], v[1])
	default:
		return s.WithPadding(v[0], v[1], v[2], v[3])
	}
}

func applyTrim(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 1, 4); err != nil {
		return err
	}
	threshold, err := parseFloat(code, "threshold", args[0])
	if err != nil {
		return err
	}
	hor, err := optionalBool(code, "equal horizontal", args, 2)
	if err != nil {
		return err
	}
	ver, err := optionalBool(code, "equal vertical", args, 3)
	if err != nil {
		return err
	}
	return s.WithTrim(threshold, argAt(args, 1), hor, ver)
}

func applyBackground(s *OptionSet, code Code, args []string) error {
	switch len(args) {
	case 1:
		return s.WithBackgroundHex(args[0])
	case 3:
		rgb := make([]int, 3)
		for i, a := range args {
			n, err := parseInt(code, "color component", a)
			if err != nil {
				return err
			}
			rgb[i] = n
		}
		return s.WithBackgroundRGB(rgb[0], rgb[1], rgb[2])
	default:
		return optionError(code, "expected a hex color or r:g:b, got %d arguments", len(args))
	}
}

func applyAdjust(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 3, 3); err != nil {
		return err
	}
	br, err := parseInt(code, "brightness", args[0])
	if err != nil {
		return err
	}
	co, err := parseFloat(code, "contrast", args[1])
	if err != nil {
		return err
	}
	sa, err := parseFloat(code, "saturation", args[2])
	if err != nil {
		return err
	}
	return s.WithAdjust(br, co, sa)
}

func applyUnsharpening(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 1, 3); err != nil {
		return err
	}
	weight, err := optionalFloat(code, "weight", args, 1)
	if err != nil {
		return err
	}
	divisor, err := optionalFloat(code, "divisor", args, 2)
	if err != nil {
		return err
	}
	return s.WithUnsharpening(UnsharpeningMode(args[0]), weight, divisor)
}

func applyWatermark(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 1, 5); err != nil {
		return err
	}
	opacity, err := parseFloat(code, "opacity", args[0])
	if err != nil {
		return err
	}
	position := WatermarkCenter
	if p := argAt(args, 1); p != "" {
		position = WatermarkPosition(p)
	}
	x, err := optionalInt(code, "x offset", args, 2)
	if err != nil {
		return err
	}
	y, err := optionalInt(code, "y offset", args, 3)
	if err != nil {
		return err
	}
	scale, err := optionalFloat(code, "scale", args, 4)
	if err != nil {
		return err
	}
	return s.WithWatermark(opacity, position, x, y, scale)
}

func applyJPEGOptions(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 0, 6); err != nil {
		return err
	}
	var o JPEGOptions
	flags := []*bool{&o.Progressive, &o.NoSubsample, &o.TrellisQuant, &o.OvershootDeringing, &o.OptimizeScans}
	for i, f := range flags {
		v, err := optionalBool(code, fmt.Sprintf("argument %d", i+1), args, i)
		if err != nil {
			return err
		}
		*f = v
	}
	qt, err := optionalInt(code, "quant table", args, 5)
	if err != nil {
		return err
	}
	o.QuantTable = qt
	return s.WithJPEGOptions(o)
}

func applyPNGOptions(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 0, 3); err != nil {
		return err
	}
	var o PNGOptions
	var err error
	if o.Interlaced, err = optionalBool(code, "interlaced", args, 0); err != nil {
		return err
	}
	if o.Quantize, err = optionalBool(code, "quantize", args, 1); err != nil {
		return err
	}
	if o.QuantizationColors, err = optionalInt(code, "quantization colors", args, 2); err != nil {
		return err
	}
	// Only an absent palette size falls back to the default.
	if argAt(args, 2) != "" {
		if err := checkBetween(code, "quantization colors", o.QuantizationColors, 2, 256); err != nil {
			return err
		}
	}
	return s.WithPNGOptions(o)
}

func applyGIFOptions(s *OptionSet, code Code, args []string) error {
	if err := checkArity(code, args, 0, 2); err != nil {
		return err
	}
	var o GIFOptions
	var err error
	if o.OptimizeFrames, err = optionalBool(code, "optimize frames", args, 0); err != nil {
		return err
	}
	if o.OptimizeTransparency, err = optionalBool(code, "optimize transparency", args, 1); err != nil {
		return err
	}
	s.WithGIFOptions(o)
	return nil
}

func applyPresets(s *OptionSet, code Code, args []string) error {
	if len(args) == 0 {
		return optionError(code, "expected at least one preset name")
	}
	return s.WithPresets(args[0], args[1:]...)
}
