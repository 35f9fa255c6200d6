// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// WithQuality sets the output quality; 0 uses the service default.
func (s *OptionSet) WithQuality(q int) error {
	if err := checkBetween(CodeQuality, "quality", q, 0, 100); err != nil {
		return err
	}
	s.setInt(CodeQuality, q)
	return nil
}

// WithoutQuality removes the quality.
func (s *OptionSet) WithoutQuality() { s.Unset(CodeQuality) }

// Quality returns the quality, if set.
func (s *OptionSet) Quality() (int, bool) { return s.intValue(CodeQuality) }

// WithMaxBytes limits the output file size by degrading quality.
func (s *OptionSet) WithMaxBytes(n int) error {
	if err := checkPositive(CodeMaxBytes, "max bytes", n); err != nil {
		return err
	}
	s.setInt(CodeMaxBytes, n)
	return nil
}

// WithoutMaxBytes removes the size limit.
func (s *OptionSet) WithoutMaxBytes() { s.Unset(CodeMaxBytes) }

// MaxBytes returns the size limit, if set.
func (s *OptionSet) MaxBytes() (int, bool) { return s.intValue(CodeMaxBytes) }

// WithBackgroundRGB fills transparent areas with an RGB color.
func (s *OptionSet) WithBackgroundRGB(r, g, b int) error {
	for _, c := range []struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if err := checkBetween(CodeBackground, c.name+" component", c.value, 0, 255); err != nil {
			return err
		}
	}
	s.set(BackgroundOption{r: uint8(r), g: uint8(g), b: uint8(b)})
	return nil
}

// WithBackgroundHex fills transparent areas with a color given as six hex
// digits, without '#'.
func (s *OptionSet) WithBackgroundHex(hex string) error {
	if err := checkHexColor(CodeBackground, hex); err != nil {
		return err
	}
	s.set(BackgroundOption{hex: hex, isHex: true})
	return nil
}

// WithBackgroundColor fills transparent areas with c. The alpha channel is
// not encoded; use WithBackgroundAlpha for that.
func (s *OptionSet) WithBackgroundColor(c color.Color) error {
	if c == nil {
		return optionError(CodeBackground, "color is nil")
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return optionError(CodeBackground, "color is fully transparent")
	}
	r, g, b := cf.Clamped().RGB255()
	return s.WithBackgroundRGB(int(r), int(g), int(b))
}

// WithoutBackground removes the background color.
func (s *OptionSet) WithoutBackground() { s.Unset(CodeBackground) }

// Background returns the background color, if set.
func (s *OptionSet) Background() (BackgroundOption, bool) {
	return lookup[BackgroundOption](s, CodeBackground)
}

// WithBackgroundAlpha sets the background opacity.
func (s *OptionSet) WithBackgroundAlpha(alpha float64) error {
	if err := checkBetween(CodeBackgroundAlpha, "background alpha", alpha, 0, 1); err != nil {
		return err
	}
	s.setFloat(CodeBackgroundAlpha, alpha)
	return nil
}

// WithoutBackgroundAlpha removes the background opacity.
func (s *OptionSet) WithoutBackgroundAlpha() { s.Unset(CodeBackgroundAlpha) }

// BackgroundAlpha returns the background opacity, if set.
func (s *OptionSet) BackgroundAlpha() (float64, bool) { return s.floatValue(CodeBackgroundAlpha) }

// WithAdjust sets brightness, contrast and saturation in one option.
func (s *OptionSet) WithAdjust(brightness int, contrast, saturation float64) error {
	if err := checkBetween(CodeAdjust, "brightness", brightness, -255, 255); err != nil {
		return err
	}
	if err := checkBetween(CodeAdjust, "contrast", contrast, 0, 1); err != nil {
		return err
	}
	if err := checkBetween(CodeAdjust, "saturation", saturation, 0, 1); err != nil {
		return err
	}
	s.set(AdjustOption{brightness: brightness, contrast: contrast, saturation: saturation})
	return nil
}

// WithoutAdjust removes the adjust option.
func (s *OptionSet) WithoutAdjust() { s.Unset(CodeAdjust) }

// Adjust returns the adjust option, if set.
func (s *OptionSet) Adjust() (AdjustOption, bool) { return lookup[AdjustOption](s, CodeAdjust) }

// WithBrightness sets the brightness, -255 to 255.
func (s *OptionSet) WithBrightness(v int) error {
	if err := checkBetween(CodeBrightness, "brightness", v, -255, 255); err != nil {
		return err
	}
	s.setInt(CodeBrightness, v)
	return nil
}

// WithoutBrightness removes the brightness.
func (s *OptionSet) WithoutBrightness() { s.Unset(CodeBrightness) }

// Brightness returns the brightness, if set.
func (s *OptionSet) Brightness() (int, bool) { return s.intValue(CodeBrightness) }

// WithContrast sets the contrast, 0 to 1.
func (s *OptionSet) WithContrast(v float64) error {
	if err := checkBetween(CodeContrast, "contrast", v, 0, 1); err != nil {
		return err
	}
	s.setFloat(CodeContrast, v)
	return nil
}

// WithoutContrast removes the contrast.
func (s *OptionSet) WithoutContrast() { s.Unset(CodeContrast) }

// Contrast returns the contrast, if set.
func (s *OptionSet) Contrast() (float64, bool) { return s.floatValue(CodeContrast) }

// WithSaturation sets the saturation, 0 to 1.
func (s *OptionSet) WithSaturation(v float64) error {
	if err := checkBetween(CodeSaturation, "saturation", v, 0, 1); err != nil {
		return err
	}
	s.setFloat(CodeSaturation, v)
	return nil
}

// WithoutSaturation removes the saturation.
func (s *OptionSet) WithoutSaturation() { s.Unset(CodeSaturation) }

// Saturation returns the saturation, if set.
func (s *OptionSet) Saturation() (float64, bool) { return s.floatValue(CodeSaturation) }

// WithBlur applies a gaussian blur with the given sigma.
func (s *OptionSet) WithBlur(sigma float64) error {
	if err := checkPositive(CodeBlur, "sigma", sigma); err != nil {
		return err
	}
	s.setFloat(CodeBlur, sigma)
	return nil
}

// WithoutBlur removes the blur.
func (s *OptionSet) WithoutBlur() { s.Unset(CodeBlur) }

// Blur returns the blur sigma, if set.
func (s *OptionSet) Blur() (float64, bool) { return s.floatValue(CodeBlur) }

// WithSharpen applies a sharpen filter with the given sigma.
func (s *OptionSet) WithSharpen(sigma float64) error {
	if err := checkPositive(CodeSharpen, "sigma", sigma); err != nil {
		return err
	}
	s.setFloat(CodeSharpen, sigma)
	return nil
}

// WithoutSharpen removes the sharpen filter.
func (s *OptionSet) WithoutSharpen() { s.Unset(CodeSharpen) }

// Sharpen returns the sharpen sigma, if set.
func (s *OptionSet) Sharpen() (float64, bool) { return s.floatValue(CodeSharpen) }

// WithPixelate pixelates the image with the given block size.
func (s *OptionSet) WithPixelate(size int) error {
	if err := checkPositive(CodePixelate, "size", size); err != nil {
		return err
	}
	s.setInt(CodePixelate, size)
	return nil
}

// WithoutPixelate removes the pixelate filter.
func (s *OptionSet) WithoutPixelate() { s.Unset(CodePixelate) }

// Pixelate returns the pixelate block size, if set.
func (s *OptionSet) Pixelate() (int, bool) { return s.intValue(CodePixelate) }

// WithUnsharpening controls sharpening of downscaled images. A zero weight or
// divisor falls back to DefaultUnsharpeningWeight and DefaultUnsharpeningDivisor.
func (s *OptionSet) WithUnsharpening(mode UnsharpeningMode, weight, divisor float64) error {
	if err := mode.Validate(); err != nil {
		return wrapOptionError(CodeUnsharpening, err)
	}
	if weight == 0 {
		weight = DefaultUnsharpeningWeight
	}
	if divisor == 0 {
		divisor = DefaultUnsharpeningDivisor
	}
	if err := checkPositive(CodeUnsharpening, "weight", weight); err != nil {
		return err
	}
	if err := checkPositive(CodeUnsharpening, "divisor", divisor); err != nil {
		return err
	}
	s.set(UnsharpeningOption{mode: mode, weight: weight, divisor: divisor})
	return nil
}

// WithoutUnsharpening removes the unsharpening option.
func (s *OptionSet) WithoutUnsharpening() { s.Unset(CodeUnsharpening) }

// Unsharpening returns the unsharpening option, if set.
func (s *OptionSet) Unsharpening() (UnsharpeningOption, bool) {
	return lookup[UnsharpeningOption](s, CodeUnsharpening)
}
