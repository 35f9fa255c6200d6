// SPDX-License-Identifier: MPL-2.0

package imgproxy

import (
	"errors"
	"fmt"
)

const (
	// CodeWidth sets the result width in pixels
	CodeWidth Code = "w"
	// CodeHeight sets the result height in pixels
	CodeHeight Code = "h"
	// CodeResizingType selects how the source is fitted into width and height
	CodeResizingType Code = "rt"
	// CodeResizingAlgorithm selects the interpolation used when resizing
	CodeResizingAlgorithm Code = "ra"
	// CodeDpr multiplies width and height for high density displays
	CodeDpr Code = "dpr"
	// CodeEnlarge allows the result to be larger than the source
	CodeEnlarge Code = "el"
	// CodeExtend pads the result to the requested size when it is smaller
	CodeExtend Code = "ex"
	// CodeGravity anchors cropping and resizing
	CodeGravity Code = "g"
	// CodeCrop crops the source before resizing
	CodeCrop Code = "c"
	// CodePadding adds padding around the result
	CodePadding Code = "pd"
	// CodeTrim removes borders of a uniform color
	CodeTrim Code = "t"
	// CodeRotate rotates the result by a multiple of 90 degrees
	CodeRotate Code = "rot"
	// CodeQuality sets the lossy compression quality
	CodeQuality Code = "q"
	// CodeMaxBytes caps the encoded size by lowering quality
	CodeMaxBytes Code = "mb"
	// CodeBackground fills transparent areas with a color
	CodeBackground Code = "bg"
	// CodeBackgroundAlpha sets the opacity of the background color
	CodeBackgroundAlpha Code = "bga"
	// CodeAdjust sets brightness, contrast and saturation at once
	CodeAdjust Code = "a"
	// CodeBrightness shifts the brightness
	CodeBrightness Code = "br"
	// CodeContrast scales the contrast
	CodeContrast Code = "co"
	// CodeSaturation scales the color saturation
	CodeSaturation Code = "sa"
	// CodeBlur applies a gaussian blur
	CodeBlur Code = "bl"
	// CodeSharpen applies a sharpening mask
	CodeSharpen Code = "sh"
	// CodePixelate pixelates the result
	CodePixelate Code = "pix"
	// CodeUnsharpening controls the unsharp mask applied after downscaling
	CodeUnsharpening Code = "ush"
	// CodeWatermark places the configured watermark
	CodeWatermark Code = "wm"
	// CodeWatermarkURL replaces the watermark image
	CodeWatermarkURL Code = "wmu"
	// CodeStyle injects CSS into SVG sources
	CodeStyle Code = "st"
	// CodeJPEGOptions tunes the JPEG encoder
	CodeJPEGOptions Code = "jpgo"
	// CodePNGOptions tunes the PNG encoder
	CodePNGOptions Code = "pngo"
	// CodeGIFOptions tunes the GIF encoder
	CodeGIFOptions Code = "gifo"
	// CodePage selects the page of a multi-page source
	CodePage Code = "pg"
	// CodeVideoThumbnailSecond selects the video frame used as thumbnail
	CodeVideoThumbnailSecond Code = "vts"
	// CodePreset applies named presets configured on the server
	CodePreset Code = "pr"
	// CodeCacheBuster changes the URL without changing the result
	CodeCacheBuster Code = "cb"
	// CodeStripMetadata removes EXIF and other metadata
	CodeStripMetadata Code = "sm"
	// CodeStripColorProfile converts to sRGB and drops the color profile
	CodeStripColorProfile Code = "scp"
	// CodeAutoRotate rotates according to the EXIF orientation
	CodeAutoRotate Code = "ar"
	// CodeFilename sets the Content-Disposition filename
	CodeFilename Code = "fn"
	// CodeFormat sets the output format
	CodeFormat Code = "f"
)

// ErrInvalidCode is returned when a Code is not part of the catalog.
var ErrInvalidCode = errors.New("invalid option code")

type (
	// Code is the short identifier of a processing option, as it appears in
	// an advanced-mode path segment.
	Code string

	// InvalidCodeError is returned when a Code is not recognized.
	// It wraps ErrInvalidCode for errors.Is() compatibility.
	InvalidCodeError struct {
		Value Code
	}
)

// Error implements the error interface for InvalidCodeError.
func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("unknown option code %q (run 'imgurl options' for the list)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidCodeError) Unwrap() error { return ErrInvalidCode }

// String returns the string representation of the Code.
func (c Code) String() string { return string(c) }

// Validate returns nil if the Code is in the catalog.
func (c Code) Validate() error {
	if _, ok := catalogIndex[c]; !ok {
		return &InvalidCodeError{Value: c}
	}
	return nil
}

// Name returns the human-facing option name, or the code itself when unknown.
func (c Code) Name() string {
	if e, ok := LookupCode(c); ok {
		return e.Name
	}
	return string(c)
}
