// SPDX-License-Identifier: MPL-2.0

package imgproxy

import "golang.org/x/exp/slices"

// CatalogEntry documents one processing option.
type CatalogEntry struct {
	Code Code
	Name string
	// Args is the argument synopsis, colon-separated as rendered.
	Args string
	// Rule is the validation applied by the matching With method.
	Rule string
}

var (
	catalog = []CatalogEntry{
		{CodeWidth, "width", "width", ">= 0"},
		{CodeHeight, "height", "height", ">= 0"},
		{CodeResizingType, "resizing type", "type", "fit, fill, fill-down, force or auto"},
		{CodeResizingAlgorithm, "resizing algorithm", "algorithm", "nearest, linear, cubic, lanczos2 or lanczos3"},
		{CodeDpr, "dpr", "dpr", "> 0"},
		{CodeEnlarge, "enlarge", "1", "flag"},
		{CodeExtend, "extend", "1[:gravity[:x:y]]", "gravity rule, smart not allowed"},
		{CodeGravity, "gravity", "type[:x:y]", "gravity rule"},
		{CodeCrop, "crop", "width:height[:gravity[:x:y]]", "width and height >= 0, gravity rule"},
		{CodePadding, "padding", "top:right:bottom:left", "all >= 0, at least one > 0"},
		{CodeTrim, "trim", "threshold[:color[:equal_hor[:equal_ver]]]", "color is 6 hex digits"},
		{CodeRotate, "rotate", "angle", "0, 90, 180 or 270"},
		{CodeQuality, "quality", "quality", "0-100"},
		{CodeMaxBytes, "max bytes", "bytes", "> 0"},
		{CodeBackground, "background", "r:g:b | hex", "components 0-255, hex is 6 hex digits"},
		{CodeBackgroundAlpha, "background alpha", "alpha", "0-1"},
		{CodeAdjust, "adjust", "brightness:contrast:saturation", "same as br, co and sa"},
		{CodeBrightness, "brightness", "brightness", "-255-255"},
		{CodeContrast, "contrast", "contrast", "0-1"},
		{CodeSaturation, "saturation", "saturation", "0-1"},
		{CodeBlur, "blur", "sigma", "> 0"},
		{CodeSharpen, "sharpen", "sigma", "> 0"},
		{CodePixelate, "pixelate", "size", "> 0"},
		{CodeUnsharpening, "unsharpening", "mode:weight:divisor", "mode auto, none or always; weight and divisor > 0"},
		{CodeWatermark, "watermark", "opacity:position:x_offset:y_offset:scale", "opacity 0-1, scale >= 0"},
		{CodeWatermarkURL, "watermark url", "encoded_url", "URL-safe base64"},
		{CodeStyle, "style", "encoded_css", "URL-safe base64"},
		{CodeJPEGOptions, "jpeg options", "progressive:no_subsample:trellis_quant:overshoot_deringing:optimize_scans:quant_table", "quant table 0-8"},
		{CodePNGOptions, "png options", "interlaced:quantize:quantization_colors", "colors 2-256"},
		{CodeGIFOptions, "gif options", "optimize_frames:optimize_transparency", "flags"},
		{CodePage, "page", "page", "> 0"},
		{CodeVideoThumbnailSecond, "video thumbnail second", "second", "> 0"},
		{CodePreset, "preset", "name[:name...]", "at least one non-empty name"},
		{CodeCacheBuster, "cachebuster", "id", "-"},
		{CodeStripMetadata, "strip metadata", "1", "flag"},
		{CodeStripColorProfile, "strip color profile", "1", "flag"},
		{CodeAutoRotate, "auto rotate", "1", "flag"},
		{CodeFilename, "filename", "name", "-"},
		{CodeFormat, "format", "extension", "-"},
	}

	catalogIndex = func() map[Code]int {
		idx := make(map[Code]int, len(catalog))
		for i, e := range catalog {
			idx[e.Code] = i
		}
		return idx
	}()
)

// Catalog returns every supported option in documentation order.
func Catalog() []CatalogEntry {
	return slices.Clone(catalog)
}

// LookupCode returns the catalog entry for c.
func LookupCode(c Code) (CatalogEntry, bool) {
	i, ok := catalogIndex[c]
	if !ok {
		return CatalogEntry{}, false
	}
	return catalog[i], true
}
