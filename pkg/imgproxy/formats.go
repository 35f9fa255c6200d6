// SPDX-License-Identifier: MPL-2.0

package imgproxy

// DefaultPNGQuantizationColors is used when PNGOptions.QuantizationColors is 0.
const DefaultPNGQuantizationColors = 256

type (
	// JPEGOptions is the jpgo option. Its zero value renders jpgo:0:0:0:0:0:0.
	JPEGOptions struct {
		Progressive        bool
		NoSubsample        bool
		TrellisQuant       bool
		OvershootDeringing bool
		OptimizeScans      bool
		// QuantTable selects one of the predefined quantization tables, 0-8.
		QuantTable int
	}

	// PNGOptions is the pngo option.
	PNGOptions struct {
		Interlaced bool
		Quantize   bool
		// QuantizationColors is the palette size, 2-256. Zero means 256.
		QuantizationColors int
	}

	// GIFOptions is the gifo option.
	GIFOptions struct {
		OptimizeFrames       bool
		OptimizeTransparency bool
	}
)

// Code implements Option.
func (o JPEGOptions) Code() Code { return CodeJPEGOptions }

// Args implements Option.
func (o JPEGOptions) Args() []string {
	return []string{
		formatBool(o.Progressive),
		formatBool(o.NoSubsample),
		formatBool(o.TrellisQuant),
		formatBool(o.OvershootDeringing),
		formatBool(o.OptimizeScans),
		formatInt(o.QuantTable),
	}
}

// Validate checks the quantization table index.
func (o JPEGOptions) Validate() error {
	return checkBetween(CodeJPEGOptions, "quant table", o.QuantTable, 0, 8)
}

// Code implements Option.
func (o PNGOptions) Code() Code { return CodePNGOptions }

// Args implements Option.
func (o PNGOptions) Args() []string {
	return []string{
		formatBool(o.Interlaced),
		formatBool(o.Quantize),
		formatInt(o.colors()),
	}
}

// Validate checks the palette size.
func (o PNGOptions) Validate() error {
	return checkBetween(CodePNGOptions, "quantization colors", o.colors(), 2, 256)
}

func (o PNGOptions) colors() int {
	if o.QuantizationColors == 0 {
		return DefaultPNGQuantizationColors
	}
	return o.QuantizationColors
}

// Code implements Option.
func (o GIFOptions) Code() Code { return CodeGIFOptions }

// Args implements Option.
func (o GIFOptions) Args() []string {
	return []string{formatBool(o.OptimizeFrames), formatBool(o.OptimizeTransparency)}
}
