package frame

// Params configures frame detection and cropping.
type Params struct {
	// Boundary search
	MinRatio     float64 // Fraction of a line that must be frame colored (0.7)
	SearchRatioX float64 // Horizontal search margin as a fraction of width (0.1)
	SearchRatioY float64 // Vertical search margin as a fraction of height (0.05)

	// Validation
	MinCropRatio            float64 // Crop must keep this fraction of each dimension (0.7)
	MinHeightAfterTrimRatio float64 // Height floor after the top trim (0.3)

	// Extra rows removed below a detected top frame, as a fraction of crop height
	AdditionalTopCropRatio float64

	// Debug renders the mask and an annotated overlay into CropResult.Debug
	Debug bool

	// Optional collaborators; nil selects the no-op logger and PixelMaskBuilder
	Logger      Logger
	MaskBuilder MaskBuilder
}

// DefaultParams returns the tuned defaults for board screenshots.
func DefaultParams() Params {
	return Params{
		MinRatio:     0.7,
		SearchRatioX: 0.1,
		SearchRatioY: 0.05,

		MinCropRatio:            0.7,
		MinHeightAfterTrimRatio: 0.3,

		AdditionalTopCropRatio: 1.0 / 50,
	}
}

// WithDebug returns a copy of params with debug rendering toggled.
func (p Params) WithDebug(debug bool) Params {
	p.Debug = debug
	return p
}

// WithLogger returns a copy of params that reports progress to l.
func (p Params) WithLogger(l Logger) Params {
	p.Logger = l
	return p
}

// WithMaskBuilder returns a copy of params using an alternative mask builder.
func (p Params) WithMaskBuilder(b MaskBuilder) Params {
	p.MaskBuilder = b
	return p
}

// WithSearch returns a copy of params with custom boundary search settings.
func (p Params) WithSearch(minRatio, searchRatioX, searchRatioY float64) Params {
	p.MinRatio = minRatio
	p.SearchRatioX = searchRatioX
	p.SearchRatioY = searchRatioY
	return p
}

// WithTopCropRatio returns a copy of params with a different top trim ratio.
func (p Params) WithTopCropRatio(ratio float64) Params {
	p.AdditionalTopCropRatio = ratio
	return p
}

func (p Params) logger() Logger {
	if p.Logger == nil {
		return nopLogger{}
	}
	return p.Logger
}

func (p Params) maskBuilder() MaskBuilder {
	if p.MaskBuilder == nil {
		return PixelMaskBuilder{}
	}
	return p.MaskBuilder
}
