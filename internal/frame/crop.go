package frame

import (
	"fmt"
	"image"
	"math"
)

// CropForBand detects the frame of a single band and returns the pixels inside it.
// Blue crops are reported as RegionPlayer1 and red crops as RegionPlayer2.
//
// Failures are returned as *CropError wrapping ErrCropTooSmall,
// ErrInvalidBoundaries or ErrCropTooSmallAfterTopTrim; no partial result is
// returned alongside an error.
func CropForBand(img *image.RGBA, band Band, params Params) (*CropResult, error) {
	region := RegionPlayer1
	if band == BandRed {
		region = RegionPlayer2
	}
	return cropRegion(img, region, band, params)
}

func cropRegion(img *image.RGBA, region Region, band Band, params Params) (*CropResult, error) {
	log := params.logger()
	log.Printf("framecrop: processing %s (%s) frame", region, band)

	fail := func(err error) (*CropResult, error) {
		return nil, &CropError{Region: region, Band: band, Err: err}
	}

	if img == nil || img.Bounds().Empty() {
		return fail(ErrEmptyImage)
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	mask, err := params.maskBuilder().Build(img, band)
	if err != nil {
		return fail(fmt.Errorf("build mask: %w", err))
	}

	detected := LocateBoundaries(mask, params.MinRatio, params.SearchRatioX, params.SearchRatioY)

	if float64(detected.Width()) < float64(w)*params.MinCropRatio ||
		float64(detected.Height()) < float64(h)*params.MinCropRatio {
		log.Printf("framecrop: crop too small for %s (%dx%d of %dx%d), skipping",
			region, detected.Width(), detected.Height(), w, h)
		return fail(ErrCropTooSmall)
	}
	if !detected.Valid() {
		log.Printf("framecrop: invalid boundaries for %s, skipping", region)
		return fail(ErrInvalidBoundaries)
	}

	final := detected
	additionalTopCrop := 0
	if detected.TopFrameDetected {
		additionalTopCrop = int(math.Floor(float64(detected.Height()) * params.AdditionalTopCropRatio))
		final.Top += additionalTopCrop
		log.Printf("framecrop: top frame removed, cropping additional %dpx from top", additionalTopCrop)
	}

	if float64(final.Height()) < float64(h)*params.MinHeightAfterTrimRatio {
		log.Printf("framecrop: crop too small after additional top cropping for %s", region)
		return fail(ErrCropTooSmallAfterTopTrim)
	}

	cropped := CropImage(img, final.Rect())

	result := &CropResult{
		Region:   region,
		Band:     band,
		Image:    cropped,
		Bounds:   final,
		Detected: detected,
		Info: Info{
			OriginalSize:      image.Pt(w, h),
			CroppedSize:       image.Pt(final.Width(), final.Height()),
			AdditionalTopCrop: additionalTopCrop,
		},
	}

	if params.Debug {
		result.Debug = &Diagnostics{
			Mask:    mask.Image(),
			Overlay: RenderOverlay(img, final, additionalTopCrop, params.SearchRatioX, params.SearchRatioY),
		}
	}

	log.Printf("framecrop: processed %s, %dx%d -> %dx%d", region, w, h, final.Width(), final.Height())
	return result, nil
}

// CropImage copies rect (relative to the image origin) into a new RGBA image
// anchored at (0,0). When rect covers the whole image the source is returned as is.
func CropImage(img *image.RGBA, rect image.Rectangle) *image.RGBA {
	bounds := img.Bounds()
	if bounds.Min == (image.Point{}) && rect == bounds {
		return img
	}

	rect = rect.Add(bounds.Min).Intersect(bounds)
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	rowBytes := rect.Dx() * 4
	for y := 0; y < rect.Dy(); y++ {
		src := img.PixOffset(rect.Min.X, rect.Min.Y+y)
		copy(out.Pix[y*out.Stride:y*out.Stride+rowBytes], img.Pix[src:src+rowBytes])
	}
	return out
}
