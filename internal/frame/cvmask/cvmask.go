// Package cvmask builds frame masks with OpenCV instead of the per-pixel Go classifier.
//
// OpenCV's 8-bit HSV conversion uses fixed-point saturation and its own hue
// rounding, so masks can differ from frame.BuildMask by a few pixels on
// colors that sit exactly on a band edge. Solid frame colors match exactly.
package cvmask

import (
	"fmt"
	"image"

	"board-cropper/internal/frame"

	"gocv.io/x/gocv"
)

// Builder implements frame.MaskBuilder using gocv.
type Builder struct{}

// Build converts img to HSV and thresholds each hue interval of the band,
// OR-ing the partial masks together.
func (Builder) Build(img *image.RGBA, band frame.Band) (*frame.Mask, error) {
	src, err := gocv.ImageToMatRGB(img) // BGR channel order
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer src.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(src, &hsv, gocv.ColorBGRToHSV)

	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), hsv.Rows(), hsv.Cols(), gocv.MatTypeCV8UC1)
	defer mask.Close()

	part := gocv.NewMat()
	defer part.Close()

	rng := band.Range()
	for _, h := range rng.Hues {
		lower := gocv.NewScalar(float64(h.Min), float64(rng.SatMin), float64(rng.ValMin), 0)
		upper := gocv.NewScalar(float64(h.Max), 255, 255, 0)
		gocv.InRangeWithScalar(hsv, lower, upper, &part)
		gocv.BitwiseOr(mask, part, &mask)
	}

	return toMask(mask)
}

func toMask(m gocv.Mat) (*frame.Mask, error) {
	data, err := m.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("failed to read mask: %w", err)
	}
	out := frame.NewMask(m.Cols(), m.Rows())
	if len(data) != len(out.Pix) {
		return nil, fmt.Errorf("mask size mismatch: %d bytes for %dx%d", len(data), m.Cols(), m.Rows())
	}
	for i, v := range data {
		if v != 0 {
			out.Pix[i] = frame.MaskOn
		}
	}
	return out, nil
}
