// Package colorutil provides shared color utilities for the board cropper.
package colorutil

import (
	"image/color"
	"math"
)

// Overlay colors used by the debug renderers.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// HSV is a color in the OpenCV 8-bit convention: H 0-180, S 0-255, V 0-255.
type HSV struct {
	H, S, V int
}

// RGBToHSV converts 8-bit RGB to integer HSV (OpenCV convention: H 0-180, S 0-255, V 0-255).
// Hue is rounded half-up and wrapped into range when the red sector goes negative.
// Band thresholds elsewhere are tuned against exactly these values.
func RGBToHSV(r8, g8, b8 uint8) HSV {
	r := float64(r8) / 255.0
	g := float64(g8) / 255.0
	b := float64(b8) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	var h float64
	if diff != 0 {
		switch maxC {
		case r:
			h = math.Mod((g-b)/diff, 6)
		case g:
			h = (b-r)/diff + 2
		default:
			h = (r-g)/diff + 4
		}
	}

	hue := roundHalfUp(h * 30)
	if hue < 0 {
		hue += 180
	}

	sat := 0
	if maxC != 0 {
		sat = roundHalfUp(diff / maxC * 255.0)
	}

	return HSV{H: hue, S: sat, V: roundHalfUp(maxC * 255.0)}
}

// roundHalfUp rounds toward +Inf on ties, unlike math.Round which rounds away from zero.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
