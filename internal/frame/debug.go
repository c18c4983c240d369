package frame

import (
	"image"
	"image/color"
	"image/draw"

	"board-cropper/pkg/colorutil"
)

const cropOutlineWidth = 3

// RenderOverlay returns an annotated copy of img for visual debugging:
// the final crop rectangle in red, the pre-trim top edge in blue when a top
// trim was applied, and the search margins in gray. The input is not modified.
func RenderOverlay(img *image.RGBA, final Boundaries, additionalTopCrop int, searchRatioX, searchRatioY float64) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	drawRect(out, final.Left, final.Top, final.Right-1, final.Bottom-1, colorutil.Red, cropOutlineWidth)

	if final.TopFrameDetected && additionalTopCrop > 0 {
		y := final.Top - additionalTopCrop
		for x := final.Left; x < final.Right; x++ {
			out.SetRGBA(x, y, colorutil.Blue)
		}
	}

	searchX := int(float64(w) * searchRatioX)
	searchY := int(float64(h) * searchRatioY)
	drawRect(out, searchX, searchY, w-searchX-1, h-searchY-1, colorutil.Gray, 1)

	return out
}

// drawRect strokes an inclusive rectangle inward with the given thickness.
// Pixels outside the image are skipped.
func drawRect(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		for x := x1; x <= x2; x++ {
			img.SetRGBA(x, y1+t, c)
			img.SetRGBA(x, y2-t, c)
		}
		for y := y1; y <= y2; y++ {
			img.SetRGBA(x1+t, y, c)
			img.SetRGBA(x2-t, y, c)
		}
	}
}
