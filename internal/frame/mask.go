package frame

import (
	"image"

	"board-cropper/pkg/colorutil"
)

// Mask values.
const (
	MaskOff uint8 = 0
	MaskOn  uint8 = 255
)

// Mask marks the pixels of an image that fall inside a color band.
// Pix is row-major with one byte per pixel, either MaskOff or MaskOn.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewMask allocates an empty mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At reports whether (x, y) is set.
func (m *Mask) At(x, y int) bool {
	return m.Pix[y*m.Width+x] != MaskOff
}

// Set marks (x, y).
func (m *Mask) Set(x, y int) {
	m.Pix[y*m.Width+x] = MaskOn
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v != MaskOff {
			n++
		}
	}
	return n
}

// ColCount returns the number of set pixels in column x.
func (m *Mask) ColCount(x int) int {
	n := 0
	for i := x; i < len(m.Pix); i += m.Width {
		if m.Pix[i] != MaskOff {
			n++
		}
	}
	return n
}

// RowCount returns the number of set pixels in row y.
func (m *Mask) RowCount(y int) int {
	n := 0
	for _, v := range m.Pix[y*m.Width : (y+1)*m.Width] {
		if v != MaskOff {
			n++
		}
	}
	return n
}

// Image renders the mask as an opaque black and white RGBA image.
func (m *Mask) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range m.Pix {
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = v, v, v, 255
	}
	return img
}

// MaskBuilder produces a band mask for an image.
type MaskBuilder interface {
	Build(img *image.RGBA, band Band) (*Mask, error)
}

// PixelMaskBuilder classifies every pixel in Go. It is the default builder.
type PixelMaskBuilder struct{}

// Build implements MaskBuilder.
func (PixelMaskBuilder) Build(img *image.RGBA, band Band) (*Mask, error) {
	return BuildMask(img, band), nil
}

// BuildMask scans every pixel of img and marks those inside band.
// The input is never modified.
func BuildMask(img *image.RGBA, band Band) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)
	rng := band.Range()

	for y := 0; y < h; y++ {
		row := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := 0; x < w; x++ {
			p := img.Pix[row+x*4 : row+x*4+3 : row+x*4+3]
			if rng.Match(colorutil.RGBToHSV(p[0], p[1], p[2])) {
				mask.Pix[y*w+x] = MaskOn
			}
		}
	}
	return mask
}
