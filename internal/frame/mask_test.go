package frame

import (
	"image"
	"math/rand"
	"testing"

	"board-cropper/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomImage(w, h int, seed int64) *image.RGBA {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rnd.Read(img.Pix)
	return img
}

func TestBuildMaskValuesAndCount(t *testing.T) {
	img := randomImage(64, 48, 1)

	for _, band := range []Band{BandBlue, BandRed} {
		t.Run(band.String(), func(t *testing.T) {
			mask := BuildMask(img, band)
			require.Len(t, mask.Pix, 64*48)

			want := 0
			for y := 0; y < 48; y++ {
				for x := 0; x < 64; x++ {
					c := img.RGBAAt(x, y)
					in := InBand(colorutil.RGBToHSV(c.R, c.G, c.B), band)
					if in {
						want++
					}
					v := mask.Pix[y*64+x]
					assert.True(t, v == MaskOff || v == MaskOn)
					assert.Equal(t, in, mask.At(x, y))
				}
			}
			assert.Equal(t, want, mask.Count())
			assert.NotZero(t, want, "random image should contain some band pixels")
		})
	}
}

func TestBuildMaskDoesNotModifyInput(t *testing.T) {
	img := framedImage(40, 40, 3, frameBlue)
	before := append([]uint8(nil), img.Pix...)
	BuildMask(img, BandBlue)
	assert.Equal(t, before, img.Pix)
}

func TestBuildMaskSubImage(t *testing.T) {
	img := framedImage(40, 40, 3, frameBlue)
	sub := img.SubImage(image.Rect(3, 3, 37, 37)).(*image.RGBA)
	mask := BuildMask(sub, BandBlue)
	assert.Equal(t, 34, mask.Width)
	assert.Equal(t, 0, mask.Count())
}

func TestMaskCounts(t *testing.T) {
	mask := NewMask(5, 4)
	mask.Set(1, 0)
	mask.Set(1, 2)
	mask.Set(3, 2)

	assert.Equal(t, 3, mask.Count())
	assert.Equal(t, 2, mask.ColCount(1))
	assert.Equal(t, 0, mask.ColCount(0))
	assert.Equal(t, 2, mask.RowCount(2))
	assert.Equal(t, 1, mask.RowCount(0))

	vis := mask.Image()
	assert.Equal(t, image.Rect(0, 0, 5, 4), vis.Bounds())
	assert.Equal(t, uint8(255), vis.RGBAAt(1, 0).R)
	assert.Equal(t, uint8(0), vis.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(255), vis.RGBAAt(0, 0).A)
}
