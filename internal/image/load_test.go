package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	src.SetRGBA(3, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	path := filepath.Join(t.TempDir(), "out", "board.png")
	require.NoError(t, SavePNG(path, src))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), got.Bounds())
	assert.Equal(t, src.RGBAAt(3, 2), got.RGBAAt(3, 2))
}

func TestDecodeConvertsToRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(1, 1, color.Gray{Y: 200})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gray))

	img, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, img.RGBAAt(1, 1))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestToRGBAOffsetImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.SetRGBA(5, 5, color.RGBA{R: 1, A: 255})
	sub := src.SubImage(image.Rect(4, 4, 8, 8))

	out := ToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	assert.Equal(t, uint8(1), out.RGBAAt(1, 1).R)
	assert.Same(t, src, ToRGBA(src))
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("shot.PNG"))
	assert.True(t, IsSupportedFormat("shot.webp"))
	assert.False(t, IsSupportedFormat("notes.txt"))
}
