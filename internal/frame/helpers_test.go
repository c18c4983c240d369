package frame

import (
	"image"
	"image/color"
	"sync"
)

var (
	frameBlue = color.RGBA{R: 0, G: 170, B: 255, A: 255}
	frameRed  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	black     = color.RGBA{A: 255}
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, img.Bounds(), c)
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// strokeBorder paints a border of thickness t just inside r.
func strokeBorder(img *image.RGBA, r image.Rectangle, t int, c color.RGBA) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// framedImage returns a black w×h image with a border of thickness t.
func framedImage(w, h, t int, c color.RGBA) *image.RGBA {
	img := solidImage(w, h, black)
	strokeBorder(img, img.Bounds(), t, c)
	return img
}

// nestedImage has an outer blue frame and an inner red frame directly inside it.
func nestedImage(w, h, outer, inner int) *image.RGBA {
	img := framedImage(w, h, outer, frameBlue)
	strokeBorder(img, img.Bounds().Inset(outer), inner, frameRed)
	return img
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, format)
}
