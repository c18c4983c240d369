package cells

import (
	"image"

	"github.com/disintegration/gift"
)

// InputSize is the square input resolution of the cell classifier.
const InputSize = 224

// Preprocess resizes a cell to the classifier's input resolution.
func Preprocess(cell image.Image) *image.RGBA {
	g := gift.New(gift.Resize(InputSize, InputSize, gift.LinearResampling))
	dst := image.NewRGBA(g.Bounds(cell.Bounds()))
	g.Draw(dst, cell)
	return dst
}
