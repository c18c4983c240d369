// Package cells splits a cropped play field into cells and classifies them.
package cells

import (
	"image"

	"board-cropper/internal/board"
)

// Grid is the cell layout of a play field.
type Grid struct {
	Cols int
	Rows int
}

// DefaultGrid is the standard 10×20 field.
func DefaultGrid() Grid {
	return Grid{Cols: board.Cols, Rows: board.Rows}
}

// Cell is one grid cell cut from a field image.
type Cell struct {
	Col, Row int
	Rect     image.Rectangle // In the field image's coordinates
	Image    image.Image
}

// CellRect returns the pixel rectangle of (col, row) inside bounds. Edges are
// floored from the fractional cell size so neighboring cells never overlap.
func (g Grid) CellRect(bounds image.Rectangle, col, row int) image.Rectangle {
	cw := float64(bounds.Dx()) / float64(g.Cols)
	ch := float64(bounds.Dy()) / float64(g.Rows)
	return image.Rect(
		bounds.Min.X+int(float64(col)*cw),
		bounds.Min.Y+int(float64(row)*ch),
		bounds.Min.X+int(float64(col+1)*cw),
		bounds.Min.Y+int(float64(row+1)*ch),
	)
}

// Split cuts img into cells in column-major order (columns outer, rows inner).
// Cells share img's pixels.
func (g Grid) Split(img *image.RGBA) []Cell {
	bounds := img.Bounds()
	cells := make([]Cell, 0, g.Cols*g.Rows)
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			r := g.CellRect(bounds, col, row)
			cells = append(cells, Cell{
				Col:   col,
				Row:   row,
				Rect:  r,
				Image: img.SubImage(r),
			})
		}
	}
	return cells
}
