package cells

import (
	"context"
	"fmt"
	"image"

	"board-cropper/internal/board"
)

// Classifier assigns a label to a single cell image.
type Classifier interface {
	Classify(cell image.Image) (board.Label, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(cell image.Image) (board.Label, error)

// Classify implements Classifier.
func (f ClassifierFunc) Classify(cell image.Image) (board.Label, error) {
	return f(cell)
}

// Progress is called after each classified cell with the number done and the total.
type Progress func(done, total int)

// ClassifyGrid classifies every cell of img and returns the labels in
// column-major order. It stops early when ctx is cancelled.
func ClassifyGrid(ctx context.Context, g Grid, img *image.RGBA, c Classifier, progress Progress) ([]board.Label, error) {
	cells := g.Split(img)
	labels := make([]board.Label, len(cells))
	for i, cell := range cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		label, err := c.Classify(cell.Image)
		if err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", cell.Col, cell.Row, err)
		}
		labels[i] = label
		if progress != nil {
			progress(i+1, len(cells))
		}
	}
	return labels, nil
}
