// Package pipeline reads a play field from a screenshot: frame cropping,
// cell splitting and cell classification.
package pipeline

import (
	"context"
	"fmt"
	"image"

	"board-cropper/internal/board"
	"board-cropper/internal/cells"
	"board-cropper/internal/frame"
)

// Reader turns screenshots into classified fields.
type Reader struct {
	Params     frame.Params
	Grid       cells.Grid
	Classifier cells.Classifier
	Progress   cells.Progress // Optional
}

// Result is the outcome of Reader.Read.
type Result struct {
	Crop   *frame.CompoundResult
	Field  *board.Field
	Labels []board.Label
	Image  *image.RGBA // The image that was split into cells
}

// Cropped reports whether the combined crop succeeded, i.e. whether cells
// were cut from the frame-free play field rather than the raw screenshot.
func (r *Result) Cropped() bool {
	return r.Crop.Get(frame.RegionCombined).OK()
}

// Read crops img, falling back to the uncropped image when the combined
// region could not be found, then classifies every cell.
func (r *Reader) Read(ctx context.Context, img *image.RGBA) (*Result, error) {
	if r.Classifier == nil {
		return nil, fmt.Errorf("no classifier configured")
	}

	crop := frame.CropBothPlayers(img, r.Params)
	if err := crop.Err(); err != nil && r.Params.Logger != nil {
		r.Params.Logger.Printf("pipeline: using uncropped image where needed: %v", err)
	}

	field := crop.Best()
	labels, err := cells.ClassifyGrid(ctx, r.Grid, field, r.Classifier, r.Progress)
	if err != nil {
		return nil, fmt.Errorf("classify cells: %w", err)
	}

	result := &Result{
		Crop:   crop,
		Labels: labels,
		Image:  field,
	}

	// Only the standard field shape maps onto board.Field.
	if r.Grid.Cols == board.Cols && r.Grid.Rows == board.Rows {
		f, err := board.NewField(labels)
		if err != nil {
			return nil, err
		}
		result.Field = f
	}
	return result, nil
}
