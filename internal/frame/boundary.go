package frame

// LocateBoundaries finds the inner edge of a frame in mask.
//
// Each edge is searched inside-out: starting at the search margin
// (floor(W*searchRatioX) columns, floor(H*searchRatioY) rows) and moving
// toward the image border. The first column or row whose set-pixel count
// exceeds dimension*minRatio is taken as frame; the boundary is placed just
// inside it. Edges without a hit fall back to the image border.
func LocateBoundaries(mask *Mask, minRatio, searchRatioX, searchRatioY float64) Boundaries {
	w, h := mask.Width, mask.Height
	maxSearchX := clampSearch(int(float64(w)*searchRatioX), w)
	maxSearchY := clampSearch(int(float64(h)*searchRatioY), h)

	colThreshold := float64(h) * minRatio
	rowThreshold := float64(w) * minRatio

	b := Boundaries{Left: 0, Right: w, Top: 0, Bottom: h}

	for x := maxSearchX; x >= 0; x-- {
		if float64(mask.ColCount(x)) > colThreshold {
			b.Left = x + 1
			break
		}
	}

	for x := w - maxSearchX - 1; x < w; x++ {
		if float64(mask.ColCount(x)) > colThreshold {
			b.Right = x
			break
		}
	}

	for y := maxSearchY; y >= 0; y-- {
		if float64(mask.RowCount(y)) > rowThreshold {
			b.Top = y + 1
			b.TopFrameDetected = true
			break
		}
	}

	for y := h - maxSearchY - 1; y < h; y++ {
		if float64(mask.RowCount(y)) > rowThreshold {
			b.Bottom = y
			break
		}
	}

	return b
}

// clampSearch keeps a search margin inside [0, size-1].
func clampSearch(margin, size int) int {
	if margin < 0 {
		return 0
	}
	if margin > size-1 {
		return max(size-1, 0)
	}
	return margin
}
