package frame

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Profile holds the per-column and per-row density of a mask, as the
// fraction of set pixels along each line. It is the quantity LocateBoundaries
// thresholds, exposed for tuning.
type Profile struct {
	Columns []float64
	Rows    []float64
}

// LineStats summarizes one axis of a Profile.
type LineStats struct {
	Mean   float64
	StdDev float64
	Max    float64
	ArgMax int
}

// NewProfile computes the density profile of m.
func NewProfile(m *Mask) Profile {
	p := Profile{
		Columns: make([]float64, m.Width),
		Rows:    make([]float64, m.Height),
	}
	if m.Width == 0 || m.Height == 0 {
		return p
	}
	for x := range p.Columns {
		p.Columns[x] = float64(m.ColCount(x))
	}
	for y := range p.Rows {
		p.Rows[y] = float64(m.RowCount(y))
	}
	floats.Scale(1/float64(m.Height), p.Columns)
	floats.Scale(1/float64(m.Width), p.Rows)
	return p
}

// Coverage returns the fraction of set pixels in the whole mask.
func (p Profile) Coverage() float64 {
	if len(p.Rows) == 0 {
		return 0
	}
	return stat.Mean(p.Rows, nil)
}

// ColumnStats summarizes the column densities.
func (p Profile) ColumnStats() LineStats {
	return lineStats(p.Columns)
}

// RowStats summarizes the row densities.
func (p Profile) RowStats() LineStats {
	return lineStats(p.Rows)
}

// FrameLines returns the columns and rows whose density exceeds minRatio.
func (p Profile) FrameLines(minRatio float64) (cols, rows []int) {
	for x, d := range p.Columns {
		if d > minRatio {
			cols = append(cols, x)
		}
	}
	for y, d := range p.Rows {
		if d > minRatio {
			rows = append(rows, y)
		}
	}
	return cols, rows
}

func lineStats(v []float64) LineStats {
	if len(v) == 0 {
		return LineStats{ArgMax: -1}
	}
	mean, std := stat.MeanStdDev(v, nil)
	idx := floats.MaxIdx(v)
	return LineStats{
		Mean:   mean,
		StdDev: std,
		Max:    v[idx],
		ArgMax: idx,
	}
}
