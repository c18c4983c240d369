// Package board holds a classified puzzle play field and its text notations.
package board

import (
	"fmt"
	"strings"
)

// Standard field shape.
const (
	Cols = 10
	Rows = 20
)

// Label is a cell category produced by the cell classifier.
type Label int

const (
	Empty Label = iota
	PieceI
	PieceO
	PieceT
	PieceL
	PieceJ
	PieceS
	PieceZ
	Garbage
)

// labelNames are the single-character names used by field notation.
var labelNames = [...]string{"_", "I", "O", "T", "L", "J", "S", "Z", "X"}

// NumLabels is the number of classifier output classes.
const NumLabels = len(labelNames)

func (l Label) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return "?"
	}
	return labelNames[l]
}

// Valid reports whether l is a known label.
func (l Label) Valid() bool {
	return l >= 0 && int(l) < len(labelNames)
}

// Field is a classified play field stored column-major, matching the order the
// cells are classified in: index = col*Rows + row, row 0 at the top.
type Field struct {
	cells [Cols * Rows]Label
}

// NewField builds a field from column-major labels.
func NewField(labels []Label) (*Field, error) {
	if len(labels) != Cols*Rows {
		return nil, fmt.Errorf("field needs %d labels, got %d", Cols*Rows, len(labels))
	}
	f := &Field{}
	for i, l := range labels {
		if !l.Valid() {
			return nil, fmt.Errorf("invalid label %d at index %d", l, i)
		}
		f.cells[i] = l
	}
	return f, nil
}

// ParseDigits builds a field from a column-major digit string such as the
// one printed by Digits.
func ParseDigits(s string) (*Field, error) {
	labels := make([]Label, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid digit %q at index %d", r, i)
		}
		labels = append(labels, Label(r-'0'))
	}
	return NewField(labels)
}

// At returns the label at (col, row).
func (f *Field) At(col, row int) Label {
	return f.cells[col*Rows+row]
}

// Digits returns the labels as a column-major digit string.
func (f *Field) Digits() string {
	var sb strings.Builder
	sb.Grow(len(f.cells))
	for _, l := range f.cells {
		sb.WriteByte(byte('0' + l))
	}
	return sb.String()
}

// Notation returns the field row-major, top row first, one character per cell.
// This is the field string accepted by common field notation encoders.
func (f *Field) Notation() string {
	var sb strings.Builder
	sb.Grow(len(f.cells))
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			sb.WriteString(f.At(col, row).String())
		}
	}
	return sb.String()
}

// String renders the field as text, one line per row.
func (f *Field) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		sb.WriteByte('|')
		for col := 0; col < Cols; col++ {
			if l := f.At(col, row); l == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(l.String())
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// Filled returns the number of non-empty cells.
func (f *Field) Filled() int {
	n := 0
	for _, l := range f.cells {
		if l != Empty {
			n++
		}
	}
	return n
}
