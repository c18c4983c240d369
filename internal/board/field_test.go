package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelString(t *testing.T) {
	assert.Equal(t, "_", Empty.String())
	assert.Equal(t, "T", PieceT.String())
	assert.Equal(t, "X", Garbage.String())
	assert.Equal(t, "?", Label(9).String())
	assert.Equal(t, 9, NumLabels)
}

func TestNewFieldValidates(t *testing.T) {
	_, err := NewField(make([]Label, 10))
	assert.Error(t, err)

	labels := make([]Label, Cols*Rows)
	labels[5] = Label(12)
	_, err = NewField(labels)
	assert.Error(t, err)
}

func TestNotationIsRowMajor(t *testing.T) {
	labels := make([]Label, Cols*Rows)
	// Column 0, bottom row.
	labels[0*Rows+19] = PieceI
	// Column 9, top row.
	labels[9*Rows+0] = PieceZ
	// Column 3, row 1.
	labels[3*Rows+1] = Garbage

	f, err := NewField(labels)
	require.NoError(t, err)

	notation := f.Notation()
	require.Len(t, notation, 200)
	assert.Equal(t, "Z", string(notation[0*Cols+9]))
	assert.Equal(t, "X", string(notation[1*Cols+3]))
	assert.Equal(t, "I", string(notation[19*Cols+0]))
	assert.Equal(t, 197, strings.Count(notation, "_"))
	assert.Equal(t, 3, f.Filled())
}

func TestDigitsRoundTrip(t *testing.T) {
	digits := strings.Repeat("0", 19) + "8" + strings.Repeat("0", 180)
	f, err := ParseDigits(digits)
	require.NoError(t, err)

	assert.Equal(t, Garbage, f.At(0, 19))
	assert.Equal(t, digits, f.Digits())

	_, err = ParseDigits(strings.Repeat("a", 200))
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	labels := make([]Label, Cols*Rows)
	labels[0*Rows+19] = PieceO
	labels[1*Rows+19] = PieceO
	f, err := NewField(labels)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(f.String(), "\n"), "\n")
	require.Len(t, lines, Rows)
	assert.Equal(t, "|..........|", lines[0])
	assert.Equal(t, "|OO........|", lines[19])
}
