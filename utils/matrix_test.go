package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Row / Col extraction
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).RawVector().Data)
		assert.Equal(t, []float64{2, 5}, M.Col(1).RawVector().Data)
		// negative indices address from the end
		assert.Equal(t, []float64{3, 6}, M.Col(-1).RawVector().Data)
	}
	// Set and SetRow
	{
		M := NewMatrix(2, 2)
		M.Set(0, 0, 42).Set(1, 1, -1)
		M.SetRow(1, []float64{7, 8})
		assert.Equal(t, 42., M.At(0, 0))
		assert.Equal(t, []float64{7, 8}, M.Row(1).RawVector().Data)
	}
	// Min / Max over all elements
	{
		M := NewMatrix(2, 3, []float64{
			-3, 0, 11,
			2, -7, 5,
		})
		assert.Equal(t, -7., M.Min())
		assert.Equal(t, 11., M.Max())
	}
	// read only protection
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("fieldXT")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1) })
	}
}
