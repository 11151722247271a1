// File: point/point_test.go
package point

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqDistAndDist(t *testing.T) {
	a := NewView([]float32{0, 0, 0})
	b := NewView([]float32{3, 4, 0})

	require.Equal(t, float32(25), SqDist(a, b))
	assert.InDelta(t, float64(5), float64(Dist(a, b)), 1e-6)
}

func TestSqDistSymmetric(t *testing.T) {
	a := NewView([]float32{1, -2, 3.5})
	b := NewView([]float32{-1, 2, 0})

	assert.Equal(t, SqDist(a, b), SqDist(b, a))
}

func TestViewBorrowsBackingSlice(t *testing.T) {
	row := []float32{1, 2, 3}
	v := NewView(row)
	row[0] = 99

	// View never copies: mutating the caller's slice is visible through At.
	assert.Equal(t, float32(99), v.At(0))
	assert.Equal(t, 3, v.Dim())
}

func TestSetInitialState(t *testing.T) {
	s := NewSet(4)
	for _, d := range s.Dis {
		assert.True(t, math.IsInf(float64(d), 1))
	}
}

func TestSetUpdateMinMonotonic(t *testing.T) {
	s := NewSet(2)
	require.Equal(t, float32(5), s.UpdateMin(0, 5))
	require.Equal(t, float32(3), s.UpdateMin(0, 3))
	// A larger candidate must never raise the stored minimum back up.
	require.Equal(t, float32(3), s.UpdateMin(0, 10))
}

func TestSetArgMaxTieBreaksLowestIndex(t *testing.T) {
	s := NewSet(4)
	s.Dis[0] = 5
	s.Dis[1] = 5
	s.Dis[2] = 1
	s.Dis[3] = 5
	selected := make([]bool, 4)

	assert.Equal(t, 0, s.ArgMax(selected))

	selected[0] = true
	assert.Equal(t, 1, s.ArgMax(selected))
}
