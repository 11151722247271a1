// File: bucket/bucket_test.go
package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardodalinky/fpsample/point"
)

func mkViews(rows [][]float32) []point.View {
	out := make([]point.View, len(rows))
	for i, r := range rows {
		out[i] = point.NewView(r)
	}
	return out
}

func TestKDTreeEngineSquareMatchesNaiveOrder(t *testing.T) {
	v := mkViews([][]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	e, err := NewKDTreeEngine(v)
	require.NoError(t, err)
	got := e.Sample(0, 4)
	assert.Equal(t, []int32{0, 3, 1, 2}, got)
}

func TestKDTreeEngineDuplicatePoints(t *testing.T) {
	v := mkViews([][]float32{{0, 0}, {0, 0}, {1, 1}})
	e, err := NewKDTreeEngine(v)
	require.NoError(t, err)
	got := e.Sample(0, 3)
	assert.Equal(t, []int32{0, 2, 1}, got)
}

func TestKDTreeEngineSinglePoint(t *testing.T) {
	v := mkViews([][]float32{{3, 3}})
	e, err := NewKDTreeEngine(v)
	require.NoError(t, err)
	got := e.Sample(0, 1)
	assert.Equal(t, []int32{0}, got)
}

func TestKDTreeEngineAllIdenticalPoints(t *testing.T) {
	v := mkViews([][]float32{{1, 1}, {1, 1}, {1, 1}, {1, 1}})
	e, err := NewKDTreeEngine(v)
	require.NoError(t, err)
	got := e.Sample(0, 4)
	require.Len(t, got, 4)
	seen := make(map[int32]bool)
	for _, idx := range got {
		assert.False(t, seen[idx], "index %d selected twice", idx)
		seen[idx] = true
	}
	// Every distance ties at zero after the first pick, so ties break by
	// lowest unselected index: 0, then 1, then 2, then 3.
	assert.Equal(t, []int32{0, 1, 2, 3}, got)
}

func TestKDLineEngineSquareMatchesNaiveOrder(t *testing.T) {
	v := mkViews([][]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	e, err := NewKDLineEngine(v, 1)
	require.NoError(t, err)
	got := e.Sample(0, 4)
	assert.Equal(t, []int32{0, 3, 1, 2}, got)
}

func TestKDLineEngineLargerHeightMatchesKDTree(t *testing.T) {
	v := mkViews([][]float32{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 5}, {5, 5}, {2, 2},
	})
	tree, err := NewKDTreeEngine(v)
	require.NoError(t, err)
	line, err := NewKDLineEngine(v, 3)
	require.NoError(t, err)

	wantResult := tree.Sample(0, len(v))
	gotResult := line.Sample(0, len(v))
	assert.Equal(t, wantResult, gotResult)
}

func TestKDTreeEnginePermutationCoversAllPoints(t *testing.T) {
	v := mkViews([][]float32{
		{0, 0}, {10, 0}, {0, 10}, {10, 10}, {5, 5}, {1, 1}, {9, 9}, {2, 8},
	})
	e, err := NewKDTreeEngine(v)
	require.NoError(t, err)
	got := e.Sample(2, len(v))
	require.Len(t, got, len(v))
	seen := make(map[int32]bool)
	for _, idx := range got {
		assert.False(t, seen[idx])
		seen[idx] = true
	}
	assert.Equal(t, int32(2), got[0])
}
