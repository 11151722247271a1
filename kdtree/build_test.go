// File: kdtree/build_test.go
package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardodalinky/fpsample/point"
)

func views2D(rows [][2]float32) []point.View {
	out := make([]point.View, len(rows))
	for i, r := range rows {
		row := []float32{r[0], r[1]}
		out[i] = point.NewView(row)
	}
	return out
}

func TestBuildSinglePointIsLeaf(t *testing.T) {
	v := views2D([][2]float32{{0, 0}})
	tr, err := Build(v, Config{})
	require.NoError(t, err)
	require.Equal(t, int32(0), tr.Root)
	assert.True(t, tr.Nodes[tr.Root].IsLeaf())
	assert.Equal(t, 1, tr.Size(tr.Root))
}

func TestBuildEmptyIsError(t *testing.T) {
	_, err := Build(nil, Config{})
	assert.ErrorIs(t, err, ErrEmptyPointSet)
}

func TestBuildKDTreeLeavesAreSingletons(t *testing.T) {
	v := views2D([][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {5, 5}})
	tr, err := Build(v, Config{})
	require.NoError(t, err)

	total := 0
	for _, leafIdx := range tr.Leaves {
		n := &tr.Nodes[leafIdx]
		require.True(t, n.IsLeaf())
		assert.Equal(t, 1, n.PointRight-n.PointLeft)
		total += n.PointRight - n.PointLeft
	}
	assert.Equal(t, len(v), total)
	assert.Equal(t, len(v), tr.Size(tr.Root))
}

func TestBuildKDLineLeavesRespectHeight(t *testing.T) {
	v := views2D([][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {5, 5}, {5, 6}, {6, 5}, {6, 6}})
	tr, err := Build(v, Config{Height: 1})
	require.NoError(t, err)

	// Height==1 means every leaf forms at depth 1: at most 2 leaves from a
	// single top-level split, each possibly holding more than one point.
	assert.LessOrEqual(t, len(tr.Leaves), 2)
	assert.Equal(t, len(v), tr.Size(tr.Root))
}

func TestBuildPermutationCoversAllPoints(t *testing.T) {
	v := views2D([][2]float32{{0, 0}, {9, 9}, {1, 1}, {8, 8}, {2, 2}, {7, 7}})
	tr, err := Build(v, Config{})
	require.NoError(t, err)

	seen := make(map[int32]bool)
	for _, idx := range tr.Perm {
		assert.False(t, seen[idx], "duplicate original index in permutation")
		seen[idx] = true
	}
	assert.Equal(t, len(v), len(seen))
}
