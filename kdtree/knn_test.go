// File: kdtree/knn_test.go
package kdtree

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardodalinky/fpsample/point"
)

func TestKNNMatchesBruteForce(t *testing.T) {
	rows := [][2]float32{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
		{0, 5}, {1, 5}, {2, 5}, {9, 9}, {-3, -3},
	}
	v := views2D(rows)
	tr, err := Build(v, Config{})
	require.NoError(t, err)

	query := point.NewView([]float32{2, 1})

	type cand struct {
		idx int32
		d   float32
	}
	all := make([]cand, len(v))
	for i, p := range v {
		all[i] = cand{idx: int32(i), d: point.SqDist(query, p)}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].d < all[j].d })

	const k = 3
	got := tr.KNN(query, k)
	assert.Len(t, got, k)

	want := make(map[int32]bool)
	for i := 0; i < k; i++ {
		want[all[i].idx] = true
	}
	for _, idx := range got {
		assert.True(t, want[idx], "unexpected neighbor %d", idx)
	}
}

func TestKNNSaturatesAtP(t *testing.T) {
	v := views2D([][2]float32{{0, 0}, {1, 0}, {2, 0}})
	tr, err := Build(v, Config{})
	require.NoError(t, err)

	got := tr.KNN(point.NewView([]float32{0, 0}), 100)
	assert.Len(t, got, 3)
}

func TestKNNZeroReturnsNil(t *testing.T) {
	v := views2D([][2]float32{{0, 0}})
	tr, err := Build(v, Config{})
	require.NoError(t, err)
	assert.Nil(t, tr.KNN(point.NewView([]float32{0, 0}), 0))
}
