package greedy

import (
	"github.com/leonardodalinky/fpsample/kdtree"
	"github.com/leonardodalinky/fpsample/point"
)

// NPDUKDTree runs the same index-window greedy loop as NPDU, but replaces
// the index window with the k nearest neighbors of the previous pick,
// found via a KD-tree built once over all points. This removes NPDU's
// spatial-pre-ordering precondition at the cost of a k-NN query per round.
// The first round performs a full scan exactly like Naive and NPDU.
func NPDUKDTree(views []point.View, n, k, start int) ([]int32, error) {
	tree, err := kdtree.Build(views, kdtree.Config{})
	if err != nil {
		return nil, err
	}

	p := len(views)
	set := point.NewSet(p)
	selected := make([]bool, p)
	result := make([]int32, 0, n)

	cur := start
	first := true
	for len(result) < n {
		result = append(result, int32(cur))
		selected[cur] = true
		if len(result) == n {
			break
		}
		if first {
			refresh(views, set, selected, cur)
			first = false
		} else {
			for _, nb := range tree.KNN(views[cur], k) {
				i := int(nb)
				if selected[i] {
					continue
				}
				set.UpdateMin(i, point.SqDist(views[i], views[cur]))
			}
		}
		cur = set.ArgMax(selected)
	}
	return result, nil
}
