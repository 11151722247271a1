package kdtree

import (
	"container/heap"

	"github.com/leonardodalinky/fpsample/point"
)

type neighbor struct {
	idx    int32
	sqDist float32
}

// maxNeighborHeap keeps the k best candidates seen so far, with the
// currently-worst one on top so it can be evicted in O(log k).
type maxNeighborHeap []neighbor

func (h maxNeighborHeap) Len() int            { return len(h) }
func (h maxNeighborHeap) Less(i, j int) bool  { return h[i].sqDist > h[j].sqDist }
func (h maxNeighborHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxNeighborHeap) Push(x interface{}) { *h = append(*h, x.(neighbor)) }
func (h *maxNeighborHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// KNN returns up to k original point indices nearest to query under
// squared Euclidean distance, pruning subtrees whose bounding box cannot
// possibly contain a closer candidate than the current k-th best. If k is
// at least the number of points in the tree, all of them are returned.
func (t *Tree) KNN(query point.View, k int) []int32 {
	if k <= 0 {
		return nil
	}
	h := &maxNeighborHeap{}
	heap.Init(h)
	t.knnVisit(t.Root, query, k, h)

	out := make([]int32, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(neighbor).idx
	}
	return out
}

func (t *Tree) knnVisit(nodeIdx int32, query point.View, k int, h *maxNeighborHeap) {
	n := &t.Nodes[nodeIdx]
	if !n.IsLeaf() {
		if h.Len() == k {
			bound := BoundSqDist(query, n.BBoxMin, n.BBoxMax)
			if bound > (*h)[0].sqDist {
				return
			}
		}
		t.knnVisit(n.Left, query, k, h)
		t.knnVisit(n.Right, query, k, h)
		return
	}
	for i := n.PointLeft; i < n.PointRight; i++ {
		orig := t.Perm[i]
		d := point.SqDist(query, t.views[orig])
		if h.Len() < k {
			heap.Push(h, neighbor{idx: orig, sqDist: d})
		} else if d < (*h)[0].sqDist {
			heap.Pop(h)
			heap.Push(h, neighbor{idx: orig, sqDist: d})
		}
	}
}

// BoundSqDist returns the squared Euclidean distance from query to the
// bounding box [bboxMin, bboxMax], zero if query lies inside it.
func BoundSqDist(query point.View, bboxMin, bboxMax []float32) float32 {
	var acc float32
	for d := 0; d < query.Dim(); d++ {
		v := query.At(d)
		switch {
		case v < bboxMin[d]:
			diff := bboxMin[d] - v
			acc += diff * diff
		case v > bboxMax[d]:
			diff := v - bboxMax[d]
			acc += diff * diff
		}
	}
	return acc
}
