package bucket

import (
	"github.com/leonardodalinky/fpsample/kdtree"
	"github.com/leonardodalinky/fpsample/point"
)

// scanLeaf folds every ref in refs into each point's running minimum
// distance across the whole of n's range, then returns the single argmax
// over that range. Computing the argmax only after all refs are applied —
// rather than refreshing it once per ref processed — is required for
// correctness once more than one reference is flushed into a leaf at once;
// resetting the running max mid-leaf can strand a point's true farthest
// candidate behind a ref processed earlier in the same flush.
func scanLeaf(views []point.View, dis []float32, perm []int32, n *kdtree.Node, refs []int32) (int32, float32) {
	for i := n.PointLeft; i < n.PointRight; i++ {
		orig := perm[i]
		for _, ref := range refs {
			d := point.Dist(views[orig], views[ref])
			if d < dis[orig] {
				dis[orig] = d
			}
		}
	}
	best := candidate{idx: -1, dis: negInf}
	for i := n.PointLeft; i < n.PointRight; i++ {
		orig := perm[i]
		best = dominant(best, candidate{idx: orig, dis: dis[orig]})
	}
	return best.idx, best.dis
}

// updateLeaf applies one reference point to a single, self-contained leaf
// bucket: if the leaf's current candidate already dominates ref (cur <=
// lastMax), every deferred point plus ref is folded in and the candidate
// recomputed. Otherwise ref is deferred when its bounding-box distance could
// still beat lastMax, or dropped when it provably cannot affect anything in
// the leaf's range.
func updateLeaf(views []point.View, dis []float32, perm []int32, n *kdtree.Node, st *nodeState, ref int32) {
	lastMax := st.maxDis
	cur := point.Dist(views[st.maxIdx], views[ref])
	if cur > lastMax {
		bound := kdtree.Bound(views[ref], n.BBoxMin, n.BBoxMax)
		if bound < lastMax {
			st.delay = append(st.delay, ref)
		}
		return
	}
	st.delay = append(st.delay, ref)
	st.maxIdx, st.maxDis = scanLeaf(views, dis, perm, n, st.delay)
	st.delay = st.delay[:0]
}
