package bucket

import (
	"math"

	"github.com/leonardodalinky/fpsample/kdtree"
	"github.com/leonardodalinky/fpsample/point"
)

// KDTreeEngine runs Bucket-FPS over a kdtree.Tree (unbounded height: every
// leaf holds exactly one point) with lazy distance propagation. Every point
// index below is an original point index unless stated otherwise.
type KDTreeEngine struct {
	tree  *kdtree.Tree
	views []point.View
	dis   []float32
	state []nodeState
}

// NewKDTreeEngine builds the spatial index and allocates per-node state.
// Building the tree is the only O(P log P) up-front cost; Sample itself is
// O(N log P) amortized via pruning.
func NewKDTreeEngine(views []point.View) (*KDTreeEngine, error) {
	tree, err := kdtree.Build(views, kdtree.Config{})
	if err != nil {
		return nil, err
	}
	dis := make([]float32, len(views))
	inf := posInf()
	for i := range dis {
		dis[i] = inf
	}
	return &KDTreeEngine{
		tree:  tree,
		views: views,
		dis:   dis,
		state: make([]nodeState, len(tree.Nodes)),
	}, nil
}

func posInf() float32 {
	return float32(math.Inf(1))
}

// Sample runs n rounds of bucket-FPS starting from start and returns the
// selected original point indices in selection order.
//
// The very first propagate call, immediately after initNode, always walks
// the entire tree: initNode seeds every point's distance as exactly
// dist(point, start), so for any node the cached candidate's distance and a
// freshly computed dist(candidate, start) are identical (cur == lastMax),
// forcing the "recompute, recurse further" branch everywhere. That pass both distributes
// start's influence and demotes start's own entry to -Inf so it is never
// reselected, including under all-duplicate-point input where every true
// distance would otherwise tie at zero.
func (e *KDTreeEngine) Sample(start, n int) []int32 {
	e.initNode(e.tree.Root, int32(start))
	e.dis[start] = negInf
	e.propagate(int32(start))

	result := make([]int32, 1, n)
	result[0] = int32(start)
	for len(result) < n {
		r := e.state[e.tree.Root].maxIdx
		result = append(result, r)
		e.dis[r] = negInf
		e.propagate(r)
	}
	return result
}

// initNode performs the direct, non-lazy leaf computation of the
// initialization pass: every leaf's points get their distance to ref folded
// in directly (no wait/delay queues involved), then candidates are merged
// upward.
func (e *KDTreeEngine) initNode(nodeIdx, ref int32) {
	n := &e.tree.Nodes[nodeIdx]
	if n.IsLeaf() {
		e.state[nodeIdx].maxIdx, e.state[nodeIdx].maxDis = scanLeaf(e.views, e.dis, e.tree.Perm, n, []int32{ref})
		return
	}
	e.initNode(n.Left, ref)
	e.initNode(n.Right, ref)
	e.mergeChildren(nodeIdx)
}

func (e *KDTreeEngine) mergeChildren(nodeIdx int32) {
	n := &e.tree.Nodes[nodeIdx]
	l, r := e.state[n.Left], e.state[n.Right]
	best := dominant(candidate{idx: l.maxIdx, dis: l.maxDis}, candidate{idx: r.maxIdx, dis: r.maxDis})
	e.state[nodeIdx].maxIdx, e.state[nodeIdx].maxDis = best.idx, best.dis
}

func (e *KDTreeEngine) propagate(ref int32) {
	root := e.tree.Root
	e.state[root].wait = append(e.state[root].wait, ref)
	e.update(root)
}

// update processes every reference point queued in nodeIdx's wait list. For
// a leaf, each reference is handled by updateLeaf directly. For an inner
// node: if the node's current candidate is not dominated by the reference
// (cur > lastMax), the reference either gets deferred (its bounding-box
// distance could still beat lastMax for some other point in the subtree) or
// safely dropped; otherwise the reference — plus anything deferred earlier
// — is pushed down to both children and the candidate re-merged.
func (e *KDTreeEngine) update(nodeIdx int32) {
	n := &e.tree.Nodes[nodeIdx]
	st := &e.state[nodeIdx]
	if n.IsLeaf() {
		for _, ref := range st.wait {
			updateLeaf(e.views, e.dis, e.tree.Perm, n, st, ref)
		}
		st.wait = st.wait[:0]
		return
	}
	for _, ref := range st.wait {
		lastMax := st.maxDis
		cur := point.Dist(e.views[st.maxIdx], e.views[ref])
		if cur > lastMax {
			bound := kdtree.Bound(e.views[ref], n.BBoxMin, n.BBoxMax)
			if bound < lastMax {
				st.delay = append(st.delay, ref)
			}
			continue
		}
		if len(st.delay) > 0 {
			e.state[n.Left].wait = append(e.state[n.Left].wait, st.delay...)
			e.state[n.Right].wait = append(e.state[n.Right].wait, st.delay...)
			st.delay = st.delay[:0]
		}
		e.state[n.Left].wait = append(e.state[n.Left].wait, ref)
		e.update(n.Left)
		e.state[n.Right].wait = append(e.state[n.Right].wait, ref)
		e.update(n.Right)
		e.mergeChildren(nodeIdx)
	}
	st.wait = st.wait[:0]
}
