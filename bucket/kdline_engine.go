package bucket

import (
	"github.com/leonardodalinky/fpsample/kdtree"
	"github.com/leonardodalinky/fpsample/point"
)

// KDLineEngine runs Bucket-FPS over a fixed-height kdtree.Tree: the tree is
// built once with Config.Height capping recursion depth, leaving a flat list
// of leaves (each potentially holding many points) instead of a recursive
// hierarchy. Every round scans that flat list directly — there is no
// internal propagation to cascade through, trading the KD-Tree engine's
// pruning-by-subtree for a simpler, cache-friendlier per-round pass over
// buckets that are typically large enough to amortize branch overhead.
type KDLineEngine struct {
	tree  *kdtree.Tree
	views []point.View
	dis   []float32
	state []nodeState
}

// NewKDLineEngine builds a height-bounded tree and allocates per-leaf state.
// height must be positive; it is the same knob original_source calls the
// line tree's bucket depth.
func NewKDLineEngine(views []point.View, height int) (*KDLineEngine, error) {
	tree, err := kdtree.Build(views, kdtree.Config{Height: height})
	if err != nil {
		return nil, err
	}
	dis := make([]float32, len(views))
	inf := posInf()
	for i := range dis {
		dis[i] = inf
	}
	return &KDLineEngine{
		tree:  tree,
		views: views,
		dis:   dis,
		state: make([]nodeState, len(tree.Nodes)),
	}, nil
}

// Sample runs n rounds of bucket-FPS starting from start and returns the
// selected original point indices in selection order. See KDTreeEngine.
// Sample's doc comment for why the first propagate pass also safely demotes
// start's own entry under all-duplicate-point input.
func (e *KDLineEngine) Sample(start, n int) []int32 {
	for _, leafIdx := range e.tree.Leaves {
		leaf := &e.tree.Nodes[leafIdx]
		e.state[leafIdx].maxIdx, e.state[leafIdx].maxDis = scanLeaf(e.views, e.dis, e.tree.Perm, leaf, []int32{int32(start)})
	}
	e.dis[start] = negInf
	e.propagateAll(int32(start))

	result := make([]int32, 1, n)
	result[0] = int32(start)
	for len(result) < n {
		r := e.argmax()
		result = append(result, r)
		e.dis[r] = negInf
		e.propagateAll(r)
	}
	return result
}

func (e *KDLineEngine) argmax() int32 {
	best := candidate{idx: -1, dis: negInf}
	for _, leafIdx := range e.tree.Leaves {
		st := e.state[leafIdx]
		best = dominant(best, candidate{idx: st.maxIdx, dis: st.maxDis})
	}
	return best.idx
}

func (e *KDLineEngine) propagateAll(ref int32) {
	for _, leafIdx := range e.tree.Leaves {
		leaf := &e.tree.Nodes[leafIdx]
		updateLeaf(e.views, e.dis, e.tree.Perm, leaf, &e.state[leafIdx], ref)
	}
}
