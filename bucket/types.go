package bucket

import "math"

var negInf = float32(math.Inf(-1))

// candidate is a (point index, distance) pair used when folding a bucket's
// children (or a leaf's point range) down to a single farthest-point
// candidate. idx == -1 denotes "no candidate yet".
type candidate struct {
	idx int32
	dis float32
}

// dominant returns whichever of a, b is the better farthest-point candidate:
// larger distance wins, ties broken by the lower original point index. This
// is the single place tie-breaking is decided, so every level of a tree
// (leaf scan, two-child merge, flat leaf-list merge) agrees with the
// naive driver's global tie-break rule.
func dominant(a, b candidate) candidate {
	if a.idx < 0 {
		return b
	}
	if b.idx < 0 {
		return a
	}
	if b.dis > a.dis {
		return b
	}
	if b.dis == a.dis && b.idx < a.idx {
		return b
	}
	return a
}

// nodeState is the mutable bucket-FPS bookkeeping for one kdtree.Tree node,
// held in the bucket package rather than on kdtree.Node itself: the tree
// builder is shared with the metric-agnostic NPDU+KD-tree driver, which has
// no notion of a running candidate, wait queue, or delay queue.
type nodeState struct {
	maxIdx int32
	maxDis float32
	wait   []int32
	delay  []int32
}
