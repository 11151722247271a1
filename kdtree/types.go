package kdtree

import "github.com/leonardodalinky/fpsample/point"

// Config selects which of the two leaf predicates the builder uses.
type Config struct {
	// Height, when > 0, caps recursion depth: a node becomes a leaf once
	// depth == Height, even if it still holds more than one point. This
	// is the KD-Line variant. Height == 0 selects the unbounded KD-Tree
	// variant, where a node is a leaf only once it holds exactly one
	// point.
	Height int
}

// Node is one bucket in the arena: either an inner node (Left and Right
// both valid child handles, PointLeft/PointRight meaningless) or a leaf
// (Left == Right == -1, PointLeft/PointRight the half-open range of
// permutation slots it owns).
type Node struct {
	Left, Right           int32
	PointLeft, PointRight int
	BBoxMin, BBoxMax      []float32
}

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Left < 0 && n.Right < 0
}

// Tree is the arena: a flat slice of Nodes plus the owned point
// permutation. Perm[slot] is the original point index currently occupying
// that slot; every node's range indexes into Perm, never into the original
// matrix directly.
type Tree struct {
	Nodes  []Node
	Root   int32
	Perm   []int32
	Leaves []int32

	views []point.View
	dim   int
}

// Dim returns the point dimensionality the tree was built over.
func (t *Tree) Dim() int {
	return t.dim
}

// P returns the number of points in the tree.
func (t *Tree) P() int {
	return len(t.Perm)
}

// View returns the borrowed coordinate view for an original point index.
func (t *Tree) View(origIdx int32) point.View {
	return t.views[origIdx]
}

// Size returns the number of points in the subtree rooted at nodeIdx,
// computed recursively (ported from the source's KDNode::size, kept for
// diagnostics and tests even though no sampling operation calls it).
func (t *Tree) Size(nodeIdx int32) int {
	n := &t.Nodes[nodeIdx]
	if n.IsLeaf() {
		return n.PointRight - n.PointLeft
	}
	return t.Size(n.Left) + t.Size(n.Right)
}
