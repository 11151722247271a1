// Package kdtree builds the arena-based spatial index shared by the
// bucket-FPS engines (package bucket) and the NPDU+KD-tree driver's
// per-round k-NN queries (package greedy).
//
// The builder follows a recursive median-split partition over a mutable
// index permutation: at each level it picks the bounding-box dimension with
// the largest extent, splits on the arithmetic mean of that dimension
// (intentionally not the true median — O(n) and sufficient in practice),
// and Hoare-partitions the permutation in place. An empty-side repair step
// guarantees both children are always non-empty.
//
// Unlike the source implementation's cyclic Rc<RefCell> node graph, Tree
// owns a flat arena of Node values addressed by integer handle: parents
// reference children by index, and the point permutation is a separate
// owned []int32 shared by every node's [PointLeft, PointRight) range. No
// cyclic ownership, no interior-mutability wrappers.
package kdtree
