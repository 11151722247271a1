// Package bucket implements the two Bucket-FPS sampling engines: KDTree
// (hierarchical, lazy-propagating) and KDLine (flat fixed-height leaf
// list). Both maintain, per bucket, the farthest point from the selected
// set, and compare true Euclidean distances throughout (point.Dist), never
// squared ones — the KD-Tree engine's pruning and deferral decisions
// compare a bucket's cached candidate distance against a bounding-box
// bound, and mixing squared and true distances in that comparison is the
// classic correctness bug this package is built to avoid.
//
// Both engines fix the two issues the source implementation's design notes
// call out: a leaf's recomputation after a deferred-point flush now
// computes a single argmax spanning the whole leaf range across all
// deferred points (not reset per deferred point), and a bucket whose
// candidate is unaffected by a new reference only ever defers that
// reference — it never also eagerly flushes in the same step.
package bucket
