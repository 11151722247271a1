// Package fpsample computes Farthest Point Sampling (FPS) subsets of point
// clouds: given P points in D-dimensional Euclidean space and a target
// sample size N, it greedily selects N distinct indices such that each new
// point maximizes its minimum distance to the already-selected set.
//
// What it provides:
//
//   - Sample           — naive greedy FPS, exact, O(N·P·D).
//   - SampleNPDU       — index-window greedy FPS for spatially pre-ordered input.
//   - SampleNPDUKDTree — NPDU without the ordering precondition, via per-round k-NN.
//   - SampleBucketKDTree / SampleBucketKDLine — hierarchical bucket-FPS with
//     lazy distance propagation and bounding-box pruning; the fastest exact
//     variant for large point clouds.
//
// Under the hood, the algorithms are organized into subpackages:
//
//	point/   — immutable point views, single-precision distance kernels
//	kdtree/  — arena-based KD-tree builder shared by the bucket engines and NPDU+KD
//	bucket/  — KD-Tree and KD-Line bucket-FPS engines
//	greedy/  — naive, NPDU, and NPDU+KD-tree drivers
//	fpsio/   — matrix ingestion, validation, caching, and codecs
//
// All five operations are deterministic: identical inputs produce identical
// outputs, with ties broken by lowest index. See DESIGN.md for the
// algorithmic grounding and cmd/fpscli for a runnable binding surface.
package fpsample
