// Package point provides the read-only point view and single-precision
// distance kernels shared by every FPS algorithm, plus the mutable
// min-distance-to-selected-set scalar each greedy round updates.
//
// A View never copies coordinate data: it borrows a row slice out of the
// caller's matrix for the lifetime of one sampling call. Dist and SqDist are
// the two distance conventions used across the package family — bucket-FPS
// compares true Euclidean distances (Dist), while the naive/NPDU/NPDU+KD
// drivers compare squared Euclidean distances (SqDist) throughout; mixing
// the two within one algorithm silently breaks correctness, so each caller
// picks one and uses it everywhere.
package point
