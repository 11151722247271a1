// Package fpsio ingests and validates point-cloud matrices for fpsample: a
// dense, row-major float32 Matrix type implementing point.RowSource, the
// shape/range checks spec.md requires before any sampling driver runs, and
// optional caching/codec/compression helpers for loading large point clouds
// from disk (not required by the core algorithms).
//
// Matrix follows the teacher's matrix.Dense shape: flat backing slice,
// bounds-checked At/Set, Clone, String. Unlike the teacher's float64
// version, Matrix stores float32 directly — fpsample's distance kernels are
// single-precision end-to-end, and an implicit float64 row store would
// silently reintroduce double-precision intermediates the spec forbids.
package fpsio
