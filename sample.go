package fpsample

import (
	"errors"
	"fmt"

	"github.com/leonardodalinky/fpsample/bucket"
	"github.com/leonardodalinky/fpsample/fpsio"
	"github.com/leonardodalinky/fpsample/greedy"
	"github.com/leonardodalinky/fpsample/point"
)

// Sample runs the naive, exhaustive greedy FPS loop: O(N·P·D), exact,
// no preconditions on input ordering. src is typically an *fpsio.Matrix,
// but any point.RowSource works.
func Sample(src point.RowSource, n int, opts ...Option) ([]int32, error) {
	o := buildOptions(opts)
	m, err := asMatrix(src)
	if err != nil {
		return nil, err
	}
	if err := fpsio.Validate(m, n, o.Start); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return greedy.Naive(point.Views(m), n, o.Start), nil
}

// SampleNPDU runs the index-window greedy loop. It assumes the caller has
// spatially pre-ordered src's rows (e.g. along a space-filling curve); no
// such ordering is checked or enforced. WithWindow sets the window size k;
// if unset (zero), k defaults to 2*ceil(sqrt(P))+1, a width that scales
// sublinearly with P while still covering a useful neighborhood.
func SampleNPDU(src point.RowSource, n int, opts ...Option) ([]int32, error) {
	o := buildOptions(opts)
	m, err := asMatrix(src)
	if err != nil {
		return nil, err
	}
	if err := fpsio.Validate(m, n, o.Start); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	k := o.Window
	if k <= 0 {
		k = defaultWindow(m.P())
	}
	return greedy.NPDU(point.Views(m), n, k, o.Start), nil
}

// SampleNPDUKDTree runs NPDU's windowed loop without the spatial-ordering
// precondition, replacing the index window with a per-round k-NN query
// against a KD-tree built once over src. WithWindow sets k exactly as in
// SampleNPDU.
func SampleNPDUKDTree(src point.RowSource, n int, opts ...Option) ([]int32, error) {
	o := buildOptions(opts)
	m, err := asMatrix(src)
	if err != nil {
		return nil, err
	}
	if err := fpsio.Validate(m, n, o.Start); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	k := o.Window
	if k <= 0 {
		k = defaultWindow(m.P())
	}
	return greedy.NPDUKDTree(point.Views(m), n, k, o.Start)
}

// SampleBucketKDTree runs Bucket-FPS with the hierarchical KD-Tree engine:
// lazy distance propagation and bounding-box pruning over a per-point-leaf
// tree. This is the fastest exact variant for large point clouds. Rejects
// src with D > BUCKET_FPS_MAX_DIM (WithMaxDim to override).
func SampleBucketKDTree(src point.RowSource, n int, opts ...Option) ([]int32, error) {
	o := buildOptions(opts)
	m, err := asMatrix(src)
	if err != nil {
		return nil, err
	}
	if err := fpsio.ValidateBucket(m, n, o.Start, o.MaxDim); err != nil {
		return nil, wrapBucketErr(err)
	}
	e, err := bucket.NewKDTreeEngine(point.Views(m))
	if err != nil {
		return nil, err
	}
	return e.Sample(o.Start, n), nil
}

// SampleBucketKDLine runs Bucket-FPS with the flat, fixed-height KD-Line
// engine: no internal propagation, every leaf revisited each round. Useful
// when buckets are large enough that the KD-Tree engine's recursion
// overhead outweighs its pruning benefit. WithHeight sets the tree's leaf
// depth (default 1).
func SampleBucketKDLine(src point.RowSource, n int, opts ...Option) ([]int32, error) {
	o := buildOptions(opts)
	m, err := asMatrix(src)
	if err != nil {
		return nil, err
	}
	if err := fpsio.ValidateBucket(m, n, o.Start, o.MaxDim); err != nil {
		return nil, wrapBucketErr(err)
	}
	if o.Height <= 0 {
		return nil, fmt.Errorf("%w: height must be positive, got %d", ErrInvalidInput, o.Height)
	}
	e, err := bucket.NewKDLineEngine(point.Views(m), o.Height)
	if err != nil {
		return nil, err
	}
	return e.Sample(o.Start, n), nil
}

// asMatrix adapts any point.RowSource to *fpsio.Matrix, copying only when
// src isn't already one (so the common fpsio.Matrix path never copies).
func asMatrix(src point.RowSource) (*fpsio.Matrix, error) {
	if m, ok := src.(*fpsio.Matrix); ok {
		return m, nil
	}
	rows := make([][]float32, src.P())
	for i := range rows {
		rows[i] = src.Row(i)
	}
	m, err := fpsio.NewMatrixFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return m, nil
}

func wrapBucketErr(err error) error {
	if errors.Is(err, fpsio.ErrDimensionTooLarge) {
		return fmt.Errorf("%w: %v", ErrDimensionTooLarge, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// defaultWindow picks an NPDU window width that scales sublinearly with the
// point count when the caller hasn't specified one explicitly.
func defaultWindow(p int) int {
	k := 1
	for k*k < p {
		k++
	}
	return 2*k + 1
}
