package fpsio

import (
	"fmt"
	"math"
)

// Matrix is a dense, row-major point cloud: P points, each with D
// coordinates, stored in one flat []float32 so point.Views taken over its
// rows never allocate. Ported from the teacher's matrix.Dense (row-major
// flat-slice storage, bounds-checked At/Set, Clone, String), generalized
// from float64 to float32 and specialized to point-cloud rows instead of
// arbitrary linear-algebra cells.
type Matrix struct {
	p, d           int
	data           []float32
	validateNaNInf bool
}

// NewMatrix allocates a p×d Matrix of zeros. NaN/Inf rejection on Set
// defaults to enabled, matching fpsample's "non-finite coordinates are an
// input error" contract.
func NewMatrix(p, d int) (*Matrix, error) {
	if p <= 0 || d <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Matrix{
		p:              p,
		d:              d,
		data:           make([]float32, p*d),
		validateNaNInf: true,
	}, nil
}

// NewMatrixFromRows copies rows (each of length d) into a new Matrix.
// Returns ErrRowLengthMismatch if any row's length disagrees with the
// others.
func NewMatrixFromRows(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	d := len(rows[0])
	if d == 0 {
		return nil, ErrEmptyMatrix
	}
	m, err := NewMatrix(len(rows), d)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != d {
			return nil, fmt.Errorf("fpsio: row %d has length %d, want %d: %w", i, len(row), d, ErrRowLengthMismatch)
		}
		copy(m.data[i*d:(i+1)*d], row)
	}
	return m, nil
}

// NewMatrixFromFlat wraps a pre-allocated flat row-major buffer directly
// (borrowed, not copied) as a p×d Matrix. len(buf) must equal p*d.
func NewMatrixFromFlat(buf []float32, p, d int) (*Matrix, error) {
	if p <= 0 || d <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(buf) != p*d {
		return nil, fmt.Errorf("fpsio: flat buffer has length %d, want %d: %w", len(buf), p*d, ErrRowLengthMismatch)
	}
	return &Matrix{p: p, d: d, data: buf, validateNaNInf: true}, nil
}

// P returns the number of points (rows).
func (m *Matrix) P() int { return m.p }

// D returns the point dimensionality (columns).
func (m *Matrix) D() int { return m.d }

// Row returns the i-th point's coordinates as a borrowed slice into the
// matrix's backing storage; callers must not retain it past a mutation of m.
func (m *Matrix) Row(i int) []float32 {
	return m.data[i*m.d : (i+1)*m.d]
}

func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.p {
		return 0, fmt.Errorf("fpsio: Matrix.At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.d {
		return 0, fmt.Errorf("fpsio: Matrix.At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	return row*m.d + col, nil
}

// At retrieves the coordinate at (row, col).
func (m *Matrix) At(row, col int) (float32, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col). Returns ErrNonFinite if v is NaN/Inf and
// NaN/Inf validation is enabled (the default).
func (m *Matrix) Set(row, col int, v float32) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && (math.IsNaN(float64(v)) || math.IsInf(float64(v), 0)) {
		return fmt.Errorf("fpsio: Matrix.Set(%d,%d): %w", row, col, ErrNonFinite)
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)
	return &Matrix{p: m.p, d: m.d, data: cp, validateNaNInf: m.validateNaNInf}
}

// String renders the matrix row by row, for debugging.
func (m *Matrix) String() string {
	out := ""
	for i := 0; i < m.p; i++ {
		out += "["
		for j := 0; j < m.d; j++ {
			out += fmt.Sprintf("%g", m.data[i*m.d+j])
			if j+1 < m.d {
				out += ", "
			}
		}
		out += "]\n"
	}
	return out
}
