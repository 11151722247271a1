package fpsio

import "fmt"

// Validate checks the shape/range preconditions common to all five sampling
// entry points: m non-empty (guaranteed by the Matrix constructors), 0 < n
// <= m.P(), and 0 <= start < m.P(). It is the Go equivalent of the original
// source's check_py_input, returning a wrapped sentinel instead of raising.
func Validate(m *Matrix, n, start int) error {
	if m.P() == 0 || m.D() == 0 {
		return ErrEmptyMatrix
	}
	if n <= 0 {
		return fmt.Errorf("fpsio: n=%d: %w", n, ErrSampleSizeInvalid)
	}
	if n > m.P() {
		return fmt.Errorf("fpsio: n=%d, p=%d: %w", n, m.P(), ErrSampleSizeTooLarge)
	}
	if start < 0 || start >= m.P() {
		return fmt.Errorf("fpsio: start=%d, p=%d: %w", start, m.P(), ErrStartOutOfRange)
	}
	return nil
}

// ValidateBucket runs Validate, then additionally enforces the bucket-FPS
// dimensionality ceiling the spec calls BUCKET_FPS_MAX_DIM.
func ValidateBucket(m *Matrix, n, start, maxDim int) error {
	if err := Validate(m, n, start); err != nil {
		return err
	}
	if m.D() > maxDim {
		return fmt.Errorf("fpsio: d=%d, max=%d: %w", m.D(), maxDim, ErrDimensionTooLarge)
	}
	return nil
}
