package fpsio

import "errors"

// Sentinel errors for matrix construction and sampling-input validation.
var (
	// ErrInvalidDimensions indicates NewMatrix was called with non-positive
	// P or D.
	ErrInvalidDimensions = errors.New("fpsio: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the
	// matrix's shape.
	ErrIndexOutOfBounds = errors.New("fpsio: index out of bounds")

	// ErrRowLengthMismatch indicates a row passed to NewMatrixFromRows did
	// not have the matrix's declared column count.
	ErrRowLengthMismatch = errors.New("fpsio: row length does not match declared dimension")

	// ErrNonFinite indicates Set was asked to store a NaN or Inf
	// coordinate. The constructors copy coordinates without this check.
	ErrNonFinite = errors.New("fpsio: coordinate must be finite")

	// ErrEmptyMatrix indicates D == 0 or P == 0: spec.md's "shape not 2-D"
	// input error.
	ErrEmptyMatrix = errors.New("fpsio: matrix must be non-empty in both dimensions")

	// ErrSampleSizeTooLarge indicates N > P.
	ErrSampleSizeTooLarge = errors.New("fpsio: sample size exceeds point count")

	// ErrSampleSizeInvalid indicates N <= 0.
	ErrSampleSizeInvalid = errors.New("fpsio: sample size must be positive")

	// ErrStartOutOfRange indicates start is not in [0, P).
	ErrStartOutOfRange = errors.New("fpsio: start index out of range")

	// ErrDimensionTooLarge indicates D exceeds the bucket-FPS variants'
	// configured maximum dimensionality.
	ErrDimensionTooLarge = errors.New("fpsio: point dimension exceeds bucket-FPS maximum")
)
