package kdtree

import "errors"

// Sentinel errors for tree construction.
var (
	// ErrEmptyPointSet indicates Build was called with zero points.
	ErrEmptyPointSet = errors.New("kdtree: point set must be non-empty")

	// ErrInvariantViolation indicates the partition repair step failed to
	// produce two non-empty sides. This should be unreachable for any
	// valid input; if triggered, it signals a defect in the builder
	// itself rather than a caller error.
	ErrInvariantViolation = errors.New("kdtree: internal invariant violated: empty partition side after repair")
)
