package fpsample

import "errors"

// Sentinel errors returned by the root sampling entry points. Each returned
// error wraps one of these sentinels, so errors.Is matches it; the fpsio
// cause is included only as message text, so errors.Is does not match the
// fpsio sentinels.
var (
	// ErrInvalidInput indicates the input matrix, N, or start index failed
	// validation (see fpsio.Validate). The fpsio error's message is appended
	// to the returned error's text.
	ErrInvalidInput = errors.New("fpsample: invalid input")

	// ErrDimensionTooLarge indicates D > BUCKET_FPS_MAX_DIM for a
	// bucket-FPS variant (SampleBucketKDTree / SampleBucketKDLine).
	ErrDimensionTooLarge = errors.New("fpsample: point dimension exceeds bucket-FPS maximum")
)
