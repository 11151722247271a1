package point

import "math"

// SqDist returns the squared Euclidean distance between a and b, computed
// with a single-precision accumulator end-to-end. Used by the naive, NPDU,
// and NPDU+KD-tree drivers, and by the KD-tree's k-NN query.
func SqDist(a, b View) float32 {
	var acc float32
	for d := 0; d < a.Dim(); d++ {
		diff := a.pos[d] - b.pos[d]
		acc += diff * diff
	}
	return acc
}

// Dist returns the true Euclidean distance between a and b. Used by the
// bucket-FPS KD-Tree and KD-Line engines, which compare dis values directly
// against bounding-box bounds (both must be true, not squared, distances).
func Dist(a, b View) float32 {
	return float32(math.Sqrt(float64(SqDist(a, b))))
}
