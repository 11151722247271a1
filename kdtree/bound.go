package kdtree

import (
	"math"

	"github.com/leonardodalinky/fpsample/point"
)

// Bound returns the true Euclidean distance from query to a node's bounding
// box, for callers (the bucket engines) that compare against a true
// (square-rooted) max-distance rather than a squared one. Mixing squared
// and true distances in the same comparison is the classic bug this method
// exists to avoid — see point.Dist's doc comment.
func Bound(query point.View, bboxMin, bboxMax []float32) float32 {
	return float32(math.Sqrt(float64(BoundSqDist(query, bboxMin, bboxMax))))
}
