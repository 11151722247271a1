package greedy

import "github.com/leonardodalinky/fpsample/point"

// NPDU runs greedy FPS restricted, after its first round, to updating only
// a contiguous index window of size k centered on the previous pick. This
// requires the caller to have pre-ordered points so spatial locality
// approximates index locality (Morton/Hilbert curve, etc.) — a precondition
// this driver assumes but does not check. The first round performs a full
// scan exactly like Naive, seeding every point's distance to the start
// point before any windowing narrows subsequent rounds.
func NPDU(views []point.View, n, k, start int) []int32 {
	p := len(views)
	set := point.NewSet(p)
	selected := make([]bool, p)
	result := make([]int32, 0, n)

	cur := start
	first := true
	for len(result) < n {
		result = append(result, int32(cur))
		selected[cur] = true
		if len(result) == n {
			break
		}
		if first {
			refresh(views, set, selected, cur)
			first = false
		} else {
			lo, hi := window(p, k, cur)
			for i := lo; i <= hi; i++ {
				if selected[i] {
					continue
				}
				set.UpdateMin(i, point.SqDist(views[i], views[cur]))
			}
		}
		cur = set.ArgMax(selected)
	}
	return result
}

// window returns the inclusive [lo, hi] index range of width k centered on
// cur, clamped to [0, p), shifting inward rather than shrinking when the
// natural window would cross a boundary.
func window(p, k, cur int) (int, int) {
	hw := k / 2
	lo := cur - hw
	hi := lo + k - 1
	if lo < 0 {
		hi -= lo
		lo = 0
	}
	if hi >= p {
		lo -= hi - p + 1
		if lo < 0 {
			lo = 0
		}
		hi = p - 1
	}
	return lo, hi
}
