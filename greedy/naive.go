package greedy

import "github.com/leonardodalinky/fpsample/point"

// Naive runs the exhaustive greedy FPS loop: each round recomputes the
// squared distance from the previous pick to every unselected point, folds
// it into the running minimum, then selects the unselected point with the
// largest minimum distance, ties broken by lowest index. O(N·P·D).
func Naive(views []point.View, n, start int) []int32 {
	p := len(views)
	set := point.NewSet(p)
	selected := make([]bool, p)
	result := make([]int32, 0, n)

	cur := start
	for len(result) < n {
		result = append(result, int32(cur))
		selected[cur] = true
		if len(result) == n {
			break
		}
		refresh(views, set, selected, cur)
		cur = set.ArgMax(selected)
	}
	return result
}

// refresh folds the squared distance from views[cur] into every unselected
// point's running minimum. Shared by the naive and NPDU-first-round full
// scans.
func refresh(views []point.View, set *point.Set, selected []bool, cur int) {
	for i := range views {
		if selected[i] {
			continue
		}
		set.UpdateMin(i, point.SqDist(views[i], views[cur]))
	}
}
