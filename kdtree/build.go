package kdtree

import "github.com/leonardodalinky/fpsample/point"

type bbox struct {
	min, max []float32
}

// Build constructs a Tree over views using the leaf predicate selected by
// cfg. views is borrowed, not copied; the tree's internal permutation
// reorders indices, never the views themselves.
func Build(views []point.View, cfg Config) (*Tree, error) {
	p := len(views)
	if p == 0 {
		return nil, ErrEmptyPointSet
	}
	dim := views[0].Dim()

	t := &Tree{
		views: views,
		dim:   dim,
		Perm:  make([]int32, p),
	}
	for i := range t.Perm {
		t.Perm[i] = int32(i)
	}

	box := t.computeBBox(0, p)
	root, err := t.divide(0, p, box, 0, cfg)
	if err != nil {
		return nil, err
	}
	t.Root = root

	return t, nil
}

func (t *Tree) divide(left, right int, box bbox, depth int, cfg Config) (int32, error) {
	count := right - left
	if isLeaf(cfg, depth, count) {
		idx := int32(len(t.Nodes))
		t.Nodes = append(t.Nodes, Node{
			Left: -1, Right: -1,
			PointLeft: left, PointRight: right,
			BBoxMin: box.min, BBoxMax: box.max,
		})
		t.Leaves = append(t.Leaves, idx)
		return idx, nil
	}

	splitDim := findSplitDim(box)
	splitVal := t.selectMedian(splitDim, left, right)
	p := t.planeSplit(left, right, splitDim, splitVal)
	if p <= left || p >= right {
		return 0, ErrInvariantViolation
	}

	leftBox := t.computeBBox(left, p)
	leftIdx, err := t.divide(left, p, leftBox, depth+1, cfg)
	if err != nil {
		return 0, err
	}
	rightBox := t.computeBBox(p, right)
	rightIdx, err := t.divide(p, right, rightBox, depth+1, cfg)
	if err != nil {
		return 0, err
	}

	idx := int32(len(t.Nodes))
	t.Nodes = append(t.Nodes, Node{
		Left: leftIdx, Right: rightIdx,
		PointLeft: left, PointRight: right,
		BBoxMin: box.min, BBoxMax: box.max,
	})
	return idx, nil
}

func isLeaf(cfg Config, depth, count int) bool {
	if cfg.Height > 0 && depth == cfg.Height {
		return true
	}
	return count == 1
}

// planeSplit Hoare-partitions Perm[left:right] around splitVal on splitDim,
// then repairs either side back to non-empty if the partition degenerated.
// Returns the pivot position p. Without a repair, Perm[left:p] are strictly
// < splitVal and Perm[p:right] are >= splitVal; a repair returns left+1 or
// right-1 instead, so one boundary point sits on the other side.
func (t *Tree) planeSplit(left, right, splitDim int, splitVal float32) int {
	start, end := left, right-1
	for {
		for start <= end && t.views[t.Perm[start]].At(splitDim) < splitVal {
			start++
		}
		for start <= end && t.views[t.Perm[end]].At(splitDim) >= splitVal {
			end--
		}
		if start > end {
			break
		}
		t.Perm[start], t.Perm[end] = t.Perm[end], t.Perm[start]
		start++
		end--
	}

	switch start {
	case left:
		return left + 1
	case right:
		return right - 1
	default:
		return start
	}
}

func (t *Tree) selectMedian(dim, left, right int) float32 {
	var sum float32
	for i := left; i < right; i++ {
		sum += t.views[t.Perm[i]].At(dim)
	}
	return sum / float32(right-left)
}

func findSplitDim(box bbox) int {
	best := 0
	maxSpan := float32(0)
	for d := range box.min {
		span := box.max[d] - box.min[d]
		if d == 0 || span > maxSpan {
			maxSpan = span
			best = d
		}
	}
	return best
}

func (t *Tree) computeBBox(left, right int) bbox {
	min := make([]float32, t.dim)
	max := make([]float32, t.dim)
	first := t.views[t.Perm[left]]
	for d := 0; d < t.dim; d++ {
		min[d] = first.At(d)
		max[d] = first.At(d)
	}
	for i := left + 1; i < right; i++ {
		v := t.views[t.Perm[i]]
		for d := 0; d < t.dim; d++ {
			val := v.At(d)
			if val < min[d] {
				min[d] = val
			}
			if val > max[d] {
				max[d] = val
			}
		}
	}
	return bbox{min: min, max: max}
}
