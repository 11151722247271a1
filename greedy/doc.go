// Package greedy implements the three non-bucket FPS drivers: naive
// (exhaustive, exact baseline), NPDU (index-window updates assuming
// spatially pre-ordered input), and NPDU+KD-tree (index-window updates
// replaced by per-round k-nearest-neighbor queries, removing NPDU's
// ordering precondition). All three compare squared Euclidean distances
// throughout, via point.Set and point.SqDist.
//
// Every driver explicitly excludes already-selected points from its argmax
// step (point.Set.ArgMax does this via a selected mask), which is what
// keeps the all-identical-points edge case (every distance collapses to 0
// after the first pick) from re-selecting an already-chosen index.
package greedy
