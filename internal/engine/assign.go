package engine

import (
	"math"
	"sort"

	"github.com/kozaktomas/photo-collage/internal/geometry"
)

// assignPhotos binds photos to cells 1:1, minimizing visible aspect-ratio
// mismatch with a greedy heuristic: cells are processed widest-first and each
// claims the remaining photo with the closest aspect ratio (first match wins
// ties). Extreme cells get first pick, which corrects the most prominent
// mismatches but can leave middling cells with worse residual matches; the
// total mismatch is not guaranteed minimal. The result
// is re-sorted by position (y, then x) so output ordering is independent of
// the processing order.
func assignPhotos(rects []geometry.Rect, photos []Photo) []Cell {
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rects[order[a]].AspectRatio() > rects[order[b]].AspectRatio()
	})

	// Locally owned working pool; the photo slice itself is never mutated.
	remaining := make([]int, len(photos))
	for i := range remaining {
		remaining[i] = i
	}

	cells := make([]Cell, 0, len(rects))
	for _, ri := range order {
		if len(remaining) == 0 {
			break
		}
		cellRatio := rects[ri].AspectRatio()
		best := 0
		bestDiff := math.Inf(1)
		for j, pi := range remaining {
			diff := math.Abs(photos[pi].AspectRatio() - cellRatio)
			if diff < bestDiff {
				best = j
				bestDiff = diff
			}
		}
		pick := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		cells = append(cells, Cell{Rect: rects[ri], Photo: &photos[pick]})
	}

	sort.SliceStable(cells, func(a, b int) bool {
		if cells[a].Y != cells[b].Y {
			return cells[a].Y < cells[b].Y
		}
		return cells[a].X < cells[b].X
	})
	return cells
}
