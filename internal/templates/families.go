package templates

import (
	"fmt"
	"strings"

	"github.com/kozaktomas/photo-collage/internal/geometry"
)

// gridDescriptors produces one uniform grid per divisor pair (rows, cols)
// with rows*cols == n. Cell i sits at row i/cols, column i%cols and is bound
// to photo i.
func gridDescriptors(n int) []Descriptor {
	var descs []Descriptor
	for rows := 1; rows <= n; rows++ {
		if n%rows != 0 {
			continue
		}
		cols := n / rows
		cellW := 1.0 / float64(cols)
		cellH := 1.0 / float64(rows)

		cells := make([]Cell, 0, n)
		for i := 0; i < n; i++ {
			cells = append(cells, Cell{
				Rect: geometry.Rect{
					X:      float64(i%cols) * cellW,
					Y:      float64(i/cols) * cellH,
					Width:  cellW,
					Height: cellH,
				},
				PhotoIndex: i,
			})
		}
		descs = append(descs, Descriptor{
			Kind:  KindGrid,
			Name:  fmt.Sprintf("grid-%dx%d", rows, cols),
			Cells: cells,
		})
	}
	return descs
}

// splitDescriptors produces two-region splits for every 1 <= k < n: a
// horizontal split (top region holds k cells side by side, bottom holds the
// rest) and a vertical split (left region holds k cells stacked, right holds
// the rest). The (k, n-k) and (n-k, k) configurations map photos to different
// positions and are both produced.
func splitDescriptors(n int, ratio float64) []Descriptor {
	var descs []Descriptor
	for k := 1; k < n; k++ {
		descs = append(descs,
			horizontalSplit(n, k, ratio),
			verticalSplit(n, k, ratio),
		)
	}
	return descs
}

func horizontalSplit(n, k int, ratio float64) Descriptor {
	cells := make([]Cell, 0, n)
	topW := 1.0 / float64(k)
	for i := 0; i < k; i++ {
		cells = append(cells, Cell{
			Rect:       geometry.Rect{X: float64(i) * topW, Y: 0, Width: topW, Height: ratio},
			PhotoIndex: i,
		})
	}
	bottomW := 1.0 / float64(n-k)
	for i := 0; i < n-k; i++ {
		cells = append(cells, Cell{
			Rect:       geometry.Rect{X: float64(i) * bottomW, Y: ratio, Width: bottomW, Height: 1 - ratio},
			PhotoIndex: k + i,
		})
	}
	return Descriptor{
		Kind:  KindSplit,
		Name:  fmt.Sprintf("split-h-%d+%d", k, n-k),
		Cells: cells,
	}
}

func verticalSplit(n, k int, ratio float64) Descriptor {
	cells := make([]Cell, 0, n)
	leftH := 1.0 / float64(k)
	for i := 0; i < k; i++ {
		cells = append(cells, Cell{
			Rect:       geometry.Rect{X: 0, Y: float64(i) * leftH, Width: ratio, Height: leftH},
			PhotoIndex: i,
		})
	}
	rightH := 1.0 / float64(n-k)
	for i := 0; i < n-k; i++ {
		cells = append(cells, Cell{
			Rect:       geometry.Rect{X: ratio, Y: float64(i) * rightH, Width: 1 - ratio, Height: rightH},
			PhotoIndex: k + i,
		})
	}
	return Descriptor{
		Kind:  KindSplit,
		Name:  fmt.Sprintf("split-v-%d+%d", k, n-k),
		Cells: cells,
	}
}

// stackedDescriptors produces uneven row and column distributions summing
// to n. Rows get every two-part composition plus the distinct permutations
// of the most-even three-part partition; columns get only the most-even
// two- and three-part permutations. Uniform distributions are skipped since
// the grid family already covers those shapes.
func stackedDescriptors(n int) []Descriptor {
	var descs []Descriptor
	for _, dist := range rowDistributions(n) {
		descs = append(descs, stackedRows(n, dist))
	}
	for _, dist := range columnDistributions(n) {
		descs = append(descs, stackedColumns(n, dist))
	}
	return descs
}

// rowDistributions enumerates the uneven row counts for n photos: all
// two-part compositions (k, n-k) followed by the most-even triples.
func rowDistributions(n int) [][]int {
	var dists [][]int
	for k := 1; k < n; k++ {
		if isUniform([]int{k, n - k}) {
			continue
		}
		dists = append(dists, []int{k, n - k})
	}
	dists = append(dists, mostEvenPermutations(n, 3)...)
	return dists
}

// columnDistributions enumerates the uneven column counts: only the
// most-even two- and three-part permutations.
func columnDistributions(n int) [][]int {
	dists := mostEvenPermutations(n, 2)
	return append(dists, mostEvenPermutations(n, 3)...)
}

// mostEvenPermutations returns the distinct orderings of the most-even split
// of n into the given number of parts. When the split is uniform (n divisible
// by parts) it returns nothing: the uniform grid already covers that shape.
func mostEvenPermutations(n, parts int) [][]int {
	if n <= parts || n%parts == 0 {
		return nil
	}
	small := n / parts
	bigs := n % parts // this many parts get small+1

	// Choose positions for the larger parts; distinct orderings only.
	var perms [][]int
	var build func(pos, placed int, cur []int)
	build = func(pos, placed int, cur []int) {
		if pos == parts {
			if placed == bigs {
				perms = append(perms, append([]int(nil), cur...))
			}
			return
		}
		if placed < bigs {
			build(pos+1, placed+1, append(cur, small+1))
		}
		build(pos+1, placed, append(cur, small))
	}
	build(0, 0, nil)
	return perms
}

func isUniform(dist []int) bool {
	for _, v := range dist[1:] {
		if v != dist[0] {
			return false
		}
	}
	return true
}

// stackedRows lays out len(dist) equal-height rows, row r holding dist[r]
// cells side by side; photos are bound in reading order.
func stackedRows(n int, dist []int) Descriptor {
	rowH := 1.0 / float64(len(dist))
	cells := make([]Cell, 0, n)
	idx := 0
	for r, count := range dist {
		cellW := 1.0 / float64(count)
		for c := 0; c < count; c++ {
			cells = append(cells, Cell{
				Rect: geometry.Rect{
					X:      float64(c) * cellW,
					Y:      float64(r) * rowH,
					Width:  cellW,
					Height: rowH,
				},
				PhotoIndex: idx,
			})
			idx++
		}
	}
	return Descriptor{
		Kind:  KindStacked,
		Name:  "rows-" + distName(dist),
		Cells: cells,
	}
}

// stackedColumns lays out len(dist) equal-width columns, column c holding
// dist[c] cells stacked vertically; photos are bound column by column.
func stackedColumns(n int, dist []int) Descriptor {
	colW := 1.0 / float64(len(dist))
	cells := make([]Cell, 0, n)
	idx := 0
	for c, count := range dist {
		cellH := 1.0 / float64(count)
		for r := 0; r < count; r++ {
			cells = append(cells, Cell{
				Rect: geometry.Rect{
					X:      float64(c) * colW,
					Y:      float64(r) * cellH,
					Width:  colW,
					Height: cellH,
				},
				PhotoIndex: idx,
			})
			idx++
		}
	}
	return Descriptor{
		Kind:  KindStacked,
		Name:  "cols-" + distName(dist),
		Cells: cells,
	}
}

func distName(dist []int) string {
	parts := make([]string, len(dist))
	for i, v := range dist {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "-")
}

// Dominant region fractions: side-dominant templates give the hero photo
// two thirds of the page width, top/bottom-dominant templates give it half
// the page height.
const (
	dominantSideFraction = 2.0 / 3.0
	dominantBandFraction = 0.5
)

// nestedDescriptors produces the four one-dominant-photo partitions for
// n >= 3. The first photo is dominant for left/top orientations, the last
// photo for right/bottom.
func nestedDescriptors(n int) []Descriptor {
	if n < 3 {
		return nil
	}
	return []Descriptor{
		nestedLeft(n),
		nestedRight(n),
		nestedTop(n),
		nestedBottom(n),
	}
}

func nestedLeft(n int) Descriptor {
	w := dominantSideFraction
	cells := []Cell{{
		Rect:       geometry.Rect{X: 0, Y: 0, Width: w, Height: 1},
		PhotoIndex: 0,
	}}
	restH := 1.0 / float64(n-1)
	for i := 0; i < n-1; i++ {
		cells = append(cells, Cell{
			Rect:       geometry.Rect{X: w, Y: float64(i) * restH, Width: 1 - w, Height: restH},
			PhotoIndex: i + 1,
		})
	}
	return Descriptor{Kind: KindNested, Name: "nested-left", Cells: cells}
}

func nestedRight(n int) Descriptor {
	w := dominantSideFraction
	var cells []Cell
	restH := 1.0 / float64(n-1)
	for i := 0; i < n-1; i++ {
		cells = append(cells, Cell{
			Rect:       geometry.Rect{X: 0, Y: float64(i) * restH, Width: 1 - w, Height: restH},
			PhotoIndex: i,
		})
	}
	cells = append(cells, Cell{
		Rect:       geometry.Rect{X: 1 - w, Y: 0, Width: w, Height: 1},
		PhotoIndex: n - 1,
	})
	return Descriptor{Kind: KindNested, Name: "nested-right", Cells: cells}
}

func nestedTop(n int) Descriptor {
	h := dominantBandFraction
	cells := []Cell{{
		Rect:       geometry.Rect{X: 0, Y: 0, Width: 1, Height: h},
		PhotoIndex: 0,
	}}
	restW := 1.0 / float64(n-1)
	for i := 0; i < n-1; i++ {
		cells = append(cells, Cell{
			Rect:       geometry.Rect{X: float64(i) * restW, Y: h, Width: restW, Height: 1 - h},
			PhotoIndex: i + 1,
		})
	}
	return Descriptor{Kind: KindNested, Name: "nested-top", Cells: cells}
}

func nestedBottom(n int) Descriptor {
	h := dominantBandFraction
	var cells []Cell
	restW := 1.0 / float64(n-1)
	for i := 0; i < n-1; i++ {
		cells = append(cells, Cell{
			Rect:       geometry.Rect{X: float64(i) * restW, Y: 0, Width: restW, Height: 1 - h},
			PhotoIndex: i,
		})
	}
	cells = append(cells, Cell{
		Rect:       geometry.Rect{X: 0, Y: 1 - h, Width: 1, Height: h},
		PhotoIndex: n - 1,
	})
	return Descriptor{Kind: KindNested, Name: "nested-bottom", Cells: cells}
}
