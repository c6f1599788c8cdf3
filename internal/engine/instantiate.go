package engine

import (
	"github.com/kozaktomas/photo-collage/internal/geometry"
	"github.com/kozaktomas/photo-collage/internal/templates"
)

// instantiate binds a descriptor to a concrete page size and photo sequence
// using the descriptor's own photo-index mapping. Cells referencing an index
// beyond the photo list are dropped rather than failing: partial layouts
// degrade into a lower utilization score (callers needing full coverage must
// check cell counts themselves).
func instantiate(d templates.Descriptor, page PageSize, photos []Photo) Candidate {
	cells := make([]Cell, 0, len(d.Cells))
	for _, tc := range d.Cells {
		if tc.PhotoIndex >= len(photos) {
			continue
		}
		cells = append(cells, Cell{
			Rect:  tc.Rect.Scale(page.Width, page.Height),
			Photo: &photos[tc.PhotoIndex],
		})
	}
	return Candidate{
		Kind:        d.Kind,
		Name:        d.Name,
		Cells:       cells,
		DuplicateOf: -1,
	}
}

// instantiateOptimized discards the descriptor's photo-index mapping and
// re-assigns photos to cells by aspect-ratio affinity. The candidate keeps
// the descriptor's geometry; only the bindings may differ from sequential
// mode. The same leniency policy applies: surplus cells are dropped.
func instantiateOptimized(d templates.Descriptor, page PageSize, photos []Photo) Candidate {
	m := len(d.Cells)
	if m > len(photos) {
		m = len(photos)
	}
	rects := make([]geometry.Rect, 0, m)
	for _, tc := range d.Cells[:m] {
		rects = append(rects, tc.Rect.Scale(page.Width, page.Height))
	}
	return Candidate{
		Kind:        d.Kind,
		Name:        d.Name,
		Cells:       assignPhotos(rects, photos[:m]),
		DuplicateOf: -1,
	}
}
