package engine

import "sort"

// Photo carries the identity and pixel dimensions of one input image. The
// engine only reads Width and Height; decoding and storage belong to the
// caller.
type Photo struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// AspectRatio returns width/height, or 0 for degenerate dimensions.
func (p Photo) AspectRatio() float64 {
	if p.Height <= 0 {
		return 0
	}
	return float64(p.Width) / float64(p.Height)
}

// Landscape reports whether the photo is at least as wide as it is tall.
func (p Photo) Landscape() bool {
	return p.Width >= p.Height
}

// PageSize is the target page in any positive unit, used consistently across
// one generation run.
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// sortByOrientation returns a copy of photos ordered landscape-first. The
// sort is stable so photos keep their relative order within each group.
func sortByOrientation(photos []Photo) []Photo {
	sorted := make([]Photo, len(photos))
	copy(sorted, photos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Landscape() && !sorted[j].Landscape()
	})
	return sorted
}
