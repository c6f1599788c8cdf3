package engine

import (
	"github.com/kozaktomas/photo-collage/internal/geometry"
	"github.com/kozaktomas/photo-collage/internal/templates"
)

// Cell is one rectangular region of an instantiated layout in absolute page
// coordinates, optionally bound to a photo.
type Cell struct {
	geometry.Rect
	Photo *Photo `json:"photo,omitempty"`
}

// Metrics holds the per-candidate quality measurements attached by scoring.
type Metrics struct {
	Utilization  float64 `json:"utilization"`
	CroppingRate float64 `json:"cropping_rate"`
	SizeBalance  float64 `json:"size_balance"`
}

// Candidate is a layout descriptor bound to a concrete page size and photo
// sequence. It is created by instantiation, optionally dropped by
// deduplication, scored, and read-only to the caller thereafter.
type Candidate struct {
	Kind    templates.Kind `json:"kind"`
	Name    string         `json:"name"`
	Cells   []Cell         `json:"cells"`
	Score   float64        `json:"score"`
	Metrics Metrics        `json:"metrics"`

	// DuplicateOf is the index of the first candidate with the same grouping
	// signature, or -1 when this candidate is canonical. It is only populated
	// by lenient deduplication.
	DuplicateOf int `json:"duplicate_of"`
}

// valid reports whether a candidate can be scored: at least one cell, every
// cell with positive area. Degenerate candidates are excluded from the
// ranked output rather than scored as zero.
func (c Candidate) valid() bool {
	if len(c.Cells) == 0 {
		return false
	}
	for _, cell := range c.Cells {
		if cell.Width <= 0 || cell.Height <= 0 {
			return false
		}
	}
	return true
}
