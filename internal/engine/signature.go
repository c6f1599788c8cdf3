package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kozaktomas/photo-collage/internal/geometry"
)

const (
	// DefaultStrictPrecision is the decimal precision of the strict
	// signature used to collapse structurally identical candidates before
	// scoring.
	DefaultStrictPrecision = 6

	// GroupPrecision is the decimal precision of the looser grouping
	// signature used to cluster near-identical structures for UI display.
	GroupPrecision = 2
)

// structuralSignature encodes a candidate's page-relative cell geometry as a
// canonical string: cells are normalized against the page, rounded to the
// given precision, sorted by (y, x) and concatenated. Candidates with equal
// signatures are structurally identical regardless of bound photos,
// descriptor name, or kind.
func structuralSignature(c Candidate, page PageSize, decimals int) string {
	rects := make([]geometry.Rect, len(c.Cells))
	for i, cell := range c.Cells {
		r := cell.Rect.Normalize(page.Width, page.Height)
		rects[i] = geometry.Rect{
			X:      geometry.Round(r.X, decimals),
			Y:      geometry.Round(r.Y, decimals),
			Width:  geometry.Round(r.Width, decimals),
			Height: geometry.Round(r.Height, decimals),
		}
	}
	sort.SliceStable(rects, func(a, b int) bool {
		if rects[a].Y != rects[b].Y {
			return rects[a].Y < rects[b].Y
		}
		return rects[a].X < rects[b].X
	})

	parts := make([]string, len(rects))
	for i, r := range rects {
		parts[i] = fmt.Sprintf("%.*f,%.*f,%.*f,%.*f",
			decimals, r.X, decimals, r.Y, decimals, r.Width, decimals, r.Height)
	}
	return strings.Join(parts, "|")
}

// StrictSignature is the exact structural identity of a candidate, used to
// drop duplicates before scoring.
func StrictSignature(c Candidate, page PageSize) string {
	return structuralSignature(c, page, DefaultStrictPrecision)
}

// GroupSignature is the loose structural identity of a candidate, used to
// annotate near-identical variants for UI grouping.
func GroupSignature(c Candidate, page PageSize) string {
	return structuralSignature(c, page, GroupPrecision)
}
