package engine

import (
	"fmt"
	"math"
)

// Warning describes a geometric integrity issue found in a candidate. These
// are advisory: curated layouts may leave gaps on purpose, but cells leaking
// off the page or stacking on top of each other always indicate a bad
// descriptor.
type Warning struct {
	CellIndex int    `json:"cell_index"`
	Message   string `json:"message"`
}

// ValidateCandidate checks an instantiated candidate against its page. It
// reports cells with degenerate extents, cells extending past the page
// bounds, and pairs of overlapping cells.
func ValidateCandidate(c Candidate, page PageSize) []Warning {
	eps := 1e-6 * math.Max(page.Width, page.Height)
	var warnings []Warning

	for i, cell := range c.Cells {
		if cell.Width <= 0 || cell.Height <= 0 {
			warnings = append(warnings, Warning{
				CellIndex: i,
				Message:   fmt.Sprintf("cell has degenerate size %.2fx%.2f", cell.Width, cell.Height),
			})
			continue
		}
		if cell.X < -eps || cell.Y < -eps {
			warnings = append(warnings, Warning{
				CellIndex: i,
				Message:   fmt.Sprintf("cell starts off page at (%.2f, %.2f)", cell.X, cell.Y),
			})
		}
		if cell.X+cell.Width > page.Width+eps || cell.Y+cell.Height > page.Height+eps {
			warnings = append(warnings, Warning{
				CellIndex: i,
				Message:   fmt.Sprintf("cell extends past page bounds (%.2f, %.2f)", cell.X+cell.Width, cell.Y+cell.Height),
			})
		}
	}

	for i := 0; i < len(c.Cells); i++ {
		for j := i + 1; j < len(c.Cells); j++ {
			if c.Cells[i].Overlaps(c.Cells[j].Rect, eps) {
				warnings = append(warnings, Warning{
					CellIndex: i,
					Message:   fmt.Sprintf("cell overlaps cell %d", j),
				})
			}
		}
	}

	return warnings
}
