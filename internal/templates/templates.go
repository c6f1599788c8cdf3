// Package templates enumerates page-size-independent layout descriptors for a
// given photo count. A descriptor places cells in normalized 0..1 coordinates
// and maps each cell to a position in the ordered photo sequence; binding a
// descriptor to a concrete page size and photo list happens in the engine.
package templates

import (
	"fmt"

	"github.com/kozaktomas/photo-collage/internal/geometry"
)

// Kind identifies the template family a descriptor belongs to.
type Kind string

const (
	KindGrid      Kind = "grid"
	KindSplit     Kind = "split"
	KindStacked   Kind = "stacked"
	KindNested    Kind = "nested"
	KindComposite Kind = "composite"
)

// Cell is one rectangular region of a descriptor in normalized coordinates.
// PhotoIndex references a position in the ordered photo sequence.
type Cell struct {
	Rect       geometry.Rect
	PhotoIndex int
}

// Descriptor describes a full page partition independent of any page size or
// photo set. Name encodes the shape parameters for UI grouping only and is
// never used for correctness.
type Descriptor struct {
	Kind  Kind
	Name  string
	Cells []Cell
}

// Params controls the tunable shape parameters of the generated families.
type Params struct {
	// SplitRatio is the fraction of the page given to the first region of a
	// two-region split (top region for horizontal, left region for vertical).
	SplitRatio float64
}

// DefaultParams returns the standard 50/50 split configuration.
func DefaultParams() Params {
	return Params{SplitRatio: 0.5}
}

// Enumerate returns every descriptor applicable to n photos, in a fixed
// deterministic order: grids, splits, stacked, nested, composites.
// n <= 0 yields an empty set.
func Enumerate(n int, params Params) []Descriptor {
	if n <= 0 {
		return nil
	}
	if params.SplitRatio <= 0 || params.SplitRatio >= 1 {
		params.SplitRatio = DefaultParams().SplitRatio
	}

	var descs []Descriptor
	descs = append(descs, gridDescriptors(n)...)
	descs = append(descs, splitDescriptors(n, params.SplitRatio)...)
	descs = append(descs, stackedDescriptors(n)...)
	descs = append(descs, nestedDescriptors(n)...)
	descs = append(descs, compositeDescriptors(n)...)
	return descs
}

// Validate checks the internal consistency of a descriptor for n photos:
// every cell must have positive extent and the photo indices must form
// exactly the set {0..n-1}. A failure here is a template-authoring defect,
// not a user-facing error.
func (d Descriptor) Validate(n int) error {
	if len(d.Cells) != n {
		return fmt.Errorf("template %q: %d cells for %d photos", d.Name, len(d.Cells), n)
	}
	seen := make([]bool, n)
	for i, c := range d.Cells {
		if c.Rect.Width <= 0 || c.Rect.Height <= 0 {
			return fmt.Errorf("template %q: cell %d has non-positive extent %.4fx%.4f",
				d.Name, i, c.Rect.Width, c.Rect.Height)
		}
		if c.PhotoIndex < 0 || c.PhotoIndex >= n {
			return fmt.Errorf("template %q: cell %d references photo index %d (want 0..%d)",
				d.Name, i, c.PhotoIndex, n-1)
		}
		if seen[c.PhotoIndex] {
			return fmt.Errorf("template %q: photo index %d referenced twice", d.Name, c.PhotoIndex)
		}
		seen[c.PhotoIndex] = true
	}
	return nil
}
