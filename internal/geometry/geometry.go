package geometry

import "math"

// Rect is an axis-aligned rectangle. Depending on context the coordinates are
// either normalized (0..1, relative to a page) or absolute page units.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns width * height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// AspectRatio returns width/height. Rects with non-positive height return 0
// so callers never see Inf or NaN.
func (r Rect) AspectRatio() float64 {
	if r.Height <= 0 {
		return 0
	}
	return r.Width / r.Height
}

// Scale maps a normalized rect onto a page of the given dimensions.
func (r Rect) Scale(pageW, pageH float64) Rect {
	return Rect{
		X:      r.X * pageW,
		Y:      r.Y * pageH,
		Width:  r.Width * pageW,
		Height: r.Height * pageH,
	}
}

// Normalize maps an absolute rect back into 0..1 page-relative coordinates.
// Non-positive page dimensions return the rect unchanged.
func (r Rect) Normalize(pageW, pageH float64) Rect {
	if pageW <= 0 || pageH <= 0 {
		return r
	}
	return Rect{
		X:      r.X / pageW,
		Y:      r.Y / pageH,
		Width:  r.Width / pageW,
		Height: r.Height / pageH,
	}
}

// Overlaps checks if two axis-aligned rectangles overlap with tolerance.
// Edges that merely touch (within eps) do not count as overlap.
func (r Rect) Overlaps(o Rect, eps float64) bool {
	if r.X+r.Width <= o.X+eps || o.X+o.Width <= r.X+eps {
		return false
	}
	if r.Y+r.Height <= o.Y+eps || o.Y+o.Height <= r.Y+eps {
		return false
	}
	return true
}

// Round rounds v to the given number of decimal places.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
