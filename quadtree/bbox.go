package quadtree

import "math"

// BoundingBox is a square region of (t1, t2) coordinate space
// centered at (CX, CY) with half-width W2.
type BoundingBox struct {
	CX, CY float64
	W2     float64
}

// NewBoundingBox builds a square region centered at (cx, cy) with the
// given half-width.
func NewBoundingBox(cx, cy, halfWidth float64) BoundingBox {
	return BoundingBox{CX: cx, CY: cy, W2: halfWidth}
}

// Contains reports whether (x, y) lies strictly inside b. Strict
// less-than on both sides means a point exactly on a subdivision
// boundary belongs to neither of the two adjacent quadrants.
func (b BoundingBox) Contains(x, y float64) bool {
	return math.Abs(x-b.CX) < b.W2 && math.Abs(y-b.CY) < b.W2
}

// Intersects reports whether b and other overlap, touching boundaries
// included. This is the query-side test: it deliberately admits nodes
// whose pairs may turn out, on closer look, to fall just outside the
// true query region.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	d := b.W2 + other.W2
	return math.Abs(other.CX-b.CX) <= d && math.Abs(other.CY-b.CY) <= d
}
