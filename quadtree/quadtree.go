package quadtree

import (
	"github.com/SynapticNetworks/gnatfinder/spike"
)

// MaxCap is the number of pairs a leaf node holds before it subdivides.
const MaxCap = 4

// QuadTree is a point-region quadtree over spike.Pair coordinates.
type QuadTree struct {
	bdry  BoundingBox
	pairs []spike.Pair

	nw, sw, ne, se *QuadTree
}

// New allocates a leaf QuadTree covering bdry.
func New(bdry BoundingBox) *QuadTree {
	return &QuadTree{bdry: bdry}
}

// subdivided reports whether qt has already split into four children.
func (qt *QuadTree) subdivided() bool {
	return qt.nw != nil
}

// Insert adds p to the tree, subdividing nodes as needed, and reports
// whether p fell within qt's boundary at all. A false return means p's
// coordinates lie outside this node's region entirely — the caller
// (typically the root's own caller) made a programming error, since
// every pair handed to a correctly sized root should be contained.
func (qt *QuadTree) Insert(p spike.Pair) bool {
	x, y := p.Coord()
	if !qt.bdry.Contains(x, y) {
		return false
	}

	if !qt.subdivided() && len(qt.pairs) < MaxCap {
		qt.pairs = append(qt.pairs, p)
		return true
	}

	if !qt.subdivided() {
		qt.subdivide()
	}

	if qt.nw.Insert(p) || qt.sw.Insert(p) || qt.ne.Insert(p) || qt.se.Insert(p) {
		return true
	}

	// All four children rejected p: it lies on a dividing line, which
	// strict containment excludes from every child, or qt's Contains
	// test and the children's disagree in floating point.
	// Retain it here rather than drop it.
	qt.pairs = append(qt.pairs, p)
	return true
}

func (qt *QuadTree) subdivide() {
	d2 := qt.bdry.W2 / 2
	cx, cy := qt.bdry.CX, qt.bdry.CY

	qt.nw = New(NewBoundingBox(cx-d2, cy+d2, d2))
	qt.sw = New(NewBoundingBox(cx-d2, cy-d2, d2))
	qt.ne = New(NewBoundingBox(cx+d2, cy+d2, d2))
	qt.se = New(NewBoundingBox(cx+d2, cy-d2, d2))

	leftover := qt.pairs
	qt.pairs = nil
	for _, p := range leftover {
		switch {
		case qt.nw.Insert(p):
		case qt.sw.Insert(p):
		case qt.ne.Insert(p):
		case qt.se.Insert(p):
		default:
			qt.pairs = append(qt.pairs, p)
		}
	}
}

// MapRange calls visit on every pair stored in a node whose boundary
// intersects r. Because Intersects is an over-approximation (it uses
// <=, not <), visit must re-check any precise condition it cares about;
// MapRange itself never filters pairs beyond node-level intersection.
func (qt *QuadTree) MapRange(r BoundingBox, visit func(spike.Pair)) {
	if !qt.bdry.Intersects(r) {
		return
	}
	for _, p := range qt.pairs {
		visit(p)
	}
	if !qt.subdivided() {
		return
	}
	qt.nw.MapRange(r, visit)
	qt.sw.MapRange(r, visit)
	qt.ne.MapRange(r, visit)
	qt.se.MapRange(r, visit)
}
