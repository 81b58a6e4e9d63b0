/*
Package quadtree implements the point-region QuadTree the second-order
driver uses to index spike pairs by their (t1, t2) coordinates and
query candidate presynaptic pairs within a causal radius of a given
postsynaptic pair.

A node holds up to MaxCap pairs before subdividing into four
quadrants (NW, SW, NE, SE); BoundingBox.Contains uses strict less-than
on both sides, so a pair lying exactly on a dividing line is inside no
child, while BoundingBox.Intersects uses inclusive less-than-or-equal
so MapRange never misses a pair lying exactly on a query boundary.
MapRange is therefore an over-approximation of the causal radius; the
causal scorer is the true filter (see package causal).

One redesign from the reference tree: if every child of a subdivided
node rejects a pair (a pair on a dividing line, or a floating-point
boundary disagreement between a node's own Contains test and its
children's), the pair is retained on the parent node instead of being
silently dropped.
*/
package quadtree
