package pstree

// Shared helpers for the four query algorithms in query_*.go. None of
// these allocate or retain references into a PST's backing slice; every
// Point[T] here is a plain value copy.

// inNEQuadrant reports whether p lies in the north-east quadrant
// {x >= xmin, y >= ymin} (spec.md Glossary).
func inNEQuadrant[T Coord](p Point[T], xmin, ymin T) bool {
	return p.X >= xmin && p.Y >= ymin
}

// inSlab reports whether p lies in the three-sided slab
// {xmin <= x <= xmax, y >= ymin} (spec.md Glossary).
func inSlab[T Coord](p Point[T], xmin, xmax, ymin T) bool {
	return p.X >= xmin && p.X <= xmax && p.Y >= ymin
}

// bestLeftmost tracks the smallest-X candidate seen so far for
// LeftmostNE. found is false until the first candidate is accepted; a
// proper "found" flag replaces the reference implementation's
// +Infinity/-Infinity sentinel point (spec.md §9 design note).
type bestLeftmost[T Coord] struct {
	point Point[T]
	found bool
}

// consider updates b if p is in the NE quadrant and strictly improves on
// the current best X.
func (b *bestLeftmost[T]) consider(p Point[T], xmin, ymin T) {
	if !inNEQuadrant(p, xmin, ymin) {
		return
	}
	if !b.found || p.X < b.point.X {
		b.point = p
		b.found = true
	}
}

// bestHighest tracks the largest-Y candidate seen so far for HighestNE
// and Highest3Sided.
type bestHighest[T Coord] struct {
	point Point[T]
	found bool
}

// considerNE updates b if p is in the NE quadrant and strictly improves
// on the current best Y.
func (b *bestHighest[T]) considerNE(p Point[T], xmin, ymin T) {
	if !inNEQuadrant(p, xmin, ymin) {
		return
	}
	b.considerUnchecked(p)
}

// considerSlab updates b if p is in the three-sided slab and strictly
// improves on the current best Y.
func (b *bestHighest[T]) considerSlab(p Point[T], xmin, xmax, ymin T) {
	if !inSlab(p, xmin, xmax, ymin) {
		return
	}
	b.considerUnchecked(p)
}

// considerUnchecked updates b from p by Y alone, without re-checking
// membership; callers use it once membership has already been verified.
func (b *bestHighest[T]) considerUnchecked(p Point[T]) {
	if !b.found || p.Y > b.point.Y {
		b.point = p
		b.found = true
	}
}

// considerIfYGE updates b from p if p.Y >= ymin, without re-checking X
// membership; callers use it once X membership has already been
// established by the branch that reaches it (Highest3Sided's checkLeft
// and checkRight case tables test X before Y).
func (b *bestHighest[T]) considerIfYGE(p Point[T], ymin T) {
	if p.Y >= ymin {
		b.considerUnchecked(p)
	}
}
