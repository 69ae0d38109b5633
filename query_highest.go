package pstree

// HighestNE returns a point with maximum Y among all points satisfying
// X >= xmin AND Y >= ymin, or (zero, false) if none exists.
//
// Algorithm: a single cursor p descends from the root. At each node: if
// the point is in the NE quadrant, it is a candidate and we descend left
// (the heap property guarantees nothing deeper on Y beats an ancestor, so
// only an uncontested left descent can still improve membership); if the
// point's Y is already below ymin, nothing in its subtree can qualify
// either, so descend left; otherwise the point is west of xmin with
// Y >= ymin, and a two-child case split picks the subtree that can still
// contain an NE-quadrant point. Transcribed from highestNE in
// cpp/InPlacePST.cpp.
//
// Time: O(log N). Memory: O(1).
func (t *PST[T]) HighestNE(xmin, ymin T) (Point[T], bool) {
	var best bestHighest[T]
	if t.n == 0 {
		return best.point, best.found
	}

	indexP := 1
	for !isLeaf(indexP, t.n) {
		p := t.get(indexP)
		switch {
		case inNEQuadrant(p, xmin, ymin):
			best.considerUnchecked(p)
			indexP = left(indexP)

		case p.Y < ymin:
			indexP = left(indexP)

		case numChildren(indexP, t.n) == 1:
			indexP = left(indexP)

		default: // two children
			pl := t.get(left(indexP))
			pr := t.get(right(indexP))
			switch {
			case pr.X <= xmin:
				indexP = right(indexP)

			case pl.X >= xmin:
				if pl.Y > pr.Y {
					indexP = left(indexP)
				} else {
					indexP = right(indexP)
				}

			case pr.Y < ymin:
				indexP = left(indexP)

			default:
				// pr straddles the NE boundary: xmin < pr.X and
				// pr.Y >= ymin already known. Consider pr directly (the
				// reference's comment names this update "Updatehighest(pr)";
				// its code instead updates from the already-rejected p,
				// which would admit a point west of xmin. See
				// DESIGN.md Open Questions.
				best.considerNE(pr, xmin, ymin)
				indexP = left(indexP)
			}
		}
	}

	best.considerNE(t.get(indexP), xmin, ymin)

	return best.point, best.found
}
