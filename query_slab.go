package pstree

// Highest3Sided returns a highest-Y point in the slab
// {xmin <= X <= xmax, Y >= ymin}, or (zero, false, nil) if none exists.
// It returns ErrInvalidRange if xmin > xmax.
//
// Algorithm: two cursors, p approaching the slab from the left and q
// from the right, each guarded by a liveness flag (L, R). At each step
// the live cursor at the shallower level is advanced (ties broken toward
// L); CheckLeft(p) and CheckRight(q) dispatch on the number of children
// at the cursor and the position of its children relative to
// [xmin, xmax], updating (p, q, L, R) and possibly "best". Transcribed
// from highest3Sided in cpp/InPlacePST.cpp.
//
// Time: O(log N). Memory: O(1).
func (t *PST[T]) Highest3Sided(xmin, xmax, ymin T) (Point[T], bool, error) {
	var best bestHighest[T]
	if xmin > xmax {
		return best.point, best.found, ErrInvalidRange
	}
	if t.n == 0 {
		return best.point, best.found, nil
	}

	var l, r bool
	root := t.get(1)
	indexP, indexQ := 1, 1
	switch {
	case root.X >= xmin && root.X <= xmax:
		if root.Y >= ymin {
			best.considerUnchecked(root)
		}
	case root.X < xmin:
		l = true
	default:
		r = true
	}

	for l || r {
		if l && (!r || level(indexP) <= level(indexQ)) {
			indexP, indexQ, l, r = t.checkLeft(indexP, indexQ, r, xmin, xmax, ymin, &best)
		} else {
			indexP, indexQ, l, r = t.checkRight(indexP, indexQ, l, xmin, xmax, ymin, &best)
		}
	}

	return best.point, best.found, nil
}

// checkLeft advances cursor p (approaching the slab from the left) by
// one step, returning the updated (indexP, indexQ, l, r).
func (t *PST[T]) checkLeft(indexP, indexQ int, r bool, xmin, xmax, ymin T, best *bestHighest[T]) (int, int, bool, bool) {
	l := true
	indexPL := left(indexP)
	indexPR := right(indexP)

	switch {
	case isLeaf(indexP, t.n):
		l = false

	case numChildren(indexP, t.n) == 1:
		pl := t.get(indexPL)
		switch {
		case pl.X >= xmin && pl.X <= xmax:
			best.considerIfYGE(pl, ymin)
			l = false
		case pl.X < xmin:
			indexP = indexPL
		default:
			indexQ = indexPL
			r = true
			l = false
		}

	default: // two children
		pl := t.get(indexPL)
		pr := t.get(indexPR)
		switch {
		case pl.X < xmin:
			switch {
			case pr.X < xmin:
				indexP = indexPR
			case pr.X <= xmax:
				best.considerIfYGE(pr, ymin)
				indexP = indexPL
			default:
				indexQ = indexPR
				indexP = indexPL
				r = true
			}

		case pl.X <= xmax:
			best.considerIfYGE(pl, ymin)
			l = false
			if pr.X > xmax {
				indexQ = indexPR
				r = true
			} else {
				best.considerIfYGE(pr, ymin)
			}

		default: // pl is right of the query region
			indexQ = indexPL
			l = false
			r = true
		}
	}

	return indexP, indexQ, l, r
}

// checkRight advances cursor q (approaching the slab from the right) by
// one step, returning the updated (indexP, indexQ, l, r).
func (t *PST[T]) checkRight(indexP, indexQ int, l bool, xmin, xmax, ymin T, best *bestHighest[T]) (int, int, bool, bool) {
	r := true
	indexQL := left(indexQ)
	indexQR := right(indexQ)

	switch {
	case isLeaf(indexQ, t.n):
		r = false

	case numChildren(indexQ, t.n) == 1:
		ql := t.get(indexQL)
		switch {
		case ql.X >= xmin && ql.X <= xmax:
			best.considerIfYGE(ql, ymin)
			r = false
		case ql.X > xmax:
			indexQ = indexQL
		default:
			indexP = indexQL
			l = true
			r = false
		}

	default: // two children
		ql := t.get(indexQL)
		qr := t.get(indexQR)
		switch {
		case qr.X > xmax:
			switch {
			case ql.X > xmax:
				indexQ = indexQL
			case ql.X >= xmin:
				best.considerIfYGE(ql, ymin)
				indexQ = indexQR
			default:
				indexP = indexQL
				indexQ = indexQR
				l = true
			}

		case qr.X >= xmin:
			best.considerIfYGE(qr, ymin)
			r = false
			if ql.X < xmin {
				indexP = indexQL
				l = true
			} else {
				best.considerIfYGE(ql, ymin)
			}

		default: // qr is left of the query region
			indexP = indexQR
			l = true
			r = false
		}
	}

	return indexP, indexQ, l, r
}
