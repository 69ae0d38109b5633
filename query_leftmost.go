package pstree

// LeftmostNE returns the point with the smallest X among all points
// satisfying X >= xmin AND Y >= ymin, or (zero, false) if none exists.
//
// Algorithm: two cursors p and q descend from the root in lock-step,
// maintaining level(p) <= level(q). At every step both cursors are
// considered as candidates, then advanced according to a ten-case table
// keyed on whether p == q, whether q is a leaf or has one or two
// children, and how the children of p and q compare against (xmin,
// ymin). Transcribed directly from leftMostNE in cpp/InPlacePST.cpp; the
// case table is reproduced exactly, not re-derived.
//
// Time: O(log N). Memory: O(1).
func (t *PST[T]) LeftmostNE(xmin, ymin T) (Point[T], bool) {
	var best bestLeftmost[T]
	if t.n == 0 {
		return best.point, best.found
	}

	indexP, indexQ := 1, 1
	for !isLeaf(indexP, t.n) {
		best.consider(t.get(indexP), xmin, ymin)
		best.consider(t.get(indexQ), xmin, ymin) // q walks to the right of p

		switch {
		case indexP == indexQ:
			if numChildren(indexP, t.n) == 1 {
				indexQ = left(indexP)
				indexP = left(indexP)
			} else {
				indexQ = right(indexP)
				indexP = left(indexP)
			}

		case isLeaf(indexQ, t.n):
			indexQ = indexP

		case numChildren(indexQ, t.n) == 1:
			ql := t.get(left(indexQ))
			pr := t.get(right(indexP))
			switch {
			case ql.Y < ymin:
				indexQ = right(indexP)
				indexP = left(indexP)
			case pr.Y < ymin:
				indexP = left(indexP)
				indexQ = left(indexQ)
			case ql.X < xmin:
				indexP = left(indexQ)
				indexQ = left(indexQ)
			case pr.X < xmin:
				indexP = right(indexP)
				indexQ = left(indexQ)
			default:
				indexQ = right(indexP)
				indexP = left(indexP)
			}

		default: // q has two children
			ql := t.get(left(indexQ))
			pr := t.get(right(indexP))
			pl := t.get(left(indexP))
			switch {
			case pr.X >= xmin && pr.Y >= ymin:
				indexQ = right(indexP)
				indexP = left(indexP)

			case pr.X < xmin:
				switch {
				case ql.X < xmin:
					indexP = left(indexQ)
					indexQ = right(indexQ)
				case ql.Y < ymin:
					indexP = right(indexP)
					indexQ = right(indexQ)
				default:
					indexP = right(indexP)
					indexQ = left(indexQ)
				}

			default: // pr.X >= xmin AND pr.Y < ymin
				if pl.Y < ymin {
					indexP = left(indexQ)
					indexQ = right(indexQ)
				} else {
					indexP = left(indexP)
					if ql.Y >= ymin {
						indexQ = left(indexQ)
					} else {
						indexQ = right(indexQ)
					}
				}
			}
		}
	}

	best.consider(t.get(indexP), xmin, ymin)
	best.consider(t.get(indexQ), xmin, ymin)

	return best.point, best.found
}
