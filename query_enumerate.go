package pstree

import "math"

// Enumerate3Sided reports every point in the slab
// {xmin <= X <= xmax, Y >= ymin}, output-sensitive: O(log N + k) where k
// is the number of points reported. Returns ErrInvalidRange if
// xmin > xmax.
//
// Algorithm: four cursors (p, p', q, q') with liveness flags (L, L', R,
// R'). p walks the left boundary from outside the slab (X < xmin); p'
// walks inside the slab from the left; q walks the right boundary from
// outside (X > xmax); q' walks inside the slab from the right. At each
// outer iteration the live cursor at the shallowest level is advanced.
// Whenever an entire subtree is established to be in-slab on X,
// explore(node, ymin) walks it (without recursion) reporting every point
// with Y >= ymin and pruning any subtree whose root already fails
// Y >= ymin (sound by the heap-on-Y invariant). Transcribed case-by-case
// from enumerate3Sided/explore in cpp/InPlacePST.cpp.
//
// spec.md §9 flags that the reference's "pick the live cursor at the
// shallowest level" selection is dead code (minLevel is initialized to -1
// and never updated by the buggy if/else-if chain, so only L's branch
// ever fires unless L is not live). This implementation instead compares
// the four candidate levels directly — see selectCursor below — which is
// the behavior the reference's comments describe and the query-law
// property tests in §8 require.
//
// Time: O(log N + k). Memory: O(k) for the returned slice.
func (t *PST[T]) Enumerate3Sided(xmin, xmax, ymin T) ([]Point[T], error) {
	if xmin > xmax {
		return nil, ErrInvalidRange
	}
	if t.n == 0 {
		return []Point[T]{}, nil
	}

	st := &enumState[T]{indexP: 1, indexPp: 1, indexQ: 1, indexQp: 1}
	root := t.get(1)
	switch {
	case root.X < xmin:
		st.l = true
	case root.X <= xmax:
		st.lp = true
	default:
		st.r = true
	}

	for st.l || st.lp || st.r || st.rp {
		switch selectCursor(st, level(st.indexP), level(st.indexPp), level(st.indexQ), level(st.indexQp)) {
		case cursorP:
			t.enumerateLeft(st, xmin, xmax, ymin)
		case cursorPp:
			t.enumerateLeftIn(st, xmin, xmax, ymin)
		case cursorQ:
			t.enumerateRight(st, xmin, xmax, ymin)
		default:
			t.enumerateRightIn(st, xmin, xmax, ymin)
		}
	}

	if st.points == nil {
		return []Point[T]{}, nil
	}

	return st.points, nil
}

// enumState holds the four cursors, their liveness flags, and the output
// accumulated so far. It exists as its own type purely to avoid an
// eight-variable parameter list threaded through four mutually recursive
// steps; every field is otherwise exactly the local variable of the same
// name in the reference's enumerate3Sided.
type enumState[T Coord] struct {
	indexP, indexPp, indexQ, indexQp int
	l, lp, r, rp                     bool
	points                           []Point[T]
}

// cursor identifies which of the four per-iteration routines runs next.
type cursor int

const (
	cursorP cursor = iota
	cursorPp
	cursorQ
	cursorQp
)

// selectCursor picks the live cursor at the shallowest level, breaking
// ties in the order P, P', Q, Q' (the order the reference's case table
// tests them in).
func selectCursor[T Coord](st *enumState[T], levelP, levelPp, levelQ, levelQp int) cursor {
	minLevel := math.MaxInt
	if st.l && levelP < minLevel {
		minLevel = levelP
	}
	if st.lp && levelPp < minLevel {
		minLevel = levelPp
	}
	if st.r && levelQ < minLevel {
		minLevel = levelQ
	}
	if st.rp && levelQp < minLevel {
		minLevel = levelQp
	}

	switch {
	case st.l && levelP == minLevel:
		return cursorP
	case st.lp && levelPp == minLevel:
		return cursorPp
	case st.r && levelQ == minLevel:
		return cursorQ
	default:
		return cursorQp
	}
}

// explore walks the subtree rooted at indexP without recursion, reporting
// every point with Y >= ymin into st.points, and pruning any subtree
// whose root already fails Y >= ymin (sound by the max-heap-on-Y
// invariant: no descendant can have a larger Y). Ascend-from-child state
// machine with three states: 0 = just arrived, try descending left;
// 1 = left side exhausted, try descending right; 2 = both sides
// exhausted, ascend to parent. Transcribed from explore in
// cpp/InPlacePST.cpp.
func (t *PST[T]) explore(indexP int, ymin T, st *enumState[T]) {
	p := t.get(indexP)
	if p.Y < ymin {
		return
	}

	indexC := indexP
	state := 0
	for indexC != indexP || state != 2 {
		current := t.get(indexC)
		switch state {
		case 0:
			st.points = append(st.points, current)
			indexCl := left(indexC)
			if numChildren(indexC, t.n) > 0 && t.get(indexCl).Y >= ymin {
				indexC = indexCl
			} else {
				state = 1
			}
		case 1:
			indexCr := right(indexC)
			if numChildren(indexC, t.n) == 2 && t.get(indexCr).Y >= ymin {
				indexC = indexCr
				state = 0
			} else {
				state = 2
			}
		default: // state == 2
			if isLeftChild(indexC) {
				state = 1
			}
			indexC = parent(indexC)
		}
	}
}

// enumerateLeft advances cursor p, which walks the left boundary from
// outside the slab (X < xmin). Transcribed from EnumerateLeft(p).
func (t *PST[T]) enumerateLeft(st *enumState[T], xmin, xmax, ymin T) {
	indexPl := left(st.indexP)
	indexPr := right(st.indexP)

	switch {
	case isLeaf(st.indexP, t.n):
		st.l = false

	case numChildren(st.indexP, t.n) == 1:
		pl := t.get(indexPl)
		switch {
		case xmin <= pl.X && pl.X <= xmax:
			t.mergeIntoSlabFromLeft(st, ymin)
			st.indexPp = indexPl
			st.lp = true
			st.l = false
		case pl.X < xmin:
			st.indexP = indexPl
		default:
			st.indexQ = indexPl
			st.r = true
			st.l = false
		}

	default: // p has two children
		pl := t.get(indexPl)
		pr := t.get(indexPr)
		switch {
		case pl.X < xmin:
			switch {
			case pr.X < xmin:
				st.indexP = indexPr
			case pr.X <= xmax:
				t.mergeIntoSlabFromLeft(st, ymin)
				st.indexPp = indexPr
				st.indexP = indexPl
				st.lp = true
			default:
				st.indexQ = indexPr
				st.indexP = indexPl
				st.r = true
			}

		case pl.X <= xmax:
			if pr.X > xmax {
				st.indexQ = indexPr
				st.indexPp = indexPl
				st.l = false
				st.lp = true
				st.r = true
			} else {
				t.mergeBothIntoSlab(st, indexPl, indexPr, ymin)
				st.indexPp = indexPl
				st.l = false
			}

		default: // pl must be right of the query region
			st.indexQ = indexPl
			st.l = false
			st.r = true
		}
	}
}

// mergeIntoSlabFromLeft is the "If there are points p' and q'... / If
// there is a point p'..." decision used when EnumerateLeft/EnumerateRight
// discover a new in-slab child and must fold it in against whatever
// in-slab candidate is already pending on the opposite side. Transcribed
// from the repeated three-way if/else-if/else blocks in EnumerateLeft and
// EnumerateRight (the "p' becomes q'" / "q' becomes p'" half, where the
// new child takes over as p' and any existing p' is explored when a q' is
// also pending, or otherwise handed over to become q').
func (t *PST[T]) mergeIntoSlabFromLeft(st *enumState[T], ymin T) {
	switch {
	case st.lp && st.rp:
		t.explore(st.indexPp, ymin, st)
	case st.lp:
		st.indexQp = st.indexPp
		st.rp = true
	}
}

// mergeBothIntoSlab is the richer merge used when both children of the
// current node fall inside the slab simultaneously (EnumerateLeft CASE
// 3B(ii); EnumerateRight uses mergeBothIntoSlabRight): the left child becomes the new
// p', and the right child (already known in-slab) must itself be
// reconciled against whatever p'/q' state already existed.
func (t *PST[T]) mergeBothIntoSlab(st *enumState[T], indexLeft, indexRight int, ymin T) {
	switch {
	case st.rp && st.lp:
		t.explore(st.indexPp, ymin, st)
		t.explore(indexRight, ymin, st)
	case st.lp:
		t.explore(indexRight, ymin, st)
		st.indexQp = st.indexPp
		st.rp = true
	case st.rp:
		t.explore(indexRight, ymin, st)
		st.lp = true
	default:
		st.indexQp = indexRight
		st.lp = true
		st.rp = true
	}
}

// enumerateLeftIn advances cursor p', which walks inside the slab from
// the left. Transcribed from EnumerateLeftIn(p').
func (t *PST[T]) enumerateLeftIn(st *enumState[T], xmin, xmax, ymin T) {
	indexPpl := left(st.indexPp)
	indexPpr := right(st.indexPp)
	pp := t.get(st.indexPp)
	if pp.Y >= ymin {
		st.points = append(st.points, pp)
	}

	switch {
	case isLeaf(st.indexPp, t.n):
		st.lp = false

	case numChildren(st.indexPp, t.n) == 1:
		ppl := t.get(indexPpl)
		switch {
		case xmin <= ppl.X && ppl.X <= xmax:
			st.indexPp = indexPpl
		case ppl.X < xmin:
			st.indexP = indexPpl
			st.lp = false
			st.l = true
		default:
			st.indexQ = indexPpl
			st.r = true
			st.lp = false
		}

	default: // p' has two children
		ppl := t.get(indexPpl)
		ppr := t.get(indexPpr)
		switch {
		case ppl.X < xmin:
			switch {
			case ppr.X < xmin:
				st.indexP = indexPpr
				st.l = true
				st.lp = false
			case ppr.X <= xmax:
				st.indexP = indexPpl
				st.indexPp = indexPpr
				st.l = true
			default:
				st.indexQ = indexPpr
				st.indexP = indexPpl
				st.r = true
				st.l = true
				st.lp = false
			}

		case ppl.X <= xmax:
			if ppr.X > xmax {
				st.indexQ = indexPpr
				st.indexPp = indexPpl
				st.r = true
			} else if st.rp {
				t.explore(indexPpr, ymin, st)
				st.indexPp = indexPpl
			} else {
				st.indexQp = indexPpr
				st.indexPp = indexPpl
				st.rp = true
			}

		default: // ppl must be right of the query region
			st.indexQ = indexPpl
			st.lp = false
			st.r = true
		}
	}
}

// enumerateRight advances cursor q, which walks the right boundary from
// outside the slab (X > xmax). Transcribed from EnumerateRight(q).
func (t *PST[T]) enumerateRight(st *enumState[T], xmin, xmax, ymin T) {
	indexQl := left(st.indexQ)
	indexQr := right(st.indexQ)

	switch {
	case isLeaf(st.indexQ, t.n):
		st.r = false

	case numChildren(st.indexQ, t.n) == 1:
		ql := t.get(indexQl)
		switch {
		case xmin <= ql.X && ql.X <= xmax:
			t.mergeIntoSlabFromRight(st, ymin)
			st.indexQp = indexQl
			st.rp = true
			st.r = false
		case ql.X < xmin:
			st.indexP = indexQl
			st.r = false
			st.l = true
		default:
			st.indexQ = indexQl
		}

	default: // q has two children
		ql := t.get(indexQl)
		qr := t.get(indexQr)
		switch {
		case qr.X > xmax:
			switch {
			case ql.X > xmax:
				st.indexQ = indexQl
			case ql.X >= xmin:
				t.mergeIntoSlabFromRight(st, ymin)
				st.indexQp = indexQl
				st.indexQ = indexQr
				st.rp = true
			default:
				st.indexP = indexQl
				st.indexQ = indexQr
				st.l = true
			}

		case qr.X >= xmin:
			switch {
			case ql.X < xmin:
				st.indexQp = indexQr
				st.indexP = indexQl
				st.r = false
				st.rp = true
				st.l = true
			default:
				t.mergeBothIntoSlabRight(st, indexQl, indexQr, ymin)
				st.indexQp = indexQr
				st.r = false
			}

		default: // qr must be left of the query region
			st.indexP = indexQr
			st.l = true
			st.r = false
		}
	}
}

// mergeIntoSlabFromRight is the mirror of mergeIntoSlabFromLeft: used when EnumerateRight discovers a new in-slab child and
// must fold it in against whatever in-slab candidate is already pending
// on the left.
func (t *PST[T]) mergeIntoSlabFromRight(st *enumState[T], ymin T) {
	switch {
	case st.lp && st.rp:
		t.explore(st.indexQp, ymin, st)
	case st.rp:
		st.indexPp = st.indexQp
		st.lp = true
	}
}

// mergeBothIntoSlabRight mirrors mergeBothIntoSlab for EnumerateRight's
// CASE 3B(ii), where both children of q fall inside the slab.
func (t *PST[T]) mergeBothIntoSlabRight(st *enumState[T], indexLeft, indexRight int, ymin T) {
	switch {
	case st.rp && st.lp:
		t.explore(st.indexQp, ymin, st)
		t.explore(indexLeft, ymin, st)
	case st.rp:
		t.explore(indexLeft, ymin, st)
		st.indexPp = st.indexQp
		st.lp = true
	case st.lp:
		t.explore(indexLeft, ymin, st)
		st.rp = true
	default:
		st.indexPp = indexLeft
		st.lp = true
		st.rp = true
	}
}

// enumerateRightIn advances cursor q', which walks inside the slab from
// the right. Transcribed from EnumerateRightIn(q').
func (t *PST[T]) enumerateRightIn(st *enumState[T], xmin, xmax, ymin T) {
	indexQpl := left(st.indexQp)
	indexQpr := right(st.indexQp)
	qp := t.get(st.indexQp)
	if qp.Y >= ymin {
		st.points = append(st.points, qp)
	}

	switch {
	case isLeaf(st.indexQp, t.n):
		st.rp = false

	case numChildren(st.indexQp, t.n) == 1:
		qpl := t.get(indexQpl)
		switch {
		case xmin <= qpl.X && qpl.X <= xmax:
			st.indexQp = indexQpl
		case qpl.X < xmin:
			st.indexP = indexQpl
			st.rp = false
			st.l = true
		default:
			st.indexQ = indexQpl
			st.r = true
			st.rp = false
		}

	default: // q' has two children
		qpl := t.get(indexQpl)
		qpr := t.get(indexQpr)
		switch {
		case qpr.X > xmax:
			switch {
			case qpl.X > xmax:
				st.indexQ = indexQpl
				st.r = true
				st.rp = false
			case qpl.X >= xmin:
				st.indexQ = indexQpr
				st.indexQp = indexQpl
				st.r = true
			default:
				st.indexQ = indexQpr
				st.indexP = indexQpl
				st.r = true
				st.l = true
				st.rp = false
			}

		case qpr.X >= xmin:
			switch {
			case qpl.X < xmin:
				st.indexP = indexQpl
				st.indexQp = indexQpr
				st.l = true
			case st.lp:
				t.explore(indexQpl, ymin, st)
				st.indexQp = indexQpr
			default:
				st.indexQp = indexQpr
				st.indexPp = indexQpl
				st.lp = true
			}

		default: // qpr must be left of the query region
			st.indexP = indexQpr
			st.rp = false
			st.l = true
		}
	}
}
