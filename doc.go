// Package pstree implements an in-place Priority Search Tree (PST) over a
// static set of 2-D points, answering three classes of orthogonal range
// queries in logarithmic or output-sensitive time using O(1) auxiliary
// memory beyond the input slice.
//
// What & Why
//
//   - What is a PST?
//     A complete binary tree, stored implicitly in a single array, that is
//     simultaneously a max-heap on the Y coordinate and a binary-search
//     ordering on the X coordinate at every level. De, Maheshwari, Nandy
//     and Smid (2011) showed it can be built and queried in place, with no
//     auxiliary array beyond the points themselves.
//
//   - Why it matters:
//
//   - Range reporting: "every point north-east of (x0, y0)", "the highest
//     point in this vertical strip" are answered in O(log N) or
//     O(log N + k) without the memory overhead of a pointer-based tree.
//
//   - It is a building block for planar range-searching and for
//     higher-dimensional structures that reduce to a sequence of PSTs.
//
// Queries Provided
//
//   - (*PST[T]).LeftmostNE(xmin, ymin T) (Point[T], bool)
//     Leftmost point with X >= xmin AND Y >= ymin.
//
//   - (*PST[T]).HighestNE(xmin, ymin T) (Point[T], bool)
//     Highest point with X >= xmin AND Y >= ymin.
//
//   - (*PST[T]).Highest3Sided(xmin, xmax, ymin T) (Point[T], bool, error)
//     Highest point with xmin <= X <= xmax AND Y >= ymin.
//
//   - (*PST[T]).Enumerate3Sided(xmin, xmax, ymin T) ([]Point[T], error)
//     Every point with xmin <= X <= xmax AND Y >= ymin, output-sensitive.
//
// Complexity
//
//   - Build: O(N log² N) time (one heap-sort of the tail per level),
//     O(1) extra memory beyond the input.
//   - LeftmostNE, HighestNE, Highest3Sided: O(log N) time, O(1) memory.
//   - Enumerate3Sided: O(log N + k) time where k is the number of points
//     reported, O(k) memory for the returned slice.
//
// Error Conditions
//
//	Highest3Sided and Enumerate3Sided return ErrInvalidRange when xmin > xmax.
//	Build returns ErrNegativeSize if WithCapacityHint is given a negative
//	hint. Build never fails on an empty or nil input slice: the resulting
//	PST simply has Len() == 0.
//
// The tree is built once, over a known point set, and is read-only for the
// rest of its lifetime: there is no insertion, deletion, or mutation after
// Build returns, so query methods may be called concurrently from many
// goroutines without synchronization.
package pstree
