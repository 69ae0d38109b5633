package pstree

// This file implements C1: an in-place, comparison-based sort of a
// subrange of the tree array by X coordinate. It is a classical max-heap
// sort — build a max-heap bottom-up over the subrange, then repeatedly
// swap the max to the tail and shrink the heap — grounded directly on
// cpp/sort/heap_sort.cpp's downHeap/buildHeap/heap_sort shape. Points
// with equal X are ordered by Y (see xLess); the sort is unstable, so
// identical points keep no particular relative order.
//
// begin and end are 1-based, inclusive indices into tree, matching the
// tree's own 1-based addressing (arith.go) so callers never have to
// translate between two index conventions.

// heapSortByX reorders tree[begin..end] (inclusive) to be non-decreasing
// by X, in place, using O(1) extra memory. O((end-begin) log(end-begin))
// comparisons.
func heapSortByX[T Coord](tree []Point[T], begin, end int) {
	if end <= begin {
		return
	}
	buildMaxHeapByX(tree, begin, end)
	for end > begin {
		tree[begin], tree[end] = tree[end], tree[begin]
		end--
		downHeapByX(tree, 0, begin, end)
	}
}

// buildMaxHeapByX arranges tree[begin..end] into a max-heap on X,
// starting from the rightmost lowest-level internal node and working
// back to the root (bottom-up heap construction).
func buildMaxHeapByX[T Coord](tree []Point[T], begin, end int) {
	n := 1 + end - begin
	for v := n/2 - 1; v >= 0; v-- {
		downHeapByX(tree, v, begin, end)
	}
}

// downHeapByX restores the max-heap property on X at offset v (0-based,
// relative to begin) by repeatedly swapping with the larger child until
// the heap property holds or a leaf is reached.
func downHeapByX[T Coord](tree []Point[T], v, begin, end int) {
	w := 2*v + 1
	for begin+w <= end {
		if begin+w+1 <= end && xLess(tree[begin+w], tree[begin+w+1]) {
			w++
		}
		if !xLess(tree[begin+v], tree[begin+w]) {
			return
		}
		tree[begin+v], tree[begin+w] = tree[begin+w], tree[begin+v]
		v = w
		w = 2*v + 1
	}
}
