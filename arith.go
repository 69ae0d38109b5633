package pstree

import "math/bits"

// This file implements C3: pure, stateless arithmetic on 1-based indices
// into the implicit complete binary tree. Index 1 is the root; index i
// has left child 2i, right child 2i+1, parent i/2 (integer division). An
// index is a leaf iff its left child falls outside the active size n.
// Grounded on the free functions at the top of InPlacePST.cpp
// (indexOfParent, indexOfLeftChild, indexOfRightChild, level,
// isLeftChild) and numberOfChildren/isLeaf further down the same file.

// parent returns the 1-based index of i's parent. Undefined for i == 1
// (the root has no parent); callers never invoke it there.
func parent(i int) int {
	return i / 2
}

// left returns the 1-based index of i's left child.
func left(i int) int {
	return 2 * i
}

// right returns the 1-based index of i's right child.
func right(i int) int {
	return 2*i + 1
}

// level returns floor(log2(i)), the depth of index i (root is level 0).
// Uses bits.Len instead of a floating-point log2, per spec.md §4.2's note
// that level may use a bit-length primitive.
func level(i int) int {
	return bits.Len(uint(i)) - 1
}

// isLeftChild reports whether i is its parent's left child, i.e. i is
// even. The root (i == 1) is neither child; callers never ask it that.
func isLeftChild(i int) bool {
	return i%2 == 0
}

// numChildren returns how many children index i has within a tree of
// active size n: 0 if i is a leaf, 1 if only the left child is present,
// 2 otherwise.
func numChildren(i, n int) int {
	if left(i) > n {
		return 0
	}
	if right(i) > n {
		return 1
	}

	return 2
}

// isLeaf reports whether index i has no children in a tree of active
// size n.
func isLeaf(i, n int) bool {
	return left(i) > n
}

// pow2 returns 2^x for x >= 0, used by the builder's level-size formulas
// (spec.md §4.3's k1/k2/k3).
func pow2(x int) int {
	return 1 << uint(x)
}
