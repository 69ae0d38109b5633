package pstree

import (
	"math/rand"
	"sort"
	"testing"
)

func isSortedByX(tree []Point[int], begin, end int) bool {
	for i := begin; i < end; i++ {
		if tree[i].X > tree[i+1].X {
			return false
		}
	}

	return true
}

func TestHeapSortByX_Empty(t *testing.T) {
	tree := []Point[int]{{}}
	heapSortByX(tree, 1, 0) // begin > end: no-op
}

func TestHeapSortByX_Single(t *testing.T) {
	tree := []Point[int]{{}, NewPoint(5, 5)}
	heapSortByX(tree, 1, 1)
	if tree[1].X != 5 {
		t.Fatalf("single element mutated: got %v", tree[1])
	}
}

func TestHeapSortByX_Random(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(200) + 1
		tree := make([]Point[int], n+1)
		for i := 1; i <= n; i++ {
			tree[i] = NewPoint(r.Intn(1000), r.Intn(1000))
		}
		want := make([]int, n)
		for i := 1; i <= n; i++ {
			want[i-1] = tree[i].X
		}
		sort.Ints(want)

		heapSortByX(tree, 1, n)

		if !isSortedByX(tree, 1, n) {
			t.Fatalf("trial %d: not sorted: %v", trial, tree[1:])
		}
		for i := 1; i <= n; i++ {
			if tree[i].X != want[i-1] {
				t.Fatalf("trial %d: position %d has X=%d, want %d", trial, i, tree[i].X, want[i-1])
			}
		}
	}
}

func TestHeapSortByX_SubrangeOnly(t *testing.T) {
	tree := []Point[int]{
		{}, // index 0 unused
		NewPoint(100, 0),
		NewPoint(3, 0),
		NewPoint(1, 0),
		NewPoint(2, 0),
		NewPoint(200, 0),
	}
	heapSortByX(tree, 2, 4)

	if tree[1].X != 100 || tree[5].X != 200 {
		t.Fatalf("out-of-range elements were disturbed: %v", tree)
	}
	if !isSortedByX(tree, 2, 4) {
		t.Fatalf("subrange not sorted: %v", tree[2:5])
	}
}
