package pstree

import "testing"

func TestBestLeftmost_Consider(t *testing.T) {
	var b bestLeftmost[int]

	b.consider(NewPoint(1, 1), 5, 5) // outside NE quadrant, ignored
	if b.found {
		t.Fatalf("consider should reject points outside the NE quadrant")
	}

	b.consider(NewPoint(10, 10), 5, 5)
	if !b.found || b.point.X != 10 {
		t.Fatalf("consider should accept the first in-quadrant candidate: %v", b)
	}

	b.consider(NewPoint(7, 20), 5, 5) // smaller X, still in quadrant
	if b.point.X != 7 {
		t.Fatalf("consider should replace on strictly smaller X: got %v", b.point)
	}

	b.consider(NewPoint(8, 20), 5, 5) // larger X, must not replace
	if b.point.X != 7 {
		t.Fatalf("consider should not replace on larger X: got %v", b.point)
	}
}

func TestBestHighest_ConsiderVariants(t *testing.T) {
	var b bestHighest[int]

	b.considerNE(NewPoint(1, 1), 5, 5) // outside NE quadrant
	if b.found {
		t.Fatalf("considerNE should reject points outside the NE quadrant")
	}

	b.considerNE(NewPoint(10, 10), 5, 5)
	if !b.found || b.point.Y != 10 {
		t.Fatalf("considerNE should accept the candidate: %v", b)
	}

	b.considerNE(NewPoint(10, 5), 5, 5) // smaller Y, must not replace
	if b.point.Y != 10 {
		t.Fatalf("considerNE should not replace on smaller Y: got %v", b.point)
	}

	var b2 bestHighest[int]
	b2.considerSlab(NewPoint(100, 100), 0, 10, 0) // X outside [xmin,xmax]
	if b2.found {
		t.Fatalf("considerSlab should reject points outside the slab")
	}
	b2.considerSlab(NewPoint(5, 5), 0, 10, 0)
	if !b2.found || b2.point.X != 5 {
		t.Fatalf("considerSlab should accept an in-slab candidate: %v", b2)
	}

	var b3 bestHighest[int]
	b3.considerIfYGE(NewPoint(1, -5), 0) // Y below ymin
	if b3.found {
		t.Fatalf("considerIfYGE should reject Y < ymin")
	}
	b3.considerIfYGE(NewPoint(1, 5), 0)
	if !b3.found || b3.point.Y != 5 {
		t.Fatalf("considerIfYGE should accept Y >= ymin: %v", b3)
	}
}

func TestInNEQuadrantAndInSlab(t *testing.T) {
	if !inNEQuadrant(NewPoint(5, 5), 5, 5) {
		t.Fatalf("boundary point should be in the NE quadrant (inclusive)")
	}
	if inNEQuadrant(NewPoint(4, 5), 5, 5) {
		t.Fatalf("X below xmin should not be in the NE quadrant")
	}

	if !inSlab(NewPoint(5, 10), 0, 10, 0) {
		t.Fatalf("interior point should be in the slab")
	}
	if inSlab(NewPoint(11, 10), 0, 10, 0) {
		t.Fatalf("X beyond xmax should not be in the slab")
	}
}
