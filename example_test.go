package pstree_test

import (
	"fmt"

	"github.com/gopst/pstree"
)

// ExampleBuild demonstrates building a tree and running the three
// point-returning queries against it.
func ExampleBuild() {
	points := []pstree.Point[int]{
		pstree.NewPoint(1, 1),
		pstree.NewPoint(2, 2),
		pstree.NewPoint(3, 3),
		pstree.NewPoint(4, 4),
		pstree.NewPoint(5, 5),
	}

	tr, err := pstree.Build(points)
	if err != nil {
		panic(err)
	}

	if p, ok := tr.LeftmostNE(3, 2); ok {
		fmt.Println(p)
	}
	if p, ok := tr.HighestNE(0, 0); ok {
		fmt.Println(p)
	}
	if p, ok, _ := tr.Highest3Sided(2, 4, 0); ok {
		fmt.Println(p)
	}

	// Output:
	// {3 3}
	// {5 5}
	// {4 4}
}

// ExamplePST_Enumerate3Sided demonstrates a three-sided range report.
func ExamplePST_Enumerate3Sided() {
	points := []pstree.Point[int]{
		pstree.NewPoint(1, 10),
		pstree.NewPoint(2, 9),
		pstree.NewPoint(3, 8),
		pstree.NewPoint(4, 7),
		pstree.NewPoint(5, 6),
	}

	tr, err := pstree.Build(points)
	if err != nil {
		panic(err)
	}

	got, err := tr.Enumerate3Sided(2, 4, 7)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(got))
	// Output:
	// 3
}
