package pstree

// PST is an in-place Priority Search Tree over a fixed set of 2-D points.
// It owns its backing slice exclusively: once Build returns, PST never
// hands out a reference into that slice, and its query methods neither
// mutate the receiver nor allocate on it (only Enumerate3Sided allocates,
// for its returned slice of results).
//
// tree is 1-indexed: tree[0] is an unused placeholder kept so every index
// computed by arith.go addresses tree directly, with no translation at
// call sites. tree[1..n] holds the n points, heap-ordered on Y and
// median-split on X per spec.md §3.
type PST[T Coord] struct {
	tree []Point[T]
	n    int
}

// Build constructs a PST over points. The input slice is copied, never
// aliased: callers may freely reuse or mutate points after Build returns.
// A nil or empty points yields a valid, empty PST (Len() == 0), not an
// error. The only failure mode is an invalid BuildOption.
func Build[T Coord](points []Point[T], opts ...BuildOption) (*PST[T], error) {
	cfg, err := resolveBuildConfig(opts)
	if err != nil {
		return nil, err
	}

	n := len(points)
	capHint := cfg.capacityHint
	if capHint < n {
		capHint = n
	}

	tree := make([]Point[T], n+1, capHint+1)
	copy(tree[1:], points)

	build(tree, n)

	return &PST[T]{tree: tree, n: n}, nil
}

// Len returns the number of points in the tree.
func (t *PST[T]) Len() int {
	return t.n
}

// At returns the i-th point (0-based) in the tree's current internal
// layout and reports whether i was in range. The layout order is an
// implementation detail of the PST invariants (spec.md §3), not input
// order; At exists for inspection and testing, not as a stable iteration
// order over the original input.
func (t *PST[T]) At(i int) (Point[T], bool) {
	if i < 0 || i >= t.n {
		var zero Point[T]
		return zero, false
	}

	return t.tree[i+1], true
}

// get returns the point at 1-based index i. Callers only ever pass
// indices already known to be in [1, t.n] (guarded by isLeaf/numChildren
// checks before descending), so this performs no bounds check of its own.
func (t *PST[T]) get(i int) Point[T] {
	return t.tree[i]
}
