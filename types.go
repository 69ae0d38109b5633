package pstree

import "cmp"

// Coord is the set of coordinate types a PST can be built over: any type
// with a total order, so X and Y comparisons (and the heap-sort in
// sort.go) reduce to plain <, <=, >, >=. Both integer and floating-point
// coordinate types satisfy this; the structure performs no rounding or
// tolerance handling of its own (spec requires exact, totally ordered
// coordinates).
type Coord interface {
	cmp.Ordered
}

// buildConfig holds the unexported state assembled from BuildOption
// values passed to Build. Its only current field is a capacity hint, but
// it exists as its own type (rather than individual Build parameters) so
// new options can be added without breaking Build's signature.
type buildConfig struct {
	capacityHint int
}

// BuildOption configures Build. See WithCapacityHint.
type BuildOption func(*buildConfig)

// WithCapacityHint sets the capacity of the PST's backing slice to hold at
// least n points. Build always allocates room for len(points), so a hint
// at or below that has no effect; a larger hint only reserves spare
// capacity. A negative hint is rejected by Build with ErrNegativeSize.
func WithCapacityHint(n int) BuildOption {
	return func(cfg *buildConfig) {
		cfg.capacityHint = n
	}
}

// resolveBuildConfig applies opts over the zero-value buildConfig and
// validates the result.
func resolveBuildConfig(opts []BuildOption) (buildConfig, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacityHint < 0 {
		return buildConfig{}, ErrNegativeSize
	}

	return cfg, nil
}
