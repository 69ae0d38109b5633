package pstree

import "errors"

// Sentinel errors returned by pstree. Every message is prefixed with
// "pstree: " for consistent grepping; callers should match with errors.Is,
// never by string comparison.
var (
	// ErrInvalidRange is returned by Highest3Sided and Enumerate3Sided
	// when xmin > xmax. The structure does not define a three-sided query
	// over an empty range; rejecting it is the caller's responsibility to
	// handle, not the tree's to guess at.
	ErrInvalidRange = errors.New("pstree: xmin must be <= xmax")

	// ErrNegativeSize is returned by Build when WithCapacityHint is given
	// a negative hint.
	ErrNegativeSize = errors.New("pstree: capacity hint must be >= 0")
)
