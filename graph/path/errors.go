package path

import "errors"

var (
	// ErrUnreachable is returned by a search when the open set is
	// exhausted before the target is reached: the graph holds no
	// path from the source to the target.
	ErrUnreachable = errors.New("path: target unreachable from source")

	// ErrBrokenChain is returned by an extractor when the predecessor
	// map does not lead from the target back to the source, which
	// means it was not produced by a successful search between them.
	ErrBrokenChain = errors.New("path: malformed predecessor chain")

	// ErrNegativeWeight is returned by a search that relaxes an arc
	// whose weight is negative or NaN.
	ErrNegativeWeight = errors.New("path: negative edge weight")
)
