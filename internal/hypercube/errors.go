package hypercube

import "errors"

// Sentinel errors for the cube model. Callers match with errors.Is;
// implementation code wraps them with fmt.Errorf("...: %w", Err...) for
// context. All failures are synchronous and non-retryable: an operation
// either fully succeeds or fails without mutating state.
var (
	// ErrDimension indicates that an accessor, roll or reshape argument
	// does not match the target cube's rank or dimensions. Always raised
	// at view-construction time, never deferred to first access.
	ErrDimension = errors.New("hypercube: dimension mismatch")

	// ErrBounds indicates an index, flat offset, sub-range or bulk-copy
	// range outside valid bounds, raised at the offending access.
	ErrBounds = errors.New("hypercube: index out of bounds")

	// ErrArgument indicates a nil or degenerate argument: zero-length
	// sub-index, negative length, all-coordinate slicing, and the like.
	ErrArgument = errors.New("hypercube: invalid argument")

	// ErrUnsupported indicates an operation that cannot be satisfied by
	// a particular storage kind.
	ErrUnsupported = errors.New("hypercube: unsupported operation")
)
