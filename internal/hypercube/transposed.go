package hypercube

// transposedView reverses the order of the wrapped cube's dimensions.
// A view multi-index (i0, ..., in-1) reads the wrapped element at
// (in-1, ..., i0).
type transposedView[T Elem] struct {
	viewBase[T]
	wStrides []int
}

// newTransposed builds the transposed view. Transposing a transposed
// view unwraps to the original cube, and transposing a rank-1 cube is
// the identity; both simplifications happen here so they cannot be
// bypassed.
func newTransposed[T Elem](src Cube[T]) Cube[T] {
	if t, ok := src.(*transposedView[T]); ok {
		return t.wrapped
	}
	if src.NDim() <= 1 {
		return src
	}
	srcDims := src.Dimensions()
	dims := make([]*Dimension, len(srcDims))
	for i, d := range srcDims {
		dims[len(dims)-1-i] = d
	}
	sh, err := newShape(dims)
	if err != nil {
		// src is a valid cube, so its reversed dimension list is too.
		panic(err)
	}
	v := &transposedView[T]{wStrides: wrappedStrides(src)}
	v.wrapped = src
	v.init(v, sh, viewFlags(src.Flags(), false))
	return v
}

// Transpose of a transposed view returns the wrapped cube directly.
func (t *transposedView[T]) Transpose() Cube[T] { return t.wrapped }

// WeakGetAt maps a view flat position by reversing the index tuple.
func (t *transposedView[T]) WeakGetAt(pos int) T {
	return t.wrapped.WeakGetAt(t.wrappedOffset(pos))
}

// WeakSetAt maps a view flat position by reversing the index tuple.
func (t *transposedView[T]) WeakSetAt(pos int, value T) {
	t.wrapped.WeakSetAt(t.wrappedOffset(pos), value)
}

func (t *transposedView[T]) wrappedOffset(pos int) int {
	n := t.NDim()
	vi := make([]int, n)
	_ = t.shape.indices(pos, vi)
	off := 0
	for k := 0; k < n; k++ {
		off += vi[k] * t.wStrides[n-1-k]
	}
	return off
}

// ToFlattened has no contiguous structure to exploit: consecutive view
// positions stride through the wrapped cube, so the generic per-element
// fallback is the bulk path.
func (t *transposedView[T]) ToFlattened(srcPos int, dst []T, dstPos, length int) error {
	return t.flattenFallback(srcPos, dst, dstPos, length)
}

// FromFlattened uses the generic per-element fallback for the same
// reason as ToFlattened.
func (t *transposedView[T]) FromFlattened(src []T, srcPos, dstPos, length int) error {
	return t.unflattenFallback(src, srcPos, dstPos, length)
}
