package hypercube

import "fmt"

// slicedAxis describes how one wrapped axis is constrained by a sliced
// view. A Coordinate accessor fixes the axis (view == -1) at a constant
// wrapped offset; otherwise the axis survives at the recorded view
// position, translated by the span start.
type slicedAxis struct {
	view  int // view axis position, -1 when coordinate-fixed
	fixed int // wrapped index when view == -1
	start int // span start, 0 when unconstrained
	end   int // span end, axis length when unconstrained
}

// slicedView restricts a wrapped cube by one accessor per leading axis.
// Coordinate accessors drop their axis from the view's shape; span
// accessors shrink theirs; unconstrained axes pass through with the
// original Dimension object.
type slicedView[T Elem] struct {
	viewBase[T]
	axes     []slicedAxis // one per wrapped axis
	wStrides []int
}

// newSliced validates the accessor list and derives the view shape and
// axis mapping. At least one axis must survive: fixing every axis with
// coordinates would produce a zero-rank view, which is an error.
func newSliced[T Elem](src Cube[T], accessors []Accessor) (Cube[T], error) {
	rank := src.NDim()
	if len(accessors) > rank {
		return nil, fmt.Errorf("slice: %d accessors for rank %d: %w", len(accessors), rank, ErrDimension)
	}
	srcDims := src.Dimensions()
	axes := make([]slicedAxis, rank)
	var dims []*Dimension
	for w := 0; w < rank; w++ {
		var acc Accessor
		if w < len(accessors) {
			acc = accessors[w]
		}
		switch a := acc.(type) {
		case nil:
			axes[w] = slicedAxis{view: len(dims), start: 0, end: srcDims[w].Length()}
			dims = append(dims, srcDims[w])
		case *Coordinate:
			if !a.Dimension().Equals(srcDims[w]) {
				return nil, fmt.Errorf("slice: coordinate on %v does not match axis %d (%v): %w",
					a.Dimension(), w, srcDims[w], ErrDimension)
			}
			if a.Value() < 0 || a.Value() >= srcDims[w].Length() {
				return nil, fmt.Errorf("slice: coordinate %d on axis %d of length %d: %w",
					a.Value(), w, srcDims[w].Length(), ErrBounds)
			}
			axes[w] = slicedAxis{view: -1, fixed: a.Value()}
		case *Span:
			if !a.Dimension().Equals(srcDims[w]) {
				return nil, fmt.Errorf("slice: span on %v does not match axis %d (%v): %w",
					a.Dimension(), w, srcDims[w], ErrDimension)
			}
			if a.End() > srcDims[w].Length() {
				return nil, fmt.Errorf("slice: span [%d,%d) on axis %d of length %d: %w",
					a.Start(), a.End(), w, srcDims[w].Length(), ErrBounds)
			}
			sub, err := srcDims[w].Subrange(a.Start(), a.End())
			if err != nil {
				return nil, err
			}
			axes[w] = slicedAxis{view: len(dims), start: a.Start(), end: a.End()}
			dims = append(dims, sub)
		default:
			return nil, fmt.Errorf("slice: unknown accessor %T: %w", acc, ErrArgument)
		}
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("slice: all axes coordinate-fixed, zero-rank view: %w", ErrArgument)
	}
	sh, err := newShape(dims)
	if err != nil {
		return nil, err
	}
	v := &slicedView[T]{axes: axes, wStrides: wrappedStrides(src)}
	v.wrapped = src

	// Contiguity survives only when no axis is truly constrained.
	full := true
	for w, ax := range axes {
		if ax.view < 0 || ax.start != 0 || ax.end != srcDims[w].Length() {
			full = false
			break
		}
	}
	v.init(v, sh, viewFlags(src.Flags(), full))
	return v, nil
}

// wrappedOffset maps a view multi-index to the wrapped flat offset.
func (v *slicedView[T]) wrappedOffset(vi []int) int {
	off := 0
	for w, ax := range v.axes {
		if ax.view < 0 {
			off += ax.fixed * v.wStrides[w]
		} else {
			off += (ax.start + vi[ax.view]) * v.wStrides[w]
		}
	}
	return off
}

// WeakGetAt maps a view flat position through the axis mapping.
func (v *slicedView[T]) WeakGetAt(pos int) T {
	vi := make([]int, v.NDim())
	_ = v.shape.indices(pos, vi)
	return v.wrapped.WeakGetAt(v.wrappedOffset(vi))
}

// WeakSetAt maps a view flat position through the axis mapping.
func (v *slicedView[T]) WeakSetAt(pos int, value T) {
	vi := make([]int, v.NDim())
	_ = v.shape.indices(pos, vi)
	v.wrapped.WeakSetAt(v.wrappedOffset(vi), value)
}

// chunkAt returns the wrapped offset of view position p and the longest
// run satisfiable by advancing only the last wrapped axis: bounded by
// the active span (or axis) end and by the remaining run length.
func (v *slicedView[T]) chunkAt(p, remaining int, vi []int) (wpos, n int) {
	_ = v.shape.indices(p, vi)
	wpos = v.wrappedOffset(vi)
	n = 1
	if ax := v.axes[len(v.axes)-1]; ax.view >= 0 {
		n = ax.end - (ax.start + vi[ax.view])
	}
	if remaining < n {
		n = remaining
	}
	return wpos, n
}

// ToFlattened walks the run in contiguous chunks, issuing one wrapped
// bulk call per chunk instead of one per element. When the trailing
// wrapped axis is unconstrained the whole run often copies in one call.
func (v *slicedView[T]) ToFlattened(srcPos int, dst []T, dstPos, length int) error {
	if err := v.shape.checkRun(srcPos, length); err != nil {
		return err
	}
	if err := checkBuffer(dst, dstPos, length); err != nil {
		return err
	}
	vi := make([]int, v.NDim())
	for copied := 0; copied < length; {
		wpos, n := v.chunkAt(srcPos+copied, length-copied, vi)
		if err := v.wrapped.ToFlattened(wpos, dst, dstPos+copied, n); err != nil {
			return err
		}
		copied += n
	}
	return nil
}

// FromFlattened is the chunked bulk write counterpart.
func (v *slicedView[T]) FromFlattened(src []T, srcPos, dstPos, length int) error {
	if err := v.shape.checkRun(dstPos, length); err != nil {
		return err
	}
	if err := checkBuffer(src, srcPos, length); err != nil {
		return err
	}
	vi := make([]int, v.NDim())
	for copied := 0; copied < length; {
		wpos, n := v.chunkAt(dstPos+copied, length-copied, vi)
		if err := v.wrapped.FromFlattened(src, srcPos+copied, wpos, n); err != nil {
			return err
		}
		copied += n
	}
	return nil
}
