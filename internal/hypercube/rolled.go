package hypercube

import "fmt"

// axisRolledView applies an independent cyclic shift to each axis of the
// wrapped cube. Reading view index i on an axis rolled by shift s maps
// to wrapped index (i - s + n) % n; shifts are normalized into [0, n) at
// construction.
type axisRolledView[T Elem] struct {
	viewBase[T]
	shifts []int // normalized, one per axis
}

// newAxisRolled validates the roll list (one per leading axis,
// zero-valued rolls skip their axis) and normalizes shifts. When every
// normalized shift is zero the roll is the identity and src is returned
// unchanged.
func newAxisRolled[T Elem](src Cube[T], rolls []Roll) (Cube[T], error) {
	rank := src.NDim()
	if len(rolls) > rank {
		return nil, fmt.Errorf("roll: %d rolls for rank %d: %w", len(rolls), rank, ErrDimension)
	}
	srcDims := src.Dimensions()
	shifts := make([]int, rank)
	identity := true
	for w, r := range rolls {
		if r.dim == nil {
			continue
		}
		if !r.dim.Equals(srcDims[w]) {
			return nil, fmt.Errorf("roll: roll on %v does not match axis %d (%v): %w",
				r.dim, w, srcDims[w], ErrDimension)
		}
		shifts[w] = normalizeShift(r.shift, srcDims[w].Length())
		if shifts[w] != 0 {
			identity = false
		}
	}
	if identity {
		return src, nil
	}
	sh, err := newShape(srcDims)
	if err != nil {
		return nil, err
	}
	v := &axisRolledView[T]{shifts: shifts}
	v.wrapped = src
	v.init(v, sh, viewFlags(src.Flags(), false))
	return v, nil
}

// Roll on an already-rolled view combines shifts over the original
// wrapped cube instead of nesting a second wrapper; a combination that
// cancels out unwraps entirely.
func (v *axisRolledView[T]) Roll(rolls ...Roll) (Cube[T], error) {
	rank := v.NDim()
	if len(rolls) > rank {
		return nil, fmt.Errorf("roll: %d rolls for rank %d: %w", len(rolls), rank, ErrDimension)
	}
	dims := v.shape.dims
	combined := make([]Roll, rank)
	for w := 0; w < rank; w++ {
		combined[w] = Roll{dim: dims[w], shift: v.shifts[w]}
	}
	for w, r := range rolls {
		if r.dim == nil {
			continue
		}
		if !r.dim.Equals(dims[w]) {
			return nil, fmt.Errorf("roll: roll on %v does not match axis %d (%v): %w",
				r.dim, w, dims[w], ErrDimension)
		}
		combined[w].shift += r.shift
	}
	return newAxisRolled(v.wrapped, combined)
}

// wrappedOffset maps a view multi-index to the wrapped flat offset.
// The shape is unchanged by rolling, so the view's own strides apply.
func (v *axisRolledView[T]) wrappedOffset(vi []int) int {
	off := 0
	for k, idx := range vi {
		n := v.shape.dims[k].Length()
		off += ((idx + n - v.shifts[k]) % n) * v.shape.strides[k]
	}
	return off
}

// WeakGetAt maps a view flat position through the per-axis shifts.
func (v *axisRolledView[T]) WeakGetAt(pos int) T {
	vi := make([]int, v.NDim())
	_ = v.shape.indices(pos, vi)
	return v.wrapped.WeakGetAt(v.wrappedOffset(vi))
}

// WeakSetAt maps a view flat position through the per-axis shifts.
func (v *axisRolledView[T]) WeakSetAt(pos int, value T) {
	vi := make([]int, v.NDim())
	_ = v.shape.indices(pos, vi)
	v.wrapped.WeakSetAt(v.wrappedOffset(vi), value)
}

// chunkAt bounds a contiguous chunk at view position p: contiguity in
// the wrapped cube holds while only the last axis advances and neither
// the view row nor the rolled wrapped row wraps around.
func (v *axisRolledView[T]) chunkAt(p, remaining int, vi []int) (wpos, n int) {
	_ = v.shape.indices(p, vi)
	wpos = v.wrappedOffset(vi)
	last := v.NDim() - 1
	ll := v.shape.dims[last].Length()
	wlast := (vi[last] + ll - v.shifts[last]) % ll
	n = ll - vi[last]
	if m := ll - wlast; m < n {
		n = m
	}
	if remaining < n {
		n = remaining
	}
	return wpos, n
}

// ToFlattened copies in chunks along the last axis, splitting at the
// roll's wrap boundary.
func (v *axisRolledView[T]) ToFlattened(srcPos int, dst []T, dstPos, length int) error {
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
func (v *axisRolledView[T]) FromFlattened(src []T, srcPos, dstPos, length int) error {
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
