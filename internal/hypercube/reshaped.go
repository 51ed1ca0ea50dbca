package hypercube

import "fmt"

// reshapedView relabels the wrapped cube's flat element sequence under a
// new dimension list without copying. Flat order is untouched, so every
// flat and bulk operation passes straight through.
type reshapedView[T Elem] struct {
	viewBase[T]
}

// newReshaped validates that the new dimensions multiply out to exactly
// the wrapped size.
func newReshaped[T Elem](src Cube[T], dims []*Dimension) (Cube[T], error) {
	sh, err := newShape(dims)
	if err != nil {
		return nil, err
	}
	if sh.size != src.Size() {
		return nil, fmt.Errorf("reshape: %v has %d elements, cube has %d: %w",
			sh.dims, sh.size, src.Size(), ErrDimension)
	}
	v := &reshapedView[T]{}
	v.wrapped = src
	v.init(v, sh, viewFlags(src.Flags(), true))
	return v, nil
}

// WeakGetAt passes straight through: reshape does not alter flat order.
func (v *reshapedView[T]) WeakGetAt(pos int) T { return v.wrapped.WeakGetAt(pos) }

// WeakSetAt passes straight through.
func (v *reshapedView[T]) WeakSetAt(pos int, value T) { v.wrapped.WeakSetAt(pos, value) }

// ToFlattened delegates the run unchanged.
func (v *reshapedView[T]) ToFlattened(srcPos int, dst []T, dstPos, length int) error {
	return v.wrapped.ToFlattened(srcPos, dst, dstPos, length)
}

// FromFlattened delegates the run unchanged.
func (v *reshapedView[T]) FromFlattened(src []T, srcPos, dstPos, length int) error {
	return v.wrapped.FromFlattened(src, srcPos, dstPos, length)
}
