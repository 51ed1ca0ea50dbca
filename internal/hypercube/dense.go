package hypercube

import (
	"fmt"
	"sync/atomic"
)

// denseCube is the array-backed storage cube: one flat row-major slice
// of elements. It is the usual leaf of a view chain.
//
// The fence counter implements the lightweight visibility convention:
// the relaxed Weak tier touches the slice directly, while GetAt/SetAt
// and the bulk paths bracket their access with one PreRead/PostWrite
// pair instead of per-element synchronization.
type denseCube[T Elem] struct {
	base[T]
	data  []T
	fence atomic.Uint32
}

// NewDense creates a zero-initialized dense cube with the given
// dimensions.
func NewDense[T Elem](dims ...*Dimension) (Cube[T], error) {
	sh, err := newShape(dims)
	if err != nil {
		return nil, err
	}
	d := &denseCube[T]{data: make([]T, sh.size)}
	d.init(d, sh, Flags{Contiguous: true, Aligned: true, OwnsData: true, Writeable: true})
	return d, nil
}

// FromSlice creates a dense cube holding a copy of data, which must
// match the product of the dimension lengths exactly.
func FromSlice[T Elem](data []T, dims ...*Dimension) (Cube[T], error) {
	sh, err := newShape(dims)
	if err != nil {
		return nil, err
	}
	if len(data) != sh.size {
		return nil, fmt.Errorf("dense: %d elements for size %d: %w", len(data), sh.size, ErrDimension)
	}
	d := &denseCube[T]{data: append([]T(nil), data...)}
	d.init(d, sh, Flags{Contiguous: true, Aligned: true, OwnsData: true, Writeable: true})
	return d, nil
}

// Zeros creates a dense cube with every element set to the zero value
// of T. It is NewDense under the name that pairs with Full.
func Zeros[T Elem](dims ...*Dimension) (Cube[T], error) {
	return NewDense[T](dims...)
}

// Full creates a dense cube with every element set to value.
func Full[T Elem](value T, dims ...*Dimension) (Cube[T], error) {
	c, err := NewDense[T](dims...)
	if err != nil {
		return nil, err
	}
	d := c.(*denseCube[T])
	for i := range d.data {
		d.data[i] = value
	}
	return d, nil
}

// GetAt returns the element at a flat offset.
func (d *denseCube[T]) GetAt(pos int) (T, error) {
	if pos < 0 || pos >= len(d.data) {
		var zero T
		return zero, fmt.Errorf("dense: get at %d of %d: %w", pos, len(d.data), ErrBounds)
	}
	d.PreRead()
	return d.data[pos], nil
}

// SetAt stores the element at a flat offset.
func (d *denseCube[T]) SetAt(pos int, value T) error {
	if pos < 0 || pos >= len(d.data) {
		return fmt.Errorf("dense: set at %d of %d: %w", pos, len(d.data), ErrBounds)
	}
	d.data[pos] = value
	d.PostWrite()
	return nil
}

// WeakGetAt reads without barrier or explicit bounds check.
func (d *denseCube[T]) WeakGetAt(pos int) T { return d.data[pos] }

// WeakSetAt writes without barrier or explicit bounds check.
func (d *denseCube[T]) WeakSetAt(pos int, value T) { d.data[pos] = value }

// ToFlattened copies a contiguous run out in a single copy.
func (d *denseCube[T]) ToFlattened(srcPos int, dst []T, dstPos, length int) error {
	if err := d.shape.checkRun(srcPos, length); err != nil {
		return err
	}
	if err := checkBuffer(dst, dstPos, length); err != nil {
		return err
	}
	d.PreRead()
	copy(dst[dstPos:dstPos+length], d.data[srcPos:srcPos+length])
	return nil
}

// FromFlattened copies a contiguous run in, in a single copy.
func (d *denseCube[T]) FromFlattened(src []T, srcPos, dstPos, length int) error {
	if err := d.shape.checkRun(dstPos, length); err != nil {
		return err
	}
	if err := checkBuffer(src, srcPos, length); err != nil {
		return err
	}
	copy(d.data[dstPos:dstPos+length], src[srcPos:srcPos+length])
	d.PostWrite()
	return nil
}

// PreRead is the read visibility barrier.
func (d *denseCube[T]) PreRead() { _ = d.fence.Load() }

// PostWrite is the write visibility barrier.
func (d *denseCube[T]) PostWrite() { d.fence.Add(1) }
