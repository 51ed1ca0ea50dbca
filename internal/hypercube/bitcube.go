package hypercube

import (
	"fmt"
	"sync/atomic"
)

// bitCube is the bitset-backed boolean storage cube: one bit per
// element, packed into words of 64. It trades per-element access cost
// for an 8x smaller footprint than a dense bool cube.
type bitCube struct {
	base[bool]
	bits  *BitSet
	fence atomic.Uint32
}

// NewBitCube creates a boolean cube backed by a bit set, all elements
// false.
func NewBitCube(dims ...*Dimension) (Cube[bool], error) {
	sh, err := newShape(dims)
	if err != nil {
		return nil, err
	}
	bits, err := NewBitSet(sh.size)
	if err != nil {
		return nil, err
	}
	b := &bitCube{bits: bits}
	b.init(b, sh, Flags{Contiguous: false, Aligned: true, OwnsData: true, Writeable: true})
	return b, nil
}

// GetAt returns the element at a flat offset.
func (b *bitCube) GetAt(pos int) (bool, error) {
	if pos < 0 || pos >= b.shape.size {
		return false, fmt.Errorf("bitcube: get at %d of %d: %w", pos, b.shape.size, ErrBounds)
	}
	b.PreRead()
	return b.bits.get(pos), nil
}

// SetAt stores the element at a flat offset.
func (b *bitCube) SetAt(pos int, value bool) error {
	if pos < 0 || pos >= b.shape.size {
		return fmt.Errorf("bitcube: set at %d of %d: %w", pos, b.shape.size, ErrBounds)
	}
	b.bits.set(pos, value)
	b.PostWrite()
	return nil
}

// WeakGetAt reads without barrier.
func (b *bitCube) WeakGetAt(pos int) bool { return b.bits.get(pos) }

// WeakSetAt writes without barrier.
func (b *bitCube) WeakSetAt(pos int, value bool) { b.bits.set(pos, value) }

// ToFlattened unpacks a contiguous run of bits with one barrier pair.
func (b *bitCube) ToFlattened(srcPos int, dst []bool, dstPos, length int) error {
	if err := b.shape.checkRun(srcPos, length); err != nil {
		return err
	}
	if err := checkBuffer(dst, dstPos, length); err != nil {
		return err
	}
	b.PreRead()
	for i := 0; i < length; i++ {
		dst[dstPos+i] = b.bits.get(srcPos + i)
	}
	return nil
}

// FromFlattened packs a contiguous run of bits with one barrier pair.
func (b *bitCube) FromFlattened(src []bool, srcPos, dstPos, length int) error {
	if err := b.shape.checkRun(dstPos, length); err != nil {
		return err
	}
	if err := checkBuffer(src, srcPos, length); err != nil {
		return err
	}
	for i := 0; i < length; i++ {
		b.bits.set(dstPos+i, src[srcPos+i])
	}
	b.PostWrite()
	return nil
}

// PreRead is the read visibility barrier.
func (b *bitCube) PreRead() { _ = b.fence.Load() }

// PostWrite is the write visibility barrier.
func (b *bitCube) PostWrite() { b.fence.Add(1) }
