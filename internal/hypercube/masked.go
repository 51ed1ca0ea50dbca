package hypercube

import "fmt"

// Mask is a boolean predicate over positions, used to build masked
// views. Sources are a plain bool slice, a BitSet, or a boolean cube.
type Mask interface {
	// Len returns the number of addressable predicate positions.
	Len() int
	// At returns the predicate at position i.
	At(i int) bool
}

type boolsMask []bool

// BoolsMask wraps a bool slice as a Mask.
func BoolsMask(bits []bool) Mask { return boolsMask(bits) }

func (m boolsMask) Len() int      { return len(m) }
func (m boolsMask) At(i int) bool { return m[i] }

type bitsetMask struct{ bits *BitSet }

// BitsetMask wraps a BitSet as a Mask.
func BitsetMask(bits *BitSet) Mask { return &bitsetMask{bits: bits} }

func (m *bitsetMask) Len() int      { return m.bits.Size() }
func (m *bitsetMask) At(i int) bool { return m.bits.get(i) }

// cubeMask wraps a boolean cube as a Mask over its flat order, keeping
// the cube so masked construction can compare full shapes.
type cubeMask struct{ cube Cube[bool] }

// CubeMask wraps a boolean cube as a Mask. A mask cube whose shape
// equals the masked cube's full shape selects individual elements
// (flattened result); a 1-D mask cube of first-axis length selects
// first-axis slices.
func CubeMask(cube Cube[bool]) Mask { return &cubeMask{cube: cube} }

func (m *cubeMask) Len() int { return m.cube.Size() }

func (m *cubeMask) At(i int) bool { return m.cube.WeakGetAt(i) }

// maskedView exposes the selected sub-sequence of a wrapped cube: either
// whole first-axis slices (rowSize = product of the remaining axes) or
// individual elements (rowSize = 1, flattened 1-D shape). sel is the
// index permutation computed once at construction.
type maskedView[T Elem] struct {
	viewBase[T]
	sel     []int // selected first-axis positions (or flat positions)
	rowSize int
}

// newMasked validates the mask against the source's first-axis length or
// full shape and builds the selection permutation.
func newMasked[T Elem](src Cube[T], m Mask) (Cube[T], error) {
	if m == nil {
		return nil, fmt.Errorf("mask: nil mask: %w", ErrArgument)
	}
	if cm, ok := m.(*cubeMask); ok {
		if sameExtents(cm.cube.Dimensions(), src.Dimensions()) && src.NDim() > 1 {
			return newMaskedElems(src, m)
		}
		if cm.cube.NDim() != 1 {
			return nil, fmt.Errorf("mask: cube mask shape %v against %v: %w",
				cm.cube.Dimensions(), src.Dimensions(), ErrDimension)
		}
		if src.NDim() == 1 {
			// For a 1-D source, first-axis and element selection coincide.
			if cm.cube.Size() != src.Len(0) {
				return nil, fmt.Errorf("mask: cube mask length %d against first axis %d: %w",
					cm.cube.Size(), src.Len(0), ErrDimension)
			}
			return newMaskedElems(src, m)
		}
	}
	if m.Len() != src.Len(0) {
		return nil, fmt.Errorf("mask: mask length %d against first axis %d: %w",
			m.Len(), src.Len(0), ErrDimension)
	}
	if c, ok := m.(*cubeMask); ok {
		c.cube.PreRead()
	}
	var sel []int
	for i := 0; i < m.Len(); i++ {
		if m.At(i) {
			sel = append(sel, i)
		}
	}
	srcDims := src.Dimensions()
	dims := make([]*Dimension, len(srcDims))
	dims[0] = Dim(len(sel))
	copy(dims[1:], srcDims[1:])
	sh, err := newShape(dims)
	if err != nil {
		return nil, err
	}
	v := &maskedView[T]{sel: sel, rowSize: rowSizeOf(src)}
	v.wrapped = src
	v.init(v, sh, viewFlags(src.Flags(), false))
	return v, nil
}

// newMaskedElems builds the element-granularity selection: a flattened
// 1-D view of every element whose mask bit is set, in flat order.
func newMaskedElems[T Elem](src Cube[T], m Mask) (Cube[T], error) {
	if m.Len() != src.Size() {
		return nil, fmt.Errorf("mask: element mask length %d against size %d: %w",
			m.Len(), src.Size(), ErrDimension)
	}
	if c, ok := m.(*cubeMask); ok {
		c.cube.PreRead()
	}
	var sel []int
	for i := 0; i < m.Len(); i++ {
		if m.At(i) {
			sel = append(sel, i)
		}
	}
	sh, err := newShape([]*Dimension{Dim(len(sel))})
	if err != nil {
		return nil, err
	}
	v := &maskedView[T]{sel: sel, rowSize: 1}
	v.wrapped = src
	v.init(v, sh, viewFlags(src.Flags(), false))
	return v, nil
}

// rowSizeOf returns the flat extent of one first-axis slice.
func rowSizeOf[T Elem](c Cube[T]) int {
	row := 1
	for k := 1; k < c.NDim(); k++ {
		row *= c.Len(k)
	}
	return row
}

// sameExtents compares per-axis lengths only.
func sameExtents(a, b []*Dimension) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Length() != b[i].Length() {
			return false
		}
	}
	return true
}

// wrappedPos maps a view flat position through the selection.
func (v *maskedView[T]) wrappedPos(pos int) int {
	return v.sel[pos/v.rowSize]*v.rowSize + pos%v.rowSize
}

// WeakGetAt reads through the selection permutation.
func (v *maskedView[T]) WeakGetAt(pos int) T {
	return v.wrapped.WeakGetAt(v.wrappedPos(pos))
}

// WeakSetAt writes through the selection permutation.
func (v *maskedView[T]) WeakSetAt(pos int, value T) {
	v.wrapped.WeakSetAt(v.wrappedPos(pos), value)
}

// chunkAt bounds a contiguous chunk at view position p, coalescing
// adjacent selected rows into a single wrapped run.
func (v *maskedView[T]) chunkAt(p, remaining int) (wpos, n int) {
	row, col := p/v.rowSize, p%v.rowSize
	end := row + 1
	for end < len(v.sel) && v.sel[end] == v.sel[end-1]+1 {
		end++
	}
	n = (end-row)*v.rowSize - col
	if remaining < n {
		n = remaining
	}
	return v.sel[row]*v.rowSize + col, n
}

// ToFlattened copies selected rows in coalesced wrapped runs.
func (v *maskedView[T]) ToFlattened(srcPos int, dst []T, dstPos, length int) error {
	if err := v.shape.checkRun(srcPos, length); err != nil {
		return err
	}
	if err := checkBuffer(dst, dstPos, length); err != nil {
		return err
	}
	for copied := 0; copied < length; {
		wpos, n := v.chunkAt(srcPos+copied, length-copied)
		if err := v.wrapped.ToFlattened(wpos, dst, dstPos+copied, n); err != nil {
			return err
		}
		copied += n
	}
	return nil
}

// FromFlattened writes selected rows in coalesced wrapped runs.
func (v *maskedView[T]) FromFlattened(src []T, srcPos, dstPos, length int) error {
	if err := v.shape.checkRun(dstPos, length); err != nil {
		return err
	}
	if err := checkBuffer(src, srcPos, length); err != nil {
		return err
	}
	for copied := 0; copied < length; {
		wpos, n := v.chunkAt(dstPos+copied, length-copied)
		if err := v.wrapped.FromFlattened(src, srcPos+copied, wpos, n); err != nil {
			return err
		}
		copied += n
	}
	return nil
}
