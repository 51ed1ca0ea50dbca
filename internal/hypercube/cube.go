package hypercube

import (
	"fmt"
	"math"
)

// Cube is the contract shared by storage cubes and views: shape
// introspection, single-element and bulk access, barrier hooks, and the
// view constructors. Every view returned by Slice, Roll, RollFlat,
// Transpose, Reshape and Mask implements the same contract and delegates
// all access, after an index transformation, to its wrapped source cube.
type Cube[T Elem] interface {
	// Dimensions returns the ordered axis list. Rank is always >= 1.
	Dimensions() []*Dimension
	// Len returns the extent of the given axis.
	Len(axis int) int
	// Size returns the total element count.
	Size() int
	// NDim returns the rank.
	NDim() int
	// DType returns the element type tag.
	DType() DataType
	// Flags returns advisory storage characteristics.
	Flags() Flags

	// GetAt returns the element at a flat row-major offset.
	GetAt(pos int) (T, error)
	// SetAt stores the element at a flat row-major offset.
	SetAt(pos int, value T) error
	// Get returns the element at a multi-index. Negative indices count
	// from the end of the axis.
	Get(indices ...int) (T, error)
	// Set stores the element at a multi-index.
	Set(value T, indices ...int) error

	// WeakGetAt is the relaxed read tier: no barrier, no bounds check
	// beyond what the language enforces. Callers pair it with PreRead.
	WeakGetAt(pos int) T
	// WeakSetAt is the relaxed write tier, paired with PostWrite.
	WeakSetAt(pos int, value T)

	// ToFlattened copies the flat run [srcPos, srcPos+length) of this
	// cube into dst starting at dstPos. The full range is validated
	// before any element is copied.
	ToFlattened(srcPos int, dst []T, dstPos, length int) error
	// FromFlattened copies length elements from src starting at srcPos
	// into the flat run starting at dstPos of this cube.
	FromFlattened(src []T, srcPos, dstPos, length int) error

	// PreRead is the read visibility barrier. Views forward it to their
	// wrapped cube so a chain reaches the storage leaf exactly once.
	PreRead()
	// PostWrite is the write visibility barrier, forwarded like PreRead.
	PostWrite()

	// Slice returns a view restricted by the given accessors, one per
	// leading axis; missing trailing accessors (or nil entries) leave
	// the axis unconstrained. Coordinate accessors drop their axis.
	Slice(accessors ...Accessor) (Cube[T], error)
	// Roll returns a view with per-axis cyclic shifts, one roll per
	// leading axis; zero-valued rolls leave the axis alone.
	Roll(rolls ...Roll) (Cube[T], error)
	// RollFlat returns a view with the whole flat sequence cyclically
	// shifted.
	RollFlat(shift int) (Cube[T], error)
	// Transpose returns a view with the axis order reversed.
	// Transposing a transposed view yields the wrapped cube.
	Transpose() Cube[T]
	// Reshape returns a view of the same flat sequence under new
	// dimensions whose product must equal Size exactly.
	Reshape(dims ...*Dimension) (Cube[T], error)
	// Mask returns a view selecting first-axis slices (mask of
	// first-axis length) or individual elements (same-shaped bool cube
	// mask, flattened result) where the mask is true.
	Mask(m Mask) (Cube[T], error)

	// Matches reports strict compatibility: same element type, same
	// Dimension objects (per Dimension.Equals) and same rank.
	Matches(other Cube[T]) bool
	// ContentEquals reports value-wise equality over equal extents,
	// with NaN equal to NaN for floating element types.
	ContentEquals(other Cube[T]) bool
}

// base carries shape bookkeeping and the default implementations shared
// by storage cubes and views: multi-index access via the offset algebra,
// the view smart constructors, equality, and the per-element bulk
// fallback. self is the outermost cube so defaults dispatch through the
// concrete type's overrides.
type base[T Elem] struct {
	self  Cube[T]
	shape *shape
	dtype DataType
	flags Flags
}

func (b *base[T]) init(self Cube[T], sh *shape, flags Flags) {
	b.self = self
	b.shape = sh
	b.dtype = dataTypeOf[T]()
	b.flags = flags
}

// Dimensions returns the ordered axis list.
func (b *base[T]) Dimensions() []*Dimension {
	return append([]*Dimension(nil), b.shape.dims...)
}

// Len returns the extent of the given axis.
func (b *base[T]) Len(axis int) int {
	if axis < 0 {
		axis += len(b.shape.dims)
	}
	if axis < 0 || axis >= len(b.shape.dims) {
		return 0
	}
	return b.shape.dims[axis].Length()
}

// Size returns the total element count.
func (b *base[T]) Size() int { return b.shape.size }

// NDim returns the rank.
func (b *base[T]) NDim() int { return len(b.shape.dims) }

// DType returns the element type tag.
func (b *base[T]) DType() DataType { return b.dtype }

// Flags returns advisory storage characteristics.
func (b *base[T]) Flags() Flags { return b.flags }

// Get resolves the multi-index through the offset algebra and delegates
// to the flat accessor.
func (b *base[T]) Get(indices ...int) (T, error) {
	off, err := b.shape.offset(indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.self.GetAt(off)
}

// Set resolves the multi-index and delegates to the flat accessor.
func (b *base[T]) Set(value T, indices ...int) error {
	off, err := b.shape.offset(indices)
	if err != nil {
		return err
	}
	return b.self.SetAt(off, value)
}

// Slice constructs a sliced view of this cube.
func (b *base[T]) Slice(accessors ...Accessor) (Cube[T], error) {
	return newSliced(b.self, accessors)
}

// Roll constructs an axis-rolled view of this cube.
func (b *base[T]) Roll(rolls ...Roll) (Cube[T], error) {
	return newAxisRolled(b.self, rolls)
}

// RollFlat constructs a flat-rolled view of this cube.
func (b *base[T]) RollFlat(shift int) (Cube[T], error) {
	return newFlatRolled(b.self, shift)
}

// Transpose constructs a transposed view of this cube.
func (b *base[T]) Transpose() Cube[T] {
	return newTransposed(b.self)
}

// Reshape constructs a reshaping view of this cube.
func (b *base[T]) Reshape(dims ...*Dimension) (Cube[T], error) {
	return newReshaped(b.self, dims)
}

// Mask constructs a masked view of this cube.
func (b *base[T]) Mask(m Mask) (Cube[T], error) {
	return newMasked(b.self, m)
}

// Matches reports strict compatibility for arithmetic and assignment.
func (b *base[T]) Matches(other Cube[T]) bool {
	if other == nil {
		return false
	}
	if b.dtype != other.DType() {
		return false
	}
	od := other.Dimensions()
	if len(od) != len(b.shape.dims) {
		return false
	}
	for i, d := range b.shape.dims {
		if !d.Equals(od[i]) {
			return false
		}
	}
	return true
}

// ContentEquals compares element values over equal per-axis extents.
func (b *base[T]) ContentEquals(other Cube[T]) bool {
	if other == nil {
		return false
	}
	if other.NDim() != len(b.shape.dims) {
		return false
	}
	od := other.Dimensions()
	for i, d := range b.shape.dims {
		if d.Length() != od[i].Length() {
			return false
		}
	}
	b.self.PreRead()
	other.PreRead()
	for i := 0; i < b.shape.size; i++ {
		if !elemEqual(b.self.WeakGetAt(i), other.WeakGetAt(i)) {
			return false
		}
	}
	return true
}

// flattenFallback is the generic bulk read: one barrier, then the
// relaxed path element by element. Views without a contiguity structure
// of their own (transpose) use it directly.
func (b *base[T]) flattenFallback(srcPos int, dst []T, dstPos, length int) error {
	if err := b.shape.checkRun(srcPos, length); err != nil {
		return err
	}
	if err := checkBuffer(dst, dstPos, length); err != nil {
		return err
	}
	b.self.PreRead()
	for i := 0; i < length; i++ {
		dst[dstPos+i] = b.self.WeakGetAt(srcPos + i)
	}
	return nil
}

// unflattenFallback is the generic bulk write counterpart.
func (b *base[T]) unflattenFallback(src []T, srcPos, dstPos, length int) error {
	if err := b.shape.checkRun(dstPos, length); err != nil {
		return err
	}
	if err := checkBuffer(src, srcPos, length); err != nil {
		return err
	}
	for i := 0; i < length; i++ {
		b.self.WeakSetAt(dstPos+i, src[srcPos+i])
	}
	b.self.PostWrite()
	return nil
}

// viewBase extends base for view wrappers: it holds the wrapped cube,
// forwards barriers to it, and implements the flat strong tier in terms
// of the view's relaxed mapping.
type viewBase[T Elem] struct {
	base[T]
	wrapped Cube[T]
}

// Wrapped returns the cube this view delegates to.
func (v *viewBase[T]) Wrapped() Cube[T] { return v.wrapped }

// PreRead forwards the read barrier to the wrapped cube.
func (v *viewBase[T]) PreRead() { v.wrapped.PreRead() }

// PostWrite forwards the write barrier to the wrapped cube.
func (v *viewBase[T]) PostWrite() { v.wrapped.PostWrite() }

// GetAt bounds-checks, issues one read barrier, and reads through the
// view's relaxed mapping.
func (v *viewBase[T]) GetAt(pos int) (T, error) {
	if pos < 0 || pos >= v.shape.size {
		var zero T
		return zero, fmt.Errorf("get at %d of size %d: %w", pos, v.shape.size, ErrBounds)
	}
	v.wrapped.PreRead()
	return v.self.WeakGetAt(pos), nil
}

// SetAt bounds-checks, writes through the relaxed mapping, and issues
// one write barrier.
func (v *viewBase[T]) SetAt(pos int, value T) error {
	if pos < 0 || pos >= v.shape.size {
		return fmt.Errorf("set at %d of size %d: %w", pos, v.shape.size, ErrBounds)
	}
	v.self.WeakSetAt(pos, value)
	v.wrapped.PostWrite()
	return nil
}

// elemEqual compares two elements with NaN-equals-NaN semantics for the
// floating types.
func elemEqual[T Elem](a, b T) bool {
	switch x := any(a).(type) {
	case float32:
		y := any(b).(float32)
		if x != x && y != y { // both NaN
			return true
		}
		return x == y
	case float64:
		y := any(b).(float64)
		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
		return x == y
	default:
		return any(a) == any(b)
	}
}

// wrappedStrides precomputes row-major strides over a cube's axis
// lengths, for views that map multi-indices into wrapped flat offsets.
func wrappedStrides[T Elem](c Cube[T]) []int {
	n := c.NDim()
	strides := make([]int, n)
	strides[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * c.Len(i+1)
	}
	return strides
}
