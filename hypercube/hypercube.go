// Package hypercube provides the public API for the hypercube library:
// dense, sparse and bitset-backed multi-dimensional arrays with
// zero-copy views (slice, transpose, roll, reshape, mask).
//
// Example:
//
//	c, _ := hypercube.FromSlice([]float64{1, 2, 3, 4, 5, 6}, hypercube.Dims(2, 3)...)
//	tr := c.Transpose()   // 3x2 view, no copy
//	v, _ := tr.Get(2, 0)  // reads c at (0, 2)
package hypercube

import (
	"github.com/cubeworks/hypercube/internal/hypercube"
)

// Type aliases for the public API.

// Elem is a constraint for supported cube element types:
// bool, int32, int64, float32, float64.
type Elem = hypercube.Elem

// Number is the subset of Elem that supports arithmetic.
type Number = hypercube.Number

// DataType represents the runtime element type of a cube.
type DataType = hypercube.DataType

// Element type constants.
const (
	Bool    DataType = hypercube.Bool
	Int32   DataType = hypercube.Int32
	Int64   DataType = hypercube.Int64
	Float32 DataType = hypercube.Float32
	Float64 DataType = hypercube.Float64
)

// Cube is the contract shared by storage cubes and views.
type Cube[T Elem] = hypercube.Cube[T]

// Dimension is one axis of a cube: an extent plus an optional key index.
type Dimension = hypercube.Dimension

// Index maps keys to positions along one axis.
type Index = hypercube.Index

// ListIndex is an Index backed by an ordered key list.
type ListIndex = hypercube.ListIndex

// SubIndex is a parent Index restricted to a (possibly reversed)
// half-open range.
type SubIndex = hypercube.SubIndex

// Accessor is a per-axis selector (Coordinate or Span) for slicing.
type Accessor = hypercube.Accessor

// Coordinate fixes one axis to a single index.
type Coordinate = hypercube.Coordinate

// Span restricts one axis to a contiguous sub-range.
type Span = hypercube.Span

// Roll is a signed cyclic shift of one axis.
type Roll = hypercube.Roll

// Mask is a boolean predicate over positions for masked views.
type Mask = hypercube.Mask

// BitSet is a fixed-length bit vector.
type BitSet = hypercube.BitSet

// Flags describe advisory storage characteristics of a cube.
type Flags = hypercube.Flags

// Sentinel errors, matched with errors.Is.
var (
	ErrDimension   = hypercube.ErrDimension
	ErrBounds      = hypercube.ErrBounds
	ErrArgument    = hypercube.ErrArgument
	ErrUnsupported = hypercube.ErrUnsupported
)

// Dim returns an anonymous dimension of the given length.
func Dim(length int) *Dimension { return hypercube.Dim(length) }

// Dims builds anonymous dimensions for each of the given lengths.
func Dims(lengths ...int) []*Dimension { return hypercube.Dims(lengths...) }

// Named returns a dimension whose extent and key lookup come from the
// given index.
func Named(index Index) (*Dimension, error) { return hypercube.Named(index) }

// NewListIndex builds an index over the given ordered keys.
func NewListIndex(name string, keys ...string) (*ListIndex, error) {
	return hypercube.NewListIndex(name, keys...)
}

// NewSubIndex restricts parent to [start, end); end < start reverses.
func NewSubIndex(parent Index, start, end int) (*SubIndex, error) {
	return hypercube.NewSubIndex(parent, start, end)
}

// NewRoll returns a roll of the given axis by shift positions.
func NewRoll(dim *Dimension, shift int) (Roll, error) { return hypercube.NewRoll(dim, shift) }

// NewDense creates a zero-initialized dense cube.
func NewDense[T Elem](dims ...*Dimension) (Cube[T], error) {
	return hypercube.NewDense[T](dims...)
}

// FromSlice creates a dense cube holding a copy of data.
func FromSlice[T Elem](data []T, dims ...*Dimension) (Cube[T], error) {
	return hypercube.FromSlice(data, dims...)
}

// Zeros creates a dense cube with every element set to the zero value.
func Zeros[T Elem](dims ...*Dimension) (Cube[T], error) {
	return hypercube.Zeros[T](dims...)
}

// Full creates a dense cube with every element set to value.
func Full[T Elem](value T, dims ...*Dimension) (Cube[T], error) {
	return hypercube.Full(value, dims...)
}

// NewSparse creates a sparse cube with lazily allocated storage.
func NewSparse[T Elem](dims ...*Dimension) (Cube[T], error) {
	return hypercube.NewSparse[T](dims...)
}

// NewBitCube creates a boolean cube backed by a bit set.
func NewBitCube(dims ...*Dimension) (Cube[bool], error) {
	return hypercube.NewBitCube(dims...)
}

// NewBitSet creates a bit set of the given length, all bits clear.
func NewBitSet(size int) (*BitSet, error) { return hypercube.NewBitSet(size) }

// BitSetOf creates a bit set from the given bits.
func BitSetOf(bits ...bool) *BitSet { return hypercube.BitSetOf(bits...) }

// BoolsMask wraps a bool slice as a Mask.
func BoolsMask(bits []bool) Mask { return hypercube.BoolsMask(bits) }

// BitsetMask wraps a BitSet as a Mask.
func BitsetMask(bits *BitSet) Mask { return hypercube.BitsetMask(bits) }

// CubeMask wraps a boolean cube as a Mask; a same-shaped mask cube
// selects individual elements, a first-axis-length mask selects rows.
func CubeMask(cube Cube[bool]) Mask { return hypercube.CubeMask(cube) }
