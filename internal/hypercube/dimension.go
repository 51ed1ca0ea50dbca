package hypercube

import "fmt"

// Dimension is one axis of a cube: an extent plus an optional key Index.
// Dimensions are immutable once built.
type Dimension struct {
	length int
	index  Index // nil for an anonymous dimension
}

// Dim returns an anonymous dimension of the given length.
// Length zero is allowed (a zero-size axis); negative lengths are a
// programmer error.
func Dim(length int) *Dimension {
	if length < 0 {
		panic(fmt.Sprintf("hypercube: negative dimension length %d", length))
	}
	return &Dimension{length: length}
}

// Named returns a dimension whose extent and key lookup come from the
// given index.
func Named(index Index) (*Dimension, error) {
	if index == nil {
		return nil, fmt.Errorf("dimension: nil index: %w", ErrArgument)
	}
	return &Dimension{length: index.Size(), index: index}, nil
}

// Dims builds anonymous dimensions for each of the given lengths.
func Dims(lengths ...int) []*Dimension {
	dims := make([]*Dimension, len(lengths))
	for i, n := range lengths {
		dims[i] = Dim(n)
	}
	return dims
}

// Length returns the axis extent.
func (d *Dimension) Length() int { return d.length }

// Index returns the axis index, or nil for an anonymous dimension.
func (d *Dimension) Index() Index { return d.index }

// Name returns the index name, or "" for an anonymous dimension.
func (d *Dimension) Name() string {
	if d.index == nil {
		return ""
	}
	return d.index.Name()
}

// Equals reports dimension equality: the same object, or two named
// dimensions whose indexes canonicalize to the same root and range.
// Distinct anonymous dimensions are never equal, even at equal lengths.
func (d *Dimension) Equals(o *Dimension) bool {
	if d == o {
		return true
	}
	if d == nil || o == nil {
		return false
	}
	if d.index == nil || o.index == nil {
		return false
	}
	return d.length == o.length && sameIndex(d.index, o.index)
}

// Subrange returns a new dimension restricted to [start, end) of this
// one. A named dimension yields a dimension over a SubIndex of its
// index; an anonymous dimension yields a fresh anonymous dimension after
// the same bounds validation. end < start is not permitted here: reversed
// axes are expressed by building a reversed SubIndex explicitly.
func (d *Dimension) Subrange(start, end int) (*Dimension, error) {
	if start < 0 || start >= d.length || end <= start || end > d.length {
		return nil, fmt.Errorf("dimension: sub-range [%d,%d) of length %d: %w", start, end, d.length, ErrBounds)
	}
	if d.index == nil {
		return Dim(end - start), nil
	}
	sub, err := NewSubIndex(d.index, start, end)
	if err != nil {
		return nil, err
	}
	return &Dimension{length: sub.Size(), index: sub}, nil
}

// At returns a Coordinate accessor fixing this axis to a single index.
func (d *Dimension) At(index int) (*Coordinate, error) {
	if index < 0 || index >= d.length {
		return nil, fmt.Errorf("coordinate: index %d of length %d: %w", index, d.length, ErrBounds)
	}
	return &Coordinate{dim: d, index: index}, nil
}

// Span returns a Span accessor restricting this axis to [start, end).
func (d *Dimension) Span(start, end int) (*Span, error) {
	if start < 0 || end <= start || end > d.length {
		return nil, fmt.Errorf("span: range [%d,%d) of length %d: %w", start, end, d.length, ErrBounds)
	}
	return &Span{dim: d, start: start, end: end}, nil
}

// String returns a human-readable representation of the dimension.
func (d *Dimension) String() string {
	if name := d.Name(); name != "" {
		return fmt.Sprintf("%s[%d]", name, d.length)
	}
	return fmt.Sprintf("[%d]", d.length)
}
