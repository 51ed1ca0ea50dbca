package hypercube

import "fmt"

// shape owns a cube's dimension list, row-major strides and element
// count, and converts between flat offsets and multi-indices.
// Per Go / C conventions the flat order is row-major: the last axis
// varies fastest.
type shape struct {
	dims    []*Dimension
	strides []int
	size    int
}

// newShape validates the dimension list (rank >= 1, no nil entries) and
// precomputes strides and size.
func newShape(dims []*Dimension) (*shape, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("shape: zero dimensions: %w", ErrArgument)
	}
	s := &shape{
		dims:    append([]*Dimension(nil), dims...),
		strides: make([]int, len(dims)),
	}
	for _, d := range dims {
		if d == nil {
			return nil, fmt.Errorf("shape: nil dimension: %w", ErrArgument)
		}
	}
	s.strides[len(dims)-1] = 1
	for i := len(dims) - 2; i >= 0; i-- {
		s.strides[i] = s.strides[i+1] * dims[i+1].Length()
	}
	s.size = s.strides[0] * dims[0].Length()
	return s, nil
}

// lengths returns the per-axis extents.
func (s *shape) lengths() []int {
	ls := make([]int, len(s.dims))
	for i, d := range s.dims {
		ls[i] = d.Length()
	}
	return ls
}

// resolve bounds-checks one index against axis k, resolving negative
// (from-the-end) indices first.
func (s *shape) resolve(k, idx int) (int, error) {
	n := s.dims[k].Length()
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("shape: index %d on axis %d of length %d: %w", idx, k, n, ErrBounds)
	}
	return idx, nil
}

// offset converts a multi-index to a flat row-major offset, rejecting a
// wrong index count and any out-of-range index. Ranks 1 through 5 are
// unrolled; the general loop computes the identical formula.
func (s *shape) offset(indices []int) (int, error) {
	if len(indices) != len(s.dims) {
		return 0, fmt.Errorf("shape: %d indices for rank %d: %w", len(indices), len(s.dims), ErrDimension)
	}
	switch len(indices) {
	case 1:
		i0, err := s.resolve(0, indices[0])
		if err != nil {
			return 0, err
		}
		return i0, nil
	case 2:
		i0, err := s.resolve(0, indices[0])
		if err != nil {
			return 0, err
		}
		i1, err := s.resolve(1, indices[1])
		if err != nil {
			return 0, err
		}
		return i0*s.strides[0] + i1, nil
	case 3:
		i0, err := s.resolve(0, indices[0])
		if err != nil {
			return 0, err
		}
		i1, err := s.resolve(1, indices[1])
		if err != nil {
			return 0, err
		}
		i2, err := s.resolve(2, indices[2])
		if err != nil {
			return 0, err
		}
		return i0*s.strides[0] + i1*s.strides[1] + i2, nil
	case 4:
		i0, err := s.resolve(0, indices[0])
		if err != nil {
			return 0, err
		}
		i1, err := s.resolve(1, indices[1])
		if err != nil {
			return 0, err
		}
		i2, err := s.resolve(2, indices[2])
		if err != nil {
			return 0, err
		}
		i3, err := s.resolve(3, indices[3])
		if err != nil {
			return 0, err
		}
		return i0*s.strides[0] + i1*s.strides[1] + i2*s.strides[2] + i3, nil
	case 5:
		i0, err := s.resolve(0, indices[0])
		if err != nil {
			return 0, err
		}
		i1, err := s.resolve(1, indices[1])
		if err != nil {
			return 0, err
		}
		i2, err := s.resolve(2, indices[2])
		if err != nil {
			return 0, err
		}
		i3, err := s.resolve(3, indices[3])
		if err != nil {
			return 0, err
		}
		i4, err := s.resolve(4, indices[4])
		if err != nil {
			return 0, err
		}
		return i0*s.strides[0] + i1*s.strides[1] + i2*s.strides[2] + i3*s.strides[3] + i4, nil
	}
	off := 0
	for k, idx := range indices {
		i, err := s.resolve(k, idx)
		if err != nil {
			return 0, err
		}
		off += i * s.strides[k]
	}
	return off, nil
}

// indices converts a flat offset to a multi-index, filling out (which
// must have length == rank), walking axes from last to first.
func (s *shape) indices(offset int, out []int) error {
	if len(out) != len(s.dims) {
		return fmt.Errorf("shape: %d index slots for rank %d: %w", len(out), len(s.dims), ErrDimension)
	}
	if offset < 0 || offset >= s.size {
		return fmt.Errorf("shape: offset %d of size %d: %w", offset, s.size, ErrBounds)
	}
	switch len(s.dims) {
	case 1:
		out[0] = offset
		return nil
	case 2:
		n1 := s.dims[1].Length()
		out[1] = offset % n1
		out[0] = offset / n1
		return nil
	}
	for k := len(s.dims) - 1; k > 0; k-- {
		n := s.dims[k].Length()
		out[k] = offset % n
		offset /= n
	}
	out[0] = offset
	return nil
}

// checkRun validates a contiguous run [pos, pos+length) against the
// flat size.
func (s *shape) checkRun(pos, length int) error {
	if length < 0 {
		return fmt.Errorf("shape: negative run length %d: %w", length, ErrArgument)
	}
	if pos < 0 || pos+length > s.size {
		return fmt.Errorf("shape: run [%d,%d) of size %d: %w", pos, pos+length, s.size, ErrBounds)
	}
	return nil
}

// checkBuffer validates the buffer-side range of a bulk copy.
func checkBuffer[T Elem](buf []T, pos, length int) error {
	if buf == nil {
		return fmt.Errorf("bulk copy: nil buffer: %w", ErrArgument)
	}
	if pos < 0 || pos+length > len(buf) {
		return fmt.Errorf("bulk copy: buffer run [%d,%d) of %d: %w", pos, pos+length, len(buf), ErrBounds)
	}
	return nil
}
