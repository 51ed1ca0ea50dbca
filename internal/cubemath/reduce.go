package cubemath

import (
	"fmt"

	"github.com/cubeworks/hypercube/internal/hypercube"
)

// reduceChunk is the scratch buffer extent for reductions and
// assignment: reads go through the cube's chunked bulk path rather than
// one call per element.
const reduceChunk = 4096

// reduce folds f over the cube's flat order, reading through the bulk
// flatten path.
func reduce[T hypercube.Elem](c hypercube.Cube[T], acc T, f func(T, T) T) (T, error) {
	size := c.Size()
	buf := make([]T, min(size, reduceChunk))
	for pos := 0; pos < size; {
		n := min(size-pos, reduceChunk)
		if err := c.ToFlattened(pos, buf, 0, n); err != nil {
			var zero T
			return zero, err
		}
		for _, v := range buf[:n] {
			acc = f(acc, v)
		}
		pos += n
	}
	return acc, nil
}

// Sum returns the sum of all elements, zero for an empty cube.
func Sum[T hypercube.Number](c hypercube.Cube[T]) (T, error) {
	var zero T
	return reduce(c, zero, func(a, v T) T { return a + v })
}

// Min returns the smallest element; an empty cube is an error.
func Min[T hypercube.Number](c hypercube.Cube[T]) (T, error) {
	var zero T
	if c.Size() == 0 {
		return zero, fmt.Errorf("cubemath: min of empty cube: %w", hypercube.ErrArgument)
	}
	first, err := c.GetAt(0)
	if err != nil {
		return zero, err
	}
	return reduce(c, first, func(a, v T) T {
		if v < a {
			return v
		}
		return a
	})
}

// Max returns the largest element; an empty cube is an error.
func Max[T hypercube.Number](c hypercube.Cube[T]) (T, error) {
	var zero T
	if c.Size() == 0 {
		return zero, fmt.Errorf("cubemath: max of empty cube: %w", hypercube.ErrArgument)
	}
	first, err := c.GetAt(0)
	if err != nil {
		return zero, err
	}
	return reduce(c, first, func(a, v T) T {
		if v > a {
			return v
		}
		return a
	})
}

// Assign copies src's content into dst. The cubes must match strictly:
// same element type and the same Dimension objects, not merely the same
// extents. The copy streams through both bulk paths.
func Assign[T hypercube.Elem](dst, src hypercube.Cube[T]) error {
	if !dst.Matches(src) {
		return fmt.Errorf("cubemath: assign %v from %v: %w",
			dst.Dimensions(), src.Dimensions(), hypercube.ErrDimension)
	}
	size := src.Size()
	buf := make([]T, min(size, reduceChunk))
	for pos := 0; pos < size; {
		n := min(size-pos, reduceChunk)
		if err := src.ToFlattened(pos, buf, 0, n); err != nil {
			return err
		}
		if err := dst.FromFlattened(buf, 0, pos, n); err != nil {
			return err
		}
		pos += n
	}
	return nil
}
