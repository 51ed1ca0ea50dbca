// Package cubemath is the elementwise arithmetic engine for cubes.
// Every operation goes through the cube view layer, so operands may be
// storage cubes or arbitrary view stacks; results are dense cubes.
// Binary operations broadcast NumPy-style: shapes are compared right to
// left and length-1 axes stretch.
package cubemath

import (
	"fmt"

	"github.com/cubeworks/hypercube/internal/hypercube"
	"github.com/cubeworks/hypercube/internal/parallel"
)

// loopCfg gates the parallel bulk loops.
var loopCfg = parallel.DefaultConfig()

// Broadcast resolves the result extents of two operand extents under
// NumPy broadcasting rules: compare right to left, axes are compatible
// when equal or when one of them is 1, missing axes count as 1.
func Broadcast(a, b []int) ([]int, error) {
	n := max(len(a), len(b))
	out := make([]int, n)
	for i := 0; i < n; i++ {
		ad, bd := 1, 1
		if k := len(a) - 1 - i; k >= 0 {
			ad = a[k]
		}
		if k := len(b) - 1 - i; k >= 0 {
			bd = b[k]
		}
		switch {
		case ad == bd:
			out[n-1-i] = ad
		case ad == 1:
			out[n-1-i] = bd
		case bd == 1:
			out[n-1-i] = ad
		default:
			return nil, fmt.Errorf("cubemath: shapes %v and %v differ on axis %d (%d vs %d): %w",
				a, b, n-1-i, ad, bd, hypercube.ErrDimension)
		}
	}
	return out, nil
}

// lengths returns a cube's per-axis extents.
func lengths[T hypercube.Elem](c hypercube.Cube[T]) []int {
	ls := make([]int, c.NDim())
	for i := range ls {
		ls[i] = c.Len(i)
	}
	return ls
}

// rowMajorStrides computes strides for the given extents.
func rowMajorStrides(lens []int) []int {
	strides := make([]int, len(lens))
	if len(lens) == 0 {
		return strides
	}
	strides[len(lens)-1] = 1
	for i := len(lens) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * lens[i+1]
	}
	return strides
}

// broadcastStrides right-aligns an operand's strides against the result
// extents, zeroing stretched (length-1 or missing) axes so they do not
// advance the operand offset.
func broadcastStrides(opLens, resLens []int) []int {
	opStrides := rowMajorStrides(opLens)
	out := make([]int, len(resLens))
	shift := len(resLens) - len(opLens)
	for k := range resLens {
		if k < shift {
			continue
		}
		if opLens[k-shift] == 1 && resLens[k] != 1 {
			continue
		}
		out[k] = opStrides[k-shift]
	}
	return out
}

// resultDims picks the result dimension list: operand dimensions are
// reused when both operands agree on them, otherwise broadcast extents
// get fresh anonymous dimensions.
func resultDims[T hypercube.Elem](a, b hypercube.Cube[T], resLens []int) []*hypercube.Dimension {
	ad, bd := a.Dimensions(), b.Dimensions()
	if len(ad) == len(bd) && len(ad) == len(resLens) {
		same := true
		for i := range ad {
			if !ad[i].Equals(bd[i]) {
				same = false
				break
			}
		}
		if same {
			return ad
		}
	}
	return hypercube.Dims(resLens...)
}

// binary evaluates f elementwise over broadcast operands into a fresh
// dense cube.
func binary[T, U hypercube.Elem](a, b hypercube.Cube[T], f func(T, T) U) (hypercube.Cube[U], error) {
	resLens, err := Broadcast(lengths(a), lengths(b))
	if err != nil {
		return nil, err
	}
	out, err := hypercube.NewDense[U](resultDims(a, b, resLens)...)
	if err != nil {
		return nil, err
	}
	size := out.Size()
	resStrides := rowMajorStrides(resLens)
	aStrides := broadcastStrides(lengths(a), resLens)
	bStrides := broadcastStrides(lengths(b), resLens)

	a.PreRead()
	b.PreRead()
	parallel.Ranges(size, loopCfg, func(start, end int) {
		for i := start; i < end; i++ {
			offA, offB := 0, 0
			for k, rs := range resStrides {
				idx := (i / rs) % resLens[k]
				offA += idx * aStrides[k]
				offB += idx * bStrides[k]
			}
			out.WeakSetAt(i, f(a.WeakGetAt(offA), b.WeakGetAt(offB)))
		}
	})
	out.PostWrite()
	return out, nil
}

// unary evaluates f elementwise into a fresh dense cube with the
// operand's dimensions.
func unary[T, U hypercube.Elem](c hypercube.Cube[T], f func(T) U) (hypercube.Cube[U], error) {
	out, err := hypercube.NewDense[U](c.Dimensions()...)
	if err != nil {
		return nil, err
	}
	c.PreRead()
	parallel.Ranges(c.Size(), loopCfg, func(start, end int) {
		for i := start; i < end; i++ {
			out.WeakSetAt(i, f(c.WeakGetAt(i)))
		}
	})
	out.PostWrite()
	return out, nil
}

// Add returns the elementwise, broadcast sum a + b.
func Add[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub returns the elementwise, broadcast difference a - b.
func Sub[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul returns the elementwise, broadcast product a * b.
func Mul[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div returns the elementwise, broadcast quotient a / b. Floating
// division follows IEEE; integer division by zero fails.
func Div[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[T], error) {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return binary(a, b, func(x, y T) T { return x / y })
	}
	// Integer path: a zero divisor must surface as an error, not a
	// panic, so the loop stays sequential and checks each divisor.
	resLens, err := Broadcast(lengths(a), lengths(b))
	if err != nil {
		return nil, err
	}
	out, err := hypercube.NewDense[T](resultDims(a, b, resLens)...)
	if err != nil {
		return nil, err
	}
	resStrides := rowMajorStrides(resLens)
	aStrides := broadcastStrides(lengths(a), resLens)
	bStrides := broadcastStrides(lengths(b), resLens)
	a.PreRead()
	b.PreRead()
	for i := 0; i < out.Size(); i++ {
		offA, offB := 0, 0
		for k, rs := range resStrides {
			idx := (i / rs) % resLens[k]
			offA += idx * aStrides[k]
			offB += idx * bStrides[k]
		}
		y := b.WeakGetAt(offB)
		if y == 0 {
			return nil, fmt.Errorf("cubemath: integer division by zero at offset %d: %w", i, hypercube.ErrArgument)
		}
		out.WeakSetAt(i, a.WeakGetAt(offA)/y)
	}
	out.PostWrite()
	return out, nil
}

// AddScalar returns c + v elementwise.
func AddScalar[T hypercube.Number](c hypercube.Cube[T], v T) (hypercube.Cube[T], error) {
	return unary(c, func(x T) T { return x + v })
}

// SubScalar returns c - v elementwise.
func SubScalar[T hypercube.Number](c hypercube.Cube[T], v T) (hypercube.Cube[T], error) {
	return unary(c, func(x T) T { return x - v })
}

// MulScalar returns c * v elementwise.
func MulScalar[T hypercube.Number](c hypercube.Cube[T], v T) (hypercube.Cube[T], error) {
	return unary(c, func(x T) T { return x * v })
}

// Neg returns -c elementwise.
func Neg[T hypercube.Number](c hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return unary(c, func(x T) T { return -x })
}

// Abs returns |c| elementwise.
func Abs[T hypercube.Number](c hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return unary(c, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// And returns the elementwise, broadcast logical AND.
func And(a, b hypercube.Cube[bool]) (hypercube.Cube[bool], error) {
	return binary(a, b, func(x, y bool) bool { return x && y })
}

// Or returns the elementwise, broadcast logical OR.
func Or(a, b hypercube.Cube[bool]) (hypercube.Cube[bool], error) {
	return binary(a, b, func(x, y bool) bool { return x || y })
}

// Xor returns the elementwise, broadcast logical XOR.
func Xor(a, b hypercube.Cube[bool]) (hypercube.Cube[bool], error) {
	return binary(a, b, func(x, y bool) bool { return x != y })
}

// Not returns the elementwise logical NOT.
func Not(c hypercube.Cube[bool]) (hypercube.Cube[bool], error) {
	return unary(c, func(x bool) bool { return !x })
}

// Greater returns the elementwise, broadcast comparison a > b.
func Greater[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[bool], error) {
	return binary(a, b, func(x, y T) bool { return x > y })
}

// Less returns the elementwise, broadcast comparison a < b.
func Less[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[bool], error) {
	return binary(a, b, func(x, y T) bool { return x < y })
}

// Equal returns the elementwise, broadcast comparison a == b.
func Equal[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[bool], error) {
	return binary(a, b, func(x, y T) bool { return x == y })
}
