// Package cubemath provides the public API for elementwise cube
// arithmetic with NumPy-style broadcasting.
//
// Example:
//
//	a, _ := hypercube.FromSlice([]float64{1, 2, 3}, hypercube.Dims(3)...)
//	b, _ := hypercube.FromSlice([]float64{10}, hypercube.Dims(1)...)
//	sum, _ := cubemath.Add(a, b) // [11 12 13]
package cubemath

import (
	"github.com/cubeworks/hypercube/hypercube"
	"github.com/cubeworks/hypercube/internal/cubemath"
)

// Broadcast resolves the result extents of two operand extents under
// NumPy broadcasting rules.
func Broadcast(a, b []int) ([]int, error) { return cubemath.Broadcast(a, b) }

// Add returns the elementwise, broadcast sum a + b.
func Add[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return cubemath.Add(a, b)
}

// Sub returns the elementwise, broadcast difference a - b.
func Sub[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return cubemath.Sub(a, b)
}

// Mul returns the elementwise, broadcast product a * b.
func Mul[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return cubemath.Mul(a, b)
}

// Div returns the elementwise, broadcast quotient a / b.
func Div[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return cubemath.Div(a, b)
}

// AddScalar returns c + v elementwise.
func AddScalar[T hypercube.Number](c hypercube.Cube[T], v T) (hypercube.Cube[T], error) {
	return cubemath.AddScalar(c, v)
}

// SubScalar returns c - v elementwise.
func SubScalar[T hypercube.Number](c hypercube.Cube[T], v T) (hypercube.Cube[T], error) {
	return cubemath.SubScalar(c, v)
}

// MulScalar returns c * v elementwise.
func MulScalar[T hypercube.Number](c hypercube.Cube[T], v T) (hypercube.Cube[T], error) {
	return cubemath.MulScalar(c, v)
}

// Neg returns -c elementwise.
func Neg[T hypercube.Number](c hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return cubemath.Neg(c)
}

// Abs returns |c| elementwise.
func Abs[T hypercube.Number](c hypercube.Cube[T]) (hypercube.Cube[T], error) {
	return cubemath.Abs(c)
}

// And returns the elementwise, broadcast logical AND.
func And(a, b hypercube.Cube[bool]) (hypercube.Cube[bool], error) { return cubemath.And(a, b) }

// Or returns the elementwise, broadcast logical OR.
func Or(a, b hypercube.Cube[bool]) (hypercube.Cube[bool], error) { return cubemath.Or(a, b) }

// Xor returns the elementwise, broadcast logical XOR.
func Xor(a, b hypercube.Cube[bool]) (hypercube.Cube[bool], error) { return cubemath.Xor(a, b) }

// Not returns the elementwise logical NOT.
func Not(c hypercube.Cube[bool]) (hypercube.Cube[bool], error) { return cubemath.Not(c) }

// Greater returns the elementwise, broadcast comparison a > b.
func Greater[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[bool], error) {
	return cubemath.Greater(a, b)
}

// Less returns the elementwise, broadcast comparison a < b.
func Less[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[bool], error) {
	return cubemath.Less(a, b)
}

// Equal returns the elementwise, broadcast comparison a == b.
func Equal[T hypercube.Number](a, b hypercube.Cube[T]) (hypercube.Cube[bool], error) {
	return cubemath.Equal(a, b)
}

// Sum returns the sum of all elements.
func Sum[T hypercube.Number](c hypercube.Cube[T]) (T, error) { return cubemath.Sum(c) }

// Min returns the smallest element; an empty cube is an error.
func Min[T hypercube.Number](c hypercube.Cube[T]) (T, error) { return cubemath.Min(c) }

// Max returns the largest element; an empty cube is an error.
func Max[T hypercube.Number](c hypercube.Cube[T]) (T, error) { return cubemath.Max(c) }

// Assign copies src's content into dst; the cubes must match strictly.
func Assign[T hypercube.Elem](dst, src hypercube.Cube[T]) error { return cubemath.Assign(dst, src) }
