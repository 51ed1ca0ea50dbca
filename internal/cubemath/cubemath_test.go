package cubemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubeworks/hypercube/internal/hypercube"
)

func cube[T hypercube.Elem](t *testing.T, data []T, lens ...int) hypercube.Cube[T] {
	t.Helper()
	c, err := hypercube.FromSlice(data, hypercube.Dims(lens...)...)
	require.NoError(t, err)
	return c
}

func flat[T hypercube.Elem](t *testing.T, c hypercube.Cube[T]) []T {
	t.Helper()
	out := make([]T, c.Size())
	require.NoError(t, c.ToFlattened(0, out, 0, c.Size()))
	return out
}

func TestBroadcast(t *testing.T) {
	got, err := Broadcast([]int{2, 3}, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)

	got, err = Broadcast([]int{2, 3}, []int{3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)

	got, err = Broadcast([]int{2, 1, 4}, []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, got)

	_, err = Broadcast([]int{2, 3}, []int{4})
	assert.ErrorIs(t, err, hypercube.ErrDimension)
}

func TestAddSameShape(t *testing.T) {
	a := cube(t, []int32{1, 2, 3, 4, 5, 6}, 2, 3)
	b, err := hypercube.FromSlice([]int32{10, 20, 30, 40, 50, 60}, a.Dimensions()...)
	require.NoError(t, err)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int32{11, 22, 33, 44, 55, 66}, flat(t, sum))
	assert.True(t, sum.Matches(a), "shared operand dimensions carry into the result")

	// Separate anonymous dimensions are never Equals even at equal
	// extents, so the result gets fresh dimensions and does not Match.
	c := cube(t, []int32{10, 20, 30, 40, 50, 60}, 2, 3)
	sum2, err := Add(a, c)
	require.NoError(t, err)
	assert.Equal(t, []int32{11, 22, 33, 44, 55, 66}, flat(t, sum2))
	assert.False(t, sum2.Matches(a))
}

func TestAddBroadcastRow(t *testing.T) {
	a := cube(t, []float64{0, 1, 2, 10, 11, 12}, 2, 3)
	row := cube(t, []float64{100, 200, 300}, 3)

	sum, err := Add(a, row)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.NDim())
	assert.Equal(t, []float64{100, 201, 302, 110, 211, 312}, flat(t, sum))
}

func TestAddBroadcastColumn(t *testing.T) {
	a := cube(t, []int64{1, 2, 3, 4, 5, 6}, 2, 3)
	col := cube(t, []int64{10, 20}, 2, 1)

	sum, err := Add(a, col)
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 12, 13, 24, 25, 26}, flat(t, sum))
}

func TestSubMul(t *testing.T) {
	a := cube(t, []int32{5, 7, 9}, 3)
	b := cube(t, []int32{1, 2, 3}, 3)

	d, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int32{4, 5, 6}, flat(t, d))

	p, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 14, 27}, flat(t, p))
}

func TestDivFloat(t *testing.T) {
	a := cube(t, []float64{1, 4, 1}, 3)
	b := cube(t, []float64{2, 2, 0}, 3)

	q, err := Div(a, b)
	require.NoError(t, err)
	got := flat(t, q)
	assert.Equal(t, 0.5, got[0])
	assert.Equal(t, 2.0, got[1])
	assert.True(t, math.IsInf(got[2], 1), "float division by zero follows IEEE")
}

func TestDivIntZero(t *testing.T) {
	a := cube(t, []int32{6, 9}, 2)
	b := cube(t, []int32{3, 0}, 2)

	_, err := Div(a, b)
	assert.ErrorIs(t, err, hypercube.ErrArgument)

	b2 := cube(t, []int32{3, 3}, 2)
	q, err := Div(a, b2)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3}, flat(t, q))
}

func TestScalarOps(t *testing.T) {
	c := cube(t, []int32{1, 2, 3}, 3)

	got, err := AddScalar(c, 10)
	require.NoError(t, err)
	assert.Equal(t, []int32{11, 12, 13}, flat(t, got))

	got, err = SubScalar(c, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2}, flat(t, got))

	got, err = MulScalar(c, -2)
	require.NoError(t, err)
	assert.Equal(t, []int32{-2, -4, -6}, flat(t, got))
}

func TestNegAbs(t *testing.T) {
	c := cube(t, []int64{-2, 0, 3}, 3)

	n, err := Neg(c)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 0, -3}, flat(t, n))

	a, err := Abs(c)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 0, 3}, flat(t, a))
}

func TestLogicalOps(t *testing.T) {
	a := cube(t, []bool{true, true, false, false}, 4)
	b := cube(t, []bool{true, false, true, false}, 4)

	and, err := And(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, flat(t, and))

	or, err := Or(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false}, flat(t, or))

	xor, err := Xor(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, flat(t, xor))

	not, err := Not(a)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, true}, flat(t, not))
}

func TestComparisons(t *testing.T) {
	a := cube(t, []float32{1, 5, 3}, 3)
	b := cube(t, []float32{2, 5, 1}, 3)

	gt, err := Greater(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, flat(t, gt))

	lt, err := Less(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, flat(t, lt))

	eq, err := Equal(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, flat(t, eq))
}

func TestOpsOverViews(t *testing.T) {
	base := cube(t, []int32{0, 1, 2, 3, 4, 5}, 2, 3)

	tr := base.Transpose()
	sum, err := Add(tr, tr)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 6, 2, 8, 4, 10}, flat(t, sum))

	rolled, err := base.RollFlat(1)
	require.NoError(t, err)
	doubled, err := MulScalar(rolled, 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 0, 2, 4, 6, 8}, flat(t, doubled))
}

func TestShapeMismatch(t *testing.T) {
	a := cube(t, []int32{1, 2, 3}, 3)
	b := cube(t, []int32{1, 2}, 2)

	_, err := Add(a, b)
	assert.ErrorIs(t, err, hypercube.ErrDimension)
}
