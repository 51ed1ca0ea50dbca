package hypercube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisRoll1D(t *testing.T) {
	c, err := FromSlice([]int32{0, 1, 2, 3, 4}, Dims(5)...)
	require.NoError(t, err)
	d := c.Dimensions()[0]

	roll, err := NewRoll(d, 2)
	require.NoError(t, err)
	v, err := c.Roll(roll)
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 4, 0, 1, 2}, flatten(t, v))

	neg, err := NewRoll(d, -2)
	require.NoError(t, err)
	v, err = c.Roll(neg)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3, 4, 0, 1}, flatten(t, v))
}

func TestAxisRoll2D(t *testing.T) {
	c, err := FromSlice(seq[int32](12), Dims(3, 4)...)
	require.NoError(t, err)
	dims := c.Dimensions()

	rowRoll, err := NewRoll(dims[0], 1)
	require.NoError(t, err)
	colRoll, err := NewRoll(dims[1], 2)
	require.NoError(t, err)
	v, err := c.Roll(rowRoll, colRoll)
	require.NoError(t, err)

	// Row i of the view is wrapped row (i-1+3)%3, each rotated by 2.
	assert.Equal(t, []int32{
		10, 11, 8, 9,
		2, 3, 0, 1,
		6, 7, 4, 5,
	}, flatten(t, v))
	assert.Equal(t, elements[int32](t, v), flatten(t, v))
}

func TestAxisRollIdentity(t *testing.T) {
	c, err := FromSlice(seq[int32](6), Dims(6)...)
	require.NoError(t, err)
	d := c.Dimensions()[0]

	zero, err := NewRoll(d, 0)
	require.NoError(t, err)
	v, err := c.Roll(zero)
	require.NoError(t, err)
	assert.Same(t, c, v, "zero roll is the identity")

	full, err := NewRoll(d, 6)
	require.NoError(t, err)
	v, err = c.Roll(full)
	require.NoError(t, err)
	assert.Same(t, c, v, "whole-length roll normalizes to zero")
}

func TestAxisRollComposition(t *testing.T) {
	c, err := FromSlice(seq[int32](5), Dims(5)...)
	require.NoError(t, err)
	d := c.Dimensions()[0]

	r1, err := NewRoll(d, 2)
	require.NoError(t, err)
	r2, err := NewRoll(d, 1)
	require.NoError(t, err)

	once, err := c.Roll(r1)
	require.NoError(t, err)
	twice, err := once.Roll(r2)
	require.NoError(t, err)

	// Shifts combine over the original cube rather than nesting.
	ar, ok := twice.(*axisRolledView[int32])
	require.True(t, ok)
	assert.Same(t, c, ar.wrapped)
	assert.Equal(t, []int{3}, ar.shifts)

	r3, err := NewRoll(d, 3)
	require.NoError(t, err)
	direct, err := c.Roll(r3)
	require.NoError(t, err)
	assert.Equal(t, flatten(t, direct), flatten(t, twice))

	// A combination that cancels unwraps entirely.
	back, err := once.Roll(r3)
	require.NoError(t, err)
	assert.Same(t, c, back)
}

func TestAxisRollDimensionMismatch(t *testing.T) {
	c, err := FromSlice(seq[int32](12), Dims(3, 4)...)
	require.NoError(t, err)

	foreign, err := NewRoll(Dim(3), 1)
	require.NoError(t, err)
	_, err = c.Roll(foreign)
	assert.ErrorIs(t, err, ErrDimension)

	r, err := NewRoll(c.Dimensions()[0], 1)
	require.NoError(t, err)
	_, err = c.Roll(r, r, r)
	assert.ErrorIs(t, err, ErrDimension)

	_, err = NewRoll(nil, 1)
	assert.ErrorIs(t, err, ErrArgument)
}

func TestAxisRollBulkMatchesElementwise(t *testing.T) {
	c, err := FromSlice(seq[float64](24), Dims(2, 3, 4)...)
	require.NoError(t, err)
	dims := c.Dimensions()

	r0, err := NewRoll(dims[0], 1)
	require.NoError(t, err)
	r2, err := NewRoll(dims[2], 3)
	require.NoError(t, err)
	v, err := c.Roll(r0, Roll{}, r2)
	require.NoError(t, err)

	all := elements[float64](t, v)
	assert.Equal(t, all, flatten(t, v))

	for srcPos := 0; srcPos < v.Size(); srcPos += 3 {
		length := min(5, v.Size()-srcPos)
		buf := make([]float64, length)
		require.NoError(t, v.ToFlattened(srcPos, buf, 0, length))
		assert.Equal(t, all[srcPos:srcPos+length], buf, "run [%d,%d)", srcPos, srcPos+length)
	}
}

func TestAxisRollWriteThrough(t *testing.T) {
	c, err := FromSlice(seq[int32](5), Dims(5)...)
	require.NoError(t, err)

	r, err := NewRoll(c.Dimensions()[0], 2)
	require.NoError(t, err)
	v, err := c.Roll(r)
	require.NoError(t, err)

	require.NoError(t, v.Set(99, 0))
	got, err := c.Get(3)
	require.NoError(t, err)
	assert.Equal(t, int32(99), got)

	require.NoError(t, v.FromFlattened([]int32{50, 51, 52, 53, 54}, 0, 0, 5))
	assert.Equal(t, []int32{52, 53, 54, 50, 51}, flatten(t, c))
}
