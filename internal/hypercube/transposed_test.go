package hypercube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransposed2D(t *testing.T) {
	c, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, Dims(2, 3)...)
	require.NoError(t, err)

	v := c.Transpose()
	assert.Equal(t, 2, v.NDim())
	assert.Equal(t, 3, v.Len(0))
	assert.Equal(t, 2, v.Len(1))
	assert.Equal(t, []int32{1, 4, 2, 5, 3, 6}, flatten(t, v))

	got, err := v.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(6), got)
}

func TestTransposed3D(t *testing.T) {
	c, err := FromSlice(seq[float64](24), Dims(2, 3, 4)...)
	require.NoError(t, err)

	v := c.Transpose()
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				got, err := v.Get(i, j, k)
				require.NoError(t, err)
				want, err := c.Get(k, j, i)
				require.NoError(t, err)
				assert.Equal(t, want, got, "view (%d,%d,%d)", i, j, k)
			}
		}
	}

	assert.Equal(t, elements[float64](t, v), flatten(t, v))
}

func TestDoubleTransposeIdentity(t *testing.T) {
	c, err := FromSlice(seq[int64](12), Dims(3, 4)...)
	require.NoError(t, err)

	// The double transpose is simplified away, not merely equivalent.
	back := c.Transpose().Transpose()
	assert.Same(t, c, back)

	// Rank-1 transpose is the identity outright.
	line, err := FromSlice(seq[int64](5), Dims(5)...)
	require.NoError(t, err)
	assert.Same(t, line, line.Transpose())
}

func TestTransposedWriteThrough(t *testing.T) {
	c, err := FromSlice(seq[int32](6), Dims(2, 3)...)
	require.NoError(t, err)

	v := c.Transpose()
	require.NoError(t, v.Set(99, 2, 0))
	got, err := c.Get(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(99), got)

	require.NoError(t, v.FromFlattened([]int32{9, 8}, 0, 2, 2))
	got, err = c.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(9), got)
	got, err = c.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(8), got)
}

func TestTransposedOfSliced(t *testing.T) {
	c, err := FromSlice(seq[int32](12), Dims(3, 4)...)
	require.NoError(t, err)

	span, err := c.Dimensions()[0].Span(1, 3)
	require.NoError(t, err)
	sl, err := c.Slice(span)
	require.NoError(t, err)

	v := sl.Transpose() // 4x2 view of rows 1..2
	assert.Equal(t, []int32{4, 8, 5, 9, 6, 10, 7, 11}, flatten(t, v))
}
