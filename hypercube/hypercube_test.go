package hypercube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubeworks/hypercube/cubemath"
	"github.com/cubeworks/hypercube/hypercube"
)

func TestNamedDimensionWorkflow(t *testing.T) {
	cities, err := hypercube.NewListIndex("city", "ams", "ber", "lon")
	require.NoError(t, err)
	cityDim, err := hypercube.Named(cities)
	require.NoError(t, err)
	quarters, err := hypercube.NewListIndex("quarter", "q1", "q2", "q3", "q4")
	require.NoError(t, err)
	quarterDim, err := hypercube.Named(quarters)
	require.NoError(t, err)

	sales, err := hypercube.FromSlice([]float64{
		10, 20, 30, 40,
		11, 21, 31, 41,
		12, 22, 32, 42,
	}, cityDim, quarterDim)
	require.NoError(t, err)

	// Key lookup resolves to a position usable for indexing.
	got, err := sales.Get(cities.IndexOf("ber"), quarters.IndexOf("q3"))
	require.NoError(t, err)
	assert.Equal(t, 31.0, got)

	// One city's row as a view.
	at, err := cityDim.At(cities.IndexOf("lon"))
	require.NoError(t, err)
	london, err := sales.Slice(at)
	require.NoError(t, err)
	assert.Equal(t, 1, london.NDim())
	assert.Same(t, quarterDim, london.Dimensions()[0])

	total, err := cubemath.Sum(london)
	require.NoError(t, err)
	assert.Equal(t, 12+22+32+42.0, total)
}

func TestSubIndexWindow(t *testing.T) {
	months, err := hypercube.NewListIndex("month", "jan", "feb", "mar", "apr", "may", "jun")
	require.NoError(t, err)
	window, err := hypercube.NewSubIndex(months, 2, 5)
	require.NoError(t, err)

	assert.Equal(t, 3, window.Size())
	assert.Equal(t, 0, window.IndexOf("mar"))
	key, err := window.KeyOf(2)
	require.NoError(t, err)
	assert.Equal(t, "may", key)

	// Reversed window walks backwards.
	rev, err := hypercube.NewSubIndex(months, 4, 1)
	require.NoError(t, err)
	key, err = rev.KeyOf(0)
	require.NoError(t, err)
	assert.Equal(t, "may", key)
	key, err = rev.KeyOf(2)
	require.NoError(t, err)
	assert.Equal(t, "mar", key)
}

func TestViewStacking(t *testing.T) {
	c, err := hypercube.FromSlice([]int32{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}, hypercube.Dims(3, 4)...)
	require.NoError(t, err)

	tr := c.Transpose()
	rolled, err := tr.RollFlat(1)
	require.NoError(t, err)
	reshaped, err := rolled.Reshape(hypercube.Dims(2, 6)...)
	require.NoError(t, err)

	// Transposed flat order with the last element cycled to the front.
	out := make([]int32, reshaped.Size())
	require.NoError(t, reshaped.ToFlattened(0, out, 0, len(out)))
	assert.Equal(t, []int32{11, 0, 4, 8, 1, 5, 9, 2, 6, 10, 3, 7}, out)

	// Writes propagate all the way down.
	require.NoError(t, reshaped.Set(99, 0, 0))
	got, err := c.Get(2, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(99), got)
}

func TestMaskedSelection(t *testing.T) {
	c, err := hypercube.FromSlice([]int64{1, 2, 3, 4, 5}, hypercube.Dim(5))
	require.NoError(t, err)

	v, err := c.Mask(hypercube.BitsetMask(hypercube.BitSetOf(true, false, true, false, true)))
	require.NoError(t, err)
	out := make([]int64, v.Size())
	require.NoError(t, v.ToFlattened(0, out, 0, len(out)))
	assert.Equal(t, []int64{1, 3, 5}, out)

	sum, err := cubemath.Sum(v)
	require.NoError(t, err)
	assert.Equal(t, int64(9), sum)
}

func TestSparseAndBitCubes(t *testing.T) {
	s, err := hypercube.NewSparse[float32](hypercube.Dims(1000, 1000)...)
	require.NoError(t, err)
	require.NoError(t, s.Set(2.5, 123, 456))
	got, err := s.Get(123, 456)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), got)
	got, err = s.Get(999, 999)
	require.NoError(t, err)
	assert.Equal(t, float32(0), got)

	b, err := hypercube.NewBitCube(hypercube.Dims(2, 3)...)
	require.NoError(t, err)
	assert.Equal(t, hypercube.Bool, b.DType())
	require.NoError(t, b.Set(true, 1, 2))
	flag, err := b.Get(1, 2)
	require.NoError(t, err)
	assert.True(t, flag)
}

func TestArithmeticWithBroadcast(t *testing.T) {
	a, err := hypercube.FromSlice([]float64{1, 2, 3, 4, 5, 6}, hypercube.Dims(2, 3)...)
	require.NoError(t, err)
	row, err := hypercube.FromSlice([]float64{10, 20, 30}, hypercube.Dim(3))
	require.NoError(t, err)

	sum, err := cubemath.Add(a, row)
	require.NoError(t, err)
	out := make([]float64, sum.Size())
	require.NoError(t, sum.ToFlattened(0, out, 0, len(out)))
	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36}, out)

	threshold, err := hypercube.Full(20.0, sum.Dimensions()...)
	require.NoError(t, err)
	mask, err := cubemath.Greater(sum, threshold)
	require.NoError(t, err)
	kept, err := sum.Mask(hypercube.CubeMask(mask))
	require.NoError(t, err)
	kout := make([]float64, kept.Size())
	require.NoError(t, kept.ToFlattened(0, kout, 0, len(kout)))
	assert.Equal(t, []float64{22, 33, 25, 36}, kout)
}

func TestErrorSentinels(t *testing.T) {
	c, err := hypercube.NewDense[int32](hypercube.Dims(2, 2)...)
	require.NoError(t, err)

	_, err = c.Get(5, 0)
	assert.ErrorIs(t, err, hypercube.ErrBounds)

	_, err = c.Get(0)
	assert.ErrorIs(t, err, hypercube.ErrDimension)

	_, err = c.Reshape(hypercube.Dim(3))
	assert.ErrorIs(t, err, hypercube.ErrDimension)

	_, err = hypercube.NewListIndex("dup", "a", "a")
	assert.ErrorIs(t, err, hypercube.ErrArgument)
}
