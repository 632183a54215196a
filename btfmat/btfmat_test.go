package btfmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcolloran/nalgebra-block-triangularization/btfmat"
)

func denseFromRows(t *testing.T, rows [][]float64) *btfmat.Dense {
	t.Helper()
	d, err := btfmat.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}

	return d
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	d, err := btfmat.NewDense(2, 2)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, btfmat.ErrOutOfRange)

	err = d.Set(0, -1, 1)
	assert.ErrorIs(t, err, btfmat.ErrOutOfRange)
}

func TestDense_Set_RejectsNaNInf(t *testing.T) {
	d, err := btfmat.NewDense(1, 1)
	require.NoError(t, err)

	err = d.Set(0, 0, math.NaN())
	assert.ErrorIs(t, err, btfmat.ErrNaNInf)
}

func TestApplyRowPermutation(t *testing.T) {
	src := denseFromRows(t, [][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	dst, err := btfmat.ApplyRowPermutation(src, []int{2, 0, 1})
	require.NoError(t, err)

	want := denseFromRows(t, [][]float64{
		{5, 6},
		{1, 2},
		{3, 4},
	})
	assertEqualDense(t, want, dst)
}

func TestApplyColPermutation(t *testing.T) {
	src := denseFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	dst, err := btfmat.ApplyColPermutation(src, []int{2, 0, 1})
	require.NoError(t, err)

	want := denseFromRows(t, [][]float64{
		{3, 1, 2},
		{6, 4, 5},
	})
	assertEqualDense(t, want, dst)
}

func TestIsUpperBlockTriangular(t *testing.T) {
	upper := denseFromRows(t, [][]float64{
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
	})
	ok, err := btfmat.IsUpperBlockTriangular(upper, []int{2, 2})
	require.NoError(t, err)
	assert.True(t, ok)

	lowerLeak := denseFromRows(t, [][]float64{
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 1, 1}, // nonzero at (2,1): block 1 row reaching block 0 col
		{0, 0, 0, 1},
	})
	ok, err = btfmat.IsUpperBlockTriangular(lowerLeak, []int{2, 2})
	require.NoError(t, err)
	assert.False(t, ok)
}

func assertEqualDense(t *testing.T, want, got btfmat.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j)
			require.NoError(t, err)
			gv, err := got.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, wv, gv, "at (%d,%d)", i, j)
		}
	}
}
