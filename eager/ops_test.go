// SPDX-License-Identifier: MIT

package eager_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/eager"
	"github.com/katalvlaran/lvmat/shape"
)

func TestAdd(t *testing.T) {
	a := mustEager(t, 2, 2, 1, 2, 3, 4)
	b := mustEager(t, 2, 2, 10, 20, 30, 40)
	s, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []int{11, 22, 33, 44}, s.Raw())
	require.Equal(t, []int{1, 2, 3, 4}, a.Raw())

	_, err = a.Add(mustEager(t, 1, 4, 1, 2, 3, 4))
	require.ErrorIs(t, err, shape.ErrDimensionMismatch)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, shape.ErrNilMatrix)
}

func TestAddAssign(t *testing.T) {
	a := mustEager(t, 1, 3, 1, 2, 3)
	require.NoError(t, a.AddAssign(a))
	require.Equal(t, []int{2, 4, 6}, a.Raw())
	require.ErrorIs(t, a.AddAssign(mustEager(t, 3, 1, 1, 2, 3)), shape.ErrDimensionMismatch)
}

func TestScalarOps(t *testing.T) {
	a := mustEager(t, 1, 2, 1.0, 2.0)
	require.Equal(t, []float64{11, 12}, a.AddScalar(10).Raw())
	require.Equal(t, []float64{0.5, 1}, a.MulScalar(0.5).Raw())
	require.Equal(t, []float64{1, 2}, a.Raw())

	a.AddScalarAssign(1)
	a.MulScalarAssign(3)
	require.Equal(t, []float64{6, 9}, a.Raw())
}

func TestMul(t *testing.T) {
	a := mustEager(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustEager(t, 3, 2, 7, 8, 9, 10, 11, 12)
	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, shape.Shape{Rows: 2, Cols: 2}, p.Shape())
	require.Equal(t, []int{58, 64, 139, 154}, p.Raw())

	_, err = a.Mul(a)
	require.ErrorIs(t, err, shape.ErrDimensionMismatch)
}

func TestMul_ZeroRowsSkipped(t *testing.T) {
	a := mustEager(t, 2, 2, 0, 0, 0, 1)
	b := mustEager(t, 2, 2, 5, 6, 7, 8)
	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 7, 8}, p.Raw())
}

func TestMulAssign(t *testing.T) {
	m := mustEager(t, 2, 2, 1, 2, 3, 4)
	require.NoError(t, m.MulAssign(m))
	require.Equal(t, []int{7, 10, 15, 22}, m.Raw())

	r := mustEager(t, 2, 3, 1, 2, 3, 4, 5, 6)
	ones, err := eager.NewFilled(3, 1, 1)
	require.NoError(t, err)
	require.NoError(t, r.MulAssign(ones))
	require.Equal(t, shape.Shape{Rows: 2, Cols: 1}, r.Shape())
	require.Equal(t, []int{6, 15}, r.Raw())

	require.ErrorIs(t, r.MulAssign(ones), shape.ErrDimensionMismatch)
}

func TestComplex(t *testing.T) {
	z := complex(5, 2)
	p := mustEager(t, 2, 2, z, z*z, -z, -z*z)
	require.NoError(t, p.MulAssign(p))
	require.NoError(t, p.AddAssign(p))
	require.Equal(t, "(-88-244i) (48-1396i)\n(88+244i) (-48+1396i)\n", p.String())
}
