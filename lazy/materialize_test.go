// SPDX-License-Identifier: MIT

package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/lazy"
	"github.com/katalvlaran/lvmat/scalar"
	"github.com/katalvlaran/lvmat/shape"
)

func TestMaterialize_AddScalarThenDouble(t *testing.T) {
	a := mustFilled(t, 10, 5, 1.0)
	b := mustFilled(t, 10, 5, 2.0)
	ab, err := lazy.Add[float64](a, b)
	require.NoError(t, err)
	e, err := lazy.AddScalar[float64](ab, 10)
	require.NoError(t, err)

	o, err := lazy.Materialize[float64](e)
	require.NoError(t, err)
	require.Equal(t, shape.Shape{Rows: 10, Cols: 5}, o.Shape())
	for _, v := range o.Raw() {
		require.Equal(t, 13.0, v)
	}

	require.NoError(t, o.AddAssign(o))
	for _, v := range o.Raw() {
		require.Equal(t, 26.0, v)
	}
}

func TestMaterialize_ProductTimesScalar(t *testing.T) {
	a := mustFilled(t, 100, 500, 2.0)
	b := mustFilled(t, 500, 100, 5.0)
	o, err := lazy.From[float64](a).Mul(b).MulScalar(1.0 / 3.0).Materialize()
	require.NoError(t, err)
	require.Equal(t, shape.Shape{Rows: 100, Cols: 100}, o.Shape())
	for _, v := range o.Raw() {
		require.InDelta(t, 1666.667, v, 1e-3)
	}
}

func TestMaterialize_Idempotent(t *testing.T) {
	a := mustLazy(t, 3, 2, seq[float64](6)...)
	b := mustLazy(t, 2, 3, seq[float64](6)...)
	e, err := lazy.From[float64](a).Mul(b).AddScalar(0.25).Expr()
	require.NoError(t, err)

	first, err := lazy.Materialize(e)
	require.NoError(t, err)
	second, err := lazy.Materialize(e)
	require.NoError(t, err)
	require.Equal(t, first.Raw(), second.Raw())
}

func TestMaterialize_CopyOfMatrix(t *testing.T) {
	a := mustLazy(t, 2, 2, 1, 2, 3, 4)
	cp, err := lazy.Materialize[int](a)
	require.NoError(t, err)
	require.Equal(t, a.Raw(), cp.Raw())
	cp.Raw()[0] = 100
	require.Equal(t, 1, a.At(0, 0))
}

func TestMaterialize_Empty(t *testing.T) {
	a := mustFilled(t, 0, 3, 1)
	b := mustFilled(t, 3, 0, 1)
	p, err := lazy.Materialize[int](lazy.MustMul[int](a, b))
	require.NoError(t, err)
	require.Equal(t, shape.Shape{Rows: 0, Cols: 0}, p.Shape())

	q, err := lazy.Materialize[int](lazy.MustMul[int](b, a))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, q.Raw())
}

func TestAddAssign_DoublesSelf(t *testing.T) {
	m := mustLazy(t, 2, 3, seq[int](6)...)
	require.NoError(t, m.AddAssign(m))
	require.Equal(t, []int{2, 4, 6, 8, 10, 12}, m.Raw())
}

func TestMulAssign_SquareMatchesEager(t *testing.T) {
	m := mustLazy(t, 3, 3, seq[int](9)...)
	want, err := toEager(t, m).Mul(toEager(t, m))
	require.NoError(t, err)

	require.NoError(t, m.MulAssign(m))
	require.Equal(t, want.Raw(), m.Raw())
}

func TestMulAssign_ChangesColumnCount(t *testing.T) {
	m := mustLazy(t, 2, 3, seq[int](6)...)
	n := mustLazy(t, 3, 1, 1, 1, 1)
	require.NoError(t, m.MulAssign(n))
	require.Equal(t, shape.Shape{Rows: 2, Cols: 1}, m.Shape())
	require.Equal(t, []int{6, 15}, m.Raw())
}

// TestAssign_ReadsSnapshotWhenAliased covers m = m*k + m, which reads m off-position.
func TestAssign_ReadsSnapshotWhenAliased(t *testing.T) {
	m := mustLazy(t, 2, 2, 1, 2, 3, 4)
	k := mustLazy(t, 2, 2, 0, 1, 1, 0) // swaps columns
	orig := m.Clone()

	e, err := lazy.From[int](m).Mul(k).Add(m).Expr()
	require.NoError(t, err)
	want, err := lazy.Materialize(e)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 7, 7}, want.Raw())

	require.NoError(t, m.Assign(e))
	require.Equal(t, want.Raw(), m.Raw())

	// AddAssign with a product of the target behaves the same way
	require.NoError(t, orig.AddAssign(lazy.MustMul[int](orig, k)))
	require.Equal(t, want.Raw(), orig.Raw())
}

// TestAssign_ExternalExprTakesScratchPath hides the target behind a foreign Expr.
func TestAssign_ExternalExprTakesScratchPath(t *testing.T) {
	m := mustLazy(t, 1, 3, 1, 2, 3)
	rev := reversed[int]{m}
	require.NoError(t, m.Assign(rev))
	require.Equal(t, []int{3, 2, 1}, m.Raw())
}

// TestAssign_AliasedReplacesBuffer pins that a retained Raw slice goes stale
// when Assign evaluates through a scratch buffer.
func TestAssign_AliasedReplacesBuffer(t *testing.T) {
	m := mustLazy(t, 1, 3, 1, 2, 3)
	raw := m.Raw()
	require.NoError(t, m.Assign(reversed[int]{m}))
	require.Equal(t, []int{3, 2, 1}, m.Raw())
	require.Equal(t, []int{1, 2, 3}, raw)

	k := mustLazy(t, 3, 3, 0, 0, 1, 0, 1, 0, 1, 0, 0)
	raw = m.Raw()
	require.NoError(t, m.AddAssign(lazy.MustMul[int](m, k)))
	require.Equal(t, []int{4, 4, 4}, m.Raw())
	require.Equal(t, []int{3, 2, 1}, raw)
}

// reversed mirrors columns; it reads the target off-position.
type reversed[T scalar.Number] struct{ lazy.Expr[T] }

func (r reversed[T]) At(i, j int) T { return r.Expr.At(i, r.Cols()-1-j) }

func TestAssign_Errors(t *testing.T) {
	m := mustFilled(t, 2, 2, 1)
	require.ErrorIs(t, m.Assign(nil), shape.ErrNilMatrix)
	require.ErrorIs(t, m.Assign(mustFilled(t, 2, 3, 1)), shape.ErrDimensionMismatch)
	require.Equal(t, []int{1, 1, 1, 1}, m.Raw())
}

func TestScalarAssign(t *testing.T) {
	m := mustLazy(t, 1, 3, 1.0, 2.0, 3.0)
	m.AddScalarAssign(1)
	m.MulScalarAssign(2)
	require.Equal(t, []float64{4, 6, 8}, m.Raw())
}

// TestComplexChain builds p = [z z²; -z -z²] with z = 5+2i, then p *= p; p += p.
func TestComplexChain(t *testing.T) {
	z := complex(5, 2)
	p := mustLazy(t, 2, 2, z, z*z, -z, -z*z)

	// direct complex arithmetic
	a, b, c, d := z, z*z, -z, -z*z
	want := []complex128{
		2 * (a*a + b*c), 2 * (a*b + b*d),
		2 * (c*a + d*c), 2 * (c*b + d*d),
	}

	require.NoError(t, p.MulAssign(p))
	require.NoError(t, p.AddAssign(p))
	require.True(t, scalar.AllClose(want, p.Raw(), 1e-12, 0), "got %v want %v", p.Raw(), want)
	require.Equal(t, complex(-88, -244), p.At(0, 0))
}

func TestFloat32Chain(t *testing.T) {
	p := mustFilled[float32](t, 5, 6, 0.1)
	q := mustFilled[float32](t, 6, 5, 10)
	r, err := lazy.Materialize[float32](lazy.MustMul[float32](p, q))
	require.NoError(t, err)
	require.NoError(t, r.MulAssign(r))
	require.NoError(t, r.AddAssign(r))
	for _, v := range r.Raw() {
		require.InDelta(t, 360, float64(v), 1e-3)
	}
}

func TestIntMixProbe(t *testing.T) {
	m := mustFilled(t, 100, 200, 5)
	n := mustFilled(t, 200, 100, 2)
	o := mustFilled(t, 100, 100, 100)
	e, err := lazy.From[int](m).Mul(n).Add(lazy.MustMul[int](o, o)).Expr()
	require.NoError(t, err)
	require.Equal(t, 1002000, e.At(50, 50))
}

// TestEagerOperands feeds eager matrices into a lazy chain.
func TestEagerOperands(t *testing.T) {
	a := mustLazy(t, 2, 2, 1, 2, 3, 4)
	e := toEager(t, a)

	s, err := lazy.Add[int](a, e)
	require.NoError(t, err)
	p, err := lazy.Mul[int](e, s)
	require.NoError(t, err)
	got := lazy.MustMaterialize[int](p)

	want, err := e.Mul(toEager(t, lazy.MustMaterialize[int](s)))
	require.NoError(t, err)
	require.Equal(t, want.Raw(), got.Raw())
}
