// SPDX-License-Identifier: MIT

package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/lazy"
	"github.com/katalvlaran/lvmat/shape"
)

func TestNew_Shapes(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"2x3", 2, 3, nil},
		{"empty", 0, 0, nil},
		{"zero rows", 0, 4, nil},
		{"negative rows", -1, 2, shape.ErrInvalidDimensions},
		{"negative cols", 2, -1, shape.ErrInvalidDimensions},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := lazy.New[float64](tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			require.Len(t, m.Raw(), tc.rows*tc.cols)
			for _, v := range m.Raw() {
				require.Zero(t, v)
			}
		})
	}
}

func TestRowMajorLayout(t *testing.T) {
	m := mustLazy(t, 2, 3, seq[int](6)...)
	// element (i,j) lives at offset N*i + j
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, m.Raw()[3*i+j], m.At(i, j))
			require.Equal(t, shape.Shape{Rows: 2, Cols: 3}.Offset(i, j), 3*i+j)
		}
	}
	require.Equal(t, 6, m.At(1, 2))
}

func TestGetSet_Bounds(t *testing.T) {
	m := mustFilled(t, 2, 2, 1.5)

	require.NoError(t, m.Set(1, 0, 9))
	v, err := m.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		_, err = m.Get(idx[0], idx[1])
		require.ErrorIs(t, err, shape.ErrOutOfRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), shape.ErrOutOfRange)
	}
}

func TestRef_MutatesInPlace(t *testing.T) {
	m := mustFilled(t, 2, 2, 1)
	*m.Ref(0, 1) = 7
	require.Equal(t, []int{1, 7, 1, 1}, m.Raw())
}

func TestLoad(t *testing.T) {
	t.Run("short input zero-fills", func(t *testing.T) {
		m := mustFilled(t, 2, 2, 9)
		m.Load([]int{1, 2, 3})
		require.Equal(t, []int{1, 2, 3, 0}, m.Raw())
	})
	t.Run("long input truncates", func(t *testing.T) {
		m := mustFilled(t, 2, 2, 9)
		m.Load([]int{1, 2, 3, 4, 5, 6})
		require.Equal(t, []int{1, 2, 3, 4}, m.Raw())
	})
	t.Run("empty input clears", func(t *testing.T) {
		m := mustFilled(t, 1, 3, 9)
		m.Load(nil)
		require.Equal(t, []int{0, 0, 0}, m.Raw())
	})
	t.Run("caller keeps ownership", func(t *testing.T) {
		src := []int{1, 2}
		m := mustLazy(t, 1, 2, src...)
		src[0] = 100
		require.Equal(t, 1, m.At(0, 0))
	})
}

func TestClone_IsDeep(t *testing.T) {
	m := mustLazy(t, 1, 2, 1.0, 2.0)
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 42))
	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, m.Shape(), cp.Shape())
}

func TestMoveFrom(t *testing.T) {
	dst := mustFilled(t, 1, 1, 0)
	src := mustLazy(t, 2, 3, seq[int](6)...)

	require.NoError(t, dst.MoveFrom(src))
	require.Equal(t, shape.Shape{Rows: 2, Cols: 3}, dst.Shape())
	require.Equal(t, seq[int](6), dst.Raw())

	// moved-from source is a valid empty matrix
	require.Equal(t, 0, src.Rows())
	require.Equal(t, 0, src.Cols())
	require.Empty(t, src.Raw())
	require.Equal(t, "", src.String())

	require.NoError(t, dst.MoveFrom(dst))
	require.Equal(t, seq[int](6), dst.Raw())

	require.ErrorIs(t, dst.MoveFrom(nil), shape.ErrNilMatrix)
}

func TestMatrixIsExpr(t *testing.T) {
	var e lazy.Expr[int] = mustLazy(t, 1, 2, 3, 4)
	require.Equal(t, 1, e.Rows())
	require.Equal(t, 2, e.Cols())
	require.Equal(t, 4, e.At(0, 1))
}
