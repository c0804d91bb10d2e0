// SPDX-License-Identifier: MIT
// Package lazy_test contains shared fixtures.

package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/eager"
	"github.com/katalvlaran/lvmat/lazy"
	"github.com/katalvlaran/lvmat/scalar"
)

// hide wraps an Expr so code under test cannot see the concrete type.
// It forces the generic At path and the scratch-buffer aliasing path.
type hide[T scalar.Number] struct{ lazy.Expr[T] }

// probe counts At calls on the wrapped expression.
type probe[T scalar.Number] struct {
	lazy.Expr[T]
	reads int
}

func (p *probe[T]) At(i, j int) T {
	p.reads++
	return p.Expr.At(i, j)
}

// mustLazy builds an r×c lazy matrix from row-major values or fails the test.
func mustLazy[T scalar.Number](t testing.TB, r, c int, values ...T) *lazy.Matrix[T] {
	t.Helper()
	m, err := lazy.NewFromSlice(r, c, values)
	require.NoError(t, err)

	return m
}

// mustFilled builds an r×c lazy matrix with every element set to v.
func mustFilled[T scalar.Number](t testing.TB, r, c int, v T) *lazy.Matrix[T] {
	t.Helper()
	m, err := lazy.NewFilled(r, c, v)
	require.NoError(t, err)

	return m
}

// toEager copies a lazy matrix into the eager engine for cross-checking.
func toEager[T scalar.Number](t testing.TB, m *lazy.Matrix[T]) *eager.Matrix[T] {
	t.Helper()
	e, err := eager.NewFromSlice(m.Rows(), m.Cols(), m.Raw())
	require.NoError(t, err)

	return e
}

// seq returns 1, 2, ..., n as T.
func seq[T lazy.Real](n int) []T {
	out := make([]T, n)
	for idx := range out {
		out[idx] = T(idx + 1)
	}

	return out
}
