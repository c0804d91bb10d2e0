// SPDX-License-Identifier: MIT

// Package lazy - materialization: the only place arithmetic happens.
//
// Purpose:
//   - Walk the full Rows×Cols index space once, evaluate the expression at each
//     index, and store the result into concrete storage.
//   - Keep compound assignment correct when the right-hand side reads the target.
//
// Aliasing policy:
//   - aliasNone / aliasLocal: evaluate in place, row-major. Safe because each
//     write at (i,j) happens after the only read of the target at (i,j).
//   - aliasGlobal: evaluate into a scratch buffer, then swap it in.

package lazy

import (
	"github.com/katalvlaran/lvmat/scalar"
	"github.com/katalvlaran/lvmat/shape"
)

// evaluate fills dst (len == r*c) with e(i,j) in row-major order.
func evaluate[T scalar.Number](dst []T, e Expr[T], r, c int) {
	// Storage fast path: a single copy.
	if src, ok := e.(*Matrix[T]); ok {
		copy(dst, src.data)
		return
	}
	var i, j, base int
	for i = 0; i < r; i++ { // fixed i→j order
		base = i * c
		for j = 0; j < c; j++ {
			dst[base+j] = e.At(i, j)
		}
	}
}

// Materialize evaluates e into a freshly allocated matrix of e's shape.
//
// Implementation:
//   - Stage 1: ValidateNotNil(e); read Rows/Cols once.
//   - Stage 2: allocate the buffer and store e(i,j) for every (i,j), row-major.
//
// Errors:
//   - shape.ErrNilMatrix, shape.ErrInvalidDimensions (only from a broken external Expr).
//
// Determinism:
//   - Fixed i→j traversal; materializing the same tree twice yields identical buffers.
//
// Complexity:
//   - Time O(r*c) element evaluations, Space O(r*c).
func Materialize[T scalar.Number](e Expr[T]) (*Matrix[T], error) {
	if err := shape.ValidateNotNil(e); err != nil {
		return nil, opErrorf("Materialize", err)
	}
	r, c := e.Rows(), e.Cols()
	m, err := New[T](r, c)
	if err != nil {
		return nil, opErrorf("Materialize", err)
	}
	evaluate(m.data, e, r, c)

	return m, nil
}

// MustMaterialize is like Materialize but panics on error.
func MustMaterialize[T scalar.Number](e Expr[T]) *Matrix[T] {
	m, err := Materialize(e)
	if err != nil {
		panic(err)
	}

	return m
}

// Assign overwrites m with e(i,j) for every (i,j). m is not resized.
//
// Implementation:
//   - Stage 1: validate e non-nil and shape(e) == shape(m).
//   - Stage 2: classify how e reads m.
//   - Stage 3: in place for aliasNone/aliasLocal; scratch buffer + swap for aliasGlobal.
//
// Errors:
//   - shape.ErrNilMatrix, shape.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c) evaluations; Space O(1) in place, O(r*c) on the scratch path.
func (m *Matrix[T]) Assign(e Expr[T]) error {
	if err := shape.ValidateBinarySameShape(m, e); err != nil {
		return opErrorf(opAssign, err)
	}
	if aliasOf(e, m) == aliasGlobal {
		scratch := make([]T, len(m.data))
		evaluate(scratch, e, m.r, m.c)
		m.data = scratch

		return nil
	}
	evaluate(m.data, e, m.r, m.c)

	return nil
}

// AddAssign computes m = m + e.
// The result always equals Materialize(m + e): m.AddAssign(m) doubles every
// element, and an e that reads m off-position (e.g. a product of m) is
// evaluated against a snapshot.
//
// Errors:
//   - shape.ErrNilMatrix, shape.ErrDimensionMismatch.
func (m *Matrix[T]) AddAssign(e Expr[T]) error {
	s, err := Add[T](m, e)
	if err != nil {
		return opErrorf(opAddAssign, err)
	}
	if err = m.Assign(s); err != nil {
		return opErrorf(opAddAssign, err)
	}

	return nil
}

// MulAssign computes m = m × e. The column count of m becomes e.Cols().
//
// Implementation:
//   - Stage 1: build the Product node (validates m.Cols == e.Rows).
//   - Stage 2: materialize it into a freshly sized temporary.
//   - Stage 3: move the temporary into m.
//
// Every output cell reads a full row of m as it was before the call, so the product is
// never evaluated in place.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c) for the temporary.
func (m *Matrix[T]) MulAssign(e Expr[T]) error {
	p, err := Mul[T](m, e)
	if err != nil {
		return opErrorf(opMulAssign, err)
	}
	tmp, err := Materialize[T](p)
	if err != nil {
		return opErrorf(opMulAssign, err)
	}

	return m.MoveFrom(tmp)
}

// AddScalarAssign adds s to every element in place.
func (m *Matrix[T]) AddScalarAssign(s T) {
	for idx := range m.data {
		m.data[idx] += s
	}
}

// MulScalarAssign multiplies every element by s in place.
func (m *Matrix[T]) MulScalarAssign(s T) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}
