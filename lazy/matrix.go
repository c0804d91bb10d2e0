// SPDX-License-Identifier: MIT

// Package lazy - Matrix storage (row-major) & accessors.
//
// Purpose:
//   - Own a contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Act as the leaf of every expression tree (a "stored value" Expr).
//   - Offer both the unchecked contract read (At) and checked accessors (Get/Set).
//
// Complexity quicksheet:
//   - New/NewFilled: O(r*c); At/Get/Set/Ref: O(1); Clone: O(r*c); MoveFrom: O(1).

package lazy

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmat/scalar"
	"github.com/katalvlaran/lvmat/shape"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxGet      = "Get"
	ctxSet      = "Set"
	ctxMoveFrom = "MoveFrom"
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a concrete row-major matrix and the storage leaf of expression trees.
//   - r,c hold dimensions (rows, cols), both ≥ 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Matrix exclusively owns data; Clone copies it and MoveFrom transfers it.
type Matrix[T scalar.Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Expr[float64] = (*Matrix[float64])(nil)
	_ fmt.Stringer  = (*Matrix[float64])(nil)
	_ aliaser       = (*Matrix[float64])(nil)
)

// New creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows ≥ 0 && cols ≥ 0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of rows*cols elements.
//
// Errors:
//   - shape.ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T scalar.Number](rows, cols int) (*Matrix[T], error) {
	if err := shape.ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, rows, cols, err)
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
// Complexity: O(r*c).
func NewFilled[T scalar.Number](rows, cols int, v T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data { // deterministic 0..n-1
		m.data[idx] = v
	}

	return m, nil
}

// NewFromSlice creates an r×c matrix and loads values into it (see Load).
// values is copied; the caller keeps ownership of the slice.
func NewFromSlice[T scalar.Number](rows, cols int, values []T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Load(values)

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Matrix[T]) Shape() shape.Shape { return shape.Shape{Rows: m.r, Cols: m.c} }

// At returns the value at (i, j) without bounds validation.
// An index outside the declared shape panics (Go slice bounds) or, for
// j ≥ Cols with a valid flat offset, reads a neighbouring row. Use Get for a
// checked read.
func (m *Matrix[T]) At(i, j int) T { return m.data[m.c*i+j] }

// Ref returns a pointer to the element at (i, j) for in-place mutation.
// Unchecked like At. The pointer is invalidated by MoveFrom, MulAssign, and by
// Assign or AddAssign when the right-hand side reads m off-position.
func (m *Matrix[T]) Ref(i, j int) *T { return &m.data[m.c*i+j] }

// Get returns the value at (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Get(i, j int) (T, error) {
	if err := shape.ValidateIndex(m, i, j); err != nil {
		var zero T
		return zero, matrixErrorf(ctxGet, i, j, err)
	}

	return m.data[m.c*i+j], nil
}

// Set stores v at (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) error {
	if err := shape.ValidateIndex(m, i, j); err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}
	m.data[m.c*i+j] = v

	return nil
}

// Raw exposes the backing slice in row-major order.
// Do not retain it across MoveFrom, MulAssign, Assign or AddAssign: each may
// replace the buffer. Assign and AddAssign do so when the right-hand side reads
// m off-position, such as m.Assign(m*k + m).
func (m *Matrix[T]) Raw() []T { return m.data }

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}

// MoveFrom transfers src's buffer and shape into m.
// src is left as a valid, empty 0×0 matrix. Moving a matrix into itself is a no-op.
//
// Errors:
//   - shape.ErrNilMatrix when src is nil.
//
// Complexity: O(1); no element is copied.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(ctxMoveFrom, 0, 0, shape.ErrNilMatrix)
	}
	if src == m {
		return nil
	}
	m.r, m.c, m.data = src.r, src.c, src.data
	src.r, src.c, src.data = 0, 0, nil

	return nil
}

// Load copies min(len(values), Rows*Cols) values in row-major order and
// zero-fills any remaining cells. Extra values are ignored.
// Complexity: O(r*c).
func (m *Matrix[T]) Load(values []T) {
	n := copy(m.data, values) // copy stops at the shorter length
	var zero T
	for idx := n; idx < len(m.data); idx++ {
		m.data[idx] = zero
	}
}

// aliasOf reports aliasLocal when target is this very matrix.
func (m *Matrix[T]) aliasOf(target any) alias {
	if t, ok := target.(*Matrix[T]); ok && t == m {
		return aliasLocal
	}

	return aliasNone
}

// String renders rows of space-separated values, one row per line.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	_ = Fprint[T](&b, m) // strings.Builder never fails

	return b.String()
}
