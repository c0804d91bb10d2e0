// SPDX-License-Identifier: MIT

// Package eager - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the checked surface: Get/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Get/Set: O(1); Clone: O(r*c); MoveFrom: O(1).

package eager

import (
	"bufio"
	"fmt"
	"io"
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
	ctxPrint    = "Print"
)

// ---------- Formatting literals ----------
const (
	_fmtSep    = " "
	_fmtRowEnd = "\n"
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a concrete row-major matrix evaluated eagerly.
//   - r,c hold dimensions (rows, cols), both ≥ 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Matrix[T scalar.Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows ≥ 0 && cols ≥ 0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - shape.ErrInvalidDimensions.
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
func NewFilled[T scalar.Number](rows, cols int, v T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// NewFromSlice creates an r×c matrix and loads values into it (see Load).
func NewFromSlice[T scalar.Number](rows, cols int, values []T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Load(values)

	return m, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Matrix[T]) Shape() shape.Shape { return shape.Shape{Rows: m.r, Cols: m.c} }

// At returns the value at (i, j) without bounds validation.
func (m *Matrix[T]) At(i, j int) T { return m.data[m.c*i+j] }

// Get returns the value at (i, j) or ErrOutOfRange.
func (m *Matrix[T]) Get(i, j int) (T, error) {
	if err := shape.ValidateIndex(m, i, j); err != nil {
		var zero T
		return zero, matrixErrorf(ctxGet, i, j, err)
	}

	return m.data[m.c*i+j], nil
}

// Set stores v at (i, j) or returns ErrOutOfRange.
func (m *Matrix[T]) Set(i, j int, v T) error {
	if err := shape.ValidateIndex(m, i, j); err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}
	m.data[m.c*i+j] = v

	return nil
}

// Raw exposes the backing slice in row-major order.
func (m *Matrix[T]) Raw() []T { return m.data }

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}

// MoveFrom transfers src's buffer and shape into m, leaving src as 0×0.
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

// Load copies min(len(values), Rows*Cols) values row-major and zero-fills the rest.
func (m *Matrix[T]) Load(values []T) {
	n := copy(m.data, values)
	var zero T
	for idx := n; idx < len(m.data); idx++ {
		m.data[idx] = zero
	}
}

// Print writes rows of space-separated values, one row per line.
// Complexity: O(r*c).
func (m *Matrix[T]) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var i, j, base int
	for i = 0; i < m.r && m.c > 0; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				_, _ = bw.WriteString(_fmtSep)
			}
			_, _ = fmt.Fprintf(bw, "%v", m.data[base+j])
		}
		_, _ = bw.WriteString(_fmtRowEnd)
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(ctxPrint, m.r, m.c, err)
	}

	return nil
}

// String renders the Print format.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	_ = m.Print(&b)

	return b.String()
}
