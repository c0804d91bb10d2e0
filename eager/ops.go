// SPDX-License-Identifier: MIT
// Package eager provides immediate arithmetic on Matrix: element-wise
// addition, scalar add/multiply, and matrix multiplication. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches. Operands are never mutated except by the *Assign forms.

package eager

import (
	"fmt"

	"github.com/katalvlaran/lvmat/scalar"
	"github.com/katalvlaran/lvmat/shape"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opAddAssign = "AddAssign"
	opMul       = "Mul"
	opMulAssign = "MulAssign"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes C = A + B into a fresh matrix.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result(rows, cols).
//   - Stage 2: single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	if err := shape.ValidateBinarySameShape(m, other); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	res := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx := range m.data { // deterministic 0..n-1
		res.data[idx] = m.data[idx] + other.data[idx]
	}

	return res, nil
}

// AddScalar returns a fresh matrix with s added to every element.
func (m *Matrix[T]) AddScalar(s T) *Matrix[T] {
	res := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v + s
	}

	return res
}

// AddAssign adds other into m in place. Element-local, so m.AddAssign(m) is safe.
func (m *Matrix[T]) AddAssign(other *Matrix[T]) error {
	if err := shape.ValidateBinarySameShape(m, other); err != nil {
		return opErrorf(opAddAssign, err)
	}
	for idx := range m.data {
		m.data[idx] += other.data[idx]
	}

	return nil
}

// AddScalarAssign adds s to every element in place.
func (m *Matrix[T]) AddScalarAssign(s T) {
	for idx := range m.data {
		m.data[idx] += s
	}
}

// Mul performs C = A × B into a fresh matrix.
//
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimension (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if err := shape.ValidateMulCompatible(m, other); err != nil {
		return nil, opErrorf(opMul, err)
	}

	return &Matrix[T]{r: m.r, c: other.c, data: mulInto(m, other)}, nil
}

// mulInto returns the row-major buffer of a × b (shapes already validated).
func mulInto[T scalar.Number](a, b *Matrix[T]) []T {
	aRows, aCols, bCols := a.r, a.c, b.c
	out := make([]T, aRows*bCols)
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				out[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return out
}

// MulScalar returns a fresh matrix with every element multiplied by s.
func (m *Matrix[T]) MulScalar(s T) *Matrix[T] {
	res := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * s
	}

	return res
}

// MulAssign computes m = m × other. The product is built in a fresh buffer of
// m.Rows × other.Cols and swapped in; m's column count becomes other.Cols.
// m.MulAssign(m) is safe for square m.
func (m *Matrix[T]) MulAssign(other *Matrix[T]) error {
	if err := shape.ValidateMulCompatible(m, other); err != nil {
		return opErrorf(opMulAssign, err)
	}
	buf := mulInto(m, other)
	m.c = other.c // read before any write to m (other may be m)
	m.data = buf

	return nil
}

// MulScalarAssign multiplies every element by s in place.
func (m *Matrix[T]) MulScalarAssign(s T) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}
