// SPDX-License-Identifier: MIT

// Package shape holds the (rows, cols) vocabulary shared by the lazy and eager
// engines: the Shaped contract, the Shape value type, sentinel errors and the
// canonical validators.
//
// Purpose:
//   - Keep a single source of truth for dimension rules (Add, Mul, Assign, index).
//   - Return plain sentinels wrapped with a validator tag so call sites can wrap again.
package shape

import "fmt"

// Shaped is anything with a row and column count.
// Both concrete matrices and expression nodes satisfy it.
type Shaped interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int
	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
}

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows int
	Cols int
}

// Of reads the shape of s.
func Of(s Shaped) Shape { return Shape{Rows: s.Rows(), Cols: s.Cols()} }

// Len returns Rows*Cols, the number of stored elements.
func (s Shape) Len() int { return s.Rows * s.Cols }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Offset returns the row-major offset of (i, j) for this shape: Cols*i + j.
// No bounds check; pair with ValidateIndex at public surfaces.
func (s Shape) Offset(i, j int) int { return s.Cols*i + j }
