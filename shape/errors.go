// SPDX-License-Identifier: MIT
// Package shape: sentinel error set shared by every matrix engine.
// All engines MUST return these sentinels (optionally wrapped with %w) and
// tests MUST check them via errors.Is. Panics are reserved for the explicit
// Must* helpers and for the unchecked At/Ref accessors.

package shape

import "errors"

// Every message is prefixed with "matrix: ..." so logs from both engines grep
// the same way. Wrap with fmt.Errorf("Op: %w", ErrX) at the call site.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> invalid dimensions -> dimension mismatch -> index range.

var (
	// ErrDimensionMismatch indicates incompatible operand shapes: Add needs
	// identical rows and cols, Mul needs left.Cols == right.Rows, Assign needs
	// the target shape to equal the source shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside [0,Rows)×[0,Cols).
	// Checked accessors (Get/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil matrix or expression was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil operand")
)
