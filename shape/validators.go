// SPDX-License-Identifier: MIT
// Package: shape
//
// Purpose:
//  - Provide the canonical validation checks used by both engines.
//  - Keep operators minimal by delegating shape/nil/index checks here.
//  - Return sentinels wrapped with a validator tag (errors.Is keeps working).
//
// Determinism & Performance:
//  - All checks are O(1), pure and allocation-free on the success path.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape.

package shape

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims ensures rows and cols are non-negative.
// Zero-sized matrices are legal (a moved-from matrix is 0×0).
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil ensures s is neither a nil interface nor a typed nil pointer.
//
// Complexity: O(1).
// Use as the first step in composite validations.
func ValidateNotNil(s Shaped) error {
	if IsNil(s) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// IsNil reports whether v is a nil interface or holds a nil pointer.
// A typed nil (*Matrix)(nil) stored in an interface is still unusable.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Shaped) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Shaped) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < Rows and 0 ≤ j < Cols.
func ValidateIndex(s Shaped, i, j int) error {
	if i < 0 || i >= s.Rows() {
		return validatorErrorf("ValidateIndex: Row", ErrOutOfRange)
	}
	if j < 0 || j >= s.Cols() {
		return validatorErrorf("ValidateIndex: Column", ErrOutOfRange)
	}

	return nil
}
