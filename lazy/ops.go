// SPDX-License-Identifier: MIT
// Package lazy - operators that build expression nodes.
//
// Every operator validates shapes eagerly and returns a node; none of them
// reads a single element. On mismatch no node exists, so no partial
// computation can ever be observed.
//
// Determinism & Policy:
//   - Validation is delegated to the shape package (single source of truth).
//   - Errors are wrapped as "<Op>: <validator>: <sentinel>" and match errors.Is.

package lazy

import (
	"fmt"

	"github.com/katalvlaran/lvmat/scalar"
	"github.com/katalvlaran/lvmat/shape"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opAddScalar = "AddScalar"
	opMulScalar = "MulScalar"
	opMap       = "Map"
	opMemoize   = "Memoize"
	opAssign    = "Assign"
	opAddAssign = "AddAssign"
	opMulAssign = "MulAssign"
	opFprint    = "Fprint"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns the node a + b.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: bind a and b by reference into a Sum node.
//
// Errors:
//   - shape.ErrNilMatrix (nil operand), shape.ErrDimensionMismatch (rows or cols differ).
//
// Complexity:
//   - Time O(1), Space O(1). No element is read.
func Add[T scalar.Number](a, b Expr[T]) (*Sum[T], error) {
	if err := shape.ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	return &Sum[T]{a: a, b: b}, nil
}

// Mul returns the node a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (a.Cols == b.Rows).
//   - Stage 2: bind a and b by reference into a Product node.
//
// Errors:
//   - shape.ErrNilMatrix (nil operand), shape.ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(1), Space O(1). The O(r*k*c) work is deferred to materialization.
func Mul[T scalar.Number](a, b Expr[T]) (*Product[T], error) {
	if err := shape.ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	return newProduct(a, b), nil
}

// AddScalar returns the node a + s (s added to every element).
func AddScalar[T scalar.Number](a Expr[T], s T) (*ScalarSum[T], error) {
	if err := shape.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opAddScalar, err)
	}

	return &ScalarSum[T]{a: a, s: s}, nil
}

// MulScalar returns the node a * s (every element multiplied by s).
func MulScalar[T scalar.Number](a Expr[T], s T) (*ScalarProduct[T], error) {
	if err := shape.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMulScalar, err)
	}

	return &ScalarProduct[T]{a: a, s: s}, nil
}

// Map returns the node f(a) applied element-wise.
// f must be pure: it may be called any number of times per element.
func Map[From, To scalar.Number](a Expr[From], f func(From) To) (*Mapped[From, To], error) {
	if err := shape.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMap, err)
	}
	if f == nil {
		return nil, opErrorf(opMap, shape.ErrNilMatrix)
	}

	return &Mapped[From, To]{a: a, f: f}, nil
}

// Convert returns a Mapped node converting each element with a Go conversion.
// It covers real-to-real promotions such as int → float64.
func Convert[From, To Real](a Expr[From]) (*Mapped[From, To], error) {
	return Map(a, func(v From) To { return To(v) })
}

// Real is the subset of scalar.Number convertible to each other with T(v).
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Memoize wraps a in a caching node; each element is computed at most once
// until Reset. Useful for products whose elements are read repeatedly.
// Complexity: O(r*c) memory for the cache, allocated eagerly.
func Memoize[T scalar.Number](a Expr[T]) (*Memo[T], error) {
	if err := shape.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMemoize, err)
	}
	r, c := a.Rows(), a.Cols()

	return &Memo[T]{a: a, r: r, c: c, vals: make([]T, r*c), done: make([]bool, r*c)}, nil
}

// ---------- Must* (fail-fast) ----------

// MustAdd is like Add but panics on a shape violation.
// Intended for chains whose shapes are known correct by construction.
func MustAdd[T scalar.Number](a, b Expr[T]) *Sum[T] {
	s, err := Add(a, b)
	if err != nil {
		panic(err)
	}

	return s
}

// MustMul is like Mul but panics on a shape violation.
func MustMul[T scalar.Number](a, b Expr[T]) *Product[T] {
	p, err := Mul(a, b)
	if err != nil {
		panic(err)
	}

	return p
}
