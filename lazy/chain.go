// SPDX-License-Identifier: MIT

package lazy

import (
	"github.com/katalvlaran/lvmat/scalar"
)

// Chain is a fluent, immutable builder over Expr that records the first error.
// After an error every further step is a no-op, mirroring the short-circuit of
// a failed assertion in an operator chain:
//
//	o, err := lazy.From[float64](a).Add(b).AddScalar(10).Materialize()
//
// The zero Chain is invalid; start with From.
type Chain[T scalar.Number] struct {
	e   Expr[T]
	err error
}

// From starts a chain at e.
func From[T scalar.Number](e Expr[T]) Chain[T] {
	return Chain[T]{e: e}
}

// Add appends "+ b".
func (c Chain[T]) Add(b Expr[T]) Chain[T] {
	if c.err != nil {
		return c
	}
	n, err := Add(c.e, b)
	if err != nil {
		return Chain[T]{err: err}
	}

	return Chain[T]{e: n}
}

// Mul appends "× b".
func (c Chain[T]) Mul(b Expr[T]) Chain[T] {
	if c.err != nil {
		return c
	}
	n, err := Mul(c.e, b)
	if err != nil {
		return Chain[T]{err: err}
	}

	return Chain[T]{e: n}
}

// AddScalar appends "+ s".
func (c Chain[T]) AddScalar(s T) Chain[T] {
	if c.err != nil {
		return c
	}
	n, err := AddScalar(c.e, s)
	if err != nil {
		return Chain[T]{err: err}
	}

	return Chain[T]{e: n}
}

// MulScalar appends "* s".
func (c Chain[T]) MulScalar(s T) Chain[T] {
	if c.err != nil {
		return c
	}
	n, err := MulScalar(c.e, s)
	if err != nil {
		return Chain[T]{err: err}
	}

	return Chain[T]{e: n}
}

// Expr returns the built expression or the first error.
func (c Chain[T]) Expr() (Expr[T], error) {
	if c.err != nil {
		return nil, c.err
	}

	return c.e, nil
}

// Err returns the first error recorded by the chain, if any.
func (c Chain[T]) Err() error { return c.err }

// Materialize evaluates the chain into a new matrix.
func (c Chain[T]) Materialize() (*Matrix[T], error) {
	if c.err != nil {
		return nil, c.err
	}

	return Materialize(c.e)
}

// AssignTo evaluates the chain into dst (see Matrix.Assign).
func (c Chain[T]) AssignTo(dst *Matrix[T]) error {
	if c.err != nil {
		return c.err
	}

	return dst.Assign(c.e)
}
