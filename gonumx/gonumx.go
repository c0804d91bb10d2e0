// SPDX-License-Identifier: MIT

// Package gonumx bridges float64 lazy expressions and gonum matrices.
//
// Purpose:
//   - View: expose any lazy.Expr[float64] as a gonum mat.Matrix without evaluating it.
//   - Wrap: use any gonum mat.Matrix as an operand of a lazy expression tree.
//   - ToDense/FromDense: materialize across the boundary.
//
// Views stay lazy on both sides: gonum reads elements through At, which
// evaluates the expression tree on demand. Pass the result of ToDense to gonum
// routines that read elements repeatedly (e.g. mat.Dense.Mul).
package gonumx

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/lazy"
	"github.com/katalvlaran/lvmat/shape"
)

// Compile-time assertions.
var (
	_ mat.Matrix         = exprMatrix{}
	_ fmt.Stringer       = exprMatrix{}
	_ lazy.Expr[float64] = gonumExpr{}
)

// exprMatrix adapts a lazy expression to mat.Matrix.
type exprMatrix struct {
	e lazy.Expr[float64]
}

// View returns e as a mat.Matrix. Dims/At delegate to e; T returns a
// transposing view.
//
// Errors:
//   - shape.ErrNilMatrix when e is nil.
func View(e lazy.Expr[float64]) (mat.Matrix, error) {
	if err := shape.ValidateNotNil(e); err != nil {
		return nil, fmt.Errorf("View: %w", err)
	}

	return exprMatrix{e: e}, nil
}

// Dims returns the expression's shape.
func (m exprMatrix) Dims() (r, c int) { return m.e.Rows(), m.e.Cols() }

// At evaluates the expression at (i, j). gonum's panic-on-range contract is
// honoured by checking indices before evaluation.
func (m exprMatrix) At(i, j int) float64 {
	if err := shape.ValidateIndex(m.e, i, j); err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return m.e.At(i, j)
}

// T returns the transpose view.
func (m exprMatrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// String renders the view with gonum's formatter.
func (m exprMatrix) String() string { return fmt.Sprintf("%v", mat.Formatted(m)) }

// gonumExpr adapts a mat.Matrix to lazy.Expr[float64].
type gonumExpr struct {
	m mat.Matrix
}

// Wrap returns m as a lazy operand. Reads go through m.At.
// A nil m, including a typed nil such as (*mat.Dense)(nil), is rejected.
func Wrap(m mat.Matrix) (lazy.Expr[float64], error) {
	if shape.IsNil(m) {
		return nil, fmt.Errorf("Wrap: %w", shape.ErrNilMatrix)
	}

	return gonumExpr{m: m}, nil
}

// Rows returns the gonum row count.
func (g gonumExpr) Rows() int {
	r, _ := g.m.Dims()
	return r
}

// Cols returns the gonum column count.
func (g gonumExpr) Cols() int {
	_, c := g.m.Dims()
	return c
}

// At reads the gonum element.
func (g gonumExpr) At(i, j int) float64 { return g.m.At(i, j) }

// ToDense materializes e into a new gonum Dense.
// A 0-sized expression yields an empty (zero value) Dense, since gonum rejects
// zero dimensions in NewDense.
//
// Complexity: O(r*c) evaluations.
func ToDense(e lazy.Expr[float64]) (*mat.Dense, error) {
	m, err := lazy.Materialize(e)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return &mat.Dense{}, nil
	}

	// lazy.Matrix is row-major with stride == cols, the same layout gonum uses.
	return mat.NewDense(m.Rows(), m.Cols(), m.Raw()), nil
}

// FromDense copies a gonum matrix into a new lazy matrix.
func FromDense(d mat.Matrix) (*lazy.Matrix[float64], error) {
	if shape.IsNil(d) {
		return nil, fmt.Errorf("FromDense: %w", shape.ErrNilMatrix)
	}
	g := gonumExpr{m: d}
	m, err := lazy.Materialize[float64](g)
	if err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}

	return m, nil
}
