// SPDX-License-Identifier: MIT

// Package lazy - computed expression nodes.
//
// Purpose:
//   - Describe pending computations without storage of their own.
//   - Every node binds its operands by reference and evaluates At(i,j) on demand,
//     recursively into the operands.
//
// Construction:
//   - Nodes are built only by the validating operators in ops.go, so the
//     shape invariants below always hold for a node that exists.

package lazy

import (
	"github.com/katalvlaran/lvmat/scalar"
)

// Compile-time assertions.
var (
	_ Expr[float64] = (*Sum[float64])(nil)
	_ Expr[float64] = (*Product[float64])(nil)
	_ Expr[float64] = (*ScalarSum[float64])(nil)
	_ Expr[float64] = (*ScalarProduct[float64])(nil)
	_ Expr[float64] = (*Mapped[int, float64])(nil)
	_ Expr[float64] = (*Memo[float64])(nil)
)

// ---------- Sum ----------

// Sum is the element-wise sum of two equally shaped expressions.
// Invariant: a.Rows()==b.Rows() && a.Cols()==b.Cols() (checked by Add).
type Sum[T scalar.Number] struct {
	a, b Expr[T]
}

// Rows returns the left operand's row count.
func (s *Sum[T]) Rows() int { return s.a.Rows() }

// Cols returns the left operand's column count. Both operands agree by
// construction; rows and cols are sourced from the same side.
func (s *Sum[T]) Cols() int { return s.a.Cols() }

// At returns a(i,j) + b(i,j). O(1) plus the operands' cost.
func (s *Sum[T]) At(i, j int) T { return s.a.At(i, j) + s.b.At(i, j) }

func (s *Sum[T]) aliasOf(target any) alias {
	return aliasOf(s.a, target).join(aliasOf(s.b, target))
}

// ---------- Product ----------

// Product is the matrix product of two expressions.
// Invariant: a.Cols()==b.Rows() (checked by Mul).
//
// Every call to At recomputes the full dot product; reading the same (i,j)
// twice costs twice. Wrap in Memoize when elements are read repeatedly.
type Product[T scalar.Number] struct {
	a, b Expr[T]

	// da, db are set when the operand is a *Matrix, enabling a flat-slice
	// dot product. The buffer is read live, so MoveFrom on the operand is seen.
	da, db *Matrix[T]
}

func newProduct[T scalar.Number](a, b Expr[T]) *Product[T] {
	p := &Product[T]{a: a, b: b}
	p.da, _ = a.(*Matrix[T])
	p.db, _ = b.(*Matrix[T])

	return p
}

// Rows returns the left operand's row count.
func (p *Product[T]) Rows() int { return p.a.Rows() }

// Cols returns the right operand's column count.
func (p *Product[T]) Cols() int { return p.b.Cols() }

// At returns Σ_{k<a.Cols()} a(i,k)·b(k,j).
//
// Implementation:
//   - Stage 1: if both operands are *Matrix, walk row i of a and column j of b
//     directly on the backing slices.
//   - Stage 2: otherwise recurse through At on both operands, fixed k order.
//
// Complexity:
//   - Time O(K) where K = a.Cols(), Space O(1).
func (p *Product[T]) At(i, j int) T {
	var total T
	if p.da != nil && p.db != nil {
		inner := p.da.c
		row := p.da.data[i*inner : (i+1)*inner] // row i of a
		stride := p.db.c
		for k, av := range row {
			total += av * p.db.data[k*stride+j]
		}

		return total
	}

	inner := p.a.Cols()
	for k := 0; k < inner; k++ {
		total += p.a.At(i, k) * p.b.At(k, j)
	}

	return total
}

// aliasOf is aliasGlobal whenever either side reads target: each output cell
// depends on a whole row of a and a whole column of b.
func (p *Product[T]) aliasOf(target any) alias {
	if aliasOf(p.a, target).join(aliasOf(p.b, target)) == aliasNone {
		return aliasNone
	}

	return aliasGlobal
}

// ---------- Scalar nodes ----------

// ScalarSum adds a constant to every element of an expression.
type ScalarSum[T scalar.Number] struct {
	a Expr[T]
	s T
}

// Rows returns the operand's row count.
func (n *ScalarSum[T]) Rows() int { return n.a.Rows() }

// Cols returns the operand's column count.
func (n *ScalarSum[T]) Cols() int { return n.a.Cols() }

// At returns a(i,j) + s.
func (n *ScalarSum[T]) At(i, j int) T { return n.a.At(i, j) + n.s }

func (n *ScalarSum[T]) aliasOf(target any) alias { return aliasOf(n.a, target) }

// ScalarProduct multiplies every element of an expression by a constant.
type ScalarProduct[T scalar.Number] struct {
	a Expr[T]
	s T
}

// Rows returns the operand's row count.
func (n *ScalarProduct[T]) Rows() int { return n.a.Rows() }

// Cols returns the operand's column count.
func (n *ScalarProduct[T]) Cols() int { return n.a.Cols() }

// At returns a(i,j) * s.
func (n *ScalarProduct[T]) At(i, j int) T { return n.a.At(i, j) * n.s }

func (n *ScalarProduct[T]) aliasOf(target any) alias { return aliasOf(n.a, target) }

// ---------- Mapped ----------

// Mapped applies f to every element of an expression, possibly changing the
// element type. It is how operands of different element types are brought to
// a common type (e.g. int → float64, float64 → complex128).
type Mapped[From, To scalar.Number] struct {
	a Expr[From]
	f func(From) To
}

// Rows returns the operand's row count.
func (n *Mapped[From, To]) Rows() int { return n.a.Rows() }

// Cols returns the operand's column count.
func (n *Mapped[From, To]) Cols() int { return n.a.Cols() }

// At returns f(a(i,j)).
func (n *Mapped[From, To]) At(i, j int) To { return n.f(n.a.At(i, j)) }

func (n *Mapped[From, To]) aliasOf(target any) alias { return aliasOf(n.a, target) }

// ---------- Memo ----------

// Memo caches the elements of an expression the first time each is read.
// The cache belongs to this node instance; it is stale if an operand matrix is
// written after an element was cached. Call Reset to drop it.
type Memo[T scalar.Number] struct {
	a    Expr[T]
	r, c int    // shape captured at construction
	vals []T    // cached values, row-major
	done []bool // done[idx] reports whether vals[idx] is filled
}

// Rows returns the row count captured at construction.
func (n *Memo[T]) Rows() int { return n.r }

// Cols returns the column count captured at construction.
func (n *Memo[T]) Cols() int { return n.c }

// At returns the cached a(i,j), computing it on first access.
func (n *Memo[T]) At(i, j int) T {
	idx := n.c*i + j
	if !n.done[idx] {
		n.vals[idx] = n.a.At(i, j)
		n.done[idx] = true
	}

	return n.vals[idx]
}

// Reset drops every cached value.
func (n *Memo[T]) Reset() {
	clear(n.done)
}

// aliasOf is aliasGlobal when the wrapped expression reads target: cached
// cells may have been computed before target was overwritten.
func (n *Memo[T]) aliasOf(target any) alias {
	if aliasOf(n.a, target) == aliasNone {
		return aliasNone
	}

	return aliasGlobal
}
