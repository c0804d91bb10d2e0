// SPDX-License-Identifier: MIT

// Package lazy: the expression contract and the aliasing classification used
// by materialization.
package lazy

import (
	"github.com/katalvlaran/lvmat/scalar"
	"github.com/katalvlaran/lvmat/shape"
)

// Expr is the capability every participant of an expression tree provides.
//
// Complexity notes: Rows and Cols are O(1); At cost depends on the node
// (O(1) for storage and element-wise nodes, O(K) for a product).
type Expr[T scalar.Number] interface {
	shape.Shaped

	// At returns the value at (i, j) by value.
	// Callers guarantee 0 ≤ i < Rows() and 0 ≤ j < Cols(); no validation happens here.
	At(i, j int) T
}

// alias classifies how an expression reads a given target matrix.
type alias int

const (
	aliasNone   alias = iota // target is never read
	aliasLocal               // target is read only at the element being produced
	aliasGlobal              // target is read at other positions, or reads are unknown
)

// join combines the classification of two subtrees.
func (a alias) join(b alias) alias { return max(a, b) }

// aliaser is implemented by every type in this package.
// target is a *Matrix of any element type; comparison is by identity.
type aliaser interface {
	aliasOf(target any) alias
}

// aliasOf classifies e against target.
// Expressions defined outside this package are treated as aliasGlobal:
// their reads cannot be inspected, so materialization takes the scratch path.
func aliasOf(e any, target any) alias {
	if a, ok := e.(aliaser); ok {
		return a.aliasOf(target)
	}

	return aliasGlobal
}
