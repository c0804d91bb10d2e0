// Package lazy implements dense matrices with deferred evaluation.
//
// 🚀 What is lazy evaluation here?
//
//	Arithmetic on expressions does not compute anything. Add, Mul, AddScalar
//	and MulScalar return small nodes that remember their operands by
//	reference. A chain such as (a+b+c)*d builds a tree:
//
//	        Product
//	        /     \
//	      Sum      d
//	     /   \
//	   Sum    c
//	  /   \
//	 a     b
//
//	The work happens once, when the tree is materialized into a Matrix
//	(Materialize, Assign, AddAssign, MulAssign). No intermediate matrix is
//	ever allocated for a+b.
//
// ✨ Key features:
//   - Matrix: row-major storage (offset = Cols*i + j) owning its buffer.
//   - Expr: Rows/Cols/At contract shared by matrices and computed nodes.
//   - Sum, Product, ScalarSum, ScalarProduct, Mapped, Memo nodes.
//   - Shape errors are reported when a node is built, before any element is read.
//   - Aliasing-safe compound assignment: m.AddAssign(m) doubles m; m.MulAssign(x)
//     always goes through a fresh buffer.
//
// ⚙️ Usage:
//
//	a, _ := lazy.NewFilled(10, 5, 1.0)
//	b, _ := lazy.NewFilled(10, 5, 2.0)
//	o, err := lazy.From[float64](a).Add(b).AddScalar(10).Materialize()
//	if err != nil {
//		// shape.ErrDimensionMismatch
//	}
//	_ = o.AddAssign(o) // every element is now 26
//
// Lifetime & aliasing:
//
//	Nodes are views. They keep their operands alive (garbage collected), and
//	they observe writes made to operand matrices until they are materialized.
//	Writing a matrix from another goroutine while a node that reads it is
//	evaluated is a data race; no locking is provided.
//
// Performance:
//
//   - Sum/scalar nodes: O(1) per element.
//   - Product: O(K) per element, recomputed on every read (wrap in Memoize to cache).
//   - Materialize: one pass over Rows×Cols.
package lazy
