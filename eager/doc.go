// Package eager implements dense matrices with immediate evaluation.
//
// Every operation allocates its result and computes it before returning:
// a.Add(b) walks both buffers once and hands back a new Matrix. Chains such
// as a+b+c therefore allocate one temporary per operator.
//
// The package mirrors the lazy engine's public surface (constructors, checked
// and unchecked accessors, Load, Print, +, +=, *, *=) and is the reference the
// lazy engine is tested and benchmarked against. A *Matrix also satisfies
// lazy.Expr (Rows/Cols/At), so eager results can feed lazy chains.
//
// Complexity:
//
//   - Add/AddScalar/MulScalar: O(r*c) time and memory.
//   - Mul: O(r*k*c) time, O(r*c) memory; i→k→j order over flat slices.
package eager
