// Package lvmat is a dense-matrix toolkit with two evaluation engines that
// share one vocabulary of shapes, sentinel errors and element types.
//
// What is inside?
//
//	A small, generic library for matrices of ints, floats and complex numbers:
//		• lazy: operators build expression nodes; arithmetic runs only on
//		  materialization (or when a single element is read)
//		• eager: every operator computes its full result immediately
//		• gonumx: float64 expressions viewed as gonum mat.Matrix and back
//
// Why two engines?
//
//   - a + b + c materialized lazily touches each output cell once, with no
//     intermediate matrices
//   - reading one element of a product costs one dot product, not a full multiply
//   - the eager engine is the reference the lazy one is tested against
//
// Layout:
//
//	scalar/            Number constraint, Abs/Close/AllClose helpers
//	shape/             Shape, Shaped, validators, ErrDimensionMismatch & co.
//	lazy/              Matrix storage, Expr contract, Sum/Product/scalar nodes,
//	                   Materialize, Assign/AddAssign/MulAssign, Fprint, Chain
//	eager/             immediate Matrix with the same storage API
//	gonumx/            View/Wrap/ToDense/FromDense adapters
//	internal/scenario/ named workloads run on both engines
//	cmd/matbench/      CLI: list, run, print
//
// Quick example:
//
//	a, _ := lazy.NewFilled(10, 5, 1.0)
//	b, _ := lazy.NewFilled(10, 5, 2.0)
//	o, _ := lazy.From[float64](a).Add(b).AddScalar(10).Materialize() // all 13
//	_ = o.AddAssign(o)                                                // all 26
//
//	go get github.com/katalvlaran/lvmat
package lvmat
