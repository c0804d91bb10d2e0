// SPDX-License-Identifier: MIT

// Package scalar defines the element types accepted by the matrix engines and
// a few helpers that work uniformly across integers, floats and complex numbers.
//
// Purpose:
//   - Provide one constraint (Number) shared by the lazy and eager engines.
//   - Offer tolerant comparison (Close, AllClose) for float/complex results.
//
// Determinism:
//   - All helpers are pure; no allocation except reflect fallback on named types.
package scalar

import (
	"math"
	"math/cmplx"
	"reflect"
)

// Number is the set of element types a matrix may hold.
// Every member supplies +, * and a zero value, which is all the engines need.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var z T
	return z
}

// Abs returns |v| as float64 (modulus for complex values).
// Complexity: O(1).
func Abs[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case float32:
		return math.Abs(float64(x))
	case complex128:
		return cmplx.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case int:
		return math.Abs(float64(x))
	case int64:
		return math.Abs(float64(x))
	}

	// Named types (~T) and the remaining integer widths go through reflect.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return math.Abs(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return math.Abs(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		return cmplx.Abs(rv.Complex())
	}

	return math.NaN() // unreachable for members of Number
}

// Close reports whether |a-b| ≤ atol + rtol*|b|.
// Integers compare exactly when both tolerances are zero.
// Negative tolerances are normalized to their absolute value.
func Close[T Number](a, b T, rtol, atol float64) bool {
	if a == b {
		return true // fast path; also covers exact integer equality
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	return absDiff(a, b) <= atol+rtol*Abs(b)
}

// absDiff returns |a-b| without the wraparound unsigned a-b has when a < b.
func absDiff[T Number](a, b T) float64 {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ra.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ua, ub := ra.Uint(), rb.Uint()
		if ua < ub {
			ua, ub = ub, ua
		}
		return float64(ua - ub)
	}

	return Abs(a - b)
}

// AllClose applies Close pairwise to two equally sized slices.
// Returns false when lengths differ.
func AllClose[T Number](a, b []T, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if !Close(a[idx], b[idx], rtol, atol) {
			return false // early exit on first violation
		}
	}

	return true
}
