// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathlib is the fixture library for the ffimath binding tool: a
// handful of small, pure functions with C-ABI-friendly signatures
// (fixed-width integers, int32 slices, strings), exposed both in safe
// Go-native form and in the shapes a C caller would use across a foreign
// function boundary.
//
// Every function is stateless and reads its inputs only, so concurrent
// calls are safe as long as no caller mutates a shared buffer mid-call.
package mathlib

import "math"

// Add returns a + b. The sum wraps on overflow, matching two's-complement
// C semantics; use AddChecked to detect overflow instead.
func Add(a, b int32) int32 {
	return a + b
}

// AddChecked returns a + b, or ErrOverflow if the exact sum does not fit
// in int32.
func AddChecked(a, b int32) (int32, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Multiply returns a * b. The product wraps on overflow; use
// MultiplyChecked to detect overflow instead.
func Multiply(a, b int32) int32 {
	return a * b
}

// MultiplyChecked returns a * b, or ErrOverflow if the exact product does
// not fit in int32.
func MultiplyChecked(a, b int32) (int32, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt32 * -1 wraps, and MinInt32 / -1 panics, so rule it out
	// before the division check below.
	if a == -1 && b == math.MinInt32 || b == -1 && a == math.MinInt32 {
		return 0, ErrOverflow
	}
	prod := a * b
	if prod/b != a {
		return 0, ErrOverflow
	}
	return prod, nil
}

// Power returns base raised to exp, computed by repeated Multiply, so
// intermediate products wrap like the rest of the fixture arithmetic.
// Power(x, 0) == 1 for every x.
func Power(base int32, exp uint32) int32 {
	result := int32(1)
	for i := uint32(0); i < exp; i++ {
		result = Multiply(result, base)
	}
	return result
}
