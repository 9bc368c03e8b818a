// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
ffimath carries a small fixture library of C-ABI-friendly functions
(mathlib) and generates the C header declaring their foreign view.

The exported symbols of the target package define the cross-language
interface. ffimath lowers each exportable signature the way a C caller
expects it: fixed-width scalars pass by value, a slice becomes a const
pointer plus a uint32_t length, and a string becomes a NUL-terminated
const char pointer. Start with a Go package:

	package mathlib

	// Add returns a + b.
	func Add(a, b int32) int32 {
		return a + b
	}

and generate its header:

	$ ffimath gen github.com/go-interop/ffimath/mathlib

which declares:

	extern int32_t mathlib_add(int32_t a, int32_t b);
*/
package main
