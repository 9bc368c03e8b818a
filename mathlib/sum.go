// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathlib

import "github.com/pkg/errors"

// Sum returns the sum of all elements of xs, accumulated left to right
// starting from zero. The slice length is authoritative, so out-of-bounds
// reads cannot occur. The accumulator wraps on overflow like Add.
func Sum(xs []int32) int32 {
	sum := int32(0)
	for _, x := range xs {
		sum += x
	}
	return sum
}

// SumN returns the sum of the first n elements of xs. It keeps the
// pointer-and-count parameter shape of the C boundary but validates the
// count: if n exceeds len(xs) it returns ErrOutOfBounds instead of
// reading past the end.
func SumN(xs []int32, n uint32) (int32, error) {
	if uint64(n) > uint64(len(xs)) {
		return 0, errors.Wrapf(ErrOutOfBounds, "sum of %d elements from slice of %d", n, len(xs))
	}
	return Sum(xs[:n]), nil
}

// Average returns the arithmetic mean of xs as a float64. The sum is
// taken exactly in 64 bits, so averaging does not inherit Sum's int32
// wraparound. An empty slice averages to 0.
func Average(xs []int32) float64 {
	if len(xs) == 0 {
		return 0
	}
	total := int64(0)
	for _, x := range xs {
		total += int64(x)
	}
	return float64(total) / float64(len(xs))
}
