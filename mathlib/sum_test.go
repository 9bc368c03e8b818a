// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathlib

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestSum(t *testing.T) {
	for _, tt := range []struct {
		xs   []int32
		want int32
	}{
		{nil, 0},
		{[]int32{}, 0},
		{[]int32{42}, 42},
		{[]int32{1, 2, 3, 4, 5}, 15},
		{[]int32{100, 200, 300, 400, 500}, 1500},
		{[]int32{-1, 1, -2, 2}, 0},
		{[]int32{math.MaxInt32, 1}, math.MinInt32}, // accumulator wraps
	} {
		if got := Sum(tt.xs); got != tt.want {
			t.Errorf("Sum(%v): expected %d, actual %d", tt.xs, tt.want, got)
		}
		// pure function: a second identical call returns the same value
		if Sum(tt.xs) != Sum(tt.xs) {
			t.Errorf("Sum(%v) is not deterministic", tt.xs)
		}
	}
}

func TestSumN(t *testing.T) {
	xs := []int32{1, 2, 3, 4, 5}
	for _, tt := range []struct {
		n    uint32
		want int32
		err  error
	}{
		{0, 0, nil},
		{1, 1, nil},
		{3, 6, nil},
		{5, 15, nil},
		{6, 0, ErrOutOfBounds},
		{math.MaxUint32, 0, ErrOutOfBounds},
	} {
		got, err := SumN(xs, tt.n)
		if errors.Cause(err) != tt.err {
			t.Errorf("SumN(%v, %d): expected error %v, actual %v", xs, tt.n, tt.err, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SumN(%v, %d): expected %d, actual %d", xs, tt.n, tt.want, got)
		}
	}

	if got, err := SumN(nil, 0); err != nil || got != 0 {
		t.Errorf("SumN(nil, 0): expected 0, <nil>, actual %d, %v", got, err)
	}
}

func TestAverage(t *testing.T) {
	for _, tt := range []struct {
		xs   []int32
		want float64
	}{
		{nil, 0},
		{[]int32{}, 0},
		{[]int32{3}, 3},
		{[]int32{1, 2, 3, 4, 5}, 3},
		{[]int32{100, 200, 300, 400, 500}, 300},
		{[]int32{1, 2}, 1.5},
		// exact 64-bit accumulation: no int32 wraparound
		{[]int32{math.MaxInt32, math.MaxInt32}, float64(math.MaxInt32)},
	} {
		if got := Average(tt.xs); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Average(%v): expected %v, actual %v", tt.xs, tt.want, got)
		}
	}
}
