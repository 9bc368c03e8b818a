// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathlib

import "github.com/pkg/errors"

// Sentinel errors for the fixture operations. Callers compare with
// errors.Cause, since call sites wrap these with context.
var (
	// ErrOverflow is returned by the checked arithmetic variants when the
	// exact result does not fit in int32.
	ErrOverflow = errors.New("mathlib: integer overflow")

	// ErrOutOfBounds is returned when a requested element count exceeds
	// the length of the supplied slice.
	ErrOutOfBounds = errors.New("mathlib: count exceeds slice length")

	// ErrUnterminated is returned when a buffer that must carry a NUL
	// terminator does not contain one.
	ErrUnterminated = errors.New("mathlib: no NUL terminator in buffer")
)
