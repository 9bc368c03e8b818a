// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathlib

import (
	"bytes"

	"github.com/pkg/errors"
)

// StrLen returns the length of s in bytes as a uint32. Go strings carry
// their length, so nothing is scanned; this is the native-type form of
// the C string_length fixture.
func StrLen(s string) uint32 {
	return uint32(len(s))
}

// CStrLen scans buf for the first NUL byte and returns the number of
// bytes before it, the C string_length contract. If buf contains no NUL
// within its length, CStrLen returns ErrUnterminated rather than reading
// past the end.
func CStrLen(buf []byte) (uint32, error) {
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		return 0, errors.Wrapf(ErrUnterminated, "scanned %d bytes", len(buf))
	}
	return uint32(i), nil
}

// CString returns a copy of s with a NUL terminator appended, the shape a
// C-style caller expects. s itself must not contain a NUL for the result
// to round-trip through CStrLen.
func CString(s string) []byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf
}

// GoString returns the bytes of buf before the first NUL as a string, or
// ErrUnterminated if buf has no NUL.
func GoString(buf []byte) (string, error) {
	n, err := CStrLen(buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
