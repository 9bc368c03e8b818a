// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"go/types"
	"regexp"
	"strings"
)

// cTypeNames maps the fixed-width Go basic kinds to their C spellings.
// Platform-width int/uint/uintptr are deliberately absent: a fixture
// crossing a C boundary must pin its widths.
var cTypeNames = map[types.BasicKind]string{
	types.Int8:    "int8_t",
	types.Int16:   "int16_t",
	types.Int32:   "int32_t",
	types.Int64:   "int64_t",
	types.Uint8:   "uint8_t",
	types.Uint16:  "uint16_t",
	types.Uint32:  "uint32_t",
	types.Uint64:  "uint64_t",
	types.Float32: "float",
	types.Float64: "double",
	types.Bool:    "uint8_t",
}

// lowering describes how a Go parameter type crosses the C boundary.
type lowering int

const (
	// passed by value as a single C scalar
	lowerDirect lowering = iota
	// []T becomes (const T*, uint32_t len)
	lowerSliceToPtrLen
	// string becomes const char* (NUL terminated)
	lowerStringToPtr
)

// cScalar returns the C spelling for a Go type passed by value, and
// whether the type is representable at all.
func cScalar(t types.Type) (string, bool) {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return "", false
	}
	name, ok := cTypeNames[b.Kind()]
	return name, ok
}

// analyzeParam returns the lowering for a parameter type and, for the
// lowered pointer forms, the C spelling of the pointee. ok is false when
// the type cannot cross the boundary.
func analyzeParam(t types.Type) (lower lowering, ctype string, ok bool) {
	switch u := t.Underlying().(type) {
	case *types.Slice:
		elem, eok := cScalar(u.Elem())
		if !eok {
			return 0, "", false
		}
		return lowerSliceToPtrLen, elem, true
	case *types.Basic:
		if u.Kind() == types.String {
			return lowerStringToPtr, "char", true
		}
		name, nok := cTypeNames[u.Kind()]
		return lowerDirect, name, nok
	default:
		return 0, "", false
	}
}

// analyzeResult returns the C spelling for a result type. Only by-value
// scalars can be returned across the boundary.
func analyzeResult(t types.Type) (string, bool) {
	return cScalar(t)
}

var (
	rxMatchFirstCap = regexp.MustCompile("([A-Z])([A-Z][a-z])")
	rxMatchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

// toSnakeCase converts the provided string to snake_case.
// Based on https://gist.github.com/stoewer/fbe273b711e6a06315d19552dd4d33e6
func toSnakeCase(input string) string {
	output := rxMatchFirstCap.ReplaceAllString(input, "${1}_${2}")
	output = rxMatchAllCap.ReplaceAllString(output, "${1}_${2}")
	output = strings.ReplaceAll(output, "-", "_")
	return strings.ToLower(output)
}
