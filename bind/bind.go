// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bind generates C header declarations for the C-ABI view of a Go
// package: fixed-width scalars passed by value, slices of fixed-width
// scalars lowered to a pointer-and-length pair, strings lowered to
// NUL-terminated char pointers.
package bind

import (
	"bytes"
	"errors"
	"io"
)

// BindCfg is a configuration used during header generation
type BindCfg struct {
	// output directory for the generated header
	OutputDir string
	// name of the output header (otherwise the package name is used)
	Name string
	// the full command args as a string, without path to exe
	Cmd string
}

// ErrorList is a list of errors
type ErrorList []error

func (list *ErrorList) Add(err error) {
	if err == nil {
		return
	}
	*list = append(*list, err)
}

func (list *ErrorList) Error() error {
	if len(*list) == 0 {
		return nil
	}
	buf := new(bytes.Buffer)
	for i, err := range *list {
		if i > 0 {
			buf.WriteRune('\n')
		}
		io.WriteString(buf, err.Error())
	}
	return errors.New(buf.String())
}
