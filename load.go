// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"go/types"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

// loadPackage loads the type information for a single Go package by
// import path or directory.
func loadPackage(path string) (*types.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps,
	}

	pkgs, err := packages.Load(cfg, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load package %q", path)
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		return nil, errors.Errorf("%d error(s) loading package %q", n, path)
	}
	if len(pkgs) != 1 {
		return nil, errors.Errorf("packages.Load returned %d packages for %q, expected 1", len(pkgs), path)
	}
	if pkgs[0].Types == nil {
		return nil, errors.Errorf("no type information for package %q", path)
	}
	return pkgs[0].Types, nil
}
