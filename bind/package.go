// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"fmt"
	"go/types"
	"log"

	"github.com/pkg/errors"
)

// NoWarn suppresses warnings about symbols that cannot cross the C
// boundary.
var NoWarn = false

// Param is one C parameter of a lowered function. A slice parameter
// expands to two C parameters (pointer and length) at generation time.
type Param struct {
	Name  string
	lower lowering
	ctype string
}

// Func is the C-ABI view of one exported Go function.
type Func struct {
	GoName string
	CName  string
	Params []*Param
	Ret    string // C return type, "void" for none
}

// Package collects the exportable functions of a Go package.
type Package struct {
	pkg   *types.Package
	funcs []*Func
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.pkg.Name()
}

// Funcs returns the exportable functions in declaration-scope order.
func (p *Package) Funcs() []*Func {
	return p.funcs
}

// NewPackage scans the exported package-level functions of pkg and keeps
// the ones whose signatures can cross a C boundary. Functions it cannot
// lower are skipped with a warning, the way unsupported symbols are in
// any binding generator: the caller still gets bindings for the rest.
func NewPackage(pkg *types.Package) (*Package, error) {
	p := &Package{pkg: pkg}

	var skipped ErrorList
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		fn, ok := obj.(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		f, err := newFunc(fn)
		if err != nil {
			skipped.Add(errors.Wrapf(err, "%s.%s", pkg.Name(), name))
			if !NoWarn {
				log.Printf("ffimath: skipping %s.%s: %v\n", pkg.Name(), name, err)
			}
			continue
		}
		p.funcs = append(p.funcs, f)
	}

	if len(p.funcs) == 0 {
		if err := skipped.Error(); err != nil {
			return nil, errors.Wrapf(err, "bind: package %q has no functions exportable to C", pkg.Name())
		}
		return nil, errors.Errorf("bind: package %q has no functions exportable to C", pkg.Name())
	}
	return p, nil
}

func newFunc(fn *types.Func) (*Func, error) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil, errors.Errorf("not a function signature")
	}
	if sig.Recv() != nil {
		return nil, errors.Errorf("methods cannot cross the C boundary")
	}
	if sig.Variadic() {
		return nil, errors.Errorf("variadic functions cannot cross the C boundary")
	}

	f := &Func{
		GoName: fn.Name(),
		CName:  toSnakeCase(fn.Name()),
	}

	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		v := params.At(i)
		lower, ctype, ok := analyzeParam(v.Type())
		if !ok {
			return nil, errors.Errorf("parameter %q has non-C-representable type %s", v.Name(), v.Type())
		}
		name := v.Name()
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		f.Params = append(f.Params, &Param{
			Name:  toSnakeCase(name),
			lower: lower,
			ctype: ctype,
		})
	}

	res := sig.Results()
	switch res.Len() {
	case 0:
		f.Ret = "void"
	case 1:
		if isErrorType(res.At(0).Type()) {
			return nil, errors.Errorf("error results cannot cross the C boundary")
		}
		ret, ok := analyzeResult(res.At(0).Type())
		if !ok {
			return nil, errors.Errorf("result type %s is not C-representable", res.At(0).Type())
		}
		f.Ret = ret
	default:
		return nil, errors.Errorf("multiple results cannot cross the C boundary")
	}

	return f, nil
}

func isErrorType(typ types.Type) bool {
	return typ == types.Universe.Lookup("error").Type()
}
