// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// GenCDef writes the C header declaring the C-ABI view of pkg to w.
func GenCDef(w io.Writer, pkg *Package) error {
	g := &cdefGen{
		decl: &printer{buf: new(bytes.Buffer), indentEach: []byte("\t")},
		pkg:  pkg,
	}
	g.genPreamble()
	for _, f := range pkg.Funcs() {
		g.genFuncCdef(f)
	}
	g.genEpilogue()

	_, err := io.Copy(w, g.decl)
	return err
}

type cdefGen struct {
	decl *printer
	pkg  *Package
}

func (g *cdefGen) guard() string {
	return strings.ToUpper(g.pkg.Name()) + "_H"
}

func (g *cdefGen) genPreamble() {
	g.decl.Printf("/* C declarations for Go package %s. */\n", g.pkg.Name())
	g.decl.Printf("/* Code generated by ffimath gen; DO NOT EDIT. */\n\n")
	g.decl.Printf("#ifndef %s\n", g.guard())
	g.decl.Printf("#define %s\n\n", g.guard())
	g.decl.Printf("#include <stdint.h>\n\n")
	g.decl.Printf("#ifdef __cplusplus\n")
	g.decl.Printf("extern \"C\" {\n")
	g.decl.Printf("#endif\n\n")
}

// genFuncCdef emits one extern declaration. Slice parameters expand to a
// const pointer plus a uint32_t length; strings become const char*.
func (g *cdefGen) genFuncCdef(f *Func) {
	var args []string
	for _, p := range f.Params {
		switch p.lower {
		case lowerSliceToPtrLen:
			args = append(args,
				fmt.Sprintf("const %s* %s", p.ctype, p.Name),
				fmt.Sprintf("uint32_t %s_len", p.Name),
			)
		case lowerStringToPtr:
			args = append(args, fmt.Sprintf("const %s* %s", p.ctype, p.Name))
		default:
			args = append(args, fmt.Sprintf("%s %s", p.ctype, p.Name))
		}
	}
	if len(args) == 0 {
		args = []string{"void"}
	}
	g.decl.Printf("extern %s %s_%s(%s);\n", f.Ret, g.pkg.Name(), f.CName, strings.Join(args, ", "))
}

func (g *cdefGen) genEpilogue() {
	g.decl.Printf("\n#ifdef __cplusplus\n")
	g.decl.Printf("}\n")
	g.decl.Printf("#endif\n\n")
	g.decl.Printf("#endif /* %s */\n", g.guard())
}
