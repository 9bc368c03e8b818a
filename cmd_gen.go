// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/go-interop/ffimath/bind"
)

func ffimathMakeCmdGen() *commander.Command {
	cmd := &commander.Command{
		Run:       ffimathRunCmdGen,
		UsageLine: "gen <go-package-name> [other-go-package...]",
		Short:     "generate the C header for the C-ABI view of Go package(s)",
		Long: `
gen generates the C header declaring the C-ABI view of Go package(s):
fixed-width scalars by value, slices as pointer-and-length pairs, strings
as NUL-terminated char pointers.

ex:
 $ ffimath gen [options] <go-package-name> [other-go-package...]
 $ ffimath gen github.com/go-interop/ffimath/mathlib
`,
		Flag: *flag.NewFlagSet("ffimath-gen", flag.ExitOnError),
	}

	AddGenCmdFlags(&cmd.Flag)
	return cmd
}

func ffimathRunCmdGen(cmdr *commander.Command, args []string) error {
	if len(args) == 0 {
		err := fmt.Errorf("ffimath: expect a fully qualified go package name as argument")
		log.Println(err)
		return err
	}

	cfg := &bind.BindCfg{
		OutputDir: cmdr.Flag.Lookup("output").Value.Get().(string),
		Name:      cmdr.Flag.Lookup("name").Value.Get().(string),
		Cmd:       argStr(),
	}
	bind.NoWarn = cmdr.Flag.Lookup("no-warn").Value.Get().(bool)

	odir, err := genOutDir(cfg.OutputDir)
	if err != nil {
		return err
	}

	for _, path := range args {
		tpkg, err := loadPackage(path)
		if err != nil {
			return fmt.Errorf("ffimath-gen: load of package failed with path=%q: %v", path, err)
		}
		pkg, err := bind.NewPackage(tpkg)
		if err != nil {
			return err
		}

		hname := cfg.Name
		if hname == "" {
			hname = pkg.Name()
		}

		err = genHeader(filepath.Join(odir, hname+".h"), pkg)
		if err != nil {
			return err
		}
	}
	return nil
}

func genHeader(fname string, pkg *bind.Package) error {
	o, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer o.Close()

	err = bind.GenCDef(o, pkg)
	if err != nil {
		return err
	}
	return o.Close()
}
