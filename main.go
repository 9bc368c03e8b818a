// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

// AddGenCmdFlags adds the flags shared by the header-generating commands.
func AddGenCmdFlags(flagSet *flag.FlagSet) {
	flagSet.String("output", "", "output directory for the generated header (default: current directory)")
	flagSet.String("name", "", "base name of the generated header (otherwise the package name is used)")
	flagSet.Bool("no-warn", false, "suppress warnings about symbols that cannot cross the C boundary")
}

func run(args []string) error {
	app := &commander.Command{
		UsageLine: "ffimath",
		Subcommands: []*commander.Command{
			ffimathMakeCmdGen(),
			ffimathMakeCmdDemo(),
		},
		Flag: *flag.NewFlagSet("ffimath", flag.ExitOnError),
	}

	err := app.Flag.Parse(args)
	if err != nil {
		return fmt.Errorf("could not parse flags: %v", err)
	}

	appArgs := app.Flag.Args()
	err = app.Dispatch(appArgs)
	if err != nil {
		return fmt.Errorf("error dispatching command: %v", err)
	}
	return nil
}

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}

// argStr returns the command line as a single string, without the path to
// the executable.
func argStr() string {
	return strings.Join(os.Args[1:], " ")
}

// genOutDir ensures the output directory exists and returns its absolute
// path. An empty odir means the current directory.
func genOutDir(odir string) (string, error) {
	if odir == "" {
		odir = "."
	}
	err := os.MkdirAll(odir, 0755)
	if err != nil {
		return "", fmt.Errorf("could not create output directory %q: %v", odir, err)
	}
	return filepath.Abs(odir)
}
