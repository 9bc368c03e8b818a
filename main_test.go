// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDemo(t *testing.T) {
	buf := new(bytes.Buffer)
	err := runDemo(buf)
	if err != nil {
		t.Fatalf("runDemo: unexpected error %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"add(10, 20) = 30",
		"multiply(7, 8) = 56",
		"power(2, 10) = 1024",
		"power(5, 3) = 125",
		"sum(numbers) = 55",
		"average(numbers) = 5.50",
		`str_len("Hello from Go!") = 14`,
		`c_str_len("Hello from Go!" + NUL) = 14`,
		"total: 1500",
		"average: 300.00",
		"sum of squares: 550000",
		"count exceeds slice length",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("runDemo output missing %q:\n%s", want, out)
		}
	}
}

func TestGenOutDir(t *testing.T) {
	dir := t.TempDir()

	odir, err := genOutDir(filepath.Join(dir, "a", "b"))
	if err != nil {
		t.Fatalf("genOutDir: unexpected error %v", err)
	}
	if !filepath.IsAbs(odir) {
		t.Errorf("genOutDir: expected absolute path, actual %q", odir)
	}

	// empty means current directory
	odir, err = genOutDir("")
	if err != nil {
		t.Fatalf("genOutDir(\"\"): unexpected error %v", err)
	}
	if !filepath.IsAbs(odir) {
		t.Errorf("genOutDir(\"\"): expected absolute path, actual %q", odir)
	}
}
