// Copyright 2023 The go-interop Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/go-interop/ffimath/mathlib"
)

func ffimathMakeCmdDemo() *commander.Command {
	cmd := &commander.Command{
		Run:       ffimathRunCmdDemo,
		UsageLine: "demo",
		Short:     "run the fixture functions and print their results",
		Long: `
demo exercises every mathlib fixture function once and prints the results,
mirroring the walkthrough a foreign caller would run against the C ABI.

ex:
 $ ffimath demo
`,
		Flag: *flag.NewFlagSet("ffimath-demo", flag.ExitOnError),
	}
	return cmd
}

func ffimathRunCmdDemo(cmdr *commander.Command, args []string) error {
	return runDemo(os.Stdout)
}

func runDemo(w io.Writer) error {
	fmt.Fprintf(w, "=== mathlib fixture demo ===\n\n")

	fmt.Fprintf(w, "1. basic arithmetic:\n")
	fmt.Fprintf(w, "   add(10, 20) = %d\n", mathlib.Add(10, 20))
	fmt.Fprintf(w, "   multiply(7, 8) = %d\n", mathlib.Multiply(7, 8))

	fmt.Fprintf(w, "\n2. power (repeated multiply):\n")
	fmt.Fprintf(w, "   power(2, 10) = %d\n", mathlib.Power(2, 10))
	fmt.Fprintf(w, "   power(5, 3) = %d\n", mathlib.Power(5, 3))

	numbers := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	fmt.Fprintf(w, "\n3. slice reduction (slice carries its own length):\n")
	fmt.Fprintf(w, "   numbers: %v\n", numbers)
	fmt.Fprintf(w, "   sum(numbers) = %d\n", mathlib.Sum(numbers))
	fmt.Fprintf(w, "   average(numbers) = %.2f\n", mathlib.Average(numbers))

	s := "Hello from Go!"
	fmt.Fprintf(w, "\n4. string length:\n")
	fmt.Fprintf(w, "   str_len(%q) = %d\n", s, mathlib.StrLen(s))
	n, err := mathlib.CStrLen(mathlib.CString(s))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   c_str_len(%q + NUL) = %d\n", s, n)

	data := []int32{100, 200, 300, 400, 500}
	fmt.Fprintf(w, "\n5. combined:\n")
	fmt.Fprintf(w, "   data: %v\n", data)
	fmt.Fprintf(w, "   total: %d\n", mathlib.Sum(data))
	fmt.Fprintf(w, "   average: %.2f\n", mathlib.Average(data))
	squares := make([]int32, len(data))
	for i, x := range data {
		squares[i] = mathlib.Multiply(x, x)
	}
	fmt.Fprintf(w, "   squares: %v\n", squares)
	fmt.Fprintf(w, "   sum of squares: %d\n", mathlib.Sum(squares))

	fmt.Fprintf(w, "\n6. bounds are checked, not promised:\n")
	if _, err := mathlib.SumN(data, 99); err != nil {
		fmt.Fprintf(w, "   sum_n(data, 99): %v\n", err)
	}

	return nil
}
