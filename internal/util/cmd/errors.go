// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Stderr and Exit are variables so tests can capture fatal paths.
var (
	Stderr io.Writer = os.Stderr
	Exit             = os.Exit
)

func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "Error: "+format+"\n", args...)
	Exit(1)
}

func Check(err error) {
	if err != nil {
		Fatalf("%v", err)
	}
}

func Checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		Fatalf(format+": %v", append(otherArgs, err)...)
	}
}

func Warnf(format string, args ...interface{}) {
	format = "WARNING: " + format + "\n"
	if isTerminal(Stderr) {
		fmt.Fprint(Stderr, color.RedString(format, args...))
	} else {
		fmt.Fprintf(Stderr, format, args...)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
