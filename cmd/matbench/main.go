// Command matbench runs the lvmat scenarios on the lazy and eager engines and
// reports their results and timings.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
