// Command fpscli is a thin CLI binding over the fpsample package: it reads
// a point cloud from a CSV file, runs one of the five sampling algorithms,
// and prints the selected indices. It stands in for the host-language
// binding layer the spec places out of scope — a real Go caller that
// exercises every exported entry point.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
