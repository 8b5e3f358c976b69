// Command frlayout drives the force-directed layout core from the command
// line: generate an Erdos-Renyi graph, run the simulation for a fixed step
// count, and export the result as CSV.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
