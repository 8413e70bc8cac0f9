// Command campusgraph builds every data structure over the embedded campus
// dataset and prints the report to stdout.
//
// Usage:
//
//	campusgraph [--verbose]
//
// Exit status is 0 on success and 1 on any failure.
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
