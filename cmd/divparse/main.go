// divparse classifies and parses Australian dividend statements from the
// command line and exports the results as CSV, XLSX, or a per-year tax
// summary. It is a thin caller around the engine packages; all file I/O
// lives here.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
