// Command droid runs the sample droid application with a chosen backend.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/droid/cmd/droid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
