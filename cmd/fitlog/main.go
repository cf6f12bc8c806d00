// ABOUTME: Entry point for the fitlog CLI.
// ABOUTME: Invokes the root Cobra command and reports failures.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
