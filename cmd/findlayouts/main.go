package main

import (
	"fmt"
	"os"

	"github.com/taglme/langswitch/internal/layouts"
)

// Prints every installed keyboard layout handle and its language ID
func main() {
	if err := layouts.Run(os.Stdout, layouts.NewSystemLister()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
