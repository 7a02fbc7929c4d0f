// ./main.go
package main

import (
	"github.com/jrx4d/cartwheel/cmd"
)

// main is the entry point for the cartwheel CLI application.
func main() {
	// Execute the root command defined in the cmd package.
	// This handles all command-line parsing, configuration, and execution.
	cmd.Execute()
}
