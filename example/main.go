package main

import (
	"go.aporeto.io/runif"

	// Register the built-in checkers and preconditions.
	_ "go.aporeto.io/runif/checkers"
	_ "go.aporeto.io/runif/preconditions"

	// Import all the test classes
	_ "go.aporeto.io/runif/example/suite1"
	_ "go.aporeto.io/runif/example/suite2"
)

func main() {

	// Run the command.
	runif.Execute(runif.NewCommand("runif", "runs the example classes", "1.0"))
}
