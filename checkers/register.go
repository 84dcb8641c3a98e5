package checkers

import (
	"fmt"

	"go.aporeto.io/runif"
)

// Names of the built-in checkers.
const (
	NameOS       = "os"
	NameEnv      = "env"
	NamePlatform = "platform"
	NameMemory   = "memory"
	NameNot      = "not"
)

func init() { Register(runif.DefaultRegistry()) }

// Register registers the built-in checkers in the given registry.
func Register(r *runif.Registry) {

	r.RegisterChecker(NameOS, osConstructors)
	r.RegisterChecker(NameEnv, envConstructors)
	r.RegisterChecker(NamePlatform, platformConstructors)
	r.RegisterChecker(NameMemory, memoryConstructors)
	r.RegisterChecker(NameNot, notConstructors(r))
}

// notConstructors builds the inverse of another checker of the registry.
// The first argument is the checker name, the others are its arguments.
func notConstructors(r *runif.Registry) runif.CheckerConstructors {

	build := func(args []string) (runif.Checker, error) {

		if len(args) == 0 || args[0] == NameNot {
			return nil, fmt.Errorf("not requires a checker name other than itself")
		}

		c, err := r.NewChecker(runif.RunIf{Checker: args[0], Arguments: args[1:]})
		if err != nil {
			return nil, err
		}

		return runif.CheckerFunc(func() bool { return !c.Satisfy() }), nil
	}

	return runif.CheckerConstructors{
		NewWithArgument:  func(name string) (runif.Checker, error) { return build([]string{name}) },
		NewWithArguments: build,
	}
}
