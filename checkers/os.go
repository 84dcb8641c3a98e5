// Package checkers provides the built-in runif checkers.
//
// Importing the package registers them in the runif main registry:
//
//	os        os(mac|linux|win...)         host operating system
//	env       env(NAME[=value]...)         environment variables
//	platform  platform(name...)            host platform or platform family
//	memory    memory(MiB)                  minimum total memory
//	not       not(checker, args...)        inverts another checker
package checkers

import (
	"runtime"
	"strings"

	"go.aporeto.io/runif"
)

// Target operating systems understood by OS.
const (
	MAC     = "mac"
	LINUX   = "linux"
	WINDOWS = "win"
)

var goos = runtime.GOOS

// OS is satisfied when the host operating system name contains one of the targets.
type OS struct {
	targets []string
}

// NewOS returns an OS checker for the given targets.
func NewOS(targets ...string) OS {

	out := OS{}
	for _, t := range targets {
		out.targets = append(out.targets, strings.ToLower(t))
	}

	return out
}

// Satisfy implements runif.Checker.
func (c OS) Satisfy() bool {

	name := osName()
	for _, t := range c.targets {
		if strings.Contains(name, t) {
			return true
		}
	}

	return false
}

func osName() string {

	switch goos {
	case "darwin":
		return "mac os x"
	default:
		return goos
	}
}

var osConstructors = runif.CheckerConstructors{
	NewWithArgument:  func(target string) (runif.Checker, error) { return NewOS(target), nil },
	NewWithArguments: func(targets []string) (runif.Checker, error) { return NewOS(targets...), nil },
}
