package checkers

import (
	"fmt"
	"os"
	"strings"

	"go.aporeto.io/runif"
)

var lookupEnv = os.LookupEnv

type envRequirement struct {
	name     string
	value    string
	hasValue bool
}

// Env is satisfied when all the variables are set.
// A requirement written NAME=value also requires the value to match.
type Env struct {
	requirements []envRequirement
}

// NewEnv returns an Env checker for the given requirements.
func NewEnv(requirements ...string) (Env, error) {

	out := Env{}

	for _, r := range requirements {

		name, value, hasValue := strings.Cut(r, "=")
		if name == "" {
			return out, fmt.Errorf("invalid environment requirement '%s'", r)
		}

		out.requirements = append(out.requirements, envRequirement{name: name, value: value, hasValue: hasValue})
	}

	return out, nil
}

// Satisfy implements runif.Checker.
func (c Env) Satisfy() bool {

	for _, r := range c.requirements {

		v, ok := lookupEnv(r.name)
		if !ok {
			return false
		}

		if r.hasValue && v != r.value {
			return false
		}
	}

	return true
}

var envConstructors = runif.CheckerConstructors{
	NewWithArgument:  func(r string) (runif.Checker, error) { return NewEnv(r) },
	NewWithArguments: func(rs []string) (runif.Checker, error) { return NewEnv(rs...) },
}
