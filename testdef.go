package runif

import (
	"fmt"
	"strings"
)

// RunIf gates a class or a method behind a registered Checker.
// The checker is built with the Arguments and asked whether the
// current environment satisfies it. A nil *RunIf always runs.
type RunIf struct {
	Checker   string   `yaml:"checker"`
	Arguments []string `yaml:"arguments,omitempty"`
}

func (r *RunIf) String() string {

	if r == nil {
		return ""
	}

	if len(r.Arguments) == 0 {
		return r.Checker
	}

	return fmt.Sprintf("%s(%s)", r.Checker, strings.Join(r.Arguments, ", "))
}
