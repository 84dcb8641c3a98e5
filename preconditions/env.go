package preconditions

import (
	"fmt"
	"os"
	"sort"

	"go.aporeto.io/runif"
	"go.uber.org/multierr"
)

// An EnvProvider gives the variables an Env precondition must set.
type EnvProvider interface {
	Env() map[string]string
}

type previousValue struct {
	value string
	set   bool
}

// Env sets environment variables on setup and restores
// their previous values on teardown.
type Env struct {
	vars     map[string]string
	previous map[string]previousValue
}

// NewEnv returns an Env precondition for the given variables.
func NewEnv(vars map[string]string) *Env {
	return &Env{
		vars:     vars,
		previous: map[string]previousValue{},
	}
}

// Setup implements runif.Precondition.
func (e *Env) Setup() error {

	for _, k := range e.keys() {

		v, ok := os.LookupEnv(k)

		if err := os.Setenv(k, e.vars[k]); err != nil {
			// Teardown is not called on a failed setup.
			return multierr.Append(fmt.Errorf("unable to set %s: %w", k, err), e.restore())
		}

		e.previous[k] = previousValue{value: v, set: ok}
	}

	return nil
}

// Teardown implements runif.Precondition. Only the variables
// changed by Setup are restored.
func (e *Env) Teardown() error { return e.restore() }

func (e *Env) restore() (err error) {

	for _, k := range e.keys() {

		p, ok := e.previous[k]
		if !ok {
			continue
		}

		if p.set {
			err = multierr.Append(err, os.Setenv(k, p.value))
		} else {
			err = multierr.Append(err, os.Unsetenv(k))
		}

		delete(e.previous, k)
	}

	return err
}

func (e *Env) keys() []string {

	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

var envConstructors = runif.PreconditionConstructors{
	New: func() (runif.Precondition, error) { return NewEnv(nil), nil },
	NewWithContext: func(context interface{}) (runif.Precondition, error) {
		switch c := context.(type) {
		case map[string]string:
			return NewEnv(c), nil
		case EnvProvider:
			return NewEnv(c.Env()), nil
		default:
			return nil, fmt.Errorf("env precondition needs a map[string]string or an EnvProvider context, got %T", context)
		}
	},
}
