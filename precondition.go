package runif

import (
	"fmt"
)

// A Precondition is a resource set up before a test method and torn down after it.
// A Precondition instance is used for exactly one test invocation.
type Precondition interface {
	Setup() error
	Teardown() error
}

// PreconditionFuncs is an adapter to build a Precondition out of two functions.
// Nil functions do nothing.
type PreconditionFuncs struct {
	SetupFunc    func() error
	TeardownFunc func() error
}

// Setup calls SetupFunc.
func (p PreconditionFuncs) Setup() error {

	if p.SetupFunc == nil {
		return nil
	}

	return p.SetupFunc()
}

// Teardown calls TeardownFunc.
func (p PreconditionFuncs) Teardown() error {

	if p.TeardownFunc == nil {
		return nil
	}

	return p.TeardownFunc()
}

// PreconditionConstructors holds the ways a Precondition can be built.
// When the test class provides a context and NewWithContext is set,
// NewWithContext receives it. Otherwise New is used.
type PreconditionConstructors struct {
	New            func() (Precondition, error)
	NewWithContext func(context interface{}) (Precondition, error)
}

// NewPrecondition builds a fresh Precondition.
func (r *Registry) NewPrecondition(name string, context interface{}) (Precondition, error) {

	constructors, ok := r.precondition(name)
	if !ok {
		return nil, fmt.Errorf("unknown precondition '%s'", name)
	}

	var build func() (Precondition, error)

	switch {
	case context != nil && constructors.NewWithContext != nil:
		build = func() (Precondition, error) { return constructors.NewWithContext(context) }
	case constructors.New != nil:
		build = constructors.New
	default:
		return nil, fmt.Errorf("precondition '%s' has no constructor without context", name)
	}

	p, err := protectValue(build)
	if err != nil {
		return nil, fmt.Errorf("unable to build precondition '%s': %w", name, err)
	}

	if p == nil {
		return nil, fmt.Errorf("precondition '%s' constructor returned nil", name)
	}

	return p, nil
}

type link struct {
	name         string
	precondition Precondition
}

// buildPreconditions builds the chain declared by the method, in order.
func buildPreconditions(r *Registry, d Description, names []string, context interface{}) ([]link, error) {

	chain := make([]link, 0, len(names))

	for _, name := range names {

		p, err := r.NewPrecondition(name, context)
		if err != nil {
			return nil, newConfigurationError(d, err, "invalid precondition")
		}

		chain = append(chain, link{name: name, precondition: p})
	}

	return chain, nil
}
