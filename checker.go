package runif

import (
	"fmt"
)

// A Checker decides if the current environment allows a class or a method to run.
// Satisfy must not have side effects and must not depend on the test fixture.
type Checker interface {
	Satisfy() bool
}

// CheckerFunc is an adapter to use a plain function as a Checker.
type CheckerFunc func() bool

// Satisfy calls f().
func (f CheckerFunc) Satisfy() bool { return f() }

// CheckerConstructors holds the ways a Checker can be built.
// The one used depends on the number of arguments declared by the RunIf:
// none uses New, exactly one uses NewWithArgument and two or more use NewWithArguments.
// A nil constructor means the checker does not support that shape.
type CheckerConstructors struct {
	New              func() (Checker, error)
	NewWithArgument  func(argument string) (Checker, error)
	NewWithArguments func(arguments []string) (Checker, error)
}

func (c CheckerConstructors) supports(count int) bool {

	switch count {
	case 0:
		return c.New != nil
	case 1:
		return c.NewWithArgument != nil
	default:
		return c.NewWithArguments != nil
	}
}

// NewChecker builds a fresh Checker from the given RunIf.
func (r *Registry) NewChecker(spec RunIf) (Checker, error) {

	constructors, ok := r.checker(spec.Checker)
	if !ok {
		return nil, fmt.Errorf("unknown checker '%s'", spec.Checker)
	}

	if !constructors.supports(len(spec.Arguments)) {
		return nil, fmt.Errorf("checker '%s' cannot be built with %d argument(s)", spec.Checker, len(spec.Arguments))
	}

	checker, err := protectValue(func() (Checker, error) {
		switch len(spec.Arguments) {
		case 0:
			return constructors.New()
		case 1:
			return constructors.NewWithArgument(spec.Arguments[0])
		default:
			return constructors.NewWithArguments(append([]string(nil), spec.Arguments...))
		}
	})

	if err != nil {
		return nil, fmt.Errorf("unable to build checker '%s': %w", spec.Checker, err)
	}

	if checker == nil {
		return nil, fmt.Errorf("checker '%s' constructor returned nil", spec.Checker)
	}

	return checker, nil
}

// shouldRun returns true if there is no gate or if the gate checker is satisfied.
func shouldRun(r *Registry, d Description, spec *RunIf) (bool, error) {

	if spec == nil {
		return true, nil
	}

	checker, err := r.NewChecker(*spec)
	if err != nil {
		return false, newConfigurationError(d, err, "invalid run if %s", spec)
	}

	var satisfied bool
	if err := protect(func() error { satisfied = checker.Satisfy(); return nil }); err != nil {
		return false, newConfigurationError(d, err, "checker %s failed", spec)
	}

	return satisfied, nil
}
