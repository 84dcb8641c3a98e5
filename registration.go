package runif

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/multierr"
)

// A Registry holds the checkers, preconditions and classes known to a runner.
// Checkers and preconditions are referenced by name from RunIf and Method.Preconditions.
type Registry struct {
	checkers      map[string]CheckerConstructors
	preconditions map[string]PreconditionConstructors
	classes       Classes

	lock sync.RWMutex
}

// NewRegistry returns a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		checkers:      map[string]CheckerConstructors{},
		preconditions: map[string]PreconditionConstructors{},
		classes:       Classes{},
	}
}

// RegisterChecker registers the checker constructors under the given name.
// It panics if the name is empty or already registered.
func (r *Registry) RegisterChecker(name string, c CheckerConstructors) {

	r.lock.Lock()
	defer r.lock.Unlock()

	if name == "" {
		panic("runif: checker name must not be empty")
	}

	if _, ok := r.checkers[name]; ok {
		panic(fmt.Sprintf("runif: checker '%s' already registered", name))
	}

	r.checkers[name] = c
}

// RegisterPrecondition registers the precondition constructors under the given name.
// It panics if the name is empty or already registered.
func (r *Registry) RegisterPrecondition(name string, p PreconditionConstructors) {

	r.lock.Lock()
	defer r.lock.Unlock()

	if name == "" {
		panic("runif: precondition name must not be empty")
	}

	if _, ok := r.preconditions[name]; ok {
		panic(fmt.Sprintf("runif: precondition '%s' already registered", name))
	}

	r.preconditions[name] = p
}

// RegisterClass registers the given class.
// It panics if the name is empty or already registered.
func (r *Registry) RegisterClass(c *Class) {

	r.lock.Lock()
	defer r.lock.Unlock()

	if c.Name == "" {
		panic("runif: class name must not be empty")
	}

	if _, ok := r.classes[c.Name]; ok {
		panic(fmt.Sprintf("runif: class '%s' already registered", c.Name))
	}

	r.classes[c.Name] = c
}

// Class returns the registered class with the given name or nil.
func (r *Registry) Class(name string) *Class {

	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.classes[name]
}

// Classes returns the registered classes sorted by name.
func (r *Registry) Classes() []*Class {

	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.classes.Sorted()
}

// Checkers returns the sorted names of the registered checkers.
func (r *Registry) Checkers() []string {

	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Preconditions returns the sorted names of the registered preconditions.
func (r *Registry) Preconditions() []string {

	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]string, 0, len(r.preconditions))
	for name := range r.preconditions {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Validate checks that every checker and precondition referenced by the
// registered classes exists and can be built with the declared arguments.
// It returns all the problems found as *ConfigurationError.
func (r *Registry) Validate() (err error) {

	for _, c := range r.Classes() {

		err = multierr.Append(err, r.validateRunIf(Description{Class: c.Name}, c.RunIf))

		for _, m := range c.Methods {

			d := c.description(m)
			err = multierr.Append(err, r.validateRunIf(d, m.RunIf))

			for _, name := range m.Preconditions {
				p, ok := r.precondition(name)
				switch {
				case !ok:
					err = multierr.Append(err, newConfigurationError(d, nil, "unknown precondition '%s'", name))
				case p.New == nil && p.NewWithContext == nil:
					err = multierr.Append(err, newConfigurationError(d, nil, "precondition '%s' has no constructor", name))
				}
			}
		}
	}

	return err
}

func (r *Registry) validateRunIf(d Description, spec *RunIf) error {

	if spec == nil {
		return nil
	}

	c, ok := r.checker(spec.Checker)
	if !ok {
		return newConfigurationError(d, nil, "unknown checker '%s'", spec.Checker)
	}

	if !c.supports(len(spec.Arguments)) {
		return newConfigurationError(d, nil, "checker '%s' cannot be built with %d argument(s)", spec.Checker, len(spec.Arguments))
	}

	return nil
}

func (r *Registry) checker(name string) (CheckerConstructors, bool) {

	r.lock.RLock()
	defer r.lock.RUnlock()

	c, ok := r.checkers[name]
	return c, ok
}

func (r *Registry) precondition(name string) (PreconditionConstructors, bool) {

	r.lock.RLock()
	defer r.lock.RUnlock()

	p, ok := r.preconditions[name]
	return p, ok
}

var mainRegistry *Registry

func init() { mainRegistry = NewRegistry() }

// DefaultRegistry returns the registry used by the package level Register functions.
func DefaultRegistry() *Registry { return mainRegistry }

// RegisterChecker registers a checker in the main registry.
func RegisterChecker(name string, c CheckerConstructors) { mainRegistry.RegisterChecker(name, c) }

// RegisterPrecondition registers a precondition in the main registry.
func RegisterPrecondition(name string, p PreconditionConstructors) {
	mainRegistry.RegisterPrecondition(name, p)
}

// RegisterClass registers a test class in the main registry.
func RegisterClass(c *Class) { mainRegistry.RegisterClass(c) }
