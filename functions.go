package runif

import (
	"context"
)

// A TestFunction is the type of a function that is run as a test method.
// The instance is the value returned by the class InstanceFunction, or nil
// if the class does not declare one.
type TestFunction func(ctx context.Context, instance interface{}) error

// An InstanceFunction creates a fresh test instance for a single test method invocation.
type InstanceFunction func() (interface{}, error)

// A ContextFunction extracts the precondition context from a test instance.
// Returning nil means there is no context and preconditions are built
// with their constructor without context.
type ContextFunction func(instance interface{}) (interface{}, error)
