package runif

import (
	"context"
	"fmt"
	"time"
)

// A Host creates test instances and runs test bodies, reporting
// the body result through the given Notifier.
type Host interface {
	CreateTest(class *Class) (interface{}, error)
	RunTest(ctx context.Context, instance interface{}, class *Class, method *Method, d Description, n Notifier)
}

// DefaultHost is the Host used by a Runner unless told otherwise.
// It recovers panics of test functions and reports them as failures.
type DefaultHost struct {
	// Timeout is applied to the context given to each test function if not zero.
	Timeout time.Duration
}

// CreateTest calls the class InstanceFunction. A class without one gets a nil instance.
func (h DefaultHost) CreateTest(class *Class) (interface{}, error) {

	if class.New == nil {
		return nil, nil
	}

	return protectValue(func() (interface{}, error) { return class.New() })
}

// RunTest runs the test function between a started and a finished event.
func (h DefaultHost) RunTest(ctx context.Context, instance interface{}, class *Class, method *Method, d Description, n Notifier) {

	n.TestStarted(d)
	defer n.TestFinished(d)

	if method.Function == nil {
		n.TestFailure(d, fmt.Errorf("method %s has no test function", d))
		return
	}

	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	if err := protect(func() error { return method.Function(ctx, instance) }); err != nil {
		n.TestFailure(d, err)
	}
}
