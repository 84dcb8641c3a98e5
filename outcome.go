package runif

import (
	"go.uber.org/multierr"
)

// A Status tells what the runner did with a test method.
type Status int

// Various values for Status.
const (
	StatusRan Status = iota
	StatusSkippedClass
	StatusSkippedMethod
)

func (s Status) String() string {

	switch s {
	case StatusRan:
		return "ran"
	case StatusSkippedClass:
		return "skipped-class"
	case StatusSkippedMethod:
		return "skipped-method"
	default:
		return "unknown"
	}
}

// An Outcome is the result of running one test method.
// The pass or fail result of the body itself is reported to the Notifier;
// Failures counts every failure reported for this method, body included.
type Outcome struct {
	Description    Description
	Status         Status
	FailedAt       int
	SetupError     error
	TeardownErrors []error
	Failures       int
}

// Skipped returns true if the method was not run because of a gate.
func (o Outcome) Skipped() bool { return o.Status != StatusRan }

// Failed returns true if at least one failure was reported for the method.
func (o Outcome) Failed() bool { return o.Failures > 0 }

// Err returns the setup and teardown errors combined, or nil.
func (o Outcome) Err() error {
	return multierr.Combine(append([]error{o.SetupError}, o.TeardownErrors...)...)
}
