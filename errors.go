package runif

import (
	"fmt"
	"runtime/debug"
)

// A ConfigurationError is returned when a test is declared in a way the runner
// cannot honor: unknown or malformed checker or precondition, missing
// constructor, failing context accessor. It is never reported as a test failure
// and always aborts the current run.
type ConfigurationError struct {
	Description Description
	Reason      string
	Err         error
}

func newConfigurationError(d Description, err error, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Description: d,
		Reason:      fmt.Sprintf(format, args...),
		Err:         err,
	}
}

func (e *ConfigurationError) Error() string {

	if e.Err == nil {
		return fmt.Sprintf("%s: configuration error: %s", e.Description, e.Reason)
	}

	return fmt.Sprintf("%s: configuration error: %s: %s", e.Description, e.Reason, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// A PanicError is the error produced when user code panics
// inside a checker, a precondition, a constructor or a test function.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

func protect(f func() error) (err error) {

	defer func() {
		if r := recover(); r != nil {
			err = PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	return f()
}

func protectValue[T any](f func() (T, error)) (out T, err error) {

	defer func() {
		if r := recover(); r != nil {
			err = PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	return f()
}
