package runif

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/buger/goterm"
)

type assertionError struct {
	msg      string
	Message  string
	Expected interface{}
	Actual   interface{}
}

func newAssertionError(msg string) *assertionError {
	return &assertionError{
		msg: msg,
	}
}

func (e *assertionError) Error() string {

	if e.Expected == nil && e.Actual == nil {
		return fmt.Sprintf("%s: %s", e.msg, e.Message)
	}

	return fmt.Sprintf("%s: expected: '%v', actual '%v'", e.msg, e.Expected, e.Actual)
}

// Assert can use goconvey function to perform an assertion inside a TestFunction.
// A failed assertion panics. The panic is reported by the Host as a test failure.
func Assert(w io.Writer, message string, actual interface{}, f func(interface{}, ...interface{}) string, expected ...interface{}) {

	if msg := f(actual, expected...); msg != "" {

		r := newAssertionError(message)
		if err := json.Unmarshal([]byte(msg), r); err != nil {
			r.Message = msg
		}
		panic(r)
	}

	fmt.Fprintln(w, goterm.Color(fmt.Sprintf("- [PASS] %s", message), goterm.GREEN))
}
