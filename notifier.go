package runif

import (
	"sync"
)

// A Notifier receives the lifecycle events of the test methods.
// A skipped method only receives TestIgnored, never TestFinished.
type Notifier interface {
	TestStarted(Description)
	TestFailure(Description, error)
	TestFinished(Description)
	TestIgnored(Description)
}

// Notifiers forwards every event to all of its members, in order.
type Notifiers []Notifier

// TestStarted implements Notifier.
func (ns Notifiers) TestStarted(d Description) {
	for _, n := range ns {
		n.TestStarted(d)
	}
}

// TestFailure implements Notifier.
func (ns Notifiers) TestFailure(d Description, err error) {
	for _, n := range ns {
		n.TestFailure(d, err)
	}
}

// TestFinished implements Notifier.
func (ns Notifiers) TestFinished(d Description) {
	for _, n := range ns {
		n.TestFinished(d)
	}
}

// TestIgnored implements Notifier.
func (ns Notifiers) TestIgnored(d Description) {
	for _, n := range ns {
		n.TestIgnored(d)
	}
}

// An EventKind is the kind of a lifecycle event.
type EventKind int

// Various values for EventKind.
const (
	EventStarted EventKind = iota
	EventFailure
	EventFinished
	EventIgnored
)

func (k EventKind) String() string {

	switch k {
	case EventStarted:
		return "started"
	case EventFailure:
		return "failure"
	case EventFinished:
		return "finished"
	case EventIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// An Event is a lifecycle event stored by a Recorder.
type Event struct {
	Kind        EventKind
	Description Description
	Err         error
}

// A Recorder is a Notifier keeping every event in memory.
type Recorder struct {
	events []Event
	lock   sync.Mutex
}

// NewRecorder returns a new Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// TestStarted implements Notifier.
func (r *Recorder) TestStarted(d Description) { r.record(Event{Kind: EventStarted, Description: d}) }

// TestFailure implements Notifier.
func (r *Recorder) TestFailure(d Description, err error) {
	r.record(Event{Kind: EventFailure, Description: d, Err: err})
}

// TestFinished implements Notifier.
func (r *Recorder) TestFinished(d Description) { r.record(Event{Kind: EventFinished, Description: d}) }

// TestIgnored implements Notifier.
func (r *Recorder) TestIgnored(d Description) { r.record(Event{Kind: EventIgnored, Description: d}) }

func (r *Recorder) record(e Event) {

	r.lock.Lock()
	defer r.lock.Unlock()

	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {

	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]Event(nil), r.events...)
}

// EventsFor returns the recorded events addressed to the given description.
func (r *Recorder) EventsFor(d Description) (out []Event) {

	for _, e := range r.Events() {
		if e.Description == d {
			out = append(out, e)
		}
	}

	return out
}

// A Summary counts the test methods by result.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Ignored int
}

// Summary returns the counts of the recorded test methods.
func (r *Recorder) Summary() Summary {

	var order []Description
	seen := map[Description]struct{}{}
	ignored := map[Description]bool{}
	failed := map[Description]bool{}

	for _, e := range r.Events() {

		if _, ok := seen[e.Description]; !ok {
			seen[e.Description] = struct{}{}
			order = append(order, e.Description)
		}

		switch e.Kind {
		case EventIgnored:
			ignored[e.Description] = true
		case EventFailure:
			failed[e.Description] = true
		}
	}

	s := Summary{Total: len(order)}
	for _, d := range order {
		switch {
		case ignored[d]:
			s.Ignored++
		case failed[d]:
			s.Failed++
		default:
			s.Passed++
		}
	}

	return s
}

// failureCounter counts the failures it forwards.
type failureCounter struct {
	Notifier
	failures int
}

func (c *failureCounter) TestFailure(d Description, err error) {
	c.failures++
	c.Notifier.TestFailure(d, err)
}
