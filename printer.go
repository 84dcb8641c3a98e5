package runif

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/buger/goterm"
	wordwrap "github.com/mitchellh/go-wordwrap"
)

// A ConsoleNotifier prints the result of each test method when it finishes.
type ConsoleNotifier struct {
	out     io.Writer
	verbose bool

	started  map[Description]time.Time
	failures map[Description][]error
	done     map[Description]bool

	lock sync.Mutex
}

// NewConsoleNotifier returns a ConsoleNotifier writing to out.
// If verbose is true, starts and passing tests details are printed too.
func NewConsoleNotifier(out io.Writer, verbose bool) *ConsoleNotifier {
	return &ConsoleNotifier{
		out:      out,
		verbose:  verbose,
		started:  map[Description]time.Time{},
		failures: map[Description][]error{},
		done:     map[Description]bool{},
	}
}

// TestStarted implements Notifier.
func (p *ConsoleNotifier) TestStarted(d Description) {

	p.lock.Lock()
	defer p.lock.Unlock()

	p.started[d] = time.Now()
	delete(p.done, d)

	if p.verbose {
		fmt.Fprintln(p.out, goterm.Color(fmt.Sprintf("RUN  : %s", d), goterm.BLUE))
	}
}

// TestFailure implements Notifier. Failures reported after the
// test finished, like teardown failures, are printed right away.
func (p *ConsoleNotifier) TestFailure(d Description, err error) {

	p.lock.Lock()
	defer p.lock.Unlock()

	if p.done[d] {
		fmt.Fprintln(p.out, goterm.Bold(goterm.Color(fmt.Sprintf("FAIL : %s (after finish)", d), goterm.YELLOW)))
		p.printError(err)
		return
	}

	p.failures[d] = append(p.failures[d], err)
}

// TestFinished implements Notifier.
func (p *ConsoleNotifier) TestFinished(d Description) {

	p.lock.Lock()
	defer p.lock.Unlock()

	var elapsed time.Duration
	if start, ok := p.started[d]; ok {
		elapsed = time.Since(start).Round(time.Millisecond)
	}

	errs := p.failures[d]
	delete(p.failures, d)
	delete(p.started, d)
	p.done[d] = true

	if len(errs) == 0 {
		fmt.Fprintln(p.out, goterm.Color(fmt.Sprintf("PASS : %s %s", d, goterm.Color(elapsed.String(), goterm.BLUE)), goterm.GREEN))
		return
	}

	fmt.Fprintln(p.out, goterm.Bold(goterm.Color(fmt.Sprintf("FAIL : %s %s", d, elapsed), goterm.YELLOW)))
	for _, err := range errs {
		p.printError(err)
	}
}

// TestIgnored implements Notifier.
func (p *ConsoleNotifier) TestIgnored(d Description) {

	p.lock.Lock()
	defer p.lock.Unlock()

	fmt.Fprintln(p.out, goterm.Color(fmt.Sprintf("SKIP : %s", d), goterm.MAGENTA))
}

func (p *ConsoleNotifier) printError(err error) {

	msg := wordwrap.WrapString(err.Error(), 120)
	fmt.Fprintln(p.out, goterm.Color(fmt.Sprintf("  error: %s", strings.Replace(msg, "\n", "\n         ", -1)), goterm.RED))

	var perr PanicError
	if p.verbose && errors.As(err, &perr) {
		fmt.Fprintf(p.out, "    Test panic:\n\n%s\n", string(perr.Stack))
	}
}

// PrintSummary prints the given summary.
func PrintSummary(out io.Writer, s Summary) {

	color := goterm.GREEN
	if s.Failed > 0 {
		color = goterm.RED
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, goterm.Bold(goterm.Color(
		fmt.Sprintf("total: %d, passed: %d, failed: %d, skipped: %d", s.Total, s.Passed, s.Failed, s.Ignored),
		color,
	)))
}
