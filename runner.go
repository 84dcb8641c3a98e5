package runif

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// A RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// OptionRegistry sets the registry used to resolve checkers and preconditions.
// The default is the main registry.
func OptionRegistry(r *Registry) RunnerOption {
	return func(rn *Runner) { rn.registry = r }
}

// OptionHost sets the host used to create instances and run test bodies.
// The default is DefaultHost{}.
func OptionHost(h Host) RunnerOption {
	return func(rn *Runner) { rn.host = h }
}

// OptionLogger sets the logger. The default is zap.L().
func OptionLogger(l *zap.Logger) RunnerOption {
	return func(rn *Runner) { rn.logger = l }
}

// OptionStopOnFailure makes the runner stop after the first method reporting a failure.
func OptionStopOnFailure(stop bool) RunnerOption {
	return func(rn *Runner) { rn.stopOnFailure = stop }
}

// A Runner gates test classes and methods, runs the precondition chain
// around each test body and reports everything to a Notifier.
// Methods run one after the other.
type Runner struct {
	registry      *Registry
	host          Host
	notifier      Notifier
	logger        *zap.Logger
	stopOnFailure bool
}

// NewRunner returns a new Runner reporting to the given Notifier.
func NewRunner(notifier Notifier, options ...RunnerOption) *Runner {

	r := &Runner{
		registry: mainRegistry,
		host:     DefaultHost{},
		notifier: notifier,
		logger:   zap.L(),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Run runs the given classes in order. It stops at the first configuration error,
// at the first failure if OptionStopOnFailure is set, or when ctx is done.
func (r *Runner) Run(ctx context.Context, classes ...*Class) ([]Outcome, error) {

	var outcomes []Outcome

	for _, c := range classes {

		out, err := r.RunClass(ctx, c)
		outcomes = append(outcomes, out...)

		if err != nil {
			return outcomes, err
		}

		if r.stopOnFailure && failed(out) {
			break
		}
	}

	return outcomes, nil
}

// RunClass evaluates the class gate once, then runs every method of the class in order.
func (r *Runner) RunClass(ctx context.Context, class *Class) ([]Outcome, error) {

	allowed, err := r.classAllowed(class)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(class.Methods))

	for _, m := range class.Methods {

		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		o, err := r.runMethod(ctx, class, allowed, m)
		if err != nil {
			return outcomes, err
		}

		outcomes = append(outcomes, o)

		if r.stopOnFailure && o.Failed() {
			r.logger.Info("Stopping on failure", zap.Stringer("test", o.Description))
			break
		}
	}

	return outcomes, nil
}

// RunMethod runs a single method of the class, evaluating the class gate first.
// The class gate is evaluated on every call: use RunClass to evaluate it once
// for all the methods of a class.
func (r *Runner) RunMethod(ctx context.Context, class *Class, method *Method) (Outcome, error) {

	allowed, err := r.classAllowed(class)
	if err != nil {
		return Outcome{Description: class.description(method), FailedAt: allSucceeded}, err
	}

	return r.runMethod(ctx, class, allowed, method)
}

func (r *Runner) classAllowed(class *Class) (bool, error) {

	allowed, err := shouldRun(r.registry, Description{Class: class.Name}, class.RunIf)
	if err != nil {
		r.logger.Error("Unable to evaluate class gate", zap.String("class", class.Name), zap.Error(err))
		return false, err
	}

	if !allowed {
		r.logger.Info("Class gate denied",
			zap.String("class", class.Name),
			zap.Stringer("checker", class.RunIf),
		)
	}

	return allowed, nil
}

func (r *Runner) runMethod(ctx context.Context, class *Class, classAllowed bool, method *Method) (Outcome, error) {

	d := class.description(method)
	log := r.logger.With(zap.String("class", class.Name), zap.String("method", method.Name))

	outcome := Outcome{Description: d, Status: StatusRan, FailedAt: allSucceeded}

	if !classAllowed {
		r.notifier.TestIgnored(d)
		outcome.Status = StatusSkippedClass
		return outcome, nil
	}

	allowed, err := shouldRun(r.registry, d, method.RunIf)
	if err != nil {
		log.Error("Unable to evaluate method gate", zap.Error(err))
		return outcome, err
	}

	if !allowed {
		log.Info("Method gate denied", zap.Stringer("checker", method.RunIf))
		r.notifier.TestIgnored(d)
		outcome.Status = StatusSkippedMethod
		return outcome, nil
	}

	n := &failureCounter{Notifier: r.notifier}

	instance, err := r.host.CreateTest(class)
	if err != nil {
		log.Warn("Unable to create test instance", zap.Error(err))
		n.TestStarted(d)
		n.TestFailure(d, err)
		n.TestFinished(d)
		outcome.Failures = n.failures
		return outcome, nil
	}

	tctx, err := resolveContext(class, d, instance)
	if err != nil {
		log.Error("Unable to resolve precondition context", zap.Error(err))
		return outcome, err
	}

	chain, err := buildPreconditions(r.registry, d, method.Preconditions, tctx)
	if err != nil {
		log.Error("Unable to build preconditions", zap.Error(err))
		return outcome, err
	}

	outcome.FailedAt, outcome.SetupError = setupChain(chain)

	if outcome.FailedAt == allSucceeded {
		log.Debug("Preconditions ready", zap.Int("count", len(chain)))
		if err := protect(func() error { r.host.RunTest(ctx, instance, class, method, d, n); return nil }); err != nil {
			n.TestFailure(d, fmt.Errorf("host failed to run test: %w", err))
		}
	} else {
		log.Warn("Precondition setup failed",
			zap.Int("index", outcome.FailedAt),
			zap.String("precondition", chain[outcome.FailedAt].name),
			zap.Error(outcome.SetupError),
		)
		n.TestStarted(d)
		n.TestFailure(d, outcome.SetupError)
		n.TestFinished(d)
	}

	outcome.TeardownErrors = teardownChain(chain, outcome.FailedAt)
	for _, err := range outcome.TeardownErrors {
		log.Warn("Precondition teardown failed", zap.Error(err))
		n.TestFailure(d, err)
	}

	outcome.Failures = n.failures

	return outcome, nil
}

func failed(outcomes []Outcome) bool {

	for _, o := range outcomes {
		if o.Failed() {
			return true
		}
	}

	return false
}
