package runif

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsNamespace is the prometheus namespace of the runner metrics.
const MetricsNamespace = "runif"

// A MetricsNotifier counts lifecycle events in prometheus counters.
type MetricsNotifier struct {
	started  *prometheus.CounterVec
	failures *prometheus.CounterVec
	finished *prometheus.CounterVec
	ignored  *prometheus.CounterVec
}

// NewMetricsNotifier returns a MetricsNotifier registering its counters in reg.
func NewMetricsNotifier(reg prometheus.Registerer) *MetricsNotifier {

	factory := promauto.With(reg)

	return &MetricsNotifier{
		started: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "tests_started_total",
			Help:      "Count of started test methods",
		}, []string{"class"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "test_failures_total",
			Help:      "Count of reported failures, teardown failures included",
		}, []string{"class"}),
		finished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "tests_finished_total",
			Help:      "Count of finished test methods",
		}, []string{"class"}),
		ignored: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "tests_ignored_total",
			Help:      "Count of test methods skipped by a gate",
		}, []string{"class"}),
	}
}

// TestStarted implements Notifier.
func (m *MetricsNotifier) TestStarted(d Description) { m.started.WithLabelValues(d.Class).Inc() }

// TestFailure implements Notifier.
func (m *MetricsNotifier) TestFailure(d Description, _ error) {
	m.failures.WithLabelValues(d.Class).Inc()
}

// TestFinished implements Notifier.
func (m *MetricsNotifier) TestFinished(d Description) { m.finished.WithLabelValues(d.Class).Inc() }

// TestIgnored implements Notifier.
func (m *MetricsNotifier) TestIgnored(d Description) { m.ignored.WithLabelValues(d.Class).Inc() }
