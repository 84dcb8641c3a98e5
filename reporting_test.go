package runif

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsNotifier(t *testing.T) {

	Convey("Given a metrics notifier", t, func() {

		reg := prometheus.NewRegistry()
		m := NewMetricsNotifier(reg)

		Convey("When I send events", func() {

			a := Description{Class: "A", Method: "M"}
			b := Description{Class: "B", Method: "M"}

			m.TestStarted(a)
			m.TestFailure(a, errors.New("x"))
			m.TestFailure(a, errors.New("y"))
			m.TestFinished(a)
			m.TestIgnored(b)

			Convey("Then the counters should be updated per class", func() {
				So(testutil.ToFloat64(m.started.WithLabelValues("A")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.failures.WithLabelValues("A")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.finished.WithLabelValues("A")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.ignored.WithLabelValues("B")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.ignored.WithLabelValues("A")), ShouldEqual, 0)
			})

			Convey("Then the counters should be registered", func() {
				n, err := testutil.GatherAndCount(reg, "runif_tests_started_total", "runif_tests_ignored_total")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})
		})

		Convey("When I create a second notifier on the same registry", func() {

			Convey("Then it should panic", func() {
				So(func() { NewMetricsNotifier(reg) }, ShouldPanic)
			})
		})
	})
}
