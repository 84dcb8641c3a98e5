package runif

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRecorder(t *testing.T) {

	Convey("Given a recorder behind a fan out", t, func() {

		r1 := NewRecorder()
		r2 := NewRecorder()
		n := Notifiers{r1, r2}

		pass := Description{Class: "C", Method: "Pass"}
		fail := Description{Class: "C", Method: "Fail"}
		skip := Description{Class: "C", Method: "Skip"}
		late := Description{Class: "C", Method: "Late"}

		n.TestStarted(pass)
		n.TestFinished(pass)
		n.TestStarted(fail)
		n.TestFailure(fail, errors.New("boom"))
		n.TestFailure(fail, errors.New("boom again"))
		n.TestFinished(fail)
		n.TestIgnored(skip)
		n.TestStarted(late)
		n.TestFinished(late)
		n.TestFailure(late, errors.New("teardown"))

		Convey("Then both recorders should get every event", func() {
			So(len(r1.Events()), ShouldEqual, 10)
			So(r1.Events(), ShouldResemble, r2.Events())
		})

		Convey("Then I should get the events of one test", func() {
			events := r1.EventsFor(fail)
			So(len(events), ShouldEqual, 4)
			So(events[1].Kind, ShouldEqual, EventFailure)
			So(events[1].Err.Error(), ShouldEqual, "boom")
			So(events[3].Kind.String(), ShouldEqual, "finished")
		})

		Convey("Then the summary should count each test once", func() {
			So(r1.Summary(), ShouldResemble, Summary{Total: 4, Passed: 1, Failed: 2, Ignored: 1})
		})
	})
}

func TestFailureCounter(t *testing.T) {

	Convey("Given a failure counter", t, func() {

		rec := NewRecorder()
		c := &failureCounter{Notifier: rec}
		d := Description{Class: "C", Method: "M"}

		c.TestStarted(d)
		c.TestFailure(d, errors.New("a"))
		c.TestFailure(d, errors.New("b"))
		c.TestFinished(d)

		Convey("Then it should count failures and forward everything", func() {
			So(c.failures, ShouldEqual, 2)
			So(len(rec.Events()), ShouldEqual, 4)
		})
	})
}

func TestOutcome(t *testing.T) {

	Convey("Given outcomes", t, func() {

		ok := Outcome{Status: StatusRan, FailedAt: allSucceeded}
		skipped := Outcome{Status: StatusSkippedMethod, FailedAt: allSucceeded}
		broken := Outcome{
			Status:         StatusRan,
			FailedAt:       1,
			SetupError:     errors.New("setup"),
			TeardownErrors: []error{errors.New("td")},
			Failures:       2,
		}

		Convey("Then they should tell what happened", func() {
			So(ok.Skipped(), ShouldBeFalse)
			So(ok.Failed(), ShouldBeFalse)
			So(ok.Err(), ShouldBeNil)
			So(skipped.Skipped(), ShouldBeTrue)
			So(skipped.Status.String(), ShouldEqual, "skipped-method")
			So(broken.Failed(), ShouldBeTrue)
			So(broken.Err().Error(), ShouldEqual, "setup; td")
		})
	})
}
