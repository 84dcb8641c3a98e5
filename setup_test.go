package runif

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildPreconditions(t *testing.T) {

	Convey("Given preconditions with and without a context constructor", t, func() {

		var received []interface{}

		r := NewRegistry()
		r.RegisterPrecondition("both", PreconditionConstructors{
			New: func() (Precondition, error) { received = append(received, "none"); return PreconditionFuncs{}, nil },
			NewWithContext: func(ctx interface{}) (Precondition, error) {
				received = append(received, ctx)
				return PreconditionFuncs{}, nil
			},
		})
		r.RegisterPrecondition("plain", PreconditionConstructors{
			New: func() (Precondition, error) { received = append(received, "plain"); return PreconditionFuncs{}, nil },
		})
		r.RegisterPrecondition("context-only", PreconditionConstructors{
			NewWithContext: func(ctx interface{}) (Precondition, error) { return PreconditionFuncs{}, nil },
		})

		d := Description{Class: "C", Method: "M"}

		Convey("When I build a chain with a context", func() {

			chain, err := buildPreconditions(r, d, []string{"both", "plain", "both"}, "ctx")

			Convey("Then the context should be passed where accepted, in order", func() {
				So(err, ShouldBeNil)
				So(len(chain), ShouldEqual, 3)
				So(chain[0].name, ShouldEqual, "both")
				So(chain[1].name, ShouldEqual, "plain")
				So(received, ShouldResemble, []interface{}{"ctx", "plain", "ctx"})
			})
		})

		Convey("When I build a chain without context", func() {

			_, err := buildPreconditions(r, d, []string{"both", "plain"}, nil)

			Convey("Then the constructors without context should be used", func() {
				So(err, ShouldBeNil)
				So(received, ShouldResemble, []interface{}{"none", "plain"})
			})
		})

		Convey("When I build an empty chain", func() {

			chain, err := buildPreconditions(r, d, nil, "ctx")

			Convey("Then the chain should be empty", func() {
				So(err, ShouldBeNil)
				So(chain, ShouldBeEmpty)
			})
		})

		Convey("When a precondition needs a context that is absent", func() {

			_, err := buildPreconditions(r, d, []string{"context-only"}, nil)

			Convey("Then I should get a configuration error", func() {
				var cerr *ConfigurationError
				So(errors.As(err, &cerr), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "C.M: configuration error: invalid precondition: precondition 'context-only' has no constructor without context")
			})
		})
	})
}

func TestChain(t *testing.T) {

	Convey("Given a chain of three preconditions", t, func() {

		j := &journal{}
		p1 := &fakePrecondition{name: "p1", journal: j}
		p2 := &fakePrecondition{name: "p2", journal: j}
		p3 := &fakePrecondition{name: "p3", journal: j}
		chain := []link{{"p1", p1}, {"p2", p2}, {"p3", p3}}

		Convey("When every setup succeeds", func() {

			failedAt, err := setupChain(chain)
			errs := teardownChain(chain, failedAt)

			Convey("Then everything should be set up and torn down in order", func() {
				So(err, ShouldBeNil)
				So(failedAt, ShouldEqual, allSucceeded)
				So(errs, ShouldBeEmpty)
				So(j.calls, ShouldResemble, []string{"p1.setup", "p2.setup", "p3.setup", "p1.teardown", "p2.teardown", "p3.teardown"})
			})
		})

		Convey("When the first setup fails", func() {

			p1.setupErr = errors.New("no")
			failedAt, err := setupChain(chain)
			errs := teardownChain(chain, failedAt)

			Convey("Then nothing should be torn down", func() {
				So(err.Error(), ShouldEqual, "precondition 'p1' setup failed: no")
				So(failedAt, ShouldEqual, 0)
				So(errs, ShouldBeEmpty)
				So(j.calls, ShouldResemble, []string{"p1.setup"})
			})
		})

		Convey("When teardowns fail or panic", func() {

			p1.teardownErr = errors.New("td1")
			chain[1] = link{"p2", PreconditionFuncs{TeardownFunc: func() error { panic("td2") }}}
			p3.teardownErr = errors.New("td3")

			errs := teardownChain(chain, allSucceeded)

			Convey("Then every teardown should be attempted and every failure kept", func() {
				So(len(errs), ShouldEqual, 3)
				So(errs[0].Error(), ShouldEqual, "precondition 'p1' teardown failed: td1")
				So(errs[1].Error(), ShouldEqual, "precondition 'p2' teardown failed: panic: td2")
				So(errs[2].Error(), ShouldEqual, "precondition 'p3' teardown failed: td3")
				So(j.calls, ShouldResemble, []string{"p1.teardown", "p3.teardown"})
			})
		})
	})
}
