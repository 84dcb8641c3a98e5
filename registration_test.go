package runif

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/multierr"
)

func TestRegistry(t *testing.T) {

	Convey("Given a registry", t, func() {

		r := NewRegistry()
		r.RegisterChecker("b", CheckerConstructors{New: func() (Checker, error) { return CheckerFunc(func() bool { return true }), nil }})
		r.RegisterChecker("a", CheckerConstructors{NewWithArgument: func(string) (Checker, error) { return CheckerFunc(func() bool { return true }), nil }})
		r.RegisterPrecondition("p", PreconditionConstructors{New: func() (Precondition, error) { return PreconditionFuncs{}, nil }})
		r.RegisterPrecondition("empty", PreconditionConstructors{})
		r.RegisterClass(&Class{Name: "Z"})
		r.RegisterClass(&Class{Name: "Y"})

		Convey("Then names should be sorted", func() {
			So(r.Checkers(), ShouldResemble, []string{"a", "b"})
			So(r.Preconditions(), ShouldResemble, []string{"empty", "p"})
			So(r.Classes()[0].Name, ShouldEqual, "Y")
			So(r.Classes()[1].Name, ShouldEqual, "Z")
			So(r.Class("Z"), ShouldNotBeNil)
			So(r.Class("X"), ShouldBeNil)
		})

		Convey("Then registering duplicates or empty names should panic", func() {
			So(func() { r.RegisterChecker("a", CheckerConstructors{}) }, ShouldPanicWith, "runif: checker 'a' already registered")
			So(func() { r.RegisterPrecondition("p", PreconditionConstructors{}) }, ShouldPanicWith, "runif: precondition 'p' already registered")
			So(func() { r.RegisterClass(&Class{Name: "Z"}) }, ShouldPanicWith, "runif: class 'Z' already registered")
			So(func() { r.RegisterChecker("", CheckerConstructors{}) }, ShouldPanic)
			So(func() { r.RegisterClass(&Class{}) }, ShouldPanic)
		})

		Convey("When I validate valid declarations", func() {

			r.RegisterClass(&Class{
				Name:  "Valid",
				RunIf: &RunIf{Checker: "a", Arguments: []string{"x"}},
				Methods: []*Method{
					{Name: "M", RunIf: &RunIf{Checker: "b"}, Preconditions: []string{"p"}},
				},
			})

			Convey("Then I should get no error", func() {
				So(r.Validate(), ShouldBeNil)
			})
		})

		Convey("When I validate invalid declarations", func() {

			r.RegisterClass(&Class{
				Name:  "Invalid",
				RunIf: &RunIf{Checker: "a"},
				Methods: []*Method{
					{Name: "M1", RunIf: &RunIf{Checker: "missing"}},
					{Name: "M2", Preconditions: []string{"p", "unknown", "empty"}},
				},
			})

			err := r.Validate()

			Convey("Then I should get every problem", func() {
				errs := multierr.Errors(err)
				So(len(errs), ShouldEqual, 4)
				So(errs[0].Error(), ShouldEqual, "Invalid: configuration error: checker 'a' cannot be built with 0 argument(s)")
				So(errs[1].Error(), ShouldEqual, "Invalid.M1: configuration error: unknown checker 'missing'")
				So(errs[2].Error(), ShouldEqual, "Invalid.M2: configuration error: unknown precondition 'unknown'")
				So(errs[3].Error(), ShouldEqual, "Invalid.M2: configuration error: precondition 'empty' has no constructor")
			})
		})
	})
}
