package checkers

import (
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	. "github.com/smartystreets/goconvey/convey"
	"go.aporeto.io/runif"
)

func TestOS(t *testing.T) {

	Convey("Given the host runs linux", t, func() {

		previous := goos
		goos = "linux"
		Reset(func() { goos = previous })

		Convey("Then linux targets should be satisfied", func() {
			So(NewOS(LINUX).Satisfy(), ShouldBeTrue)
			So(NewOS("Linux").Satisfy(), ShouldBeTrue)
			So(NewOS(MAC, LINUX).Satisfy(), ShouldBeTrue)
			So(NewOS(MAC, WINDOWS).Satisfy(), ShouldBeFalse)
			So(NewOS().Satisfy(), ShouldBeFalse)
		})
	})

	Convey("Given the host runs darwin", t, func() {

		previous := goos
		goos = "darwin"
		Reset(func() { goos = previous })

		Convey("Then mac targets should be satisfied", func() {
			So(NewOS(MAC).Satisfy(), ShouldBeTrue)
			So(NewOS(LINUX).Satisfy(), ShouldBeFalse)
		})
	})

	Convey("Given the host runs windows", t, func() {

		previous := goos
		goos = "windows"
		Reset(func() { goos = previous })

		Convey("Then win targets should be satisfied", func() {
			So(NewOS(WINDOWS).Satisfy(), ShouldBeTrue)
		})
	})
}

func TestEnv(t *testing.T) {

	Convey("Given an environment", t, func() {

		previous := lookupEnv
		lookupEnv = func(k string) (string, bool) {
			v, ok := map[string]string{"CI": "true", "EMPTY": ""}[k]
			return v, ok
		}
		Reset(func() { lookupEnv = previous })

		Convey("Then requirements should be checked", func() {

			c, err := NewEnv("CI")
			So(err, ShouldBeNil)
			So(c.Satisfy(), ShouldBeTrue)

			c, _ = NewEnv("CI=true", "EMPTY")
			So(c.Satisfy(), ShouldBeTrue)

			c, _ = NewEnv("CI=false")
			So(c.Satisfy(), ShouldBeFalse)

			c, _ = NewEnv("EMPTY=")
			So(c.Satisfy(), ShouldBeTrue)

			c, _ = NewEnv("CI", "MISSING")
			So(c.Satisfy(), ShouldBeFalse)
		})

		Convey("Then an empty name should be rejected", func() {
			_, err := NewEnv("=value")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "invalid environment requirement '=value'")
		})
	})
}

func TestPlatform(t *testing.T) {

	Convey("Given an ubuntu host", t, func() {

		previous := hostInfo
		hostInfo = func() (*host.InfoStat, error) {
			return &host.InfoStat{Platform: "ubuntu", PlatformFamily: "debian"}, nil
		}
		Reset(func() { hostInfo = previous })

		Convey("Then platform and family should match", func() {
			So(NewPlatform("ubuntu").Satisfy(), ShouldBeTrue)
			So(NewPlatform("Debian").Satisfy(), ShouldBeTrue)
			So(NewPlatform("rhel", "alpine").Satisfy(), ShouldBeFalse)
		})
	})

	Convey("Given a host that cannot be inspected", t, func() {

		previous := hostInfo
		hostInfo = func() (*host.InfoStat, error) { return nil, errors.New("denied") }
		Reset(func() { hostInfo = previous })

		Convey("Then nothing should match", func() {
			So(NewPlatform("ubuntu").Satisfy(), ShouldBeFalse)
		})
	})
}

func TestMemory(t *testing.T) {

	Convey("Given a host with 2 GiB of memory", t, func() {

		previous := virtualMemory
		virtualMemory = func() (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{Total: 2048 * 1024 * 1024}, nil
		}
		Reset(func() { virtualMemory = previous })

		Convey("Then the minimum should be compared", func() {

			c, err := NewMemory("1024")
			So(err, ShouldBeNil)
			So(c.Satisfy(), ShouldBeTrue)

			c, _ = NewMemory("2048")
			So(c.Satisfy(), ShouldBeTrue)

			c, _ = NewMemory("4096")
			So(c.Satisfy(), ShouldBeFalse)
		})

		Convey("Then an invalid size should be rejected", func() {
			_, err := NewMemory("lots")
			So(err, ShouldNotBeNil)
		})

		Convey("Then a size overflowing bytes should be rejected", func() {

			_, err := NewMemory("17592186044416")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "invalid memory size '17592186044416': too large")

			c, err := NewMemory("17592186044415")
			So(err, ShouldBeNil)
			So(c.Satisfy(), ShouldBeFalse)
		})
	})

	Convey("Given a host that cannot be inspected", t, func() {

		previous := virtualMemory
		virtualMemory = func() (*mem.VirtualMemoryStat, error) { return nil, errors.New("denied") }
		Reset(func() { virtualMemory = previous })

		Convey("Then the checker should not be satisfied", func() {
			c, _ := NewMemory("1")
			So(c.Satisfy(), ShouldBeFalse)
		})
	})
}

func TestRegister(t *testing.T) {

	Convey("Given a registry with the built-in checkers", t, func() {

		previous := goos
		goos = "linux"
		Reset(func() { goos = previous })

		r := runif.NewRegistry()
		Register(r)

		Convey("Then they should be registered", func() {
			So(r.Checkers(), ShouldResemble, []string{NameEnv, NameMemory, NameNot, NameOS, NamePlatform})
		})

		Convey("Then they should be built through the registry", func() {

			c, err := r.NewChecker(runif.RunIf{Checker: NameOS, Arguments: []string{LINUX}})
			So(err, ShouldBeNil)
			So(c.Satisfy(), ShouldBeTrue)

			c, err = r.NewChecker(runif.RunIf{Checker: NameOS, Arguments: []string{MAC, WINDOWS}})
			So(err, ShouldBeNil)
			So(c.Satisfy(), ShouldBeFalse)

			_, err = r.NewChecker(runif.RunIf{Checker: NameOS})
			So(err, ShouldNotBeNil)

			_, err = r.NewChecker(runif.RunIf{Checker: NameMemory, Arguments: []string{"1", "2"}})
			So(err, ShouldNotBeNil)
		})

		Convey("Then not should invert another checker", func() {

			c, err := r.NewChecker(runif.RunIf{Checker: NameNot, Arguments: []string{NameOS, WINDOWS}})
			So(err, ShouldBeNil)
			So(c.Satisfy(), ShouldBeTrue)

			c, err = r.NewChecker(runif.RunIf{Checker: NameNot, Arguments: []string{NameOS, LINUX, MAC}})
			So(err, ShouldBeNil)
			So(c.Satisfy(), ShouldBeFalse)
		})

		Convey("Then not should reject invalid arguments", func() {

			_, err := r.NewChecker(runif.RunIf{Checker: NameNot, Arguments: []string{NameNot}})
			So(err, ShouldNotBeNil)

			_, err = r.NewChecker(runif.RunIf{Checker: NameNot, Arguments: []string{"unknown"}})
			So(err, ShouldNotBeNil)

			_, err = r.NewChecker(runif.RunIf{Checker: NameNot, Arguments: []string{NameOS}})
			So(err, ShouldNotBeNil)
		})
	})
}
