package checkers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"go.aporeto.io/runif"
)

var (
	hostInfo      = host.Info
	virtualMemory = mem.VirtualMemory
)

// Platform is satisfied when the host platform (ubuntu, darwin, ...)
// or platform family (debian, rhel, ...) is one of the given names.
type Platform struct {
	names []string
}

// NewPlatform returns a Platform checker.
func NewPlatform(names ...string) Platform {

	out := Platform{}
	for _, n := range names {
		out.names = append(out.names, strings.ToLower(n))
	}

	return out
}

// Satisfy implements runif.Checker. It is never satisfied
// if the host information cannot be read.
func (c Platform) Satisfy() bool {

	info, err := hostInfo()
	if err != nil {
		return false
	}

	for _, n := range c.names {
		if n == strings.ToLower(info.Platform) || n == strings.ToLower(info.PlatformFamily) {
			return true
		}
	}

	return false
}

// Memory is satisfied when the host has at least the given total memory.
type Memory struct {
	minimum uint64
}

// NewMemory returns a Memory checker. The argument is a number of MiB.
func NewMemory(mib string) (Memory, error) {

	n, err := strconv.ParseUint(mib, 10, 64)
	if err != nil {
		return Memory{}, fmt.Errorf("invalid memory size '%s': %w", mib, err)
	}

	if n > math.MaxUint64>>20 {
		return Memory{}, fmt.Errorf("invalid memory size '%s': too large", mib)
	}

	return Memory{minimum: n << 20}, nil
}

// Satisfy implements runif.Checker. It is never satisfied
// if the memory information cannot be read.
func (c Memory) Satisfy() bool {

	vm, err := virtualMemory()
	if err != nil {
		return false
	}

	return vm.Total >= c.minimum
}

var platformConstructors = runif.CheckerConstructors{
	NewWithArgument:  func(name string) (runif.Checker, error) { return NewPlatform(name), nil },
	NewWithArguments: func(names []string) (runif.Checker, error) { return NewPlatform(names...), nil },
}

var memoryConstructors = runif.CheckerConstructors{
	NewWithArgument: func(mib string) (runif.Checker, error) { return NewMemory(mib) },
}
