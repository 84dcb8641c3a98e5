package preconditions

import (
	"go.aporeto.io/runif"
)

// Names of the built-in preconditions.
const (
	NameTempDir = "tempdir"
	NameEnv     = "env"
)

func init() { Register(runif.DefaultRegistry()) }

// Register registers the built-in preconditions in the given registry.
func Register(r *runif.Registry) {

	r.RegisterPrecondition(NameTempDir, tempDirConstructors)
	r.RegisterPrecondition(NameEnv, envConstructors)
}
