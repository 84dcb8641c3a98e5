// Package preconditions provides the built-in runif preconditions.
// Importing the package registers them in the runif main registry.
package preconditions

import (
	"fmt"
	"os"

	"go.aporeto.io/runif"
)

// A TempDirUser receives the path of the directory created by TempDir.
// A test class context implementing it gets the path after setup.
type TempDirUser interface {
	SetTempDir(path string)
}

// TempDir creates a temporary directory on setup and removes it on teardown.
type TempDir struct {
	user TempDirUser
	path string
}

// NewTempDir returns a TempDir. The context is told the path
// of the directory if it implements TempDirUser.
func NewTempDir(context interface{}) *TempDir {

	t := &TempDir{}
	if u, ok := context.(TempDirUser); ok {
		t.user = u
	}

	return t
}

// Path returns the path of the directory, empty before setup.
func (t *TempDir) Path() string { return t.path }

// Setup implements runif.Precondition.
func (t *TempDir) Setup() error {

	path, err := os.MkdirTemp("", "runif-")
	if err != nil {
		return fmt.Errorf("unable to create temporary directory: %w", err)
	}

	t.path = path
	if t.user != nil {
		t.user.SetTempDir(path)
	}

	return nil
}

// Teardown implements runif.Precondition.
func (t *TempDir) Teardown() error {

	if t.path == "" {
		return nil
	}

	if err := os.RemoveAll(t.path); err != nil {
		return fmt.Errorf("unable to remove temporary directory %s: %w", t.path, err)
	}

	return nil
}

var tempDirConstructors = runif.PreconditionConstructors{
	New:            func() (runif.Precondition, error) { return NewTempDir(nil), nil },
	NewWithContext: func(context interface{}) (runif.Precondition, error) { return NewTempDir(context), nil },
}
