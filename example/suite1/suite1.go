package suite1

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartystreets/goconvey/convey"
	"go.aporeto.io/runif"
)

// fixture is the instance of the Files class. Its Dirs field is
// handed to the tempdir precondition, which stores the directory in it.
type fixture struct {
	Dirs *dirs `runif:"context"`
}

type dirs struct {
	path string
}

func (d *dirs) SetTempDir(path string) { d.path = path }

func init() {

	runif.RegisterClass(&runif.Class{
		Name:        "Files",
		Description: "Exercises a temporary directory created by a precondition.",
		New:         func() (interface{}, error) { return &fixture{Dirs: &dirs{}}, nil },
		Context:     runif.FieldContext,
		Methods: []*runif.Method{
			{
				Name:          "WriteFile",
				Description:   "Writes a file in the temporary directory.",
				Author:        "Antoine",
				Tags:          []string{"files"},
				Preconditions: []string{"tempdir"},
				Function: func(ctx context.Context, instance interface{}) error {

					f := instance.(*fixture)
					if f.Dirs.path == "" {
						return fmt.Errorf("no temporary directory")
					}

					path := filepath.Join(f.Dirs.path, "data")
					if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
						return err
					}

					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}

					runif.Assert(os.Stdout, "file content is preserved", string(data), convey.ShouldEqual, "hello")
					return nil
				},
			},
			{
				Name:   "UnixPermissions",
				Author: "Satyam",
				Tags:   []string{"files", "unix"},
				RunIf:  &runif.RunIf{Checker: "os", Arguments: []string{"linux", "mac"}},
				Function: func(ctx context.Context, instance interface{}) error {

					info, err := os.Stat(os.TempDir())
					if err != nil {
						return err
					}

					if !info.IsDir() {
						return fmt.Errorf("%s is not a directory", os.TempDir())
					}

					return nil
				},
			},
		},
	})
}
