package suite2

import (
	"context"
	"fmt"
	"os"

	"go.aporeto.io/runif"
)

func init() {

	runif.RegisterClass(&runif.Class{
		Name:        "Windows",
		Description: "Only runs on windows hosts.",
		RunIf:       &runif.RunIf{Checker: "os", Arguments: []string{"win"}},
		Methods: []*runif.Method{
			{
				Name: "Registry",
				Function: func(ctx context.Context, instance interface{}) error {
					return nil
				},
			},
		},
	})

	runif.RegisterClass(&runif.Class{
		Name:        "Environment",
		Description: "Sets environment variables around the test bodies.",
		New: func() (interface{}, error) {
			return map[string]string{"RUNIF_EXAMPLE_MODE": "check"}, nil
		},
		Context: func(instance interface{}) (interface{}, error) { return instance, nil },
		Methods: []*runif.Method{
			{
				Name:          "ModeIsSet",
				Author:        "Antoine Mercadal",
				Preconditions: []string{"env"},
				Function: func(ctx context.Context, instance interface{}) error {

					if v := os.Getenv("RUNIF_EXAMPLE_MODE"); v != "check" {
						return fmt.Errorf("unexpected mode '%s'", v)
					}

					return nil
				},
			},
			{
				Name:   "OnlyInCI",
				Author: "Antoine Mercadal",
				RunIf:  &runif.RunIf{Checker: "env", Arguments: []string{"CI"}},
				Function: func(ctx context.Context, instance interface{}) error {
					return nil
				},
			},
		},
	})
}
