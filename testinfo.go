package runif

import (
	"fmt"
)

// A Description identifies a test method inside its class.
// Every lifecycle event is addressed to a Description.
type Description struct {
	Class  string
	Method string
}

func (d Description) String() string {

	if d.Method == "" {
		return d.Class
	}

	return fmt.Sprintf("%s.%s", d.Class, d.Method)
}
