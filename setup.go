package runif

import (
	"fmt"
)

// allSucceeded is the setup index meaning every precondition was set up.
const allSucceeded = -1

// setupChain sets up the preconditions in order and stops at the first failure.
// It returns the index of the failing precondition, or allSucceeded.
func setupChain(chain []link) (int, error) {

	for i, l := range chain {
		if err := protect(l.precondition.Setup); err != nil {
			return i, fmt.Errorf("precondition '%s' setup failed: %w", l.name, err)
		}
	}

	return allSucceeded, nil
}

// teardownChain tears down every precondition whose setup succeeded,
// in the same order as the setup. A failing teardown does not stop the next ones.
func teardownChain(chain []link, failedAt int) (errs []error) {

	count := len(chain)
	if failedAt != allSucceeded {
		count = failedAt
	}

	for _, l := range chain[:count] {
		if err := protect(l.precondition.Teardown); err != nil {
			errs = append(errs, fmt.Errorf("precondition '%s' teardown failed: %w", l.name, err))
		}
	}

	return errs
}
