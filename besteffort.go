package slsdb

import (
	"errors"
	"fmt"
)

// Step is one action of a best-effort operation.
type Step struct {
	Name string
	Err  error
}

// BestEffort reports the steps of an operation whose failures are absorbed
// rather than returned, such as hydration and Clean.
type BestEffort struct {
	Steps []Step
}

func (b *BestEffort) record(name string, err error) {
	b.Steps = append(b.Steps, Step{Name: name, Err: err})
}

// OK reports whether every step succeeded.
func (b BestEffort) OK() bool {
	for _, s := range b.Steps {
		if s.Err != nil {
			return false
		}
	}
	return true
}

// Err joins the failed steps, or returns nil if all succeeded.
func (b BestEffort) Err() error {
	var errs []error
	for _, s := range b.Steps {
		if s.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, s.Err))
		}
	}
	return errors.Join(errs...)
}

// Failed returns the names of the failed steps.
func (b BestEffort) Failed() []string {
	var names []string
	for _, s := range b.Steps {
		if s.Err != nil {
			names = append(names, s.Name)
		}
	}
	return names
}
