package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Section names the list of a Definition a ValidationError points into.
type Section string

const (
	SectionAlphabet    Section = "alphabet"
	SectionStates      Section = "states"
	SectionInitial     Section = "initial"
	SectionFinal       Section = "final"
	SectionTransitions Section = "transitions"
)

// ValidationError is one structural problem of a Definition.
type ValidationError struct {
	Section Section
	// Index is the position of the offending entry within Section. Transitions
	// coming from Delta are numbered after the explicit ones.
	Index  int
	Reason string
	// Name is the offending state or symbol, empty when the name itself is missing.
	Name string
}

func (e *ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s[%d]: %s", e.Section, e.Index, e.Reason)
	}
	return fmt.Sprintf("%s[%d]: %s %q", e.Section, e.Index, e.Reason, e.Name)
}

// AggregateError holds every problem found by Validate.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid definition (%d problems):", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns the problems carried by err, or nil when err does
// not come from Validate.
func ValidationErrors(err error) []error {
	var agg *AggregateError
	if errors.As(err, &agg) {
		return agg.Errors
	}
	return nil
}
