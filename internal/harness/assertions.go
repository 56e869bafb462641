package harness

import (
	"errors"
	"fmt"
	"strings"
)

// AssertionError is returned when a scenario expectation fails.
type AssertionError struct {
	Type     string // expectation type for categorization
	Expected string // human-readable expected outcome
	Actual   string // human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  actual: %s", e.Actual)
	return buf.String()
}

func asError[T error](err error, target *T) bool {
	return errors.As(err, target)
}

// checkExpectations evaluates the scenario's expect clause against the
// last validate step.
func checkExpectations(scenario *Scenario, result *Result) error {
	if scenario.Expect == nil {
		return nil
	}

	var last *TraceEvent
	for i := range result.Trace {
		if result.Trace[i].Op == "validate" {
			last = &result.Trace[i]
		}
	}
	if last == nil {
		return &AssertionError{
			Type:     "expect",
			Expected: "a validate step to assert against",
			Actual:   "scenario has no validate step",
		}
	}

	if want := scenario.Expect.Valid; want != nil && *last.Valid != *want {
		return &AssertionError{
			Type:     "expect.valid",
			Expected: fmt.Sprintf("valid == %v", *want),
			Actual:   fmt.Sprintf("valid == %v (%d errors)", *last.Valid, last.Errors),
		}
	}
	if want := scenario.Expect.Errors; want != nil && last.Errors != *want {
		return &AssertionError{
			Type:     "expect.errors",
			Expected: fmt.Sprintf("%d errors", *want),
			Actual:   fmt.Sprintf("%d errors", last.Errors),
		}
	}
	if want := scenario.Expect.Warnings; want != nil && last.Warnings != *want {
		return &AssertionError{
			Type:     "expect.warnings",
			Expected: fmt.Sprintf("%d warnings", *want),
			Actual:   fmt.Sprintf("%d warnings", last.Warnings),
		}
	}
	return nil
}
