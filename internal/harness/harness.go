package harness

import (
	"fmt"

	"github.com/roach88/zigzag/internal/axiom"
	"github.com/roach88/zigzag/internal/diagram"
	"github.com/roach88/zigzag/internal/engine"
)

// TraceEvent records one executed step. Fields that do not apply to the
// step's op are left at their zero values and omitted from snapshots.
type TraceEvent struct {
	Step      int
	Op        string
	As        string
	Dimension int // dimension of the resulting diagram, -1 when none
	Valid     *bool
	Errors    int
	Warnings  int
	ErrorCode string // composition error code for expected-failure steps
}

// Result is the outcome of running a scenario.
type Result struct {
	Trace      []TraceEvent
	Bindings   map[string]diagram.Diagram
	LastReport *axiom.ValidationReport
}

// Run executes a scenario against the given axiom registry. A nil registry
// defaults to the built-in axioms. Execution is deterministic and pure
// over the kernel; the returned trace is suitable for golden comparison.
func Run(scenario *Scenario, reg *axiom.Registry) (*Result, error) {
	if err := scenario.validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = axiom.DefaultRegistry()
	}

	result := &Result{Bindings: make(map[string]diagram.Diagram)}
	for i, step := range scenario.Steps {
		event, err := runStep(scenario, step, i, reg, result)
		if err != nil {
			return nil, fmt.Errorf("steps[%d] (%s): %w", i, step.Op, err)
		}
		result.Trace = append(result.Trace, event)
	}

	if err := checkExpectations(scenario, result); err != nil {
		return nil, err
	}
	return result, nil
}

func runStep(scenario *Scenario, step Step, index int, reg *axiom.Registry, result *Result) (TraceEvent, error) {
	event := TraceEvent{Step: index, Op: step.Op, As: step.As, Dimension: -1}

	var (
		d   diagram.Diagram
		err error
	)
	switch step.Op {
	case "empty":
		d = diagram.EmptyDiagram()
	case "diagram":
		gen, lookupErr := scenario.generator(step.Generator)
		if lookupErr != nil {
			return event, lookupErr
		}
		d = diagram.GeneratorDiagram(gen)
	case "compose":
		left, lookupErr := result.binding(step.Left)
		if lookupErr != nil {
			return event, lookupErr
		}
		right, lookupErr := result.binding(step.Right)
		if lookupErr != nil {
			return event, lookupErr
		}
		d, err = engine.ComposeDiagrams(left, right)
	case "rewrite":
		of, lookupErr := result.binding(step.Of)
		if lookupErr != nil {
			return event, lookupErr
		}
		source, lookupErr := scenario.generator(step.Source)
		if lookupErr != nil {
			return event, lookupErr
		}
		target, lookupErr := scenario.generator(step.Target)
		if lookupErr != nil {
			return event, lookupErr
		}
		d, err = engine.ApplyRewrite(of, diagram.GeneratorRewrite(source, target))
	case "contract":
		of, lookupErr := result.binding(step.Of)
		if lookupErr != nil {
			return event, lookupErr
		}
		d, err = engine.ContractDiagram(of)
	case "normalize":
		of, lookupErr := result.binding(step.Of)
		if lookupErr != nil {
			return event, lookupErr
		}
		d, err = engine.NormalizeDiagram(of)
	case "validate":
		of, lookupErr := result.binding(step.Of)
		if lookupErr != nil {
			return event, lookupErr
		}
		report := axiom.ValidateAllAxioms(of, reg)
		result.LastReport = report
		valid := report.IsValid()
		event.Valid = &valid
		event.Errors = len(report.AllErrors())
		event.Warnings = len(report.AllWarnings())
		return event, nil
	default:
		return event, fmt.Errorf("unknown op %q", step.Op)
	}

	if step.ExpectError != "" {
		if err == nil {
			return event, &AssertionError{
				Type:     "expect_error",
				Expected: fmt.Sprintf("step fails with %s", step.ExpectError),
				Actual:   "step succeeded",
			}
		}
		code := compositionErrorCode(err)
		if code != step.ExpectError {
			return event, &AssertionError{
				Type:     "expect_error",
				Expected: step.ExpectError,
				Actual:   fmt.Sprintf("%s (%v)", code, err),
			}
		}
		event.ErrorCode = code
		return event, nil
	}
	if err != nil {
		return event, err
	}

	event.Dimension = d.Dimension()
	if step.As != "" {
		result.Bindings[step.As] = d
	}
	return event, nil
}

func compositionErrorCode(err error) string {
	var ce *engine.CompositionError
	if asError(err, &ce) {
		return string(ce.Code)
	}
	if diagram.IsCycleError(err) {
		return "CYCLE"
	}
	if diagram.IsStructuralError(err) {
		return "STRUCTURAL"
	}
	return "UNKNOWN"
}

func (s *Scenario) generator(name string) (diagram.Generator, error) {
	spec, ok := s.Generators[name]
	if !ok {
		return diagram.Generator{}, fmt.Errorf("generator %q is not declared", name)
	}
	return diagram.Generator{
		ID:       name,
		Label:    spec.Label,
		Polarity: diagram.Polarity(spec.Polarity),
	}, nil
}

func (r *Result) binding(name string) (diagram.Diagram, error) {
	d, ok := r.Bindings[name]
	if !ok {
		return nil, fmt.Errorf("no diagram bound to %q", name)
	}
	return d, nil
}
