package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a set of named generator
// signatures, a sequence of kernel operations, and expectations on the
// outcome.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Generators maps short names to generator signatures.
	Generators map[string]GeneratorSpec `yaml:"generators,omitempty"`

	// Steps is the operation sequence to execute in order.
	Steps []Step `yaml:"steps"`

	// Expect validates the outcome after all steps ran.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// GeneratorSpec declares one generator signature. The map key under
// "generators" is the generator id.
type GeneratorSpec struct {
	Label    string `yaml:"label,omitempty"`
	Polarity string `yaml:"polarity,omitempty"`
}

// Step is one kernel operation.
type Step struct {
	// Op is one of: empty, diagram, compose, rewrite, contract,
	// normalize, validate.
	Op string `yaml:"op"`

	// As binds the step's resulting diagram to a name.
	As string `yaml:"as,omitempty"`

	// Generator names the generator for op: diagram.
	Generator string `yaml:"generator,omitempty"`

	// Left and Right reference bound diagrams for op: compose.
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`

	// Of references the bound diagram for contract/normalize/validate/rewrite.
	Of string `yaml:"of,omitempty"`

	// Source and Target name generators for op: rewrite (a 0-dim rewrite
	// Source -> Target applied to Of).
	Source string `yaml:"source,omitempty"`
	Target string `yaml:"target,omitempty"`

	// ExpectError, when set, requires the step to fail with the given
	// composition error code instead of succeeding.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// ExpectClause validates the scenario outcome.
type ExpectClause struct {
	// Valid asserts the result of the last validate step.
	Valid *bool `yaml:"valid,omitempty"`

	// Errors asserts the error count of the last validate step.
	Errors *int `yaml:"errors,omitempty"`

	// Warnings asserts the warning count of the last validate step.
	Warnings *int `yaml:"warnings,omitempty"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}
	for i, step := range s.Steps {
		switch step.Op {
		case "empty":
			// no operands
		case "diagram":
			if step.Generator == "" {
				return fmt.Errorf("steps[%d]: diagram requires a generator", i)
			}
		case "compose":
			if step.Left == "" || step.Right == "" {
				return fmt.Errorf("steps[%d]: compose requires left and right", i)
			}
		case "rewrite":
			if step.Of == "" || step.Source == "" || step.Target == "" {
				return fmt.Errorf("steps[%d]: rewrite requires of, source, and target", i)
			}
		case "contract", "normalize", "validate":
			if step.Of == "" {
				return fmt.Errorf("steps[%d]: %s requires of", i, step.Op)
			}
		default:
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
	}
	return nil
}
