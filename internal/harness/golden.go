package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/zigzag/internal/axiom"
	"github.com/roach88/zigzag/internal/diagram"
)

// TraceSnapshot captures a scenario execution for golden comparison. All
// fields serialize through canonical JSON so comparison is byte-exact.
type TraceSnapshot struct {
	ScenarioName string
	Trace        []TraceEvent
}

// toCanonicalMap converts the snapshot to a map[string]any because
// diagram.MarshalCanonical handles kernel types and plain maps, not
// arbitrary structs.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"step": event.Step,
			"op":   event.Op,
		}
		if event.As != "" {
			eventMap["as"] = event.As
		}
		if event.Dimension >= 0 {
			eventMap["dimension"] = event.Dimension
		}
		if event.Valid != nil {
			eventMap["valid"] = *event.Valid
			eventMap["errors"] = event.Errors
			eventMap["warnings"] = event.Warnings
		}
		if event.ErrorCode != "" {
			eventMap["error_code"] = event.ErrorCode
		}
		traceList[i] = eventMap
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         traceList,
	}
}

// RunWithGolden executes a scenario and compares its trace against the
// golden file testdata/golden/<scenario.Name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, reg *axiom.Registry) error {
	t.Helper()

	result, err := Run(scenario, reg)
	if err != nil {
		return err
	}

	snapshot := TraceSnapshot{ScenarioName: scenario.Name, Trace: result.Trace}
	traceJSON, err := diagram.MarshalCanonical(snapshot.toCanonicalMap())
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)
	return nil
}
