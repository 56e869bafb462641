// Package harness provides conformance testing for the proof kernel.
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	generators:
//	  a: { label: "A", polarity: cartesian }
//	  b: { label: "B" }
//	steps:
//	  - op: diagram
//	    generator: a
//	    as: d1
//	  - op: compose
//	    left: d1
//	    right: d2
//	    as: d3
//	  - op: normalize
//	    of: d3
//	    as: d4
//	  - op: validate
//	    of: d4
//	expect:
//	  valid: true
//
// Supported ops: empty, diagram, compose, rewrite, contract, normalize,
// validate. Each step may bind its result to a name via "as"; later steps
// reference bound names. A step may declare expect_error with a
// composition error code when failure is the point of the scenario.
//
// # Deterministic testing
//
// Scenario execution is pure over the kernel: no clock, no store, no
// randomness. The produced trace therefore permits byte-exact golden
// comparison (golden.go, via goldie). Trace events record dimensions and
// finding counts rather than report ids, which are correlation uuids and
// deliberately non-deterministic.
package harness
