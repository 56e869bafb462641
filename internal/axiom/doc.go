// Package axiom provides the pluggable axiom and validation framework.
//
// A Registry maps axiom ids to validators grouped in three categories:
// structural, cartesian, and cocartesian. Validation of a diagram produces
// a ValidationReport that scopes every finding to the axiom that produced
// it; one misbehaving validator never aborts the pass.
//
// Registries are explicit values, constructed and passed by the caller.
// There is no package-level default state, so tests build fresh isolated
// instances without cross-test leakage.
//
// Axiom validators are contractually pure: they must not mutate their
// input diagram and must not depend on another axiom's result. This keeps
// evaluation order irrelevant (OptimizeValidationOrder is an efficiency
// reordering only) and makes concurrent evaluation safe without locks.
package axiom
