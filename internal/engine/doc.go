// Package engine implements the categorical operations of the proof kernel.
//
// The engine operates on validated zigzag values and provides three
// sub-algorithms: contraction (colimit reduction), composition
// (horizontal / vertical / whiskering, dispatched by dimension), and
// normalization (reduction to canonical form).
//
// ARCHITECTURE:
//
// Pure transformations over immutable values:
// Every operation either returns a newly built value or fails with a typed
// error. Nothing is mutated and there is no shared state, so validating or
// transforming independent diagrams is embarrassingly parallel if the host
// wants it to be.
//
// Fail-fast boundary:
// Every constructive entry point re-validates its operands via the
// internal/diagram checkers before doing any work, so malformed or cyclic
// input raises StructuralError/CycleError up front with no partial result.
// The presentation layer can therefore roll back on error unconditionally.
//
// Documented simplifications (conservative, preserved deliberately):
//   - mixed-dimension rewrite composition returns the higher-dimensional
//     operand unchanged
//   - vertical-composition boundary matching checks dimension equality
//     only, not true source/target equality
//   - eta-expansion is the identity transform at every dimension
package engine
