// Package diagram provides the zigzag value types for the proof kernel.
//
// This package contains the data model and its structural validator. All
// other internal packages import diagram; diagram imports nothing internal.
// This ensures the data model remains the foundational layer with no
// circular dependencies.
//
// Key design constraints:
//   - Diagram and Rewrite are sealed interfaces; every variant is dispatched
//     by an exhaustive type switch, never by field-presence checks
//   - Values are immutable once constructed; every transformation in the
//     engine builds new values
//   - Equality is structural, never identity-based; canonical hashing
//     (hash.go) provides stable structural keys
//   - All traversals carry an explicit depth budget plus a visited set so
//     cyclic or pathological input is rejected, never looped on
package diagram
