package diagram

import (
	"errors"
	"fmt"
)

// StructuralError reports a value that violates a data-model invariant.
// Path locates the offending node from the traversal root, e.g.
// "diagram.source.cospans[2].forward".
type StructuralError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("structural: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("structural: %s", e.Message)
}

// CycleError reports a self-referential value or an exceeded traversal
// budget. Either way the value is not a finite tree and must be rejected.
type CycleError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cycle: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("cycle: %s", e.Message)
}

// IsStructuralError reports whether err is a StructuralError.
// Uses errors.As to handle wrapped errors.
func IsStructuralError(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// IsCycleError reports whether err is a CycleError.
// Uses errors.As to handle wrapped errors.
func IsCycleError(err error) bool {
	var ce *CycleError
	return errors.As(err, &ce)
}
