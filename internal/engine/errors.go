package engine

import (
	"errors"
	"fmt"
)

// CompositionError reports a dimension or boundary mismatch during a
// compose call. It carries the offending generator ids and, for sequential
// composition, the position of the first failing adjacent pair.
type CompositionError struct {
	// Code identifies the error category.
	Code CompositionErrorCode

	// Message is a human-readable description.
	Message string

	// LeftID and RightID name the offending generator ids, when known.
	LeftID  string
	RightID string

	// Position is the index of the failing pair in a sequential
	// composition, or -1 when not applicable.
	Position int
}

// CompositionErrorCode categorizes composition errors.
type CompositionErrorCode string

const (
	// ErrCodeInvalidOperand indicates an operand failed structural validation.
	ErrCodeInvalidOperand CompositionErrorCode = "INVALID_OPERAND"

	// ErrCodeDimensionMismatch indicates the operand dimensions admit no
	// composition case.
	ErrCodeDimensionMismatch CompositionErrorCode = "DIMENSION_MISMATCH"

	// ErrCodeBoundaryMismatch indicates adjacent generator boundaries do
	// not line up.
	ErrCodeBoundaryMismatch CompositionErrorCode = "BOUNDARY_MISMATCH"
)

// Error implements the error interface.
func (e *CompositionError) Error() string {
	switch {
	case e.LeftID != "" || e.RightID != "":
		if e.Position >= 0 {
			return fmt.Sprintf("%s: %s (left=%q, right=%q, position=%d)",
				e.Code, e.Message, e.LeftID, e.RightID, e.Position)
		}
		return fmt.Sprintf("%s: %s (left=%q, right=%q)", e.Code, e.Message, e.LeftID, e.RightID)
	case e.Position >= 0:
		return fmt.Sprintf("%s: %s (position=%d)", e.Code, e.Message, e.Position)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsCompositionError reports whether err is a CompositionError.
// Uses errors.As to handle wrapped errors.
func IsCompositionError(err error) bool {
	var ce *CompositionError
	return errors.As(err, &ce)
}

func asCompositionError(err error, target **CompositionError) bool {
	return errors.As(err, target)
}

func newInvalidOperandError(side string, cause error) *CompositionError {
	return &CompositionError{
		Code:     ErrCodeInvalidOperand,
		Message:  fmt.Sprintf("%s operand is not structurally valid: %v", side, cause),
		Position: -1,
	}
}
