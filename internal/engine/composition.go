package engine

import (
	"fmt"

	"github.com/roach88/zigzag/internal/diagram"
)

// CompositionType classifies how two diagrams may compose, dispatched by
// case analysis on dimension.
type CompositionType int

const (
	CompositionInvalid CompositionType = iota
	CompositionHorizontal
	CompositionVertical
	CompositionWhiskering
)

func (t CompositionType) String() string {
	switch t {
	case CompositionHorizontal:
		return "horizontal"
	case CompositionVertical:
		return "vertical"
	case CompositionWhiskering:
		return "whiskering"
	case CompositionInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("CompositionType(%d)", int(t))
	}
}

// GetCompositionType classifies the composition of left and right. It is
// total: invalid operands (including cyclic ones) classify as
// CompositionInvalid, never panic or raise.
//
// Classification:
//   - equal dimension 0: horizontal
//   - equal dimension > 0: vertical
//   - dimensions differ by 1 or 2: whiskering (the lower diagram is context)
//   - dimensions differ by more than 2: invalid
func GetCompositionType(left, right diagram.Diagram) CompositionType {
	if !diagram.IsValidDiagram(left) || !diagram.IsValidDiagram(right) {
		return CompositionInvalid
	}
	ld, rd := left.Dimension(), right.Dimension()
	diff := ld - rd
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0 && ld == 0:
		return CompositionHorizontal
	case diff == 0:
		return CompositionVertical
	case diff <= 2:
		return CompositionWhiskering
	default:
		return CompositionInvalid
	}
}

// boundariesCompatible judges whether two equal-dimensional diagrams can
// compose vertically. Dimension equality is treated as sufficient; true
// source/target boundary matching is a documented simplification preserved
// from the reference behavior.
func boundariesCompatible(left, right diagram.Diagram) bool {
	return left.Dimension() == right.Dimension()
}

// ComposeDiagrams composes two diagrams after classifying the composition
// case. The canonical empty diagram is a two-sided identity; this is
// load-bearing for the presentation layer, not an optimization.
func ComposeDiagrams(left, right diagram.Diagram) (diagram.Diagram, error) {
	if err := diagram.CheckDiagram(left); err != nil {
		return nil, newInvalidOperandError("left", err)
	}
	if err := diagram.CheckDiagram(right); err != nil {
		return nil, newInvalidOperandError("right", err)
	}

	if diagram.IsEmptyDiagram(left) {
		return right, nil
	}
	if diagram.IsEmptyDiagram(right) {
		return left, nil
	}

	switch GetCompositionType(left, right) {
	case CompositionHorizontal:
		return composeHorizontal(left.(*diagram.DiagramZero), right.(*diagram.DiagramZero)), nil
	case CompositionVertical:
		if boundariesCompatible(left, right) {
			return composeVertical(left.(*diagram.DiagramN), right.(*diagram.DiagramN)), nil
		}
		return composeConcat(left, right), nil
	case CompositionWhiskering:
		// The lower-dimensional diagram is pure context; the result keeps
		// the higher-dimensional diagram's shape unchanged.
		if left.Dimension() >= right.Dimension() {
			return left, nil
		}
		return right, nil
	default:
		return nil, &CompositionError{
			Code: ErrCodeDimensionMismatch,
			Message: fmt.Sprintf("no composition case for dimensions %d and %d",
				left.Dimension(), right.Dimension()),
			Position: -1,
		}
	}
}

// composeHorizontal builds the dimension-1 diagram whose source is left and
// whose single cospan pairs the generator rewrite left -> right (forward)
// with right -> left (backward).
func composeHorizontal(left, right *diagram.DiagramZero) diagram.Diagram {
	cs := diagram.NewCospan(
		diagram.GeneratorRewrite(left.Generator, right.Generator),
		diagram.GeneratorRewrite(right.Generator, left.Generator),
	)
	return diagram.NewDiagram(left, []diagram.Cospan{cs})
}

// composeVertical stacks the right diagram's surgeries after the left's.
func composeVertical(left, right *diagram.DiagramN) diagram.Diagram {
	cospans := make([]diagram.Cospan, 0, len(left.Cospans)+len(right.Cospans))
	cospans = append(cospans, left.Cospans...)
	cospans = append(cospans, right.Cospans...)
	return diagram.NewDiagram(left.Source, cospans)
}

// composeConcat is the fallback for equal-dimensional diagrams whose
// boundaries are judged incompatible: horizontal-style concatenation of
// cospan sequences with the larger dimension winning.
func composeConcat(left, right diagram.Diagram) diagram.Diagram {
	higher, lower := left, right
	if right.Dimension() > left.Dimension() {
		higher, lower = right, left
	}
	hn, ok := higher.(*diagram.DiagramN)
	if !ok {
		return higher
	}
	var extra []diagram.Cospan
	if ln, ok := lower.(*diagram.DiagramN); ok {
		extra = ln.Cospans
	}
	cospans := make([]diagram.Cospan, 0, len(hn.Cospans)+len(extra))
	cospans = append(cospans, hn.Cospans...)
	cospans = append(cospans, extra...)
	return diagram.NewDiagram(hn.Source, cospans)
}

// ComposeRewrites composes two rewrites. The identity rewrite is a
// two-sided unit. Two 0-dimensional rewrites compose iff the left target
// generator matches the right source generator.
//
// Composing a 0-dimensional rewrite with a higher-dimensional one yields
// the higher-dimensional operand unchanged; equal-dimensional cone rewrites
// compose by concatenating their cone sequences. Both are conservative
// stand-ins for complete mixed-dimension composition.
func ComposeRewrites(left, right diagram.Rewrite) (diagram.Rewrite, error) {
	if err := diagram.CheckRewrite(left); err != nil {
		return nil, newInvalidOperandError("left", err)
	}
	if err := diagram.CheckRewrite(right); err != nil {
		return nil, newInvalidOperandError("right", err)
	}

	if diagram.IsIdentityRewrite(left) {
		return right, nil
	}
	if diagram.IsIdentityRewrite(right) {
		return left, nil
	}

	lz, lok := left.(*diagram.RewriteZero)
	rz, rok := right.(*diagram.RewriteZero)
	switch {
	case lok && rok:
		if lz.Target.ID != rz.Source.ID {
			return nil, &CompositionError{
				Code:     ErrCodeBoundaryMismatch,
				Message:  "left target generator does not match right source generator",
				LeftID:   lz.Target.ID,
				RightID:  rz.Source.ID,
				Position: -1,
			}
		}
		return diagram.GeneratorRewrite(lz.Source, rz.Target), nil
	case lok:
		return right, nil
	case rok:
		return left, nil
	}

	ln := left.(*diagram.RewriteN)
	rn := right.(*diagram.RewriteN)
	if ln.Dim != rn.Dim {
		if ln.Dim > rn.Dim {
			return left, nil
		}
		return right, nil
	}
	cones := make([]diagram.Cone, 0, len(ln.Cones)+len(rn.Cones))
	cones = append(cones, ln.Cones...)
	cones = append(cones, rn.Cones...)
	return diagram.NewRewrite(ln.Dim, cones), nil
}

// IsComposable is the total pre-flight check for ComposeRewrites: it
// reports whether the composition would succeed, and never raises.
func IsComposable(left, right diagram.Rewrite) bool {
	if !diagram.IsValidRewrite(left) || !diagram.IsValidRewrite(right) {
		return false
	}
	if diagram.IsIdentityRewrite(left) || diagram.IsIdentityRewrite(right) {
		return true
	}
	lz, lok := left.(*diagram.RewriteZero)
	rz, rok := right.(*diagram.RewriteZero)
	if lok && rok {
		return lz.Target.ID == rz.Source.ID
	}
	return true
}

// ComposeSequentially left-folds a list of rewrites via ComposeRewrites.
// An empty list yields the identity rewrite; a singleton yields itself.
// The first adjacent mismatch fails with its position in the list.
func ComposeSequentially(rewrites []diagram.Rewrite) (diagram.Rewrite, error) {
	switch len(rewrites) {
	case 0:
		return diagram.IdentityRewrite(), nil
	case 1:
		if err := diagram.CheckRewrite(rewrites[0]); err != nil {
			return nil, newInvalidOperandError("single", err)
		}
		return rewrites[0], nil
	}

	acc := rewrites[0]
	for i := 1; i < len(rewrites); i++ {
		composed, err := ComposeRewrites(acc, rewrites[i])
		if err != nil {
			var ce *CompositionError
			if asCompositionError(err, &ce) {
				ce.Position = i
				return nil, ce
			}
			return nil, err
		}
		acc = composed
	}
	return acc, nil
}
