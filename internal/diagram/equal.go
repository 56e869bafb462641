package diagram

// Structural equality over diagram and rewrite values. Equality is by
// content, never by identity: two independently constructed values compare
// equal when their trees match. The comparison carries the same depth
// budget as the validator so cyclic garbage compares unequal instead of
// looping.

// EqualDiagrams reports structural equality of two diagrams.
func EqualDiagrams(a, b Diagram) bool {
	return equalDiagrams(a, b, maxTraversalDepth)
}

// EqualRewrites reports structural equality of two rewrites.
func EqualRewrites(a, b Rewrite) bool {
	return equalRewrites(a, b, maxTraversalDepth)
}

// EqualCospans reports structural equality of two cospans.
func EqualCospans(a, b Cospan) bool {
	return equalCospans(a, b, maxTraversalDepth)
}

// EqualCones reports structural equality of two cones.
func EqualCones(a, b Cone) bool {
	return equalCones(a, b, maxTraversalDepth)
}

func equalDiagrams(a, b Diagram, budget int) bool {
	if budget <= 0 {
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *DiagramZero:
		bv, ok := b.(*DiagramZero)
		return ok && av.Generator == bv.Generator
	case *DiagramN:
		bv, ok := b.(*DiagramN)
		if !ok || av.Dim != bv.Dim || len(av.Cospans) != len(bv.Cospans) {
			return false
		}
		if !equalDiagrams(av.Source, bv.Source, budget-1) {
			return false
		}
		for i := range av.Cospans {
			if !equalCospans(av.Cospans[i], bv.Cospans[i], budget-1) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalRewrites(a, b Rewrite, budget int) bool {
	if budget <= 0 {
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *RewriteZero:
		bv, ok := b.(*RewriteZero)
		return ok && av.Source == bv.Source && av.Target == bv.Target
	case *RewriteIdentity:
		_, ok := b.(*RewriteIdentity)
		return ok
	case *RewriteN:
		bv, ok := b.(*RewriteN)
		if !ok || av.Dim != bv.Dim || len(av.Cones) != len(bv.Cones) {
			return false
		}
		for i := range av.Cones {
			if !equalCones(av.Cones[i], bv.Cones[i], budget-1) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalCospans(a, b Cospan, budget int) bool {
	if budget <= 0 {
		return false
	}
	return equalRewrites(a.Forward, b.Forward, budget-1) &&
		equalRewrites(a.Backward, b.Backward, budget-1)
}

func equalCones(a, b Cone, budget int) bool {
	if budget <= 0 {
		return false
	}
	if a.Index != b.Index || len(a.Source) != len(b.Source) || len(a.Slices) != len(b.Slices) {
		return false
	}
	for i := range a.Source {
		if !equalCospans(a.Source[i], b.Source[i], budget-1) {
			return false
		}
	}
	if !equalCospans(a.Target, b.Target, budget-1) {
		return false
	}
	for i := range a.Slices {
		if !equalRewrites(a.Slices[i], b.Slices[i], budget-1) {
			return false
		}
	}
	return true
}
