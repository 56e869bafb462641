package engine

import "github.com/roach88/zigzag/internal/diagram"

// Normalization reduces values to canonical form. All entry points are
// idempotent: normalizing an already-normal value returns an equal value.
// Cyclic or invalid input fails, never silently truncates.

// NormalizeDiagram recursively normalizes the source and every cospan,
// then prunes redundant cospans: a surgery step whose forward AND backward
// legs are both the identity rewrite contributes nothing to the proof.
func NormalizeDiagram(d diagram.Diagram) (diagram.Diagram, error) {
	if err := diagram.CheckDiagram(d); err != nil {
		return nil, err
	}
	return normalizeDiagram(d)
}

func normalizeDiagram(d diagram.Diagram) (diagram.Diagram, error) {
	switch v := d.(type) {
	case *diagram.DiagramZero:
		return v, nil
	case *diagram.DiagramN:
		source, err := normalizeDiagram(v.Source)
		if err != nil {
			return nil, err
		}
		cospans := make([]diagram.Cospan, 0, len(v.Cospans))
		for _, cs := range v.Cospans {
			normalized, err := normalizeCospan(cs)
			if err != nil {
				return nil, err
			}
			if isRedundantCospan(normalized) {
				continue
			}
			cospans = append(cospans, normalized)
		}
		return diagram.NewDiagram(source, cospans), nil
	default:
		return nil, &diagram.StructuralError{Message: "unknown diagram variant"}
	}
}

// isRedundantCospan reports a no-op surgery: both legs identity.
func isRedundantCospan(c diagram.Cospan) bool {
	return diagram.IsIdentityRewrite(c.Forward) && diagram.IsIdentityRewrite(c.Backward)
}

func normalizeCospan(c diagram.Cospan) (diagram.Cospan, error) {
	forward, err := normalizeRewrite(c.Forward)
	if err != nil {
		return diagram.Cospan{}, err
	}
	backward, err := normalizeRewrite(c.Backward)
	if err != nil {
		return diagram.Cospan{}, err
	}
	return diagram.NewCospan(forward, backward), nil
}

// NormalizeRewrite normalizes a rewrite. 0-dimensional and identity
// rewrites are already normal; higher dimensions normalize every cone's
// cospans and slices recursively.
func NormalizeRewrite(r diagram.Rewrite) (diagram.Rewrite, error) {
	if err := diagram.CheckRewrite(r); err != nil {
		return nil, err
	}
	return normalizeRewrite(r)
}

func normalizeRewrite(r diagram.Rewrite) (diagram.Rewrite, error) {
	rn, ok := r.(*diagram.RewriteN)
	if !ok {
		return r, nil
	}
	cones := make([]diagram.Cone, len(rn.Cones))
	for i, cone := range rn.Cones {
		normalized, err := normalizeCone(cone)
		if err != nil {
			return nil, err
		}
		cones[i] = normalized
	}
	return diagram.NewRewrite(rn.Dim, cones), nil
}

func normalizeCone(c diagram.Cone) (diagram.Cone, error) {
	source := make([]diagram.Cospan, len(c.Source))
	for i, cs := range c.Source {
		normalized, err := normalizeCospan(cs)
		if err != nil {
			return diagram.Cone{}, err
		}
		source[i] = normalized
	}
	target, err := normalizeCospan(c.Target)
	if err != nil {
		return diagram.Cone{}, err
	}
	slices := make([]diagram.Rewrite, len(c.Slices))
	for i, sl := range c.Slices {
		normalized, err := normalizeRewrite(sl)
		if err != nil {
			return diagram.Cone{}, err
		}
		slices[i] = normalized
	}
	return diagram.NewCone(c.Index, source, target, slices), nil
}

// ReduceTerms reduces a flat proof trace. Identity rewrites are dropped;
// an adjacent inverse pair of 0-dimensional rewrites (A->B immediately
// followed by B->A) cancels entirely; adjacent composable 0-dimensional
// pairs collapse into one composed rewrite. Everything else passes through
// in original order. Collapse cascades: a freshly composed term may cancel
// or compose again with the term before it.
func ReduceTerms(terms []diagram.Rewrite) []diagram.Rewrite {
	out := make([]diagram.Rewrite, 0, len(terms))
	for _, t := range terms {
		if t == nil || diagram.IsIdentityRewrite(t) {
			continue
		}
		dropped := false
		for len(out) > 0 {
			prev, okPrev := out[len(out)-1].(*diagram.RewriteZero)
			cur, okCur := t.(*diagram.RewriteZero)
			if !okPrev || !okCur {
				break
			}
			if prev.Source.ID == cur.Target.ID && prev.Target.ID == cur.Source.ID {
				out = out[:len(out)-1]
				dropped = true
				break
			}
			if prev.Target.ID == cur.Source.ID {
				out = out[:len(out)-1]
				t = diagram.GeneratorRewrite(prev.Source, cur.Target)
				continue
			}
			break
		}
		if !dropped {
			out = append(out, t)
		}
	}
	return out
}

// PerformBetaReduction recursively rebuilds a higher-dimensional rewrite by
// beta-reducing every nested slice and cospan. 0-dimensional and identity
// rewrites are fixed points.
func PerformBetaReduction(r diagram.Rewrite) (diagram.Rewrite, error) {
	if err := diagram.CheckRewrite(r); err != nil {
		return nil, err
	}
	return betaReduce(r)
}

func betaReduce(r diagram.Rewrite) (diagram.Rewrite, error) {
	rn, ok := r.(*diagram.RewriteN)
	if !ok {
		return r, nil
	}
	cones := make([]diagram.Cone, len(rn.Cones))
	for i, cone := range rn.Cones {
		source := make([]diagram.Cospan, len(cone.Source))
		for j, cs := range cone.Source {
			reduced, err := betaReduceCospan(cs)
			if err != nil {
				return nil, err
			}
			source[j] = reduced
		}
		target, err := betaReduceCospan(cone.Target)
		if err != nil {
			return nil, err
		}
		slices := make([]diagram.Rewrite, len(cone.Slices))
		for j, sl := range cone.Slices {
			reduced, err := betaReduce(sl)
			if err != nil {
				return nil, err
			}
			slices[j] = reduced
		}
		cones[i] = diagram.NewCone(cone.Index, source, target, slices)
	}
	return diagram.NewRewrite(rn.Dim, cones), nil
}

func betaReduceCospan(c diagram.Cospan) (diagram.Cospan, error) {
	forward, err := betaReduce(c.Forward)
	if err != nil {
		return diagram.Cospan{}, err
	}
	backward, err := betaReduce(c.Backward)
	if err != nil {
		return diagram.Cospan{}, err
	}
	return diagram.NewCospan(forward, backward), nil
}

// PerformEtaExpansion is the identity transform at every dimension: a
// conservative placeholder preserved from the reference behavior. Invalid
// input still fails fast.
func PerformEtaExpansion(r diagram.Rewrite) (diagram.Rewrite, error) {
	if err := diagram.CheckRewrite(r); err != nil {
		return nil, err
	}
	return r, nil
}

// IsNormalForm reports whether a diagram is already in canonical form: its
// source is normal, every cospan leg is a fixed point of beta-reduction,
// and no cospan is redundant. The argument is never mutated. Cyclic or
// invalid input fails.
func IsNormalForm(d diagram.Diagram) (bool, error) {
	if err := diagram.CheckDiagram(d); err != nil {
		return false, err
	}
	return isNormalForm(d)
}

func isNormalForm(d diagram.Diagram) (bool, error) {
	dn, ok := d.(*diagram.DiagramN)
	if !ok {
		return true, nil
	}
	sourceNormal, err := isNormalForm(dn.Source)
	if err != nil {
		return false, err
	}
	if !sourceNormal {
		return false, nil
	}
	for _, cs := range dn.Cospans {
		if isRedundantCospan(cs) {
			return false, nil
		}
		for _, leg := range []diagram.Rewrite{cs.Forward, cs.Backward} {
			reduced, err := betaReduce(leg)
			if err != nil {
				return false, err
			}
			if !diagram.EqualRewrites(leg, reduced) {
				return false, nil
			}
		}
	}
	return true, nil
}
