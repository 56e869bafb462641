package diagram

import "fmt"

// maxTraversalDepth bounds every recursive walk over diagram and rewrite
// values. Real proof diagrams are shallow (depth tracks dimension plus cone
// nesting); anything deeper is treated as pathological input.
const maxTraversalDepth = 512

// checker carries the per-traversal cycle defenses: a depth budget and an
// identity set of the pointer nodes currently on the walk's path.
type checker struct {
	depth    int
	visiting map[any]struct{}
}

func newChecker() *checker {
	return &checker{visiting: make(map[any]struct{})}
}

// enter pushes a pointer node onto the path. It fails when the node is
// already on the path (self-reference) or the depth budget is exhausted.
func (c *checker) enter(node any, path string) error {
	if c.depth >= maxTraversalDepth {
		return &CycleError{Path: path, Message: "traversal depth budget exceeded"}
	}
	if _, ok := c.visiting[node]; ok {
		return &CycleError{Path: path, Message: "value contains itself"}
	}
	c.visiting[node] = struct{}{}
	c.depth++
	return nil
}

func (c *checker) leave(node any) {
	delete(c.visiting, node)
	c.depth--
}

// CheckGenerator verifies a generator against the data-model invariants.
func CheckGenerator(g Generator) error {
	return checkGenerator(g, "generator")
}

func checkGenerator(g Generator, path string) error {
	if g.ID == "" {
		return &StructuralError{Path: path, Message: "generator id must be non-empty"}
	}
	switch g.Polarity {
	case PolarityNone, PolarityCartesian, PolarityCocartesian:
		return nil
	default:
		return &StructuralError{Path: path, Message: fmt.Sprintf("unknown polarity %q", g.Polarity)}
	}
}

// CheckDiagram verifies a diagram recursively, returning a *StructuralError
// or *CycleError describing the first violation found.
func CheckDiagram(d Diagram) error {
	return newChecker().checkDiagram(d, "diagram")
}

// CheckRewrite verifies a rewrite recursively.
func CheckRewrite(r Rewrite) error {
	return newChecker().checkRewrite(r, "rewrite")
}

// CheckCospan verifies both legs of a cospan.
func CheckCospan(c Cospan) error {
	return newChecker().checkCospan(c, "cospan")
}

// CheckCone verifies a cone: its index, source cospans, target cospan, and
// slices, including the one-slice-per-collapsed-layer invariant.
func CheckCone(c Cone) error {
	return newChecker().checkCone(c, "cone")
}

func (c *checker) checkDiagram(d Diagram, path string) error {
	if d == nil {
		return &StructuralError{Path: path, Message: "diagram is nil"}
	}
	if err := c.enter(d, path); err != nil {
		return err
	}
	defer c.leave(d)

	switch v := d.(type) {
	case *DiagramZero:
		return checkGenerator(v.Generator, path+".generator")
	case *DiagramN:
		if v.Dim < 1 {
			return &StructuralError{Path: path, Message: fmt.Sprintf("diagram dimension must be >= 1, got %d", v.Dim)}
		}
		if v.Source == nil {
			return &StructuralError{Path: path, Message: "diagram of dimension >= 1 must carry a source"}
		}
		if err := c.checkDiagram(v.Source, path+".source"); err != nil {
			return err
		}
		if got := v.Source.Dimension(); got != v.Dim-1 {
			return &StructuralError{
				Path:    path,
				Message: fmt.Sprintf("source dimension %d does not match diagram dimension %d", got, v.Dim),
			}
		}
		for i, cs := range v.Cospans {
			if err := c.checkCospan(cs, fmt.Sprintf("%s.cospans[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return &StructuralError{Path: path, Message: fmt.Sprintf("unknown diagram variant %T", d)}
	}
}

func (c *checker) checkRewrite(r Rewrite, path string) error {
	if r == nil {
		return &StructuralError{Path: path, Message: "rewrite is nil"}
	}
	if err := c.enter(r, path); err != nil {
		return err
	}
	defer c.leave(r)

	switch v := r.(type) {
	case *RewriteZero:
		if err := checkGenerator(v.Source, path+".source"); err != nil {
			return err
		}
		return checkGenerator(v.Target, path+".target")
	case *RewriteIdentity:
		return nil
	case *RewriteN:
		if v.Dim <= 1 {
			return &StructuralError{Path: path, Message: fmt.Sprintf("cone rewrite dimension must be > 1, got %d", v.Dim)}
		}
		for i, cone := range v.Cones {
			if err := c.checkCone(cone, fmt.Sprintf("%s.cones[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return &StructuralError{Path: path, Message: fmt.Sprintf("unknown rewrite variant %T", r)}
	}
}

func (c *checker) checkCospan(cs Cospan, path string) error {
	if err := c.checkRewrite(cs.Forward, path+".forward"); err != nil {
		return err
	}
	return c.checkRewrite(cs.Backward, path+".backward")
}

func (c *checker) checkCone(cn Cone, path string) error {
	if cn.Index < 0 {
		return &StructuralError{Path: path, Message: fmt.Sprintf("cone index must be >= 0, got %d", cn.Index)}
	}
	if len(cn.Slices) != len(cn.Source) {
		return &StructuralError{
			Path:    path,
			Message: fmt.Sprintf("cone has %d slices for %d source cospans", len(cn.Slices), len(cn.Source)),
		}
	}
	for i, src := range cn.Source {
		if err := c.checkCospan(src, fmt.Sprintf("%s.source[%d]", path, i)); err != nil {
			return err
		}
	}
	if err := c.checkCospan(cn.Target, path+".target"); err != nil {
		return err
	}
	for i, sl := range cn.Slices {
		if err := c.checkRewrite(sl, fmt.Sprintf("%s.slices[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// IsValidGenerator is the total predicate form of CheckGenerator.
func IsValidGenerator(g Generator) bool { return CheckGenerator(g) == nil }

// IsValidDiagram is the total predicate form of CheckDiagram. It never
// panics and returns false on malformed, cyclic, or over-deep input.
func IsValidDiagram(d Diagram) bool { return CheckDiagram(d) == nil }

// IsValidRewrite is the total predicate form of CheckRewrite.
func IsValidRewrite(r Rewrite) bool { return CheckRewrite(r) == nil }

// IsValidCospan is the total predicate form of CheckCospan.
func IsValidCospan(c Cospan) bool { return CheckCospan(c) == nil }

// IsValidCone is the total predicate form of CheckCone.
func IsValidCone(c Cone) bool { return CheckCone(c) == nil }
