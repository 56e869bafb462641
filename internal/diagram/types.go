package diagram

// Polarity is the cartesian/cocartesian coloring tag on a generator.
// The zero value means the generator is uncolored.
type Polarity string

const (
	PolarityNone        Polarity = ""
	PolarityCartesian   Polarity = "cartesian"
	PolarityCocartesian Polarity = "cocartesian"
)

// EmptyGeneratorID is the distinguished id of the canonical empty diagram.
// Composing with the empty diagram is a two-sided identity.
const EmptyGeneratorID = "empty"

// Generator is the atomic 0-dimensional unit of the calculus.
type Generator struct {
	ID       string   `json:"id"`
	Label    string   `json:"label,omitempty"`
	Polarity Polarity `json:"polarity,omitempty"`
}

// Diagram is a sealed interface over the two diagram shapes.
//
// A dimension-0 diagram (*DiagramZero) wraps exactly one generator. A
// dimension-n diagram, n >= 1 (*DiagramN), holds a source diagram of
// dimension n-1 and an ordered cospan sequence recording surgery history.
// The order of cospans is semantically significant.
type Diagram interface {
	// Dimension returns the diagram's dimension (>= 0).
	Dimension() int
	diagram() // sealed
}

// DiagramZero is a dimension-0 diagram: a single generator.
type DiagramZero struct {
	Generator Generator `json:"generator"`
}

func (*DiagramZero) diagram()       {}
func (*DiagramZero) Dimension() int { return 0 }

// DiagramN is a diagram of dimension >= 1: a lower-dimensional source plus
// an ordered sequence of surgery cospans.
type DiagramN struct {
	Dim     int      `json:"dimension"`
	Source  Diagram  `json:"source"`
	Cospans []Cospan `json:"cospans"`
}

func (*DiagramN) diagram()         {}
func (d *DiagramN) Dimension() int { return d.Dim }

// Rewrite is a sealed interface over the three rewrite shapes.
//
// Dimension 0 (*RewriteZero) transforms one generator into another.
// Dimension 1 (*RewriteIdentity) is the distinguished identity value with
// no payload. Dimension n > 1 (*RewriteN) carries an ordered cone sequence:
// the sparse encoding of a monotone reindexing function.
type Rewrite interface {
	// Dimension returns the rewrite's dimension (>= 0).
	Dimension() int
	rewrite() // sealed
}

// RewriteZero is a dimension-0 rewrite between two generators.
type RewriteZero struct {
	Source Generator `json:"source"`
	Target Generator `json:"target"`
}

func (*RewriteZero) rewrite()       {}
func (*RewriteZero) Dimension() int { return 0 }

// RewriteIdentity is the distinguished identity rewrite. It is a two-sided
// unit for rewrite composition and a marker with no payload.
type RewriteIdentity struct{}

func (*RewriteIdentity) rewrite()       {}
func (*RewriteIdentity) Dimension() int { return 1 }

// RewriteN is a rewrite of dimension > 1, encoded as cones.
type RewriteN struct {
	Dim   int    `json:"dimension"`
	Cones []Cone `json:"cones"`
}

func (*RewriteN) rewrite()         {}
func (r *RewriteN) Dimension() int { return r.Dim }

// Cospan is a fixed-order pair of rewrites sharing an implicit apex. It is
// both a diagram's surgery step and the source/target payload of a cone.
type Cospan struct {
	Forward  Rewrite `json:"forward"`
	Backward Rewrite `json:"backward"`
}

// Cone is the sparse encoding of one non-identity reindexing step: the
// source cospans are collapsed into the single target cospan, inserted at
// Index in the target's cospan sequence. Slices records, per collapsed
// layer, how the old slice maps into the new one. A cone may be 0-ary
// (empty source, empty slices).
type Cone struct {
	Index  int       `json:"index"`
	Source []Cospan  `json:"source"`
	Target Cospan    `json:"target"`
	Slices []Rewrite `json:"slices"`
}

// EmptyDiagram returns the canonical empty diagram: the 0-dimensional
// diagram over the distinguished "empty" generator.
func EmptyDiagram() *DiagramZero {
	return &DiagramZero{Generator: Generator{ID: EmptyGeneratorID}}
}

// GeneratorDiagram wraps a generator as a 0-dimensional diagram.
func GeneratorDiagram(g Generator) *DiagramZero {
	return &DiagramZero{Generator: g}
}

// NewDiagram builds a diagram of dimension source.Dimension()+1 over the
// given cospan sequence. The cospans slice is copied to keep the value
// immutable against caller mutation.
func NewDiagram(source Diagram, cospans []Cospan) *DiagramN {
	dim := 1
	if source != nil {
		dim = source.Dimension() + 1
	}
	var cs []Cospan
	if len(cospans) > 0 {
		cs = make([]Cospan, len(cospans))
		copy(cs, cospans)
	}
	return &DiagramN{Dim: dim, Source: source, Cospans: cs}
}

// GeneratorRewrite builds a 0-dimensional rewrite between two generators.
func GeneratorRewrite(source, target Generator) *RewriteZero {
	return &RewriteZero{Source: source, Target: target}
}

// IdentityRewrite returns the identity rewrite.
func IdentityRewrite() *RewriteIdentity {
	return &RewriteIdentity{}
}

// NewRewrite builds a rewrite of dimension dim > 1 over the given cones.
// The cones slice is copied.
func NewRewrite(dim int, cones []Cone) *RewriteN {
	var cs []Cone
	if len(cones) > 0 {
		cs = make([]Cone, len(cones))
		copy(cs, cones)
	}
	return &RewriteN{Dim: dim, Cones: cs}
}

// NewCospan pairs a forward and a backward rewrite.
func NewCospan(forward, backward Rewrite) Cospan {
	return Cospan{Forward: forward, Backward: backward}
}

// IdentityCospan returns a cospan whose both legs are the identity rewrite.
// Such cospans are no-op surgeries and are pruned by normalization.
func IdentityCospan() Cospan {
	return Cospan{Forward: IdentityRewrite(), Backward: IdentityRewrite()}
}

// NewCone builds a cone. Source and slices are copied.
func NewCone(index int, source []Cospan, target Cospan, slices []Rewrite) Cone {
	var src []Cospan
	if len(source) > 0 {
		src = make([]Cospan, len(source))
		copy(src, source)
	}
	var sl []Rewrite
	if len(slices) > 0 {
		sl = make([]Rewrite, len(slices))
		copy(sl, slices)
	}
	return Cone{Index: index, Source: src, Target: target, Slices: sl}
}

// IsIdentityRewrite reports whether r is the distinguished identity value.
func IsIdentityRewrite(r Rewrite) bool {
	_, ok := r.(*RewriteIdentity)
	return ok
}

// IsEmptyDiagram reports whether d is the canonical empty diagram.
func IsEmptyDiagram(d Diagram) bool {
	z, ok := d.(*DiagramZero)
	return ok && z.Generator.ID == EmptyGeneratorID
}

// RootGenerator walks the source chain down to the dimension-0 root and
// returns its generator. The walk is depth-bounded; ok is false when the
// chain is malformed, cyclic, or exceeds the traversal budget.
func RootGenerator(d Diagram) (Generator, bool) {
	for depth := 0; depth < maxTraversalDepth; depth++ {
		switch v := d.(type) {
		case *DiagramZero:
			return v.Generator, true
		case *DiagramN:
			if v.Source == nil {
				return Generator{}, false
			}
			d = v.Source
		default:
			return Generator{}, false
		}
	}
	return Generator{}, false
}
