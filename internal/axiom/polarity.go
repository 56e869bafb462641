package axiom

import (
	"fmt"

	"github.com/roach88/zigzag/internal/diagram"
)

// Built-in cartesian axiom ids.
const (
	AxiomProduct              = "cartesian.product"
	AxiomProjection           = "cartesian.projection"
	AxiomCartesianUniversal   = "cartesian.universal-property"
	AxiomCoproduct            = "cocartesian.coproduct"
	AxiomInjection            = "cocartesian.injection"
	AxiomCocartesianUniversal = "cocartesian.universal-property"
)

// The cartesian and cocartesian axiom families are exact duals: each
// checks that generators tagged with its polarity carry a non-empty id.

func cartesianAxioms() []Axiom {
	return []Axiom{
		{
			ID:          AxiomProduct,
			Name:        "Product",
			Description: "cartesian generators form products",
			Category:    CategoryCartesian,
			Validate:    polarityValidator(AxiomProduct, diagram.PolarityCartesian),
		},
		{
			ID:          AxiomProjection,
			Name:        "Projection",
			Description: "products admit projections",
			Category:    CategoryCartesian,
			Validate:    polarityValidator(AxiomProjection, diagram.PolarityCartesian),
		},
		{
			ID:          AxiomCartesianUniversal,
			Name:        "Universal property (product)",
			Description: "products satisfy the universal property",
			Category:    CategoryCartesian,
			Validate:    polarityValidator(AxiomCartesianUniversal, diagram.PolarityCartesian),
		},
	}
}

func cocartesianAxioms() []Axiom {
	return []Axiom{
		{
			ID:          AxiomCoproduct,
			Name:        "Coproduct",
			Description: "cocartesian generators form coproducts",
			Category:    CategoryCocartesian,
			Validate:    polarityValidator(AxiomCoproduct, diagram.PolarityCocartesian),
		},
		{
			ID:          AxiomInjection,
			Name:        "Injection",
			Description: "coproducts admit injections",
			Category:    CategoryCocartesian,
			Validate:    polarityValidator(AxiomInjection, diagram.PolarityCocartesian),
		},
		{
			ID:          AxiomCocartesianUniversal,
			Name:        "Universal property (coproduct)",
			Description: "coproducts satisfy the universal property",
			Category:    CategoryCocartesian,
			Validate:    polarityValidator(AxiomCocartesianUniversal, diagram.PolarityCocartesian),
		},
	}
}

// polarityValidator builds the dual-symmetric validator: every generator
// tagged with the given polarity must carry a non-empty id.
func polarityValidator(axiomID string, pol diagram.Polarity) Validator {
	return func(d diagram.Diagram) []Finding {
		var findings []Finding
		checkGen := func(g diagram.Generator, path string) {
			if g.Polarity == pol && g.ID == "" {
				findings = append(findings, errorFinding(axiomID, CodeEmptyGeneratorID,
					fmt.Sprintf("%s: %s generator id is empty", path, pol)))
			}
		}
		if root, ok := diagram.RootGenerator(d); ok {
			checkGen(root, "diagram.root")
		}
		walkRewrites(d, func(r diagram.Rewrite, path string) {
			if rz, ok := r.(*diagram.RewriteZero); ok {
				checkGen(rz.Source, path+".source")
				checkGen(rz.Target, path+".target")
			}
		})
		return findings
	}
}

// IsCartesianDiagram walks the source chain to the dimension-0 root and
// reports whether its generator is cartesian-tagged. Mutually exclusive
// with IsCocartesianDiagram for any one diagram.
func IsCartesianDiagram(d diagram.Diagram) bool {
	root, ok := diagram.RootGenerator(d)
	return ok && root.Polarity == diagram.PolarityCartesian
}

// IsCocartesianDiagram is the dual of IsCartesianDiagram.
func IsCocartesianDiagram(d diagram.Diagram) bool {
	root, ok := diagram.RootGenerator(d)
	return ok && root.Polarity == diagram.PolarityCocartesian
}

// RuleApplication records which polarity axioms were applied to a diagram
// and what they found.
type RuleApplication struct {
	// Applied lists the ids of the axioms that ran and passed.
	Applied []string

	// Findings aggregates every finding the applied axioms produced.
	Findings []Finding
}

// ApplyCartesianRules runs the three cartesian axioms against a diagram.
// It is a no-op (empty applied-rules list) unless the diagram is
// cartesian; the set of axioms that passed is recorded.
func ApplyCartesianRules(d diagram.Diagram) RuleApplication {
	if !IsCartesianDiagram(d) {
		return RuleApplication{Applied: []string{}}
	}
	return applyRules(d, cartesianAxioms())
}

// ApplyCocartesianRules is the dual of ApplyCartesianRules.
func ApplyCocartesianRules(d diagram.Diagram) RuleApplication {
	if !IsCocartesianDiagram(d) {
		return RuleApplication{Applied: []string{}}
	}
	return applyRules(d, cocartesianAxioms())
}

func applyRules(d diagram.Diagram, axioms []Axiom) RuleApplication {
	app := RuleApplication{Applied: []string{}}
	for _, ax := range axioms {
		findings := ax.Validate(d)
		app.Findings = append(app.Findings, findings...)
		passed := true
		for _, f := range findings {
			if f.Severity == SeverityError {
				passed = false
				break
			}
		}
		if passed {
			app.Applied = append(app.Applied, ax.ID)
		}
	}
	return app
}
