package axiom

import "fmt"

// Severity ranks a validation finding. Only error-severity findings make a
// diagram invalid (or a transition incoherent); warnings and infos are
// advisory.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding codes.
const (
	// CodeInvalidStructure short-circuits a validation pass when the
	// diagram fails structural validation.
	CodeInvalidStructure = "INVALID_DIAGRAM_STRUCTURE"

	// CodeAxiomValidationError wraps a panic escaping an axiom validator,
	// scoped to that axiom only.
	CodeAxiomValidationError = "AXIOM_VALIDATION_ERROR"

	// CodeEmptyGeneratorID flags a polarity-tagged or otherwise relevant
	// generator with an empty id.
	CodeEmptyGeneratorID = "EMPTY_GENERATOR_ID"

	// CodeRewriteMismatch flags a same-polarity transition whose rewrite
	// endpoints do not literally match the two generators.
	CodeRewriteMismatch = "REWRITE_MISMATCH"

	// CodeStructureLoss flags a transition from a polarity-tagged
	// generator to an uncolored one.
	CodeStructureLoss = "STRUCTURE_LOSS"

	// CodeStructureCreation flags a transition from an uncolored generator
	// to a polarity-tagged one.
	CodeStructureCreation = "STRUCTURE_CREATION"

	// CodeDuplicateAxiomID flags two axioms sharing one id in a
	// compatibility analysis.
	CodeDuplicateAxiomID = "DUPLICATE_AXIOM_ID"

	// CodeMixedPolarityAxioms flags asking both cartesian and cocartesian
	// axioms to validate a diagram whose root polarity is unambiguous.
	CodeMixedPolarityAxioms = "MIXED_POLARITY_AXIOMS"
)

// Finding is a single validation result produced by an axiom validator or
// a framework-level analysis.
type Finding struct {
	// AxiomID scopes the finding to the axiom that produced it. Empty for
	// framework-level findings.
	AxiomID string `json:"axiom_id,omitempty"`

	// Code identifies the finding category.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Severity ranks the finding.
	Severity Severity `json:"severity"`
}

func (f Finding) String() string {
	if f.AxiomID != "" {
		return fmt.Sprintf("[%s] %s (%s): %s", f.Severity, f.Code, f.AxiomID, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Code, f.Message)
}

func errorFinding(axiomID, code, message string) Finding {
	return Finding{AxiomID: axiomID, Code: code, Message: message, Severity: SeverityError}
}

func warningFinding(axiomID, code, message string) Finding {
	return Finding{AxiomID: axiomID, Code: code, Message: message, Severity: SeverityWarning}
}

func infoFinding(axiomID, code, message string) Finding {
	return Finding{AxiomID: axiomID, Code: code, Message: message, Severity: SeverityInfo}
}
