package grammar

import "fmt"

// StructuralReason classifies a StructuralError.
type StructuralReason int

const (
	// NilAxiom: the grammar has no axiom element.
	NilAxiom StructuralReason = iota + 1
	// EmptyChildren: a Group or Rule element was found with no children.
	EmptyChildren
)

func (r StructuralReason) String() string {
	switch r {
	case NilAxiom:
		return "nil axiom"
	case EmptyChildren:
		return "composite element with empty children"
	}
	return fmt.Sprintf("StructuralReason(%d)", int(r))
}

// StructuralError reports a preparation-time defect in the element graph:
// a nil axiom or a composite element with an empty children list. It is
// returned from Grammar.Prepare, never panicked, and is distinct from a
// recognition failure (match.FAILURE), which is never an error.
type StructuralError struct {
	Reason  StructuralReason
	Element *ParsingElement // nil for NilAxiom
}

func (e *StructuralError) Error() string {
	if e.Element == nil {
		return fmt.Sprintf("grammar: structural error: %s", e.Reason)
	}
	return fmt.Sprintf("grammar: structural error: %s: %s", e.Reason, e.Element.Name())
}
