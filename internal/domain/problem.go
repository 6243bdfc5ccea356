package domain

import "time"

// Problem is one configured exercise inside a document. It references a
// registered problem kind by identifier; the generation algorithm itself
// lives behind the kind registry, never on the entity. TextID optionally
// points at a ProblemText override, otherwise the kind's default text is
// used at render time.
type Problem struct {
	ID              string
	DocumentID      string
	KindID          string
	TextID          string // empty means "use the kind's default text"
	SubproblemCount int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewProblem creates a problem with the default single subproblem.
func NewProblem(documentID, kindID string) *Problem {
	return &Problem{
		DocumentID:      documentID,
		KindID:          kindID,
		SubproblemCount: 1,
	}
}

// Validate checks the entity's own invariants. Kind resolution and the
// text/kind match are checked by the service against the registry and the
// stored text, since they need collaborators this package does not hold.
func (p *Problem) Validate() error {
	if p.DocumentID == "" {
		return NewValidationError("problem must belong to a document")
	}
	if p.KindID == "" {
		return NewValidationError("problem must have a kind")
	}
	if p.SubproblemCount < 1 {
		return NewValidationError("number of subproblems must be at least 1")
	}
	return nil
}

// Duplicate returns an independent copy attached to the given document.
// The copy has no identity yet; the caller assigns one before saving.
// Rendered text is never copied because none is ever stored.
func (p *Problem) Duplicate(targetDocumentID string) *Problem {
	return &Problem{
		DocumentID:      targetDocumentID,
		KindID:          p.KindID,
		TextID:          p.TextID,
		SubproblemCount: p.SubproblemCount,
	}
}

// ProblemText is an instruction/solution template pair belonging to
// exactly one problem kind. Placeholders use the @name form.
type ProblemText struct {
	ID          string
	KindID      string
	Instruction string
	Solution    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *ProblemText) Validate() error {
	if t.KindID == "" {
		return NewValidationError("problem text must belong to a kind")
	}
	if t.Instruction == "" {
		return NewValidationError("instruction must not be empty")
	}
	return nil
}
