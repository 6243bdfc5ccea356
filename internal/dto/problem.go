package dto

import (
	"time"

	"taskgen/internal/render"
)

// CreateProblemRequest adds a problem to a document. KindID must name a
// registered problem kind.
type CreateProblemRequest struct {
	KindID          string `json:"kind_id"`
	TextID          string `json:"text_id,omitempty"`
	SubproblemCount int    `json:"subproblem_count"`
}

// UpdateProblemRequest changes a problem's text override or subproblem
// count. The kind of an existing problem is fixed; it is never read from
// the request.
type UpdateProblemRequest struct {
	TextID          *string `json:"text_id,omitempty"`
	SubproblemCount *int    `json:"subproblem_count,omitempty"`
}

type DuplicateProblemRequest struct {
	TargetDocumentID string `json:"target_document_id"`
}

type ProblemResponse struct {
	ID              string    `json:"id"`
	DocumentID      string    `json:"document_id"`
	KindID          string    `json:"kind_id"`
	TextID          string    `json:"text_id,omitempty"`
	SubproblemCount int       `json:"subproblem_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProblemTextsResponse carries the rendered subproblems of one problem,
// in subproblem order.
type ProblemTextsResponse struct {
	ProblemID string        `json:"problem_id"`
	KindID    string        `json:"kind_id"`
	Texts     []render.Text `json:"texts"`
}

// KindResponse describes one registered problem kind.
type KindResponse struct {
	Identifier         string `json:"identifier"`
	DefaultInstruction string `json:"default_instruction,omitempty"`
	DefaultSolution    string `json:"default_solution,omitempty"`
}

// CreateTextRequest adds an instruction/solution template for a kind.
type CreateTextRequest struct {
	KindID      string `json:"kind_id"`
	Instruction string `json:"instruction"`
	Solution    string `json:"solution"`
}

type TextResponse struct {
	ID          string    `json:"id"`
	KindID      string    `json:"kind_id"`
	Instruction string    `json:"instruction"`
	Solution    string    `json:"solution"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
