package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemValidate(t *testing.T) {
	problem := NewProblem("doc-1", "linear_equation")
	assert.NoError(t, problem.Validate())

	assert.Equal(t, 1, problem.SubproblemCount)

	problem.SubproblemCount = 0
	err := problem.Validate()
	require.Error(t, err)
	assert.Equal(t, CodeValidation, err.(*DomainError).Code)

	problem.SubproblemCount = 3
	problem.KindID = ""
	assert.Error(t, problem.Validate())

	problem.KindID = "linear_equation"
	problem.DocumentID = ""
	assert.Error(t, problem.Validate())
}

func TestProblemDuplicate(t *testing.T) {
	source := &Problem{
		ID:              "problem-1",
		DocumentID:      "doc-1",
		KindID:          "set_operations",
		TextID:          "text-9",
		SubproblemCount: 4,
	}

	copy := source.Duplicate("doc-2")

	assert.Empty(t, copy.ID, "duplicate must receive a fresh identity")
	assert.Equal(t, "doc-2", copy.DocumentID)
	assert.Equal(t, source.KindID, copy.KindID)
	assert.Equal(t, source.TextID, copy.TextID)
	assert.Equal(t, source.SubproblemCount, copy.SubproblemCount)

	// The source is untouched.
	assert.Equal(t, "problem-1", source.ID)
	assert.Equal(t, "doc-1", source.DocumentID)
}

func TestProblemTextValidate(t *testing.T) {
	text := &ProblemText{KindID: "linear_equation", Instruction: "Solve @equation."}
	assert.NoError(t, text.Validate())

	text.Instruction = ""
	assert.Error(t, text.Validate())

	text.Instruction = "Solve @equation."
	text.KindID = ""
	assert.Error(t, text.Validate())
}
