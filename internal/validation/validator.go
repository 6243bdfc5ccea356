package validation

import (
	"regexp"
	"strings"

	"taskgen/internal/domain"
	"taskgen/internal/dto"
)

// Subproblems beyond this are listed with letters in rendered documents,
// so the bound follows the alphabet.
const maxSubproblems = 26

const maxWorksheetStudents = 100

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateProblemRequest validates a create-problem request.
func (v *Validator) ValidateCreateProblemRequest(req *dto.CreateProblemRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.KindID) == "" {
		errs = append(errs, domain.NewMissingFieldError("kind_id"))
	} else if !isValidKindID(req.KindID) {
		errs = append(errs, domain.NewInvalidFormatError("kind_id", req.KindID))
	}

	if req.TextID != "" && !isValidULID(req.TextID) {
		errs = append(errs, domain.NewInvalidFormatError("text_id", req.TextID))
	}

	if req.SubproblemCount < 0 || req.SubproblemCount > maxSubproblems {
		errs = append(errs, domain.NewOutOfRangeError("subproblem_count", req.SubproblemCount, 1, maxSubproblems))
	}

	return errs
}

// ValidateUpdateProblemRequest validates an update-problem request.
func (v *Validator) ValidateUpdateProblemRequest(req *dto.UpdateProblemRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if req.TextID != nil && *req.TextID != "" && !isValidULID(*req.TextID) {
		errs = append(errs, domain.NewInvalidFormatError("text_id", *req.TextID))
	}
	if req.SubproblemCount != nil && (*req.SubproblemCount < 1 || *req.SubproblemCount > maxSubproblems) {
		errs = append(errs, domain.NewOutOfRangeError("subproblem_count", *req.SubproblemCount, 1, maxSubproblems))
	}

	return errs
}

// ValidateWorksheetsRequest validates a worksheet rendering request.
func (v *Validator) ValidateWorksheetsRequest(req *dto.WorksheetsRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if len(req.StudentIDs) == 0 {
		errs = append(errs, domain.NewMissingFieldError("student_ids"))
		return errs
	}
	if len(req.StudentIDs) > maxWorksheetStudents {
		errs = append(errs, domain.NewOutOfRangeError("student_ids", len(req.StudentIDs), 1, maxWorksheetStudents))
	}
	for _, id := range req.StudentIDs {
		if !isValidULID(id) {
			errs = append(errs, domain.NewInvalidFormatError("student_ids", id))
		}
	}

	return errs
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidKindID checks the registry identifier format (lowercase
// snake_case).
func isValidKindID(s string) bool {
	if len(s) == 0 || len(s) > 50 {
		return false
	}
	validKindID := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	return validKindID.MatchString(s)
}
