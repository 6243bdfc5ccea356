package domain

import (
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Problem engine errors
	CodeUnknownKind        ErrorCode = "UNKNOWN_KIND"
	CodeDuplicateKind      ErrorCode = "DUPLICATE_KIND"
	CodeMissingPlaceholder ErrorCode = "MISSING_PLACEHOLDER"
	CodeNoTemplate         ErrorCode = "NO_TEMPLATE"
	CodeProblemNotFound    ErrorCode = "PROBLEM_NOT_FOUND"
	CodeDocumentNotFound   ErrorCode = "DOCUMENT_NOT_FOUND"
	CodeStudentNotFound    ErrorCode = "STUDENT_NOT_FOUND"

	// Request validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{Code: code, Message: message, Cause: cause}
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

// NewValidationError reports an entity that must not be persisted as-is,
// such as a problem whose text belongs to a different kind.
func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewUnknownKindError(identifier string) *DomainError {
	return NewError(CodeUnknownKind, fmt.Sprintf("problem kind %q is not registered", identifier), nil)
}

func NewDuplicateKindError(identifier string) *DomainError {
	return NewError(CodeDuplicateKind, fmt.Sprintf("problem kind %q is already registered", identifier), nil)
}

func NewMissingPlaceholderError(name string) *DomainError {
	return NewError(CodeMissingPlaceholder, fmt.Sprintf("template placeholder @%s has no generated value", name), nil)
}

func NewNoTemplateError(kindID string) *DomainError {
	return NewError(CodeNoTemplate, fmt.Sprintf("kind %q has no default text and the problem carries no override", kindID), nil)
}

func NewProblemNotFoundError(problemID string) *DomainError {
	return NewError(CodeProblemNotFound, fmt.Sprintf("problem not found: %s", problemID), nil)
}

func NewDocumentNotFoundError(documentID string) *DomainError {
	return NewError(CodeDocumentNotFound, fmt.Sprintf("document not found: %s", documentID), nil)
}

func NewStudentNotFoundError(studentID string) *DomainError {
	return NewError(CodeStudentNotFound, fmt.Sprintf("student not found: %s", studentID), nil)
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates request field errors so a handler can return
// all of them at once.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fieldErr := range e {
		parts[i] = fieldErr.Error()
	}
	return strings.Join(parts, "; ")
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{Field: field, Code: string(CodeMissingField), Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) FieldError {
	return FieldError{Field: field, Code: string(CodeInvalidFormat), Message: fmt.Sprintf("invalid format: %v", value)}
}

func NewOutOfRangeError(field string, value, min, max int) FieldError {
	return FieldError{Field: field, Code: string(CodeOutOfRange), Message: fmt.Sprintf("value %d must be between %d and %d", value, min, max)}
}
