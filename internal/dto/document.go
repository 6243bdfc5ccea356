package dto

import "time"

type CreateDocumentRequest struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date,omitempty"`
}

type UpdateDocumentRequest struct {
	Title *string    `json:"title,omitempty"`
	Date  *time.Time `json:"date,omitempty"`
}

type DocumentResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Date      time.Time         `json:"date"`
	Problems  []ProblemResponse `json:"problems,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type StudentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ClassName string `json:"class_name"`
}

// WorksheetsRequest asks for per-student renderings of a whole document.
type WorksheetsRequest struct {
	StudentIDs []string `json:"student_ids"`
}

// StudentSheet is one student's rendering of every problem in a document.
type StudentSheet struct {
	StudentID   string                 `json:"student_id"`
	StudentName string                 `json:"student_name"`
	Problems    []ProblemTextsResponse `json:"problems"`
}

type WorksheetsResponse struct {
	DocumentID string         `json:"document_id"`
	Title      string         `json:"title"`
	Sheets     []StudentSheet `json:"sheets"`
}
