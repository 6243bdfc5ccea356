package domain

import "time"

// Document groups problems into one worksheet. The engine never inspects
// its contents beyond the problem list; title and date exist for listings.
type Document struct {
	ID        string
	UserID    string
	Title     string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d *Document) Validate() error {
	if d.Title == "" {
		return NewValidationError("document title must not be empty")
	}
	if d.UserID == "" {
		return NewValidationError("document must belong to a user")
	}
	return nil
}

// Student is an opaque collaborator; only its stable identity matters,
// since it seeds the per-student generation.
type Student struct {
	ID        string
	Name      string
	ClassName string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Student) Validate() error {
	if s.Name == "" {
		return NewValidationError("student name must not be empty")
	}
	return nil
}
