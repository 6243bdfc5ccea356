package domain

import "context"

// ProblemRepository is the persistence port for problems.
type ProblemRepository interface {
	CreateProblem(ctx context.Context, problem *Problem) error
	GetProblemByID(ctx context.Context, id string) (*Problem, error)
	GetProblemsByDocumentID(ctx context.Context, documentID string) ([]*Problem, error)
	UpdateProblem(ctx context.Context, problem *Problem) error
	DeleteProblem(ctx context.Context, id string) error
}

// ProblemTextRepository is the persistence port for instruction/solution
// templates.
type ProblemTextRepository interface {
	CreateText(ctx context.Context, text *ProblemText) error
	GetTextByID(ctx context.Context, id string) (*ProblemText, error)
	GetTextsByKindID(ctx context.Context, kindID string) ([]*ProblemText, error)
	DeleteText(ctx context.Context, id string) error
}

// DocumentRepository is the persistence port for documents.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, document *Document) error
	GetDocumentByID(ctx context.Context, id string) (*Document, error)
	GetDocumentsByUserID(ctx context.Context, userID string) ([]*Document, error)
	UpdateDocument(ctx context.Context, document *Document) error
	DeleteDocument(ctx context.Context, id string) error
}

// StudentRepository is the persistence port for students.
type StudentRepository interface {
	CreateStudent(ctx context.Context, student *Student) error
	GetStudentByID(ctx context.Context, id string) (*Student, error)
	GetStudentsByClassName(ctx context.Context, className string) ([]*Student, error)
}

// UserRepository is the persistence port for teacher accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}
