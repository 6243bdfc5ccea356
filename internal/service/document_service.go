package service

import (
	"context"

	"taskgen/internal/domain"
	"taskgen/internal/dto"

	"golang.org/x/sync/errgroup"
)

// worksheetConcurrency bounds how many students are rendered in parallel.
// Each generation owns its random source, so concurrent rendering is safe.
const worksheetConcurrency = 8

// DocumentService manages documents and renders whole worksheets.
type DocumentService interface {
	CreateDocument(ctx context.Context, userID string, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	GetDocument(ctx context.Context, documentID string) (*dto.DocumentResponse, error)
	ListDocuments(ctx context.Context, userID string) ([]dto.DocumentResponse, error)
	UpdateDocument(ctx context.Context, documentID string, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	DeleteDocument(ctx context.Context, documentID string) error

	// Worksheets renders every problem of the document for each listed
	// student, one sheet per student, students in request order.
	Worksheets(ctx context.Context, documentID string, req *dto.WorksheetsRequest) (*dto.WorksheetsResponse, error)

	ListStudents(ctx context.Context, className string) ([]dto.StudentResponse, error)
}

type documentService struct {
	documentRepo   domain.DocumentRepository
	problemRepo    domain.ProblemRepository
	studentRepo    domain.StudentRepository
	problemService ProblemService
}

func NewDocumentService(
	documentRepo domain.DocumentRepository,
	problemRepo domain.ProblemRepository,
	studentRepo domain.StudentRepository,
	problemService ProblemService,
) DocumentService {
	return &documentService{
		documentRepo:   documentRepo,
		problemRepo:    problemRepo,
		studentRepo:    studentRepo,
		problemService: problemService,
	}
}

func (s *documentService) CreateDocument(ctx context.Context, userID string, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	document := &domain.Document{
		UserID: userID,
		Title:  req.Title,
		Date:   req.Date,
	}
	if err := document.Validate(); err != nil {
		return nil, err
	}
	if err := s.documentRepo.CreateDocument(ctx, document); err != nil {
		return nil, domain.NewInternalError("Failed to save document", err)
	}
	return toDocumentResponse(document, nil), nil
}

func (s *documentService) GetDocument(ctx context.Context, documentID string) (*dto.DocumentResponse, error) {
	document, err := s.loadDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	problems, err := s.problemRepo.GetProblemsByDocumentID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list document problems", err)
	}
	return toDocumentResponse(document, problems), nil
}

func (s *documentService) ListDocuments(ctx context.Context, userID string) ([]dto.DocumentResponse, error) {
	documents, err := s.documentRepo.GetDocumentsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list documents", err)
	}
	result := make([]dto.DocumentResponse, len(documents))
	for i, document := range documents {
		result[i] = *toDocumentResponse(document, nil)
	}
	return result, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	document, err := s.loadDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		document.Title = *req.Title
	}
	if req.Date != nil {
		document.Date = *req.Date
	}
	if err := document.Validate(); err != nil {
		return nil, err
	}
	if err := s.documentRepo.UpdateDocument(ctx, document); err != nil {
		return nil, domain.NewInternalError("Failed to update document", err)
	}
	return toDocumentResponse(document, nil), nil
}

func (s *documentService) DeleteDocument(ctx context.Context, documentID string) error {
	if _, err := s.loadDocument(ctx, documentID); err != nil {
		return err
	}
	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		return domain.NewInternalError("Failed to delete document", err)
	}
	return nil
}

func (s *documentService) Worksheets(ctx context.Context, documentID string, req *dto.WorksheetsRequest) (*dto.WorksheetsResponse, error) {
	document, err := s.loadDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	problems, err := s.problemRepo.GetProblemsByDocumentID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list document problems", err)
	}

	sheets := make([]dto.StudentSheet, len(req.StudentIDs))

	// One goroutine per student; every generation call owns an
	// independent seeded source, so no state is shared between sheets.
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(worksheetConcurrency)
	for i, studentID := range req.StudentIDs {
		group.Go(func() error {
			student, err := s.studentRepo.GetStudentByID(groupCtx, studentID)
			if err != nil {
				return domain.NewInternalError("Failed to load student", err)
			}
			if student == nil {
				return domain.NewStudentNotFoundError(studentID)
			}

			sheet := dto.StudentSheet{
				StudentID:   student.ID,
				StudentName: student.Name,
				Problems:    make([]dto.ProblemTextsResponse, len(problems)),
			}
			for j, problem := range problems {
				texts, err := s.problemService.StudentText(groupCtx, problem.ID, student.ID)
				if err != nil {
					return err
				}
				sheet.Problems[j] = *texts
			}
			sheets[i] = sheet
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &dto.WorksheetsResponse{
		DocumentID: document.ID,
		Title:      document.Title,
		Sheets:     sheets,
	}, nil
}

func (s *documentService) ListStudents(ctx context.Context, className string) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetStudentsByClassName(ctx, className)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list students", err)
	}
	result := make([]dto.StudentResponse, len(students))
	for i, student := range students {
		result[i] = dto.StudentResponse{
			ID:        student.ID,
			Name:      student.Name,
			ClassName: student.ClassName,
		}
	}
	return result, nil
}

func (s *documentService) loadDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	document, err := s.documentRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load document", err)
	}
	if document == nil {
		return nil, domain.NewDocumentNotFoundError(documentID)
	}
	return document, nil
}

func toDocumentResponse(d *domain.Document, problems []*domain.Problem) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:        d.ID,
		Title:     d.Title,
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, problem := range problems {
		resp.Problems = append(resp.Problems, *toProblemResponse(problem))
	}
	return resp
}
